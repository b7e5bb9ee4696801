// Package booking serves the appointments page and its scheduling portal
// and payment policy dialogs.
package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"
)

// SetupRoutes configures routes for the booking feature.
func SetupRoutes(router chi.Router, cfg *config.Config, sessionStore sessions.Store, isDev bool) error {
	handlers := NewHandlers(cfg, sessionStore, isDev)

	router.Get("/appointments", handlers.HandleAppointmentsPage)

	// Old links still point at /book-appointment.
	router.Get("/book-appointment", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/appointments", http.StatusMovedPermanently)
	})

	return nil
}
