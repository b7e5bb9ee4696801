// Package contact serves the contact page with the hosted message form.
package contact

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"
)

// SetupRoutes configures routes for the contact feature.
func SetupRoutes(router chi.Router, cfg *config.Config, sessionStore sessions.Store, isDev bool) error {
	handlers := NewHandlers(cfg, sessionStore, isDev)

	router.Get("/contact", handlers.HandleContactPage)

	return nil
}
