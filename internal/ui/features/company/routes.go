// Package company serves the practice pages: about, team, FAQ, and
// accepted insurances.
package company

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"
)

// SetupRoutes configures routes for the company feature.
func SetupRoutes(router chi.Router, cfg *config.Config, sessionStore sessions.Store, isDev bool) error {
	handlers := NewHandlers(cfg, sessionStore, isDev)

	router.Get("/about", handlers.HandleAboutPage)
	router.Get("/team", handlers.HandleTeamPage)
	router.Get("/faq", handlers.HandleFAQPage)
	router.Get("/insurances", handlers.HandleInsurancesPage)

	return nil
}
