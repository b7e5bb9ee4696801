// Package home provides the landing page feature.
package home

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"
)

// SetupRoutes configures routes for the home feature.
func SetupRoutes(router chi.Router, cfg *config.Config, sessionStore sessions.Store, isDev bool) error {
	handlers := NewHandlers(cfg, sessionStore, isDev)

	router.Get("/", handlers.HandleHomePage)
	router.Post("/notice/dismiss", handlers.HandleDismissNotice)

	return nil
}
