// Package blog serves the article archive and individual posts from the
// headless CMS feed.
package blog

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"
)

// SetupRoutes configures routes for the blog feature. posts may be nil
// when no CMS is configured.
func SetupRoutes(router chi.Router, cfg *config.Config, sessionStore sessions.Store, posts PostSource, isDev bool) error {
	handlers := NewHandlers(cfg, sessionStore, posts, isDev)

	router.Get("/blog", handlers.HandleArchivePage)
	router.Get("/blog/{slug}", handlers.HandlePostPage)

	return nil
}
