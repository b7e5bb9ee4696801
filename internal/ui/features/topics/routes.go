// Package topics serves the condition and service pages: one overview grid
// per catalog and one detail page per entry.
package topics

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/catalog"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"
)

// SetupRoutes configures routes for the topics feature. Detail routes are
// registered per catalog entry, so adding an entry to the catalog is all
// it takes to publish a new page.
func SetupRoutes(router chi.Router, cfg *config.Config, sessionStore sessions.Store, isDev bool) error {
	handlers := NewHandlers(cfg, sessionStore, isDev)

	for _, mount := range []struct {
		name  string
		path  string
		intro string
	}{
		{name: "conditions", path: "/conditions", intro: conditionsIntro},
		{name: "services", path: "/services", intro: servicesIntro},
	} {
		c, err := catalog.ByName(mount.name)
		if err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return err
		}

		router.Get(mount.path, handlers.HandleOverview(c, mount.intro))
		for _, entry := range c.List() {
			router.Get(entry.Route(), handlers.HandleDetail(c, entry.Slug))
		}
	}

	return nil
}
