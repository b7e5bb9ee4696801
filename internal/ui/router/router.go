// Package router sets up HTTP routes for the site server.
package router

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"
	blogFeature "github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/features/blog"
	bookingFeature "github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/features/booking"
	companyFeature "github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/features/company"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/features/common"
	contactFeature "github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/features/contact"
	homeFeature "github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/features/home"
	topicsFeature "github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/features/topics"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/notifier"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/resources"
)

// SetupRoutes configures all routes for the site server. posts may be nil
// when no CMS is configured.
func SetupRoutes(
	router chi.Router,
	cfg *config.Config,
	sessionStore *sessions.CookieStore,
	posts blogFeature.PostSource,
	notify *notifier.Hub,
	isDev bool,
) error {
	if isDev {
		setupReload(router, notify)
	}

	router.Handle("/static/*", resources.Handler())
	router.Handle("/metrics", promhttp.Handler())

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		common.RenderNotFound(w, r, common.ViewFor(cfg, sessionStore, r, isDev))
	})

	if err := homeFeature.SetupRoutes(router, cfg, sessionStore, isDev); err != nil {
		return err
	}
	if err := topicsFeature.SetupRoutes(router, cfg, sessionStore, isDev); err != nil {
		return err
	}
	if err := companyFeature.SetupRoutes(router, cfg, sessionStore, isDev); err != nil {
		return err
	}
	if err := bookingFeature.SetupRoutes(router, cfg, sessionStore, isDev); err != nil {
		return err
	}
	if err := contactFeature.SetupRoutes(router, cfg, sessionStore, isDev); err != nil {
		return err
	}
	if err := blogFeature.SetupRoutes(router, cfg, sessionStore, posts, isDev); err != nil {
		return err
	}

	return nil
}

// setupReload wires the dev reload stream. Each open page holds a /reload
// SSE connection; the file watcher (or a manual POST-free GET to
// /hotreload) broadcasts through the hub and every page reloads. The
// first connection after a server restart reloads once so a browser that
// survived the restart picks up fresh markup.
func setupReload(router chi.Router, notify *notifier.Hub) {
	var restartOnce sync.Once

	router.Get("/reload", func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		reload := func() { _ = sse.ExecuteScript("window.location.reload()") }
		restartOnce.Do(reload)

		pings := notify.Subscribe()
		defer notify.Unsubscribe(pings)

		for {
			select {
			case <-pings:
				reload()
			case <-r.Context().Done():
				return
			}
		}
	})

	router.Get("/hotreload", func(w http.ResponseWriter, _ *http.Request) {
		notify.Broadcast()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}
