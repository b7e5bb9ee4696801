package topics

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/catalog"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/components"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/features/common"
)

const (
	conditionsIntro = "We diagnose and treat the full range of mental health conditions in adults and adolescents."
	servicesIntro   = "From first evaluation to ongoing care, every service is available in person and by secure video."
)

// Handlers provides HTTP handlers for condition and service pages.
type Handlers struct {
	cfg          *config.Config
	sessionStore sessions.Store
	isDev        bool
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config, sessionStore sessions.Store, isDev bool) *Handlers {
	return &Handlers{cfg: cfg, sessionStore: sessionStore, isDev: isDev}
}

// HandleOverview renders a catalog as a linked card grid.
func (hd *Handlers) HandleOverview(c *catalog.Catalog, intro string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := common.ViewFor(hd.cfg, hd.sessionStore, r, hd.isDev)
		title := overviewTitle(c)
		page := components.Document(v,
			components.Page{Title: title, Description: intro},
			components.PageHero(title, intro),
			components.TopicGrid(c.List()),
		)
		common.Render(w, r, page)
	}
}

// HandleDetail renders one entry's detail page. The entry is resolved at
// request time so a mismatch between routing table and catalog surfaces
// as a 404 rather than a stale page.
func (hd *Handlers) HandleDetail(c *catalog.Catalog, slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := common.ViewFor(hd.cfg, hd.sessionStore, r, hd.isDev)

		entry, err := c.FindBySlug(slug)
		if err != nil {
			if !errors.Is(err, catalog.ErrNotFound) {
				slog.Error("resolving topic", "slug", slug, "error", err)
			}
			common.RenderNotFound(w, r, v)
			return
		}

		page := components.Document(v,
			components.Page{Title: entry.Title, Description: entry.Summary},
			components.TopicDetail(entry),
		)
		common.Render(w, r, page)
	}
}

func overviewTitle(c *catalog.Catalog) string {
	if c.Name() == "services" {
		return "Our Services"
	}
	return "Conditions We Treat"
}
