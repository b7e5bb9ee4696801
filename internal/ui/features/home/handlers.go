package home

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/catalog"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/components"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/features/common"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Handlers provides HTTP handlers for the landing page.
type Handlers struct {
	cfg          *config.Config
	sessionStore sessions.Store
	isDev        bool
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config, sessionStore sessions.Store, isDev bool) *Handlers {
	return &Handlers{cfg: cfg, sessionStore: sessionStore, isDev: isDev}
}

// HandleHomePage renders the landing page: hero, reasons to choose the
// practice, service and condition previews, testimonials, and the closing
// call to action, in that order.
func (hd *Handlers) HandleHomePage(w http.ResponseWriter, r *http.Request) {
	v := common.ViewFor(hd.cfg, hd.sessionStore, r, hd.isDev)
	page := components.Document(v,
		components.Page{
			Title:       "Home",
			Description: hd.cfg.Site.Tagline,
		},
		components.Hero(heroHeadline, heroSub, heroCTA, "/appointments"),
		components.FeatureRow(whyFeatures),
		previewSection("Our Services", "Comprehensive psychiatric care, tailored to you.", catalog.Services.List()),
		previewSection("Conditions We Treat", "Specialized treatment across the full range of mental health conditions.", catalog.Conditions.List()),
		components.Testimonials(testimonials),
		components.CTABanner("Take the first step toward feeling better.", heroCTA, "/appointments"),
	)
	common.Render(w, r, page)
}

// HandleDismissNotice records the banner dismissal in the session. The
// response is empty; the banner element is removed client side.
func (hd *Handlers) HandleDismissNotice(w http.ResponseWriter, r *http.Request) {
	if err := common.DismissNotice(hd.sessionStore, w, r); err != nil {
		slog.Error("saving notice dismissal", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func previewSection(title, intro string, entries []catalog.TopicEntry) g.Node {
	return h.Section(
		h.Class("preview-section"),
		h.H2(g.Text(title)),
		h.P(g.Text(intro)),
		components.TopicGrid(entries),
	)
}
