// Package common provides helpers shared by every UI feature: building the
// per-request view context, rendering component trees, and the visitor
// session the notice banner dismissal lives in.
package common

import (
	"log/slog"
	"net/http"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/catalog"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/components"
	"github.com/gorilla/sessions"

	g "maragu.dev/gomponents"
)

// SessionName is the cookie session shared across features.
const SessionName = "goodplace_session"

// noticeDismissedKey marks that the visitor closed the notice banner.
const noticeDismissedKey = "notice_dismissed"

// ViewFor assembles the view context every page renders against. Session
// read errors fall back to a fresh session rather than failing the page.
func ViewFor(cfg *config.Config, store sessions.Store, r *http.Request, isDev bool) components.View {
	dismissed := false
	if store != nil {
		if session, err := store.Get(r, SessionName); err == nil {
			dismissed, _ = session.Values[noticeDismissedKey].(bool)
		}
	}
	return components.View{
		Site:            cfg.Site,
		Brand:           cfg.Brand,
		Nav:             catalog.MainNav,
		Quick:           catalog.QuickLinks,
		Path:            r.URL.Path,
		Dev:             isDev,
		NoticeDismissed: dismissed,
	}
}

// DismissNotice persists the banner dismissal in the visitor session.
func DismissNotice(store sessions.Store, w http.ResponseWriter, r *http.Request) error {
	session, err := store.Get(r, SessionName)
	if err != nil {
		// A stale or tampered cookie still gets a fresh session.
		session, _ = store.New(r, SessionName)
	}
	session.Values[noticeDismissedKey] = true
	return session.Save(r, w)
}

// Render writes a component tree as the HTML response.
func Render(w http.ResponseWriter, r *http.Request, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := node.Render(w); err != nil {
		slog.Error("rendering page", "path", r.URL.Path, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// RenderNotFound writes the shared 404 page.
func RenderNotFound(w http.ResponseWriter, r *http.Request, v components.View) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	page := components.Document(v, components.Page{Title: "Page Not Found"}, components.NotFound())
	if err := page.Render(w); err != nil {
		slog.Error("rendering not-found page", "path", r.URL.Path, "error", err)
	}
}
