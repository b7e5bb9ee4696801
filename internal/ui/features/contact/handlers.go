package contact

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/components"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/embeds"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/features/common"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Handlers provides HTTP handlers for the contact page.
type Handlers struct {
	cfg          *config.Config
	sessionStore sessions.Store
	isDev        bool
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config, sessionStore sessions.Store, isDev bool) *Handlers {
	return &Handlers{cfg: cfg, sessionStore: sessionStore, isDev: isDev}
}

// HandleContactPage renders office details alongside the hosted contact
// form. The form is a vendor iframe behind the embed boundary; messages
// never touch this server.
func (hd *Handlers) HandleContactPage(w http.ResponseWriter, r *http.Request) {
	v := common.ViewFor(hd.cfg, hd.sessionStore, r, hd.isDev)

	form := embeds.Embed{
		ID:     "contact",
		Title:  "Contact form",
		URL:    hd.cfg.Embeds.ContactFormURL,
		Height: 900,
	}

	page := components.Document(v,
		components.Page{Title: "Contact Us", Description: "Reach the office by phone, email, or message."},
		components.PageHero("Contact Us", "We respond to messages within one business day."),
		h.Section(
			h.Class("contact-layout"),
			officeDetails(hd.cfg.Site),
			h.Div(h.Class("contact-form"), form.Boundary()),
		),
		h.Section(
			h.Class("contact-crisis"),
			h.P(g.Text("This form is not monitored around the clock. If you are in crisis, call or text 988, or go to your nearest emergency room.")),
		),
	)
	common.Render(w, r, page)
}

func officeDetails(site config.SiteConfig) g.Node {
	return h.Div(
		h.Class("contact-details"),
		h.H2(g.Text("Office")),
		h.Ul(
			h.Li(h.A(h.Href("tel:"+site.Phone), g.Text(site.Phone))),
			h.Li(h.A(h.Href("mailto:"+site.Email), g.Text(site.Email))),
			h.Li(g.Text(site.Address)),
			h.Li(g.Text(site.OfficeHours)),
		),
	)
}
