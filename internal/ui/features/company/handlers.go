package company

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/components"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/features/common"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Handlers provides HTTP handlers for the practice pages: about, team,
// FAQ, and insurances.
type Handlers struct {
	cfg          *config.Config
	sessionStore sessions.Store
	isDev        bool
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config, sessionStore sessions.Store, isDev bool) *Handlers {
	return &Handlers{cfg: cfg, sessionStore: sessionStore, isDev: isDev}
}

// HandleAboutPage renders the practice mission and a compact team preview.
func (hd *Handlers) HandleAboutPage(w http.ResponseWriter, r *http.Request) {
	v := common.ViewFor(hd.cfg, hd.sessionStore, r, hd.isDev)

	page := components.Document(v,
		components.Page{Title: "About Us", Description: "Who we are and how we practice."},
		components.PageHero("About "+hd.cfg.Site.Name, ""),
		h.Section(
			h.Class("mission"),
			g.Map(mission, func(p string) g.Node { return h.P(g.Text(p)) }),
		),
		teamSection(team),
		components.CTABanner("Find out if we are the right fit.", "Book a First Appointment", "/appointments"),
	)
	common.Render(w, r, page)
}

// HandleTeamPage renders full clinician profiles.
func (hd *Handlers) HandleTeamPage(w http.ResponseWriter, r *http.Request) {
	v := common.ViewFor(hd.cfg, hd.sessionStore, r, hd.isDev)

	page := components.Document(v,
		components.Page{Title: "Our Team", Description: "Meet the clinicians behind the practice."},
		components.PageHero("Our Team", "Every member of our team is licensed, board-certified, and here because they chose small-practice care."),
		teamSection(team),
	)
	common.Render(w, r, page)
}

// HandleFAQPage renders the question list as an exclusive-open accordion.
func (hd *Handlers) HandleFAQPage(w http.ResponseWriter, r *http.Request) {
	v := common.ViewFor(hd.cfg, hd.sessionStore, r, hd.isDev)

	page := components.Document(v,
		components.Page{Title: "FAQ", Description: "Answers to common questions about appointments, insurance, and treatment."},
		components.PageHero("Frequently Asked Questions", ""),
		components.Accordion("faq", faqs),
		components.CTABanner("Still have questions?", "Contact Us", "/contact"),
	)
	common.Render(w, r, page)
}

// HandleInsurancesPage renders the accepted-plan grid.
func (hd *Handlers) HandleInsurancesPage(w http.ResponseWriter, r *http.Request) {
	v := common.ViewFor(hd.cfg, hd.sessionStore, r, hd.isDev)

	page := components.Document(v,
		components.Page{Title: "Insurances", Description: "Insurance plans we currently accept."},
		components.PageHero("Insurances We Accept", "We bill most major plans directly. Coverage is verified before your first visit."),
		components.LogoGrid(insurancePlans),
		h.Section(
			h.Class("insurance-note"),
			h.P(g.Text("Plan not listed? Contact us. Networks change throughout the year and self-pay rates are available.")),
		),
	)
	common.Render(w, r, page)
}

func teamSection(members []TeamMember) g.Node {
	return h.Section(
		h.Class("team"),
		g.Map(members, func(m TeamMember) g.Node {
			return h.Div(
				h.Class("team-member"),
				h.Img(h.Src(m.ImageRef), h.Alt(m.Name)),
				h.H3(g.Text(m.Name)),
				h.P(h.Class("team-title"), g.Text(m.Title)),
				h.P(h.Class("team-credential"), g.Text(m.Credential)),
				g.Map(m.Bio, func(p string) g.Node { return h.P(g.Text(p)) }),
			)
		}),
	)
}
