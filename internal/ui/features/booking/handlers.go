package booking

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

// Handlers provides HTTP handlers for the appointments page.
type Handlers struct {
	cfg          *config.Config
	sessionStore sessions.Store
	isDev        bool
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config, sessionStore sessions.Store, isDev bool) *Handlers {
	return &Handlers{cfg: cfg, sessionStore: sessionStore, isDev: isDev}
}

// HandleAppointmentsPage renders the booking flow: the numbered steps,
// the trigger for the scheduling portal dialog, and the payment policy
// dialog. The portal iframe lives inside the dialog, so the vendor page
// is only requested once the visitor opens it.
func (hd *Handlers) HandleAppointmentsPage(w http.ResponseWriter, r *http.Request) {
	v := common.ViewFor(hd.cfg, hd.sessionStore, r, hd.isDev)

	scheduler := embeds.Embed{
		ID:     "scheduler",
		Title:  "Online scheduling",
		URL:    hd.cfg.Embeds.SchedulerURL,
		Height: 700,
	}

	page := components.Document(v,
		components.Page{Title: "Book Appointment", Description: "Schedule a psychiatric appointment online."},
		components.PageHero("Book an Appointment", "New patients are typically seen within one to two weeks."),
		components.StepList(steps),
		h.Section(
			h.Class("booking-actions"),
			components.ModalTrigger("booking", "Open Scheduling Portal", "btn btn-primary"),
			components.ModalTrigger("policy", "Payment Policy", "btn btn-link"),
			h.P(h.Class("booking-phone"),
				g.Text("Prefer to talk? Call us at "),
				h.A(h.Href("tel:"+hd.cfg.Site.Phone), g.Text(hd.cfg.Site.Phone)),
			),
		),
		components.Modal("booking", "Schedule Online", scheduler.Boundary()),
		components.Modal("policy", "Payment Policy", policyBody()),
	)
	common.Render(w, r, page)
}

func policyBody() g.Node {
	return h.Div(
		h.Class("policy-text"),
		g.Map(paymentPolicy, func(p string) g.Node { return h.P(g.Text(p)) }),
	)
}
