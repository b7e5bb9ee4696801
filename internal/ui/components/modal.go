package components

import (
	"fmt"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/widgets"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Modal renders a signal-driven overlay dialog. The dialog body is not
// shown until the matching trigger flips the signal, and closing it (via
// the close button or the backdrop) hides the body again, so embedded
// content inside only loads while the dialog is open.
func Modal(id, title string, body g.Node) g.Node {
	signal := "modal_" + id
	var initial widgets.Modal
	return h.Div(
		h.ID(id),
		g.Attr("data-signals", fmt.Sprintf(`{"%s":%t}`, signal, initial.IsOpen())),
		h.Div(
			h.Class("modal-backdrop"),
			g.Attr("data-show", "$"+signal),
			g.Attr("data-on-click", "$"+signal+" = false"),
		),
		h.Div(
			h.Class("modal-dialog"),
			g.Attr("role", "dialog"),
			g.Attr("aria-modal", "true"),
			g.Attr("data-show", "$"+signal),
			h.Div(
				h.Class("modal-head"),
				h.H2(g.Text(title)),
				h.Button(
					h.Class("modal-close"),
					g.Attr("aria-label", "Close"),
					g.Attr("data-on-click", "$"+signal+" = false"),
					g.Text("×"),
				),
			),
			h.Div(h.Class("modal-body"), body),
		),
	)
}

// ModalTrigger is a button that opens the modal with the given id.
func ModalTrigger(id, label, class string) g.Node {
	return h.Button(
		h.Class(class),
		g.Attr("data-on-click", "$modal_"+id+" = true"),
		g.Text(label),
	)
}
