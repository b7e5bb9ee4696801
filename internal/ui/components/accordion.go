package components

import (
	"fmt"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/widgets"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// QA is one expandable question/answer pair.
type QA struct {
	Question string
	Answer   string
}

// Accordion renders an exclusive-open question list. The open panel index
// lives in a single datastar signal, so opening one item closes whichever
// was open before, and clicking the open item again collapses it. -1 means
// everything is collapsed, which is also the initial state.
func Accordion(id string, items []QA) g.Node {
	signal := "acc_" + id
	return h.Div(
		h.Class("accordion"),
		h.ID(id),
		g.Attr("data-signals", fmt.Sprintf(`{"%s":%d}`, signal, widgets.NewAccordion().Open())),
		g.Group(accordionItems(signal, items)),
	)
}

func accordionItems(signal string, items []QA) []g.Node {
	nodes := make([]g.Node, 0, len(items))
	for i, item := range items {
		open := fmt.Sprintf("$%s === %d", signal, i)
		toggle := fmt.Sprintf("$%s = %s ? %d : %d", signal, open, widgets.AccordionClosed, i)
		nodes = append(nodes, h.Div(
			h.Class("accordion-item"),
			h.Button(
				h.Class("accordion-toggle"),
				g.Attr("data-on-click", toggle),
				g.Attr("data-attr-aria-expanded", open),
				g.Text(item.Question),
				h.Span(h.Class("chevron"), g.Attr("aria-hidden", "true"), g.Text("▾")),
			),
			h.Div(
				h.Class("accordion-panel"),
				g.Attr("data-show", open),
				h.P(g.Text(item.Answer)),
			),
		))
	}
	return nodes
}
