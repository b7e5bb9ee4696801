// Package embeds isolates third-party iframe content (the hosted contact
// form and the scheduling portal) behind a load-state boundary, so a slow
// or unreachable vendor never blanks the page around it.
package embeds

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// loadTimeout is how long the boundary waits for the frame before
// declaring the vendor unreachable.
const loadTimeout = "15s"

// Embed describes one third-party frame.
type Embed struct {
	// ID names the boundary's signals, unique per page.
	ID string

	// Title is the iframe's accessible name.
	Title string

	// URL is the vendor-hosted document.
	URL string

	// Height is the fixed frame height in pixels.
	Height int
}

// Boundary wraps the frame in a three-state shell. State starts at
// "loading" with a visible indicator, flips to "ready" when the frame's
// load event fires, and to "failed" if the timeout elapses first. The
// failed panel offers a retry, which re-requests the frame with a cache
// busting counter, and a direct link to the vendor page as a last resort.
func (e Embed) Boundary() g.Node {
	state := "embed_" + e.ID
	try := state + "_try"

	return h.Div(
		h.Class("embed-boundary"),
		g.Attr("data-signals", fmt.Sprintf(`{"%s":"loading","%s":0}`, state, try)),
		g.Attr("data-on-load__delay."+loadTimeout,
			fmt.Sprintf("if ($%s === 'loading') $%s = 'failed'", state, state)),

		h.Div(
			h.Class("embed-loading"),
			g.Attr("data-show", fmt.Sprintf("$%s === 'loading'", state)),
			h.Div(h.Class("spinner"), g.Attr("aria-hidden", "true")),
			h.P(g.Text("Loading...")),
		),

		h.Div(
			h.Class("embed-failed"),
			g.Attr("data-show", fmt.Sprintf("$%s === 'failed'", state)),
			h.P(g.Text("This content could not be loaded.")),
			h.Button(
				h.Class("btn btn-primary"),
				g.Attr("data-on-click",
					fmt.Sprintf("$%s++; $%s = 'loading'", try, state)),
				g.Text("Try again"),
			),
			h.A(
				h.Href(e.URL),
				h.Target("_blank"),
				h.Rel("noopener noreferrer"),
				g.Text("Open in a new tab"),
			),
		),

		h.IFrame(
			h.Title(e.Title),
			g.Attr("data-attr-src", e.srcExpr(try)),
			g.Attr("data-on-load", fmt.Sprintf("$%s = 'ready'", state)),
			g.Attr("data-class-embed-ready", fmt.Sprintf("$%s === 'ready'", state)),
			h.Height(fmt.Sprintf("%d", e.Height)),
			g.Attr("frameborder", "0"),
		),
	)
}

// srcExpr builds the frame src as a datastar expression so each retry
// requests a distinct URL.
func (e Embed) srcExpr(trySignal string) string {
	sep := "?"
	if strings.Contains(e.URL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("'%s%sretry=' + $%s", e.URL, sep, trySignal)
}
