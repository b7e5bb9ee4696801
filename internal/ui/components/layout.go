// Package components holds the layout primitives and shared presentational
// blocks every page is composed from: document shell, header, footer, hero
// variants, card grids, accordion, modal, and the fixed section blocks.
// Components are plain gomponents trees; client-side behavior is expressed
// through datastar attributes the components emit.
package components

import (
	"fmt"
	"time"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/catalog"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// datastarCDN is the client runtime powering the declarative
// data-* attributes. Pinned so markup and runtime move together.
const datastarCDN = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// View carries everything a component needs to render consistently on any
// page: site configuration, the navigation catalogs, and the current route.
type View struct {
	Site  config.SiteConfig
	Brand config.BrandConfig
	Nav   []catalog.NavigationItem
	Quick []catalog.NavigationItem

	// Path is the current route, used for active-link highlighting and
	// nav state.
	Path string

	// Dev enables the hot-reload listener.
	Dev bool

	// NoticeDismissed suppresses the new-patient notice banner once the
	// visitor has closed it (session-backed).
	NoticeDismissed bool
}

// Page describes one composed page.
type Page struct {
	Title       string
	Description string
}

// Document renders the full HTML document: head, header, main content in
// order, footer. Every route goes through here, which is what keeps the
// page population structurally identical.
func Document(v View, p Page, content ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(fmt.Sprintf("%s - %s", p.Title, v.Site.Name))),
				g.If(p.Description != "",
					h.Meta(h.Name("description"), h.Content(p.Description)),
				),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
				h.Script(h.Type("module"), h.Src(datastarCDN)),
				brandStyle(v.Brand),
			),
			h.Body(
				g.If(v.Dev, devReloadListener()),
				Header(v),
				g.If(!v.NoticeDismissed, NoticeBanner(v)),
				h.Main(h.ID("main-content"), g.Group(content)),
				Footer(v),
			),
		),
	)
}

// brandStyle exposes the configured color tokens as CSS custom properties,
// the single place brand colors enter the markup.
func brandStyle(b config.BrandConfig) g.Node {
	css := fmt.Sprintf(
		":root{--brand-primary:%s;--brand-secondary:%s;--brand-accent:%s;--brand-light-bg:%s}",
		b.Primary, b.Secondary, b.Accent, b.LightBg,
	)
	return h.StyleEl(g.Raw(css))
}

// devReloadListener subscribes to the dev server's reload stream.
func devReloadListener() g.Node {
	return h.Div(
		g.Attr("data-on-load", "@get('/reload', {retryMaxCount: 1000})"),
		h.Style("display:none"),
	)
}

// NoticeBanner is the dismissible new-patient notice. The click hides the
// banner immediately via the $notice signal and records the dismissal in
// the visitor session, so subsequent page loads skip it server side.
func NoticeBanner(v View) g.Node {
	return h.Div(
		h.ID("notice-banner"),
		h.Class("notice-banner"),
		g.Attr("data-signals", `{"notice":true}`),
		g.Attr("data-show", "$notice"),
		h.P(g.Text("Now welcoming new patients across Minnesota. Telepsychiatry appointments available within 1-2 weeks.")),
		h.Button(
			h.Class("notice-dismiss"),
			g.Attr("aria-label", "Dismiss notice"),
			g.Attr("data-on-click", "$notice = false; @post('/notice/dismiss')"),
			g.Text("×"),
		),
	)
}

// CopyrightYear is what the footer stamps; isolated for tests.
func CopyrightYear(now time.Time) string {
	return fmt.Sprintf("© %d", now.Year())
}
