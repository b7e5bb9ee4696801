package components

import (
	"time"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/catalog"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Footer renders the three-column site footer: practice identity and
// socials, quick links, and contact details, followed by the legal strip.
// Everything in it comes from configuration or the navigation catalog, so
// content edits never touch this file.
func Footer(v View) g.Node {
	return h.Footer(
		h.Class("site-footer"),
		h.Div(
			h.Class("footer-columns"),
			footerIdentity(v),
			footerQuickLinks(v.Quick),
			footerContact(v.Site),
		),
		h.Div(
			h.Class("footer-legal"),
			h.P(g.Textf("%s %s. All rights reserved.", CopyrightYear(time.Now()), v.Site.Name)),
			h.P(h.Class("footer-disclaimer"),
				g.Text("If you are experiencing a mental health emergency, call 988 or go to your nearest emergency room."),
			),
		),
	)
}

func footerIdentity(v View) g.Node {
	return h.Div(
		h.Class("footer-col"),
		h.Img(h.Src(v.Site.LogoPath), h.Alt(v.Site.Name), h.Class("footer-logo")),
		h.P(g.Text(v.Site.Tagline)),
		h.Div(
			h.Class("footer-socials"),
			g.Map(v.Site.Socials, func(s config.Social) g.Node {
				// No URL yet means the profile is not live; render an
				// inactive placeholder instead of a dead link.
				if s.URL == "" {
					return h.Span(
						h.Class("footer-social-soon"),
						h.Title(s.Network+" coming soon"),
						g.Text(s.Network),
					)
				}
				return h.A(
					h.Href(s.URL),
					h.Target("_blank"),
					h.Rel("noopener noreferrer"),
					g.Attr("aria-label", s.Network),
					g.Text(s.Network),
				)
			}),
		),
	)
}

func footerQuickLinks(quick []catalog.NavigationItem) g.Node {
	return h.Div(
		h.Class("footer-col"),
		h.H3(g.Text("Quick Links")),
		h.Ul(
			g.Map(quick, func(item catalog.NavigationItem) g.Node {
				return h.Li(h.A(h.Href(item.Route), g.Text(item.Name)))
			}),
		),
	)
}

func footerContact(site config.SiteConfig) g.Node {
	return h.Div(
		h.Class("footer-col"),
		h.H3(g.Text("Contact Us")),
		h.Ul(
			h.Li(h.A(h.Href("tel:"+site.Phone), g.Text(site.Phone))),
			h.Li(h.A(h.Href("mailto:"+site.Email), g.Text(site.Email))),
			h.Li(g.Text(site.Address)),
			h.Li(g.Text(site.OfficeHours)),
		),
	)
}
