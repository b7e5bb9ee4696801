package components

import (
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/catalog"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Hero is the full-width banner at the top of the home page.
func Hero(headline, sub, ctaLabel, ctaHref string) g.Node {
	return h.Section(
		h.Class("hero"),
		h.Div(
			h.Class("hero-copy"),
			h.H1(g.Text(headline)),
			h.P(g.Text(sub)),
			h.A(h.Href(ctaHref), h.Class("btn btn-primary"), g.Text(ctaLabel)),
		),
	)
}

// PageHero is the slimmer banner used on interior pages.
func PageHero(title, intro string) g.Node {
	return h.Section(
		h.Class("page-hero"),
		h.H1(g.Text(title)),
		g.If(intro != "", h.P(g.Text(intro))),
	)
}

// TopicGrid lays out catalog entries as linked cards. Both the conditions
// and services overviews are this one component over different catalogs.
func TopicGrid(entries []catalog.TopicEntry) g.Node {
	return h.Section(
		h.Class("topic-grid"),
		g.Map(entries, TopicCard),
	)
}

// TopicCard is a single linked summary card. The entry's theme color
// tints the card accent.
func TopicCard(e catalog.TopicEntry) g.Node {
	return h.A(
		h.Href(e.Route()),
		h.Class("topic-card"),
		h.Style("--card-accent:"+e.ThemeColor),
		h.Img(h.Src(e.ImageRef), h.Alt(e.Title), h.Loading("lazy")),
		h.H3(g.Text(e.Title)),
		h.P(g.Text(e.Summary)),
		h.Span(h.Class("card-more"), g.Text("Learn more")),
	)
}

// TopicDetail renders the body of a condition or service page. Every
// detail page has the same section order: hero, summary, detail bullets,
// then the closing call to action.
func TopicDetail(e catalog.TopicEntry) g.Node {
	return g.Group{
		h.Section(
			h.Class("topic-hero"),
			h.Style("--card-accent:"+e.ThemeColor),
			h.Div(
				h.Class("topic-hero-copy"),
				h.H1(g.Text(e.Title)),
				h.P(g.Text(e.Summary)),
			),
			h.Img(h.Src(e.ImageRef), h.Alt(e.Title)),
		),
		h.Section(
			h.Class("topic-details"),
			h.H2(g.Text("How We Can Help")),
			h.Ul(
				g.Map(e.Details, func(d string) g.Node {
					return h.Li(g.Text(d))
				}),
			),
		),
		CTABanner(
			"Ready to take the first step?",
			"Book Appointment", "/appointments",
		),
	}
}

// Feature is one reason-to-choose-us block on the home page.
type Feature struct {
	Icon  string
	Title string
	Body  string
}

// FeatureRow lays out the "why choose us" blocks.
func FeatureRow(features []Feature) g.Node {
	return h.Section(
		h.Class("feature-row"),
		g.Map(features, func(f Feature) g.Node {
			return h.Div(
				h.Class("feature"),
				h.Span(h.Class("feature-icon"), g.Attr("aria-hidden", "true"), g.Text(f.Icon)),
				h.H3(g.Text(f.Title)),
				h.P(g.Text(f.Body)),
			)
		}),
	)
}

// Testimonial is one anonymized patient quote.
type Testimonial struct {
	Quote  string
	Author string
}

func Testimonials(items []Testimonial) g.Node {
	return h.Section(
		h.Class("testimonials"),
		h.H2(g.Text("What Our Patients Say")),
		h.Div(
			h.Class("testimonial-row"),
			g.Map(items, func(t Testimonial) g.Node {
				return h.BlockQuote(
					h.P(g.Text(t.Quote)),
					h.Cite(g.Text(t.Author)),
				)
			}),
		),
	)
}

// CTABanner is the full-width closing call to action shared by the home
// and topic detail pages.
func CTABanner(headline, label, href string) g.Node {
	return h.Section(
		h.Class("cta-banner"),
		h.H2(g.Text(headline)),
		h.A(h.Href(href), h.Class("btn btn-accent"), g.Text(label)),
	)
}

// Step is one numbered stage of the booking flow.
type Step struct {
	Title string
	Body  string
}

// StepList renders the numbered how-it-works sequence on the
// appointments page.
func StepList(steps []Step) g.Node {
	return h.Ol(
		h.Class("step-list"),
		g.Map(steps, func(s Step) g.Node {
			return h.Li(
				h.H3(g.Text(s.Title)),
				h.P(g.Text(s.Body)),
			)
		}),
	)
}

// LogoGrid shows accepted insurance plans as an image grid.
func LogoGrid(names []string) g.Node {
	return h.Section(
		h.Class("logo-grid"),
		g.Map(names, func(name string) g.Node {
			return h.Div(
				h.Class("logo-cell"),
				h.Img(
					h.Src("/static/img/insurance/"+slugify(name)+".png"),
					h.Alt(name),
					h.Loading("lazy"),
				),
				h.P(g.Text(name)),
			)
		}),
	)
}

// NotFound is the body every unmatched route renders.
func NotFound() g.Node {
	return h.Section(
		h.Class("not-found"),
		h.H1(g.Text("Page not found")),
		h.P(g.Text("The page you are looking for does not exist or has moved.")),
		h.A(h.Href("/"), h.Class("btn btn-primary"), g.Text("Back to Home")),
	)
}
