package blog

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/cms"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/components"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/features/common"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// postDateFormat is how publish dates appear on cards and posts.
const postDateFormat = "January 2, 2006"

// Handlers provides HTTP handlers for the blog archive and post pages.
type Handlers struct {
	cfg          *config.Config
	sessionStore sessions.Store
	posts        PostSource
	isDev        bool
}

// NewHandlers creates a new Handlers instance. posts may be nil when no
// CMS is configured.
func NewHandlers(cfg *config.Config, sessionStore sessions.Store, posts PostSource, isDev bool) *Handlers {
	return &Handlers{cfg: cfg, sessionStore: sessionStore, posts: posts, isDev: isDev}
}

// HandleArchivePage renders the post feed, newest first. Without a CMS
// the blog shows its launch placeholder; an empty feed shows the empty
// state; an unreachable CMS degrades to a try-again message rather than
// an error page.
func (hd *Handlers) HandleArchivePage(w http.ResponseWriter, r *http.Request) {
	v := common.ViewFor(hd.cfg, hd.sessionStore, r, hd.isDev)

	if hd.posts == nil {
		common.Render(w, r, components.Document(v,
			components.Page{Title: "Blog"},
			launchingSoon(),
		))
		return
	}

	posts, err := hd.posts.ListPosts(r.Context())
	if err != nil {
		slog.Error("listing posts", "error", err)
		common.Render(w, r, components.Document(v,
			components.Page{Title: "Blog"},
			components.PageHero("Our Blog", ""),
			h.Section(h.Class("blog-unavailable"),
				h.P(g.Text("Posts are temporarily unavailable. Please check back soon.")),
			),
		))
		return
	}

	common.Render(w, r, components.Document(v,
		components.Page{Title: "Blog", Description: "Articles on mental health, treatment, and wellbeing."},
		components.PageHero("Our Blog", "Practical writing on mental health from our clinicians."),
		archiveControls(),
		archiveList(posts),
	))
}

// HandlePostPage renders a single post resolved by slug.
func (hd *Handlers) HandlePostPage(w http.ResponseWriter, r *http.Request) {
	v := common.ViewFor(hd.cfg, hd.sessionStore, r, hd.isDev)

	if hd.posts == nil {
		common.RenderNotFound(w, r, v)
		return
	}

	slug := chi.URLParam(r, "slug")
	post, err := hd.posts.GetPost(r.Context(), slug)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			common.RenderNotFound(w, r, v)
			return
		}
		slog.Error("fetching post", "slug", slug, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	common.Render(w, r, components.Document(v,
		components.Page{Title: post.Title},
		postArticle(post),
	))
}

func launchingSoon() g.Node {
	return h.Section(
		h.Class("blog-launching"),
		h.H1(g.Text("Our Blog is Launching Soon")),
		h.P(g.Text("We are putting the finishing touches on articles about mental health, treatment options, and everyday wellbeing. Check back shortly.")),
		h.A(h.Href("/"), h.Class("btn btn-primary"), g.Text("Back to Home")),
	)
}

// archiveControls holds the date filter. Filtering is not implemented
// server side; the control is rendered disabled until it is.
func archiveControls() g.Node {
	return h.Div(
		h.Class("blog-controls"),
		h.Input(
			h.Type("date"),
			h.Disabled(),
			g.Attr("aria-label", "Filter posts by date"),
		),
	)
}

func archiveList(posts []cms.Post) g.Node {
	if len(posts) == 0 {
		return h.Section(
			h.Class("blog-empty"),
			h.P(g.Text("No posts found.")),
		)
	}
	return h.Section(
		h.Class("blog-list"),
		g.Map(posts, postCard),
	)
}

func postCard(p cms.Post) g.Node {
	return h.A(
		h.Href("/blog/"+p.Slug),
		h.Class("blog-card"),
		g.If(p.FeaturedImageURL != "",
			h.Img(h.Src(p.FeaturedImageURL), h.Alt(p.Title), h.Loading("lazy")),
		),
		h.H3(g.Text(p.Title)),
		h.P(h.Class("blog-date"), g.Text(p.PublishDate.Format(postDateFormat))),
		g.If(len(p.Paragraphs) > 0, h.P(h.Class("blog-excerpt"), g.Text(excerpt(p)))),
	)
}

func postArticle(p cms.Post) g.Node {
	return h.Article(
		h.Class("blog-post"),
		h.H1(g.Text(p.Title)),
		h.P(h.Class("blog-date"), g.Text(p.PublishDate.Format(postDateFormat))),
		g.If(p.FeaturedImageURL != "",
			h.Img(h.Src(p.FeaturedImageURL), h.Alt(p.Title)),
		),
		g.Map(p.Paragraphs, func(t string) g.Node { return h.P(g.Text(t)) }),
		h.A(h.Href("/blog"), h.Class("blog-back"), g.Text("← All posts")),
	)
}

// excerpt returns the first paragraph, clipped to card length.
func excerpt(p cms.Post) string {
	const maxLen = 180
	text := p.Paragraphs[0]
	if len(text) <= maxLen {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "…"
}
