// Package cms reads the blog content feed from a Contentful space. The
// feed is consumed read-only: list posts for the archive page, fetch one
// post by slug for the detail page. An empty feed is a designed state, not
// an error.
package cms

import "time"

// Post is one blog post as the render layer consumes it.
type Post struct {
	Title       string
	Slug        string
	PublishDate time.Time

	// FeaturedImageURL is empty when the post carries no image. Protocol-
	// relative asset URLs from the feed are normalized to https.
	FeaturedImageURL string

	// Paragraphs holds the body's paragraph blocks in order. Other rich
	// text node types are skipped, matching what the site renders.
	Paragraphs []string
}

// entriesResponse is the Content Delivery API envelope.
type entriesResponse struct {
	Total    int     `json:"total"`
	Items    []entry `json:"items"`
	Includes struct {
		Asset []asset `json:"Asset"`
	} `json:"includes"`
}

type entry struct {
	Sys struct {
		ID string `json:"id"`
	} `json:"sys"`
	Fields struct {
		Title         string   `json:"title"`
		Slug          string   `json:"slug"`
		PublishDate   string   `json:"publishDate"`
		Body          richText `json:"body"`
		FeaturedImage *struct {
			Sys struct {
				ID string `json:"id"`
			} `json:"sys"`
		} `json:"featuredImage"`
	} `json:"fields"`
}

type asset struct {
	Sys struct {
		ID string `json:"id"`
	} `json:"sys"`
	Fields struct {
		File struct {
			URL string `json:"url"`
		} `json:"file"`
	} `json:"fields"`
}

// richText is the subset of the rich text document the site renders:
// top-level paragraph nodes with their text content.
type richText struct {
	Content []richNode `json:"content"`
}

type richNode struct {
	NodeType string     `json:"nodeType"`
	Value    string     `json:"value"`
	Content  []richNode `json:"content"`
}
