// Package catalog holds the static content catalogs that drive page
// composition: the conditions and services topic entries and the header
// navigation tree. Entries are defined once at startup and never mutated.
package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a slug has no entry in a catalog.
var ErrNotFound = errors.New("catalog: entry not found")

// TopicEntry describes one condition or service: its card on an overview
// page and the content of its detail page.
type TopicEntry struct {
	// Slug uniquely identifies the entry within its catalog and is the
	// default routing key.
	Slug string

	// Title is the display name.
	Title string

	// Summary is the short card description.
	Summary string

	// Details are the bullet points shown on the detail page, in order.
	Details []string

	// ImageRef is an opaque static asset reference passed through to the
	// render layer. Nothing validates that the asset exists.
	ImageRef string

	// ThemeColor is the accent color token for the entry's card.
	ThemeColor string

	// Href is the detail page route. Empty means "/" + Slug.
	Href string
}

// Route returns the detail route for the entry, applying the "/"+Slug
// convention when Href is not overridden.
func (e TopicEntry) Route() string {
	if e.Href != "" {
		return e.Href
	}
	return "/" + e.Slug
}

// Catalog is an ordered, read-only collection of topic entries.
type Catalog struct {
	name    string
	entries []TopicEntry
}

// New builds a catalog from entries in declaration order.
func New(name string, entries []TopicEntry) *Catalog {
	return &Catalog{name: name, entries: entries}
}

// Name returns the catalog name.
func (c *Catalog) Name() string { return c.name }

// List returns all entries in declaration order. The returned slice is a
// copy; callers may not mutate catalog contents.
func (c *Catalog) List() []TopicEntry {
	out := make([]TopicEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// FindBySlug returns the entry for slug, or ErrNotFound.
func (c *Catalog) FindBySlug(slug string) (TopicEntry, error) {
	for _, e := range c.entries {
		if e.Slug == slug {
			return e, nil
		}
	}
	return TopicEntry{}, fmt.Errorf("%w: %s/%s", ErrNotFound, c.name, slug)
}

// Validate checks catalog invariants: non-empty slugs, unique within the
// catalog.
func (c *Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.entries))
	for _, e := range c.entries {
		if e.Slug == "" {
			return fmt.Errorf("catalog %s: entry %q has empty slug", c.name, e.Title)
		}
		if _, dup := seen[e.Slug]; dup {
			return fmt.Errorf("catalog %s: duplicate slug %q", c.name, e.Slug)
		}
		seen[e.Slug] = struct{}{}
	}
	return nil
}
