package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://cdn.contentful.com"
	defaultTimeout = 10 * time.Second

	// contentType is the Contentful content type backing blog posts.
	contentType = "blogPost"
)

// ErrNotFound is returned when no post matches the requested slug.
var ErrNotFound = errors.New("cms: post not found")

// Client is a minimal Contentful Content Delivery API client scoped to the
// blog feed's needs.
type Client struct {
	baseURL     string
	spaceID     string
	environment string
	accessToken string
	httpClient  *http.Client
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API host, used by tests and preview setups.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithEnvironment selects a Contentful environment other than master.
func WithEnvironment(env string) Option {
	return func(c *Client) { c.environment = env }
}

// NewClient creates a feed client for the given space.
func NewClient(spaceID, accessToken string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		baseURL:     defaultBaseURL,
		spaceID:     spaceID,
		environment: "master",
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: defaultTimeout},
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListPosts returns all blog posts, newest publish date first. A zero-post
// feed returns an empty slice and no error.
func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	res, err := c.getEntries(ctx, url.Values{
		"content_type": {contentType},
		"order":        {"-fields.publishDate"},
	})
	if err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(res.Items))
	for _, item := range res.Items {
		posts = append(posts, toPost(item, res))
	}
	return posts, nil
}

// GetPost returns the post with the given slug, or ErrNotFound.
func (c *Client) GetPost(ctx context.Context, slug string) (Post, error) {
	res, err := c.getEntries(ctx, url.Values{
		"content_type": {contentType},
		"fields.slug":  {slug},
		"limit":        {"1"},
	})
	if err != nil {
		return Post{}, err
	}
	if len(res.Items) == 0 {
		return Post{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return toPost(res.Items[0], res), nil
}

func (c *Client) getEntries(ctx context.Context, query url.Values) (*entriesResponse, error) {
	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		c.baseURL, c.spaceID, c.environment, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("cms: building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cms: fetching entries: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("cms request failed",
			"status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("cms: unexpected status %d", resp.StatusCode)
	}

	var out entriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("cms: decoding response: %w", err)
	}
	return &out, nil
}

// toPost flattens a feed entry, resolving the featured image link against
// the response's included assets.
func toPost(e entry, res *entriesResponse) Post {
	p := Post{
		Title: e.Fields.Title,
		Slug:  e.Fields.Slug,
	}

	if ts, err := time.Parse(time.RFC3339, e.Fields.PublishDate); err == nil {
		p.PublishDate = ts
	} else if d, err := time.Parse("2006-01-02", e.Fields.PublishDate); err == nil {
		p.PublishDate = d
	}

	if e.Fields.FeaturedImage != nil {
		p.FeaturedImageURL = normalizeAssetURL(findAssetURL(res, e.Fields.FeaturedImage.Sys.ID))
	}

	for _, node := range e.Fields.Body.Content {
		if node.NodeType != "paragraph" {
			continue
		}
		var sb strings.Builder
		for _, child := range node.Content {
			if child.NodeType == "text" {
				sb.WriteString(child.Value)
			}
		}
		if text := strings.TrimSpace(sb.String()); text != "" {
			p.Paragraphs = append(p.Paragraphs, text)
		}
	}
	return p
}

func findAssetURL(res *entriesResponse, id string) string {
	for _, a := range res.Includes.Asset {
		if a.Sys.ID == id {
			return a.Fields.File.URL
		}
	}
	return ""
}

// normalizeAssetURL upgrades the feed's protocol-relative asset URLs.
func normalizeAssetURL(u string) string {
	if strings.HasPrefix(u, "//") {
		return "https:" + u
	}
	return u
}
