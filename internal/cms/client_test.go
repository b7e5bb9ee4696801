package cms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedWithTwoPosts = `{
  "total": 2,
  "items": [
    {
      "sys": {"id": "e1"},
      "fields": {
        "title": "Managing Anxiety Day to Day",
        "slug": "managing-anxiety",
        "publishDate": "2025-03-10T00:00:00Z",
        "featuredImage": {"sys": {"id": "a1"}},
        "body": {"content": [
          {"nodeType": "paragraph", "content": [{"nodeType": "text", "value": "Small routines help."}]},
          {"nodeType": "embedded-asset-block", "content": []},
          {"nodeType": "paragraph", "content": [{"nodeType": "text", "value": "Sleep matters most."}]}
        ]}
      }
    },
    {
      "sys": {"id": "e2"},
      "fields": {
        "title": "What to Expect From Telepsychiatry",
        "slug": "telepsychiatry-expectations",
        "publishDate": "2025-02-01T00:00:00Z",
        "body": {"content": [
          {"nodeType": "paragraph", "content": [{"nodeType": "text", "value": "You need a private space."}]}
        ]}
      }
    }
  ],
  "includes": {
    "Asset": [
      {"sys": {"id": "a1"}, "fields": {"file": {"url": "//images.ctfassets.example/anxiety.jpg"}}}
    ]
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("space1", "token1", nil, WithBaseURL(srv.URL))
}

func TestListPosts(t *testing.T) {
	var gotPath, gotAuth, gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(feedWithTwoPosts))
	})

	posts, err := c.ListPosts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/spaces/space1/environments/master/entries", gotPath)
	assert.Equal(t, "Bearer token1", gotAuth)
	assert.Contains(t, gotQuery, "content_type=blogPost")
	assert.Contains(t, gotQuery, "publishDate")

	require.Len(t, posts, 2)
	assert.Equal(t, "Managing Anxiety Day to Day", posts[0].Title)
	assert.Equal(t, "managing-anxiety", posts[0].Slug)
	assert.Equal(t, "https://images.ctfassets.example/anxiety.jpg", posts[0].FeaturedImageURL)
	assert.Equal(t, []string{"Small routines help.", "Sleep matters most."}, posts[0].Paragraphs)

	assert.Empty(t, posts[1].FeaturedImageURL, "post without image")
}

func TestListPostsEmptyFeed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"total": 0, "items": []}`))
	})

	posts, err := c.ListPosts(context.Background())
	require.NoError(t, err, "an empty feed is not an error")
	assert.Empty(t, posts)
}

func TestGetPost(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "managing-anxiety", r.URL.Query().Get("fields.slug"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(feedWithTwoPosts))
	})

	post, err := c.GetPost(context.Background(), "managing-anxiety")
	require.NoError(t, err)
	assert.Equal(t, "Managing Anxiety Day to Day", post.Title)
}

func TestGetPostNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"total": 0, "items": []}`))
	})

	_, err := c.GetPost(context.Background(), "missing-post")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpstreamErrorSurfaces(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"sys":{"id":"AccessTokenInvalid"}}`, http.StatusUnauthorized)
	})

	_, err := c.ListPosts(context.Background())
	assert.ErrorContains(t, err, "401")
}
