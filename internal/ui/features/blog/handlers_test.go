package blog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/cms"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/features"
)

// fakeSource serves a fixed post list without a CMS round trip.
type fakeSource struct {
	posts []cms.Post
	err   error
}

func (f *fakeSource) ListPosts(context.Context) ([]cms.Post, error) {
	return f.posts, f.err
}

func (f *fakeSource) GetPost(_ context.Context, slug string) (cms.Post, error) {
	if f.err != nil {
		return cms.Post{}, f.err
	}
	for _, p := range f.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return cms.Post{}, fmt.Errorf("%w: %s", cms.ErrNotFound, slug)
}

func setupTestRouter(t *testing.T, posts PostSource) chi.Router {
	t.Helper()
	fixture := features.SetupTestFixture(t)
	router := chi.NewRouter()
	require.NoError(t, SetupRoutes(router, fixture.Cfg, fixture.SessionStore, posts, true))
	return router
}

func get(t *testing.T, router chi.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func twoPosts() []cms.Post {
	return []cms.Post{
		{
			Title:            "Sleep and Mood",
			Slug:             "sleep-and-mood",
			PublishDate:      time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
			FeaturedImageURL: "https://images.example.com/sleep.jpg",
			Paragraphs:       []string{"Sleep is the foundation of mood regulation.", "Small routine changes compound."},
		},
		{
			Title:       "Starting Medication",
			Slug:        "starting-medication",
			PublishDate: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			Paragraphs:  []string{"What to expect in the first weeks."},
		},
	}
}

func TestArchiveListsPostsNewestFirst(t *testing.T) {
	router := setupTestRouter(t, &fakeSource{posts: twoPosts()})

	rec := get(t, router, "/blog")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `href="/blog/sleep-and-mood"`)
	assert.Contains(t, body, "February 10, 2026")
	// Feed order is preserved as delivered by the CMS.
	assert.Less(t, strings.Index(body, "Sleep and Mood"), strings.Index(body, "Starting Medication"))
}

func TestArchiveEmptyFeed(t *testing.T) {
	router := setupTestRouter(t, &fakeSource{})

	rec := get(t, router, "/blog")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No posts found.")
}

func TestArchiveDateFilterIsInert(t *testing.T) {
	router := setupTestRouter(t, &fakeSource{posts: twoPosts()})

	body := get(t, router, "/blog").Body.String()
	assert.Contains(t, body, `type="date"`)
	assert.Contains(t, body, "disabled")
}

func TestArchiveWithoutCMSShowsLaunchPage(t *testing.T) {
	router := setupTestRouter(t, nil)

	rec := get(t, router, "/blog")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Launching Soon")
}

func TestArchiveUpstreamFailureDegrades(t *testing.T) {
	router := setupTestRouter(t, &fakeSource{err: errors.New("cms: unexpected status 502")})

	rec := get(t, router, "/blog")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "temporarily unavailable")
}

func TestPostPage(t *testing.T) {
	router := setupTestRouter(t, &fakeSource{posts: twoPosts()})

	rec := get(t, router, "/blog/sleep-and-mood")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "<h1>Sleep and Mood</h1>")
	assert.Contains(t, body, "Sleep is the foundation of mood regulation.")
	assert.Contains(t, body, "https://images.example.com/sleep.jpg")
	assert.Contains(t, body, `href="/blog"`)
}

func TestPostPageUnknownSlugIs404(t *testing.T) {
	router := setupTestRouter(t, &fakeSource{posts: twoPosts()})

	rec := get(t, router, "/blog/does-not-exist")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestPostPageWithoutCMSIs404(t *testing.T) {
	router := setupTestRouter(t, nil)

	rec := get(t, router, "/blog/anything")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
