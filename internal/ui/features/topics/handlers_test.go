package topics

import (
	"html"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/catalog"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/features"
)

func setupTestRouter(t *testing.T) chi.Router {
	t.Helper()
	fixture := features.SetupTestFixture(t)
	router := chi.NewRouter()
	require.NoError(t, SetupRoutes(router, fixture.Cfg, fixture.SessionStore, true))
	return router
}

func get(t *testing.T, router chi.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestConditionsOverview(t *testing.T) {
	router := setupTestRouter(t)

	rec := get(t, router, "/conditions")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Conditions We Treat")
	assert.Equal(t, catalog.Conditions.Len(), strings.Count(body, `class="topic-card"`))
	for _, e := range catalog.Conditions.List() {
		assert.Contains(t, body, `href="`+e.Route()+`"`, "overview should link %s", e.Slug)
		assert.Contains(t, body, e.Title)
	}
}

func TestServicesOverview(t *testing.T) {
	router := setupTestRouter(t)

	rec := get(t, router, "/services")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Our Services")
	assert.Equal(t, catalog.Services.Len(), strings.Count(body, `class="topic-card"`))
	for _, e := range catalog.Services.List() {
		assert.Contains(t, body, `href="`+e.Route()+`"`)
	}
}

func TestEveryEntryHasADetailPage(t *testing.T) {
	router := setupTestRouter(t)

	all := append(catalog.Conditions.List(), catalog.Services.List()...)
	for _, e := range all {
		t.Run(e.Slug, func(t *testing.T) {
			rec := get(t, router, e.Route())
			require.Equal(t, http.StatusOK, rec.Code)

			body := rec.Body.String()
			assert.Contains(t, body, "<h1>"+e.Title+"</h1>")
			assert.Contains(t, body, "How We Can Help")
			for _, d := range e.Details {
				assert.Contains(t, body, html.EscapeString(d))
			}
			// Every detail page closes with the booking call to action.
			assert.Contains(t, body, `href="/appointments"`)
		})
	}
}

func TestDetailPageThemeColor(t *testing.T) {
	router := setupTestRouter(t)

	e, err := catalog.Conditions.FindBySlug("bipolar")
	require.NoError(t, err)

	rec := get(t, router, "/bipolar")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "--card-accent:"+e.ThemeColor)
}

func TestStaleRegistrationFallsBackTo404(t *testing.T) {
	fixture := features.SetupTestFixture(t)
	handlers := NewHandlers(fixture.Cfg, fixture.SessionStore, true)

	// A route registered for a slug the catalog no longer carries.
	router := chi.NewRouter()
	router.Get("/ghost", handlers.HandleDetail(catalog.Conditions, "ghost"))

	rec := get(t, router, "/ghost")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}
