package contact

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/features"
)

func setupTestRouter(t *testing.T) (chi.Router, *features.TestFixture) {
	t.Helper()
	fixture := features.SetupTestFixture(t)
	router := chi.NewRouter()
	require.NoError(t, SetupRoutes(router, fixture.Cfg, fixture.SessionStore, true))
	return router, fixture
}

func TestContactPage(t *testing.T) {
	router, fixture := setupTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, fixture.Cfg.Site.Phone)
	assert.Contains(t, body, fixture.Cfg.Site.Email)
	assert.Contains(t, body, "call or text 988")
}

func TestContactFormBehindBoundary(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact", nil))

	body := rec.Body.String()
	// The vendor form loads through the three-state boundary with a
	// visible loading indicator and a retry on failure.
	assert.Contains(t, body, "embed_contact")
	assert.Contains(t, body, "embed-loading")
	assert.Contains(t, body, "Try again")
	assert.Contains(t, body, "forms.example.com/contact")
}
