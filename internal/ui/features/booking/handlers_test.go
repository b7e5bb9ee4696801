package booking

import (
	"html"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/features"
)

func setupTestRouter(t *testing.T) chi.Router {
	t.Helper()
	fixture := features.SetupTestFixture(t)
	router := chi.NewRouter()
	require.NoError(t, SetupRoutes(router, fixture.Cfg, fixture.SessionStore, true))
	return router
}

func TestAppointmentsPage(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appointments", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	for _, s := range steps {
		assert.Contains(t, body, s.Title)
	}
	assert.Contains(t, body, "Open Scheduling Portal")
	assert.Contains(t, body, "Payment Policy")
}

func TestStepsRenderInOrder(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appointments", nil))

	body := rec.Body.String()
	last := -1
	for _, s := range steps {
		idx := strings.Index(body, s.Title)
		require.GreaterOrEqual(t, idx, 0, "step %q missing", s.Title)
		assert.Greater(t, idx, last, "step %q out of order", s.Title)
		last = idx
	}
}

func TestSchedulerOpensInClosedModal(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appointments", nil))

	body := rec.Body.String()
	// Both dialogs start closed.
	assert.Contains(t, body, "modal_booking&#34;:false")
	assert.Contains(t, body, "modal_policy&#34;:false")
	// The portal frame sits behind the load-state boundary.
	assert.Contains(t, body, "embed_scheduler")
	assert.Contains(t, body, "scheduler.example.com")
}

func TestPaymentPolicyContent(t *testing.T) {
	router := setupTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appointments", nil))

	body := rec.Body.String()
	for _, p := range paymentPolicy {
		assert.Contains(t, body, html.EscapeString(p))
	}
}
