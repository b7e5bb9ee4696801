package resources

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerServesBundledAssets(t *testing.T) {
	handler := Handler()

	for _, path := range []string{
		"/static/css/site.css",
		"/static/img/logo.svg",
	} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotZero(t, rec.Body.Len())
		})
	}
}

func TestStaticDirPointsAtAssetTree(t *testing.T) {
	dir := StaticDir()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	_, err = os.Stat(filepath.Join(dir, "css", "site.css"))
	assert.NoError(t, err)
}
