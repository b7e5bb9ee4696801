//go:build dev

package resources

import (
	"log/slog"
	"net/http"
	"os"
)

// Handler serves static files straight from the filesystem so asset edits
// are visible on the next reload.
func Handler() http.Handler {
	staticDir := StaticDir()
	slog.Info("static assets served from filesystem", "path", staticDir)

	return http.StripPrefix("/static/", http.FileServer(http.FS(os.DirFS(staticDir))))
}
