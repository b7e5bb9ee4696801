// Package resources serves the site's static assets: stylesheet, images,
// and insurance logos. Dev builds read from disk so edits show up on
// reload; release builds embed the tree in the binary.
package resources

import (
	"path/filepath"
	"runtime"
)

// StaticDirectoryPath is the path to static assets from the project root.
const StaticDirectoryPath = "internal/ui/resources/static"

// StaticDir returns the absolute path of the static asset tree, derived
// from this source file so it holds regardless of the working directory.
// The dev handler serves from it and the asset watcher watches it.
func StaticDir() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return StaticDirectoryPath
	}
	return filepath.Join(filepath.Dir(filename), "static")
}

// StaticPath returns the URL path for a static asset.
func StaticPath(path string) string {
	return "/static/" + path
}
