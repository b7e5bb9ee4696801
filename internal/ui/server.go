// Package ui provides the web server for the practice site.
package ui

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/cms"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"
	blogFeature "github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/features/blog"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/notifier"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/resources"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/router"
)

// sessionMaxAge keeps visitor sessions (banner dismissal) for 30 days.
const sessionMaxAge = 86400 * 30

// Server is the site server.
type Server struct {
	cfg          *config.Config
	sessionStore *sessions.CookieStore
	posts        blogFeature.PostSource
	logger       *slog.Logger
	notifier     *notifier.Hub
	isDev        bool
}

// Options holds construction options for the server.
type Options struct {
	Config *config.Config
	Logger *slog.Logger

	// Dev enables the hot-reload endpoints and the reload listener in
	// rendered pages.
	Dev bool
}

// NewServer creates a new site server. The CMS client is only built when
// the configuration carries Contentful credentials; without it the blog
// serves its launch placeholder.
func NewServer(opts Options) *Server {
	sessionStore := sessions.NewCookieStore([]byte(opts.Config.Server.SessionSecret))
	sessionStore.MaxAge(sessionMaxAge)
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	var posts blogFeature.PostSource
	if opts.Config.CMS.Enabled() {
		posts = cms.NewClient(
			opts.Config.CMS.SpaceID,
			opts.Config.CMS.AccessToken,
			opts.Logger,
			cms.WithBaseURL(opts.Config.CMS.BaseURL),
			cms.WithEnvironment(opts.Config.CMS.Environment),
		)
	}

	return &Server{
		cfg:          opts.Config,
		sessionStore: sessionStore,
		posts:        posts,
		logger:       opts.Logger,
		notifier:     notifier.NewHub(),
		isDev:        opts.Dev,
	}
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.logger.Info("starting site server", "addr", fmt.Sprintf("http://localhost:%d", s.cfg.Server.Port))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
		router.Metrics,
	)

	if err := router.SetupRoutes(r, s.cfg, s.sessionStore, s.posts, s.notifier, s.isDev); err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.cfg.Server.Watch {
		eg.Go(func() error {
			return s.watchFiles(egctx, resources.StaticDir())
		})
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down site server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Notifier returns the server's reload hub.
func (s *Server) Notifier() *notifier.Hub {
	return s.notifier
}

// watchFiles watches dir and pings connected pages on change, debounced
// so an editor save burst causes one reload.
func (s *Server) watchFiles(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watchDirRecursive(watcher, dir); err != nil {
		s.logger.Error("failed to watch static directory", "dir", dir, "error", err)
		// Continue without watching rather than failing the server.
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			switch filepath.Ext(event.Name) {
			case ".css", ".js", ".png", ".jpg", ".svg", ".webp":
			default:
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			name := event.Name
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("asset changed, reloading pages", "file", name)
				s.notifier.Broadcast()
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
