// Package commands holds the CLI subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port      int
	Watch     bool
	Dev       bool
	NoBrowser bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the website server",
		Long: `Start the web server for the practice site.

Pages are rendered server side from the content catalogs and, when
Contentful credentials are configured, the blog feed.`,
		Example: `  # Start on the configured port
  goodplace serve

  # Start on a custom port with asset watching
  goodplace serve --port 3000 --dev`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8760)")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Watch static assets and reload open pages")
	cmd.Flags().BoolVar(&opts.Dev, "dev", false, "Enable development mode (hot reload endpoints)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser in dev mode")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cfg, err := config.Load(configFileOf(cmd), cmd.Flags())
	if err != nil {
		return err
	}

	logger := slog.Default()
	server := ui.NewServer(ui.Options{
		Config: cfg,
		Logger: logger,
		Dev:    opts.Dev,
	})

	if opts.Dev && !opts.NoBrowser {
		go openBrowser(fmt.Sprintf("http://localhost:%d", cfg.Server.Port))
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	return server.Serve(ctx)
}

// configFileOf reads the root --config flag without importing the parent
// package.
func configFileOf(cmd *cobra.Command) string {
	f := cmd.Root().PersistentFlags().Lookup("config")
	if f == nil {
		return ""
	}
	return f.Value.String()
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
