// Package features provides shared test utilities for UI feature tests.
package features

import (
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/config"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/notifier"
)

// TestFixture holds the dependencies feature handler tests need.
type TestFixture struct {
	Cfg          *config.Config
	SessionStore *sessions.CookieStore
	Notifier     *notifier.Hub
}

// SetupTestFixture builds a fixture on the default configuration with
// deterministic embed URLs for assertions.
func SetupTestFixture(t *testing.T) *TestFixture {
	t.Helper()

	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	cfg.Embeds.ContactFormURL = "https://forms.example.com/contact"
	cfg.Embeds.SchedulerURL = "https://scheduler.example.com/goodplace"

	return &TestFixture{
		Cfg:          cfg,
		SessionStore: sessions.NewCookieStore([]byte("test-session-secret")),
		Notifier:     notifier.NewHub(),
	}
}
