// Package commands implements the frauddesk CLI commands. Every command
// builds the same application wiring: persisted local store, session
// manager, API client and route guard, then runs its operation through the
// guard the way the dashboard pages do.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
	"github.com/rs/zerolog"

	"github.com/globobank/frauddesk/internal/api"
	"github.com/globobank/frauddesk/internal/config"
	"github.com/globobank/frauddesk/internal/guard"
	"github.com/globobank/frauddesk/internal/localstore"
	"github.com/globobank/frauddesk/internal/logger"
	"github.com/globobank/frauddesk/internal/models"
	"github.com/globobank/frauddesk/internal/session"
)

type Globals struct {
	Debug   bool
	Version string
	Config  string
}

// App is the assembled client application.
type App struct {
	Config   config.Config
	Sessions *session.Manager
	Client   *api.Client
	Guard    *guard.Guard
	Nav      *navigator
	Log      zerolog.Logger
}

// remoteAuth adapts the API client to the session manager's Authenticator.
// It is filled in after the client exists because the client in turn reads
// its bearer token from the manager.
type remoteAuth struct {
	client *api.Client
}

func (a *remoteAuth) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	return a.client.Login(ctx, email, password)
}

// buildApp wires the client application and restores the persisted session.
func buildApp(globals *Globals) (*App, error) {
	log := logger.Setup(globals.Debug)

	cfg, err := config.Load(globals.Config)
	if err != nil {
		return nil, err
	}

	store := localstore.Open(cfg.StateDir)
	nav := newNavigator(log)
	auth := &remoteAuth{}
	sessions := session.NewManager(store, nav, auth)

	var cache httpcache.Cache
	if cfg.CacheDir != "" {
		cache = diskcache.New(cfg.CacheDir)
	}

	client, err := api.New(api.Config{
		BaseURL:        cfg.BaseURL,
		Timeout:        time.Duration(cfg.Timeout),
		Tokens:         sessions,
		OnUnauthorized: sessions.Expire,
		Cache:          cache,
	})
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}
	auth.client = client

	sessions.Restore()

	return &App{
		Config:   cfg,
		Sessions: sessions,
		Client:   client,
		Guard:    guard.New(sessions, nav),
		Nav:      nav,
		Log:      log,
	}, nil
}

// navigator tracks the CLI's notion of the current destination. Redirects
// surface as log lines instead of page loads.
type navigator struct {
	log  zerolog.Logger
	path string
}

func newNavigator(log zerolog.Logger) *navigator {
	return &navigator{log: log, path: session.LoginPath}
}

func (n *navigator) Navigate(path string) {
	n.path = path
	n.log.Debug().Str("path", path).Msg("navigate")
}

func (n *navigator) Path() string {
	return n.path
}
