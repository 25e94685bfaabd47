package commands

import (
	"context"
	"crypto/rand"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/globobank/frauddesk/internal/logger"
	"github.com/globobank/frauddesk/internal/server"
)

type ServerCmd struct {
	Listen      string        `help:"HTTP server listen address" default:"localhost:4000" env:"FRAUDDESK_LISTEN"`
	TokenSecret string        `help:"secret for signing login tokens; random when empty" default:"" env:"FRAUDDESK_TOKEN_SECRET"`
	TokenTTL    time.Duration `help:"login token lifetime" default:"8h" env:"FRAUDDESK_TOKEN_TTL"`
	CORSOrigins []string      `help:"allowed CORS origins" default:"http://localhost:3000" env:"FRAUDDESK_CORS_ORIGINS"`
}

func (s *ServerCmd) Run(ctx context.Context, globals *Globals) error {
	log := logger.Setup(globals.Debug)

	log.Info().Str("version", globals.Version).Bool("debug", globals.Debug).Msg("starting fraud API server")

	secret := []byte(s.TokenSecret)
	if len(secret) == 0 {
		// An ephemeral secret means every token dies with the process,
		// which is what a demo backend should do.
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return err
		}
		log.Warn().Msg("no token secret configured, using an ephemeral one")
	}

	srv := server.New(server.Config{
		TokenSecret: secret,
		TokenTTL:    s.TokenTTL,
		CORSOrigins: s.CORSOrigins,
	}, log)

	httpServer := configureHTTPServer(s.Listen, srv.Handler())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("listen", s.Listen).Msg("listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
