// Package guard decides whether a protected destination may render for the
// current session, or where to redirect instead.
package guard

import (
	"context"
	"errors"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/globobank/frauddesk/internal/models"
	"github.com/globobank/frauddesk/internal/session"
)

// DeniedPath is the destination explaining a role mismatch.
const DeniedPath = "/unauthorized"

// ErrRedirected is returned by Protect when the protected content was not
// rendered because the guard navigated elsewhere.
var ErrRedirected = errors.New("redirected")

// Decision is the outcome of evaluating a guard.
type Decision int

const (
	// DecisionLoading means the session is still being resolved; render a
	// fallback and do not navigate.
	DecisionLoading Decision = iota
	// DecisionRender means the protected content may render.
	DecisionRender
	// DecisionRedirect means nothing renders and navigation goes to Target.
	DecisionRedirect
)

// Result carries the decision and, for redirects, the target destination.
type Result struct {
	Decision Decision
	Target   string
}

// Evaluate applies the guard rules in order: loading, authentication,
// then role membership. The login redirect encodes the attempted route so
// the login flow can return there afterwards.
func Evaluate(st session.State, route string, roles []models.Role) Result {
	if st.Loading {
		return Result{Decision: DecisionLoading}
	}
	if !st.Authenticated {
		return Result{Decision: DecisionRedirect, Target: session.LoginPath + "?redirect=" + url.QueryEscape(route)}
	}
	if len(roles) > 0 && !st.HasAnyRole(roles...) {
		return Result{Decision: DecisionRedirect, Target: DeniedPath}
	}
	return Result{Decision: DecisionRender}
}

// Guard evaluates routes against a live session Manager and performs the
// resulting navigation.
type Guard struct {
	sessions *session.Manager
	nav      session.Navigator
}

// New creates a Guard bound to the session manager and navigator.
func New(sessions *session.Manager, nav session.Navigator) *Guard {
	return &Guard{sessions: sessions, nav: nav}
}

// Protect renders the given content if the current session satisfies the
// guard, and redirects otherwise, returning ErrRedirected. While render is
// running the guard watches for session changes: a logout (or expiry) that
// invalidates the guard cancels the render context and triggers the same
// redirect without a reload.
func (g *Guard) Protect(ctx context.Context, route string, roles []models.Role, render func(ctx context.Context, st session.State) error) error {
	st := g.sessions.State()
	g.nav.Navigate(route)

	res := Evaluate(st, route, roles)
	switch res.Decision {
	case DecisionLoading:
		// The CLI resolves the session synchronously at startup, so a
		// loading state here means Restore was skipped.
		log.Warn().Str("route", route).Msg("session still loading, not rendering")
		return ErrRedirected
	case DecisionRedirect:
		log.Debug().Str("route", route).Str("target", res.Target).Msg("guard redirect")
		g.nav.Navigate(res.Target)
		return ErrRedirected
	}

	renderCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	unsubscribe := g.sessions.Subscribe(func(next session.State) {
		if res := Evaluate(next, route, roles); res.Decision == DecisionRedirect {
			cancel()
			g.nav.Navigate(res.Target)
		}
	})
	defer unsubscribe()

	if err := render(renderCtx, st); err != nil {
		if renderCtx.Err() != nil && ctx.Err() == nil {
			return ErrRedirected
		}
		return err
	}
	return nil
}
