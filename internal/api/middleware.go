package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// TokenSource supplies the current bearer token, or "" when there is none.
// The session manager implements this.
type TokenSource interface {
	Token() string
}

// Doer executes a single HTTP request.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc adapts a function to the Doer interface.
type DoerFunc func(req *http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Middleware decorates a Doer. Request/response cross-cutting concerns are
// composed as an explicit chain rather than ambient interception.
type Middleware func(Doer) Doer

// Chain wraps base with the given middleware; the first middleware is the
// outermost.
func Chain(base Doer, mws ...Middleware) Doer {
	doer := base
	for i := len(mws) - 1; i >= 0; i-- {
		doer = mws[i](doer)
	}
	return doer
}

// BearerToken attaches the current session token to every outgoing request.
// Requests go out unauthenticated when no token is held.
func BearerToken(tokens TokenSource) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			if tokens != nil {
				if token := tokens.Token(); token != "" {
					req.Header.Set("Authorization", "Bearer "+token)
				}
			}
			return next.Do(req)
		})
	}
}

// Timing records a start timestamp before the request and logs the
// round-trip duration after it.
func Timing() Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			started := time.Now()
			resp, err := next.Do(req)

			evt := log.Debug().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Dur("duration", time.Since(started))
			if err != nil {
				evt.Err(err).Msg("api request failed")
			} else {
				evt.Int("status", resp.StatusCode).Msg("api request")
			}
			return resp, err
		})
	}
}

// UnauthorizedHook invokes hook whenever the server answers 401, so the
// session layer can clear its persisted token and force navigation to the
// login page.
func UnauthorizedHook(hook func()) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.Do(req)
			if err == nil && resp.StatusCode == http.StatusUnauthorized && hook != nil {
				hook()
			}
			return resp, err
		})
	}
}
