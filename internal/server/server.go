package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/globobank/frauddesk/internal/logger"
	"github.com/globobank/frauddesk/internal/models"
)

// Config carries the server's tunables.
type Config struct {
	// TokenSecret signs the login tokens. Required.
	TokenSecret []byte
	// TokenTTL defaults to DefaultTokenTTL.
	TokenTTL time.Duration
	// CORSOrigins lists the allowed browser origins; empty allows any.
	CORSOrigins []string
}

// Server serves the fraud API over plain JSON REST.
type Server struct {
	store   *Store
	tokens  *Tokens
	limiter *loginLimiter
	cors    []string
	log     zerolog.Logger
}

// New builds a server around a freshly seeded store.
func New(cfg Config, log zerolog.Logger) *Server {
	return &Server{
		store:   NewStore(),
		tokens:  NewTokens(cfg.TokenSecret, cfg.TokenTTL),
		limiter: newLoginLimiter(),
		cors:    cfg.CORSOrigins,
		log:     log,
	}
}

type ctxKey int

const userKey ctxKey = 0

// userFrom returns the authenticated user stored by requireAuth.
func userFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(logger.Requests(s.log))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   s.cors,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/auth/me", s.handleMe)

			r.Route("/fraud-cases", func(r chi.Router) {
				r.Get("/", s.handleListCases)
				r.Post("/", s.handleCreateCase)
				r.Get("/{id}", s.handleGetCase)
				r.Put("/{id}", s.handleUpdateCase)
				r.Delete("/{id}", s.handleDeleteCase)
				r.Post("/{id}/assign", s.handleAssignCase)
				r.Post("/{id}/resolve", s.handleResolveCase)
			})

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", s.handleListCustomers)
				r.Post("/search", s.handleSearchCustomers)
				r.Get("/{id}", s.handleGetCustomer)
				r.Get("/{id}/fraud-cases", s.handleCustomerCases)
				r.Get("/{id}/transactions", s.handleCustomerTransactions)
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", s.handleListTransactions)
				r.Get("/flagged", s.handleFlaggedTransactions)
				r.Get("/{id}", s.handleGetTransaction)
				r.Post("/{id}/flag", s.handleFlagTransaction)
			})

			r.Get("/dashboard/stats", s.handleDashboardStats)
		})
	})

	return r
}

// requireAuth verifies the bearer token and loads an active user into the
// request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		subject, err := s.tokens.Verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		user, err := s.store.UserByID(subject)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		if !user.IsActive {
			writeError(w, http.StatusUnauthorized, "account is inactive")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	})
}

// requireRole wraps a handler with a minimum-role check on top of
// requireAuth.
func (s *Server) requireRole(roles []models.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := userFrom(r.Context())
		for _, role := range roles {
			if user.Role == role {
				next(w, r)
				return
			}
		}
		writeError(w, http.StatusForbidden, "insufficient role for this operation")
	}
}

func bearerToken(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	h := r.Header.Get("Authorization")
	if len(h) <= len(prefix) || h[:len(prefix)] != prefix {
		return "", false
	}
	return h[len(prefix):], true
}

// errorResponse is the uniform error body. Clients read "message".
type errorResponse struct {
	Message   string    `json:"message"`
	Success   bool      `json:"success"`
	Timestamp time.Time `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Message: msg, Success: false, Timestamp: time.Now().UTC()})
}

// writeData wraps the payload in the standard response envelope.
func writeData[T any](w http.ResponseWriter, status int, data T, page *models.Pagination) {
	writeJSON(w, status, models.Envelope[T]{
		Data:       data,
		Success:    true,
		Timestamp:  time.Now().UTC(),
		Pagination: page,
	})
}

// decodeBody parses the JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}

// mapError translates store errors to HTTP statuses.
func mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrBadCredentials), errors.Is(err, ErrInactive):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrCaseClosed):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pageParams reads page and limit from the query string, tolerating junk.
func pageParams(r *http.Request) (page, limit int) {
	q := r.URL.Query()
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		page = n
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil && n > 0 {
		limit = n
	}
	return page, limit
}
