package server

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/globobank/frauddesk/internal/models"
)

// handleLogin implements POST /api/auth/login. The response is the only one
// in the API that is not wrapped in the envelope.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ip := clientIP(r)
	if blocked, retryAfter := s.limiter.check(ip); blocked {
		writeRateLimited(w, retryAfter)
		return
	}

	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := s.store.Authenticate(req.Email, req.Password)
	if err != nil {
		s.limiter.recordFailure(ip)
		zerolog.Ctx(r.Context()).Warn().Str("email", req.Email).Msg("login rejected")
		mapError(w, err)
		return
	}
	s.limiter.recordSuccess(ip)

	token, err := s.tokens.Issue(user)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("token issue failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	zerolog.Ctx(r.Context()).Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login")
	writeJSON(w, http.StatusOK, models.LoginResponse{
		User:    user,
		Token:   token,
		Message: "login successful",
	})
}

// handleMe implements GET /api/auth/me: the authoritative view of the
// caller's own account. Like login it answers with a bare body, not the
// envelope.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]*models.User{"user": userFrom(r.Context())})
}
