// Package session owns the client's authentication state: a pure transition
// function over an explicit state struct, and a Manager that applies
// transitions, keeps the persisted copy in step, and notifies watchers.
package session

import "github.com/globobank/frauddesk/internal/models"

// State is the client's current authentication state.
//
// Invariant: Authenticated is true iff both User and Token are present.
// Loading is true only between the start of a login attempt and its
// resolution, or while the persisted session is being restored at boot.
type State struct {
	User          *models.User
	Token         string
	Authenticated bool
	Loading       bool
	Err           string
}

// Initial is the state at application start, before the persisted session
// has been read.
func Initial() State {
	return State{Loading: true}
}

// Transition is one of the five defined session transitions.
type Transition interface {
	isTransition()
}

// Start marks the beginning of a login attempt.
type Start struct{}

// Success carries the authenticated user and token from a login, or from
// a restored persisted session.
type Success struct {
	User  *models.User
	Token string
}

// Failure carries the human-readable message of a failed login attempt.
type Failure struct {
	Message string
}

// Logout clears the session.
type Logout struct{}

// SetUser replaces the user wholesale without touching the token.
type SetUser struct {
	User *models.User
}

func (Start) isTransition()   {}
func (Success) isTransition() {}
func (Failure) isTransition() {}
func (Logout) isTransition()  {}
func (SetUser) isTransition() {}

// Apply is the pure transition function. It has no side effects; the
// Manager is responsible for persistence and navigation.
func Apply(s State, t Transition) State {
	switch t := t.(type) {
	case Start:
		s.Loading = true
		s.Err = ""
	case Success:
		s.User = t.User
		s.Token = t.Token
		s.Authenticated = t.User != nil && t.Token != ""
		s.Loading = false
		s.Err = ""
	case Failure:
		s.User = nil
		s.Token = ""
		s.Authenticated = false
		s.Loading = false
		s.Err = t.Message
	case Logout:
		s.User = nil
		s.Token = ""
		s.Authenticated = false
		s.Loading = false
		s.Err = ""
	case SetUser:
		s.User = t.User
		s.Err = ""
	}
	return s
}

// HasRole reports whether the state holds a user with exactly the given role.
func (s State) HasRole(role models.Role) bool {
	return s.User != nil && s.User.Role == role
}

// HasAnyRole reports whether the state holds a user whose role is a member
// of roles. An empty role list is never satisfied.
func (s State) HasAnyRole(roles ...models.Role) bool {
	if s.User == nil {
		return false
	}
	for _, role := range roles {
		if s.User.Role == role {
			return true
		}
	}
	return false
}
