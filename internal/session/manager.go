package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/globobank/frauddesk/internal/localstore"
	"github.com/globobank/frauddesk/internal/models"
)

// Persisted store keys. The Manager is the only writer of these two keys
// and always writes or clears them together.
const (
	TokenKey = "auth_token"
	UserKey  = "auth_user"
)

// Default navigation targets.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Navigator moves the application between destinations. The CLI supplies
// an implementation; tests supply fakes.
type Navigator interface {
	// Navigate switches to the given destination.
	Navigate(path string)
	// Path returns the current destination.
	Path() string
}

// Authenticator is the remote login endpoint the Manager calls. Implemented
// by the api client.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

// Manager owns the session State. It is constructed once at application
// start and passed by handle to anything that needs to read the session or
// invoke a transition.
type Manager struct {
	store *localstore.Store
	nav   Navigator
	auth  Authenticator

	mu     sync.Mutex
	state  State
	nextID int
	subs   map[int]func(State)
}

// NewManager creates a Manager in the initial (loading) state. Call
// Restore before evaluating any guard.
func NewManager(store *localstore.Store, nav Navigator, auth Authenticator) *Manager {
	return &Manager{
		store: store,
		nav:   nav,
		auth:  auth,
		state: Initial(),
		subs:  map[int]func(State){},
	}
}

// State returns a snapshot of the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Token returns the current bearer token, or "" when unauthenticated.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Token
}

// HasRole reports whether the current user has exactly the given role.
func (m *Manager) HasRole(role models.Role) bool {
	return m.State().HasRole(role)
}

// HasAnyRole reports whether the current user's role is a member of roles.
func (m *Manager) HasAnyRole(roles ...models.Role) bool {
	return m.State().HasAnyRole(roles...)
}

// Subscribe registers fn to be called after every state change. The
// returned function unsubscribes.
func (m *Manager) Subscribe(fn func(State)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

// Restore resolves the boot-time loading state from the persisted store.
// If both keys hold non-empty values it synthesizes a login success without
// a network call; otherwise it applies logout semantics so a stale single
// key cannot survive.
func (m *Manager) Restore() {
	token := localstore.Read(m.store, TokenKey, "")
	user := localstore.Read[*models.User](m.store, UserKey, nil)

	if token != "" && user != nil {
		log.Debug().Str("email", user.Email).Msg("restored persisted session")
		m.dispatch(Success{User: user, Token: token})
		return
	}
	m.dispatch(Logout{})
}

// Login runs the full login operation: start transition, remote call,
// success or failure transition, then navigation to redirectTo (or the
// dashboard). The error is returned so the caller can surface it; the
// failure message is also recorded on the state.
func (m *Manager) Login(ctx context.Context, email, password, redirectTo string) error {
	m.dispatch(Start{})

	user, token, err := m.auth.Login(ctx, email, password)
	if err != nil {
		log.Debug().Err(err).Str("email", email).Msg("login failed")
		m.dispatch(Failure{Message: err.Error()})
		return err
	}

	m.dispatch(Success{User: user, Token: token})
	log.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("logged in")

	if redirectTo == "" {
		redirectTo = DashboardPath
	}
	m.nav.Navigate(redirectTo)
	return nil
}

// Logout clears the session and persisted keys and navigates to the login
// page. Calling it while already unauthenticated is a harmless no-op on
// the observable state.
func (m *Manager) Logout() {
	m.dispatch(Logout{})
	m.nav.Navigate(LoginPath)
}

// SetUser replaces the current user and persists the updated copy. The
// token and authentication flag are untouched.
func (m *Manager) SetUser(user *models.User) {
	m.dispatch(SetUser{User: user})
}

// Expire handles a rejected token: the session is cleared and, unless the
// login page is already current, navigation is forced there. Wired as the
// api layer's unauthorized hook.
func (m *Manager) Expire() {
	m.dispatch(Logout{})
	if m.nav.Path() != LoginPath {
		log.Debug().Msg("session expired, redirecting to login")
		m.nav.Navigate(LoginPath)
	}
}

// dispatch applies the transition, mirrors any token/user change into the
// persistent store, and notifies subscribers. Persistence and state are
// updated under the same lock so they cannot drift apart.
func (m *Manager) dispatch(t Transition) {
	m.mu.Lock()
	m.state = Apply(m.state, t)

	switch t := t.(type) {
	case Success:
		m.store.Write(TokenKey, t.Token)
		m.store.Write(UserKey, t.User)
	case Logout:
		m.store.Remove(TokenKey)
		m.store.Remove(UserKey)
	case SetUser:
		m.store.Write(UserKey, t.User)
	}

	state := m.state
	subs := make([]func(State), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}
