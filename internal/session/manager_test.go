package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globobank/frauddesk/internal/localstore"
	"github.com/globobank/frauddesk/internal/models"
)

type fakeNavigator struct {
	path    string
	visited []string
}

func (n *fakeNavigator) Navigate(path string) {
	n.path = path
	n.visited = append(n.visited, path)
}

func (n *fakeNavigator) Path() string { return n.path }

type fakeAuthenticator struct {
	user  *models.User
	token string
	err   error
	calls int
}

func (a *fakeAuthenticator) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	a.calls++
	if a.err != nil {
		return nil, "", a.err
	}
	return a.user, a.token, nil
}

func newTestManager(t *testing.T, auth *fakeAuthenticator) (*Manager, *localstore.Store, *fakeNavigator) {
	t.Helper()
	store := localstore.Open(t.TempDir())
	nav := &fakeNavigator{path: LoginPath}
	return NewManager(store, nav, auth), store, nav
}

func TestManager_LoginSuccess(t *testing.T) {
	auth := &fakeAuthenticator{user: analyst(), token: "abc"}
	m, store, nav := newTestManager(t, auth)
	m.Restore()

	err := m.Login(context.Background(), "analyst@globobank.com", "password123", "")
	require.NoError(t, err)

	st := m.State()
	assert.True(t, st.Authenticated)
	assert.Equal(t, "abc", st.Token)
	assert.Equal(t, "user-1", st.User.ID)
	assert.False(t, st.Loading)
	assert.Empty(t, st.Err)

	// Both keys persisted together.
	assert.Equal(t, "abc", localstore.Read(store, TokenKey, ""))
	persisted := localstore.Read[*models.User](store, UserKey, nil)
	require.NotNil(t, persisted)
	assert.Equal(t, "user-1", persisted.ID)

	// Default landing page.
	assert.Equal(t, DashboardPath, nav.path)
}

func TestManager_LoginRedirectTarget(t *testing.T) {
	auth := &fakeAuthenticator{user: analyst(), token: "abc"}
	m, _, nav := newTestManager(t, auth)
	m.Restore()

	require.NoError(t, m.Login(context.Background(), "analyst@globobank.com", "password123", "/cases/42"))
	assert.Equal(t, "/cases/42", nav.path)
}

func TestManager_LoginFailure(t *testing.T) {
	auth := &fakeAuthenticator{err: errors.New("invalid credentials")}
	m, store, nav := newTestManager(t, auth)
	m.Restore()

	err := m.Login(context.Background(), "analyst@globobank.com", "wrong", "")
	require.Error(t, err)

	st := m.State()
	assert.False(t, st.Authenticated)
	assert.Nil(t, st.User)
	assert.Empty(t, st.Token)
	assert.Equal(t, "invalid credentials", st.Err)

	// Store untouched, no navigation away from login.
	assert.False(t, store.Has(TokenKey))
	assert.False(t, store.Has(UserKey))
	assert.Equal(t, LoginPath, nav.path)
}

func TestManager_Logout(t *testing.T) {
	auth := &fakeAuthenticator{user: analyst(), token: "abc"}
	m, store, nav := newTestManager(t, auth)
	m.Restore()
	require.NoError(t, m.Login(context.Background(), "analyst@globobank.com", "password123", ""))

	m.Logout()

	st := m.State()
	assert.Equal(t, State{}, st)
	assert.False(t, store.Has(TokenKey))
	assert.False(t, store.Has(UserKey))
	assert.Equal(t, LoginPath, nav.path)

	// Logging out again changes nothing observable.
	m.Logout()
	assert.Equal(t, State{}, m.State())
}

func TestManager_Restore(t *testing.T) {
	t.Run("both keys present resolves to authenticated without a network call", func(t *testing.T) {
		auth := &fakeAuthenticator{}
		store := localstore.Open(t.TempDir())
		store.Write(TokenKey, "abc")
		store.Write(UserKey, analyst())

		m := NewManager(store, &fakeNavigator{}, auth)
		assert.True(t, m.State().Loading)

		m.Restore()

		st := m.State()
		assert.True(t, st.Authenticated)
		assert.Equal(t, "abc", st.Token)
		assert.Equal(t, "user-1", st.User.ID)
		assert.False(t, st.Loading)
		assert.Zero(t, auth.calls)
	})

	t.Run("missing keys resolve to unauthenticated", func(t *testing.T) {
		m, _, _ := newTestManager(t, &fakeAuthenticator{})
		m.Restore()

		st := m.State()
		assert.False(t, st.Authenticated)
		assert.False(t, st.Loading)
	})

	t.Run("a stale single key is cleared", func(t *testing.T) {
		store := localstore.Open(t.TempDir())
		store.Write(TokenKey, "orphaned")

		m := NewManager(store, &fakeNavigator{}, &fakeAuthenticator{})
		m.Restore()

		assert.False(t, m.State().Authenticated)
		assert.False(t, store.Has(TokenKey))
	})
}

func TestManager_SetUser(t *testing.T) {
	auth := &fakeAuthenticator{user: analyst(), token: "abc"}
	m, store, _ := newTestManager(t, auth)
	m.Restore()
	require.NoError(t, m.Login(context.Background(), "analyst@globobank.com", "password123", ""))

	promoted := analyst()
	promoted.Role = models.RoleSeniorAnalyst
	m.SetUser(promoted)

	st := m.State()
	assert.Equal(t, models.RoleSeniorAnalyst, st.User.Role)
	assert.True(t, st.Authenticated)
	assert.Equal(t, "abc", st.Token)

	persisted := localstore.Read[*models.User](store, UserKey, nil)
	require.NotNil(t, persisted)
	assert.Equal(t, models.RoleSeniorAnalyst, persisted.Role)
}

func TestManager_Expire(t *testing.T) {
	auth := &fakeAuthenticator{user: analyst(), token: "abc"}
	m, store, nav := newTestManager(t, auth)
	m.Restore()
	require.NoError(t, m.Login(context.Background(), "analyst@globobank.com", "password123", ""))

	m.Expire()

	assert.False(t, m.State().Authenticated)
	assert.False(t, store.Has(TokenKey))
	assert.False(t, store.Has(UserKey))
	assert.Equal(t, LoginPath, nav.path)

	// Already on the login page: no extra navigation.
	visits := len(nav.visited)
	m.Expire()
	assert.Len(t, nav.visited, visits)
}

func TestManager_Subscribe(t *testing.T) {
	auth := &fakeAuthenticator{user: analyst(), token: "abc"}
	m, _, _ := newTestManager(t, auth)

	var seen []State
	unsubscribe := m.Subscribe(func(st State) { seen = append(seen, st) })

	m.Restore()
	require.NoError(t, m.Login(context.Background(), "analyst@globobank.com", "password123", ""))

	// Restore (logout), start, success.
	require.Len(t, seen, 3)
	assert.False(t, seen[0].Authenticated)
	assert.True(t, seen[1].Loading)
	assert.True(t, seen[2].Authenticated)

	unsubscribe()
	m.Logout()
	assert.Len(t, seen, 3)
}
