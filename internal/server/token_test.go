package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globobank/frauddesk/internal/models"
)

func TestTokens(t *testing.T) {
	user := &models.User{ID: "user-1", Email: "analyst@globobank.com", Role: models.RoleAnalyst}

	t.Run("issue and verify round-trip", func(t *testing.T) {
		tokens := NewTokens([]byte("test-secret"), time.Hour)
		raw, err := tokens.Issue(user)
		require.NoError(t, err)

		subject, err := tokens.Verify(raw)
		require.NoError(t, err)
		assert.Equal(t, "user-1", subject)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		tokens := NewTokens([]byte("test-secret"), time.Hour)
		raw, err := tokens.Issue(user)
		require.NoError(t, err)

		tokens.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err = tokens.Verify(raw)
		assert.ErrorIs(t, err, errInvalidToken)
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		issuer := NewTokens([]byte("secret-a"), time.Hour)
		verifier := NewTokens([]byte("secret-b"), time.Hour)

		raw, err := issuer.Issue(user)
		require.NoError(t, err)

		_, err = verifier.Verify(raw)
		assert.ErrorIs(t, err, errInvalidToken)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		tokens := NewTokens([]byte("test-secret"), time.Hour)
		_, err := tokens.Verify("not.a.token")
		assert.ErrorIs(t, err, errInvalidToken)
	})
}
