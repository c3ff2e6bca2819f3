package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssuer(t *testing.T) {
	issuer := NewJWTIssuer("test-signing-key", "user-access-api", "user-access-clients", 2*time.Hour)

	t.Run("issued token round-trips", func(t *testing.T) {
		issuedAt := time.Now().UTC()
		token, expiresAt, err := issuer.Issue("user-123", "john@example.com", issuedAt)
		require.NoError(t, err)
		assert.Equal(t, issuedAt.Add(2*time.Hour), expiresAt)

		claims, err := issuer.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.Subject)
		assert.Equal(t, "john@example.com", claims.Email)
		assert.Equal(t, "user-access-api", claims.Issuer)
		require.Len(t, claims.Audience, 1)
		assert.Equal(t, "user-access-clients", claims.Audience[0])
		assert.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		issuedAt := time.Now().UTC().Add(-3 * time.Hour)
		token, _, err := issuer.Issue("user-123", "john@example.com", issuedAt)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.Error(t, err)
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		other := NewJWTIssuer("other-key", "user-access-api", "user-access-clients", 2*time.Hour)
		token, _, err := other.Issue("user-123", "john@example.com", time.Now().UTC())
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.Error(t, err)
	})

	t.Run("rejects a foreign issuer", func(t *testing.T) {
		other := NewJWTIssuer("test-signing-key", "someone-else", "user-access-clients", 2*time.Hour)
		token, _, err := other.Issue("user-123", "john@example.com", time.Now().UTC())
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.Error(t, err)
	})

	t.Run("rejects a foreign audience", func(t *testing.T) {
		other := NewJWTIssuer("test-signing-key", "user-access-api", "someone-else", 2*time.Hour)
		token, _, err := other.Issue("user-123", "john@example.com", time.Now().UTC())
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.Error(t, err)
	})
}
