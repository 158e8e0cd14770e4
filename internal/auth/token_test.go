package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("super-secret"), time.Hour)

	tok, err := issuer.Issue("user-123", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestTokenIssuer_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("secret"), -time.Minute)

	tok, err := issuer.Issue("u1", "a@x.com")
	require.NoError(t, err)

	_, err = issuer.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_ShortOfExpiry(t *testing.T) {
	t.Parallel()

	// A token with 59 minutes of validity left must still verify; the
	// expired case above covers the other side of the boundary.
	issuer := NewTokenIssuer([]byte("secret"), 59*time.Minute)

	tok, err := issuer.Issue("u1", "a@x.com")
	require.NoError(t, err)

	_, err = issuer.Verify(tok)
	assert.NoError(t, err)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenIssuer([]byte("right-secret"), time.Hour).Issue("u2", "b@x.com")
	require.NoError(t, err)

	_, err = NewTokenIssuer([]byte("wrong-secret"), time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Malformed(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("k"), time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "a.b"} {
		_, err := issuer.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}
