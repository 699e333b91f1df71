package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-achieve-portal/models"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestContext_Begin_PopulatesIdentity(t *testing.T) {
	// Arrange
	ctx := NewContext()
	token := signedToken(t, jwt.MapClaims{
		"userId": "66f1a2b3c4d5e6f7a8b9c0d1",
		"name":   "قسم التطوير",
		"role":   models.RoleAdmin,
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	// Act
	err := ctx.Begin(token)

	// Assert
	require.NoError(t, err)
	assert.True(t, ctx.IsActive())
	assert.True(t, ctx.IsAdmin())
	assert.Equal(t, "66f1a2b3c4d5e6f7a8b9c0d1", ctx.UserID())

	user, err := ctx.User()
	require.NoError(t, err)
	assert.Equal(t, "قسم التطوير", user.Fullname)
	assert.Equal(t, models.RoleAdmin, user.Role)

	got, err := ctx.Token()
	require.NoError(t, err)
	assert.Equal(t, token, got)
}

func TestContext_Begin_SubjectFallback(t *testing.T) {
	ctx := NewContext()
	token := signedToken(t, jwt.MapClaims{
		"sub":  "abc123",
		"role": models.RoleUser,
	})

	require.NoError(t, ctx.Begin(token))
	assert.Equal(t, "abc123", ctx.UserID())
	assert.False(t, ctx.IsAdmin())
}

func TestContext_Begin_InvalidToken(t *testing.T) {
	ctx := NewContext()

	err := ctx.Begin("not-a-jwt")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.False(t, ctx.IsActive())
}

func TestContext_Begin_MissingUserID(t *testing.T) {
	ctx := NewContext()
	token := signedToken(t, jwt.MapClaims{"role": models.RoleUser})

	err := ctx.Begin(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestContext_End_ClearsEverything(t *testing.T) {
	ctx := NewContext()
	token := signedToken(t, jwt.MapClaims{
		"userId": "u1",
		"role":   models.RoleAdmin,
	})
	require.NoError(t, ctx.Begin(token))

	ctx.End()

	assert.False(t, ctx.IsActive())
	assert.False(t, ctx.IsAdmin())
	assert.Empty(t, ctx.UserID())

	_, err := ctx.Token()
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = ctx.User()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestContext_Token_Expired(t *testing.T) {
	ctx := NewContext()
	token := signedToken(t, jwt.MapClaims{
		"userId": "u1",
		"role":   models.RoleUser,
		"exp":    time.Now().Add(-time.Minute).Unix(),
	})
	require.NoError(t, ctx.Begin(token))

	_, err := ctx.Token()

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, ctx.IsActive())
}

func TestContext_SignedOutDefaults(t *testing.T) {
	ctx := NewContext()

	assert.False(t, ctx.IsActive())
	assert.False(t, ctx.IsAdmin())
	assert.Empty(t, ctx.UserID())
	assert.True(t, ctx.ExpiresAt().IsZero())
}
