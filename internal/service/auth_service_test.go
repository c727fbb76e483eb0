package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_GenerateAndValidate(t *testing.T) {
	// Arrange
	auth := NewAuthService("test-secret")
	userID := uuid.New()

	// Act
	token, err := auth.GenerateJWT(userID)
	require.NoError(t, err)
	parsed, err := auth.ValidateJWT(token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestAuthService_ValidateJWT_Rejects(t *testing.T) {
	auth := NewAuthService("test-secret")

	foreign, err := NewAuthService("other-secret").GenerateJWT(uuid.New())
	require.NoError(t, err)

	expiredIssuer := NewAuthService("test-secret")
	expiredIssuer.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expired, err := expiredIssuer.GenerateJWT(uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "signed with another secret", token: foreign},
		{name: "expired", token: expired},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := auth.ValidateJWT(tt.token)

			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, userID)
		})
	}
}

func TestAuthService_IdentityFromRequest(t *testing.T) {
	auth := NewAuthService("test-secret")
	userID := uuid.New()
	token, err := auth.GenerateJWT(userID)
	require.NoError(t, err)

	tests := []struct {
		name          string
		prepare       func(r *http.Request)
		wantAnonymous bool
	}{
		{
			name: "token in cookie",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
			},
		},
		{
			name: "token in authorization header",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+token)
			},
		},
		{
			name:          "no token",
			prepare:       func(r *http.Request) {},
			wantAnonymous: true,
		},
		{
			name: "invalid token",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "broken"})
			},
			wantAnonymous: true,
		},
		{
			name: "non bearer scheme",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Basic "+token)
			},
			wantAnonymous: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(req)

			// Act
			identity := auth.IdentityFromRequest(req)

			// Assert
			if tt.wantAnonymous {
				assert.True(t, identity.IsAnonymous())
				return
			}
			assert.True(t, identity.Is(userID))
		})
	}
}

func TestAuthService_GetOrCreateIdentity(t *testing.T) {
	t.Run("issues new identity and cookie", func(t *testing.T) {
		// Arrange
		auth := NewAuthService("test-secret")
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()

		// Act
		identity, err := auth.GetOrCreateIdentity(rec, req)

		// Assert
		require.NoError(t, err)
		require.False(t, identity.IsAnonymous())

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, TokenCookieName, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)

		userID, err := auth.ValidateJWT(cookies[0].Value)
		require.NoError(t, err)
		assert.True(t, identity.Is(userID))
	})

	t.Run("keeps existing identity", func(t *testing.T) {
		// Arrange
		auth := NewAuthService("test-secret")
		userID := uuid.New()
		token, err := auth.GenerateJWT(userID)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
		rec := httptest.NewRecorder()

		// Act
		identity, err := auth.GetOrCreateIdentity(rec, req)

		// Assert
		require.NoError(t, err)
		assert.True(t, identity.Is(userID))
		assert.Empty(t, rec.Result().Cookies())
	})
}
