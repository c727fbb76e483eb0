package service

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenCookieName кука с токеном пользователя
	TokenCookieName = "user_token"
	tokenTTL        = 24 * time.Hour
)

var errNoToken = errors.New("token is not provided")

// UserClaims полезная нагрузка токена
type UserClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// AuthService предоставляет функциональность для аутентификации пользователей
type AuthService struct {
	jwtSecret []byte
	now       func() time.Time
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
		now:       time.Now,
	}
}

// GenerateJWT создает токен для пользователя
func (a *AuthService) GenerateJWT(userID uuid.UUID) (string, error) {
	now := a.now()
	claims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID: userID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}

// ValidateJWT проверяет токен и извлекает user_id
func (a *AuthService) ValidateJWT(tokenString string) (uuid.UUID, error) {
	claims := &UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	}, jwt.WithTimeFunc(a.now))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("user_id in token is not a uuid: %w", err)
	}

	return userID, nil
}

// IdentityFromRequest возвращает идентичность из куки или заголовка Authorization.
// Отсутствующий или недействительный токен означает анонима.
func (a *AuthService) IdentityFromRequest(r *http.Request) model.Identity {
	token, err := tokenFromRequest(r)
	if err != nil {
		return model.Anonymous()
	}

	userID, err := a.ValidateJWT(token)
	if err != nil {
		return model.Anonymous()
	}

	return model.UserIdentity(userID)
}

// GetOrCreateIdentity возвращает идентичность из запроса или выпускает новую
// и записывает ее токен в куку.
func (a *AuthService) GetOrCreateIdentity(w http.ResponseWriter, r *http.Request) (model.Identity, error) {
	if identity := a.IdentityFromRequest(r); !identity.IsAnonymous() {
		return identity, nil
	}

	userID := uuid.New()
	token, err := a.GenerateJWT(userID)
	if err != nil {
		return model.Anonymous(), fmt.Errorf("failed to generate JWT: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(tokenTTL.Seconds()),
	})

	return model.UserIdentity(userID), nil
}

func tokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
		return token, nil
	}

	return "", errNoToken
}
