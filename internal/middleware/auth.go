package middleware

import (
	"context"
	"net/http"

	"github.com/avc-dev/shortlinks/internal/model"
	"go.uber.org/zap"
)

type identityKey struct{}

// IdentityProvider извлекает или выпускает идентичность вызывающего
type IdentityProvider interface {
	IdentityFromRequest(r *http.Request) model.Identity
	GetOrCreateIdentity(w http.ResponseWriter, r *http.Request) (model.Identity, error)
}

// AuthMiddleware представляет миддлвар для аутентификации пользователей
type AuthMiddleware struct {
	provider IdentityProvider
	logger   *zap.Logger
}

// NewAuthMiddleware создает новый экземпляр AuthMiddleware
func NewAuthMiddleware(provider IdentityProvider, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		provider: provider,
		logger:   logger,
	}
}

// RequireAuth гарантирует идентифицированного пользователя:
// при отсутствии действительного токена выпускается новый.
func (am *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := am.provider.GetOrCreateIdentity(w, r)
		if err != nil {
			am.logger.Error("failed to authenticate user", zap.Error(err))
			http.Error(w, "Authentication failed", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

// OptionalAuth не выпускает токенов: без действительного токена вызывающий аноним
func (am *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := am.provider.IdentityFromRequest(r)
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

// WithIdentity кладет идентичность в контекст
func WithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext извлекает идентичность; без нее вызывающий считается анонимом
func IdentityFromContext(ctx context.Context) model.Identity {
	identity, ok := ctx.Value(identityKey{}).(model.Identity)
	if !ok {
		return model.Anonymous()
	}
	return identity
}
