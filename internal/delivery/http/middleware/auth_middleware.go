package middleware

import (
	"context"
	"net/http"
	"strings"

	"clinicdesk/internal/service"
	"clinicdesk/pkg/jwt"
	"clinicdesk/pkg/response"

	"github.com/google/uuid"
)

type contextKey string

const (
	userIDKey      contextKey = "user_id"
	userEmailKey   contextKey = "user_email"
	userRoleIDKey  contextKey = "user_role_id"
	accessTokenKey contextKey = "access_token_id"
)

// AuthMiddleware validates the bearer token and rejects revoked tokens.
type AuthMiddleware struct {
	jwtService *jwt.JWTService
	tokenStore *service.TokenStore
}

func NewAuthMiddleware(jwtService *jwt.JWTService, tokenStore *service.TokenStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}
		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}
		if !m.tokenStore.IsAccessTokenValid(r.Context(), claims.UserID, claims.TokenID) {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, userEmailKey, claims.Email)
		ctx = context.WithValue(ctx, userRoleIDKey, claims.RoleID)
		ctx = context.WithValue(ctx, accessTokenKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext returns the authenticated user ID
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}

// GetUserEmailFromContext returns the authenticated user email
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	return email, ok
}

// GetRoleIDFromContext returns the authenticated user's role ID
func GetRoleIDFromContext(ctx context.Context) (int, bool) {
	roleID, ok := ctx.Value(userRoleIDKey).(int)
	return roleID, ok
}

// GetAccessTokenIDFromContext returns the token ID of the presented token
func GetAccessTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(accessTokenKey).(string)
	return tokenID, ok
}
