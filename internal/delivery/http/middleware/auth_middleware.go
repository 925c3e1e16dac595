package middleware

import (
	"strings"

	"alufactory/internal/delivery/http/response"
	"alufactory/internal/domain/entity"
	"alufactory/internal/domain/service"
	"alufactory/internal/usecase"

	"github.com/labstack/echo/v4"
)

// actorKey is the echo.Context key holding the authenticated Actor.
const actorKey = "actor"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer token and stores the resulting Actor
// on the request context. Roles come straight from the token claims, so
// authorization needs no database round trip.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "缺少認證資訊")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_INVALID", "認證格式錯誤，需使用 Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "無效或過期的認證")
		}

		c.Set(actorKey, usecase.Actor{
			UserID: claims.UserID,
			Roles:  entity.RolesFromStrings(claims.Roles),
		})

		return next(c)
	}
}

// RequireAdmin rejects callers without the admin role. It must run after
// Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := ActorFromContext(c)
		if !ok || !actor.IsAdmin() {
			return response.Forbidden(c, "FORBIDDEN", "需要管理員權限")
		}

		return next(c)
	}
}

// ActorFromContext returns the Actor stored by Authenticate.
func ActorFromContext(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(actorKey).(usecase.Actor)

	return actor, ok
}
