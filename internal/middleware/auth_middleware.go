package middleware

import (
	"github.com/gin-gonic/gin"
	appauth "github.com/yigit/registro-academico/internal/app/auth"
	"github.com/yigit/registro-academico/internal/app/models"
	"github.com/yigit/registro-academico/internal/app/services"
	"github.com/yigit/registro-academico/internal/pkg/apperrors"
	"github.com/yigit/registro-academico/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserKey   = "user"
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	authService services.AuthService
	authorizer  *appauth.Authorizer
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService services.AuthService, authorizer *appauth.Authorizer) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		authorizer:  authorizer,
	}
}

// JWTAuth requires a valid bearer token and stores its user in the context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrTokenNotFound, "Se requiere un token de acceso"))
			return
		}

		token, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrTokenInvalid, "Formato de token inválido"))
			return
		}

		user, err := m.authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextRoleKey, user.RoleName)
		c.Next()
	}
}

// RequirePermission checks the role of the authenticated user against the
// policy for resource. It must run after JWTAuth.
func (m *AuthMiddleware) RequirePermission(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRoleKey)
		if role == "" {
			HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrTokenNotFound, "Se requiere un token de acceso"))
			return
		}

		allowed, err := m.authorizer.Allowed(role, resource, appauth.ActionFor(c.Request.Method))
		if err != nil {
			HandleAPIError(c, err)
			return
		}
		if !allowed {
			HandleAPIError(c, apperrors.NewForbiddenError("No tiene permisos para realizar esta acción"))
			return
		}

		c.Next()
	}
}

// CurrentUser returns the user stored by JWTAuth
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
