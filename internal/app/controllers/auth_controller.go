package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/registro-academico/internal/app/models/dto"
	"github.com/yigit/registro-academico/internal/app/services"
	"github.com/yigit/registro-academico/internal/middleware"
	"github.com/yigit/registro-academico/internal/pkg/apperrors"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService     services.AuthService
	recoveryService services.RecoveryService
	logger          zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, recoveryService services.RecoveryService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService:     authService,
		recoveryService: recoveryService,
		logger:          logger,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates an account and, when perfil is given, the linked teacher or student profile. The administrator role cannot be registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account and optional profile"
// @Success 201 {object} dto.Envelope{datos=dto.RegisterResult} "Account created"
// @Failure 400 {object} dto.Envelope "Validation failures"
// @Failure 500 {object} dto.Envelope "Internal server error"
// @Router /auth/registrar [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := bindBody(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusCreated, result)
}

// Login handles user login
// @Summary User login
// @Description Authenticates a user and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.Envelope{datos=dto.TokenResponse} "Login successful"
// @Failure 400 {object} dto.Envelope "Validation failures"
// @Failure 401 {object} dto.Envelope "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := bindBody(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, token)
}

// RequestRecovery emails a recovery PIN
// @Summary Request a password recovery PIN
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RecoveryRequest true "Account email"
// @Success 200 {object} dto.Envelope "PIN sent"
// @Failure 404 {object} dto.Envelope "No account with that email"
// @Failure 503 {object} dto.Envelope "Mail server unavailable"
// @Router /auth/recuperar [post]
func (c *AuthController) RequestRecovery(ctx *gin.Context) {
	var req dto.RecoveryRequest
	if err := bindBody(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.recoveryService.RequestRecovery(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, gin.H{"mensaje": "Se envió un PIN de recuperación a su correo"})
}

// ResetPassword redeems a recovery PIN
// @Summary Reset the password with a recovery PIN
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Email, PIN and new password"
// @Success 200 {object} dto.Envelope "Password changed"
// @Failure 400 {object} dto.Envelope "Invalid or expired PIN"
// @Failure 404 {object} dto.Envelope "No account with that email"
// @Router /auth/restablecer [put]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := bindBody(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.recoveryService.ResetPassword(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, gin.H{"mensaje": "La contraseña fue actualizada"})
}

// Profile returns the authenticated account
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Envelope{datos=dto.RegisterResult} "Account and linked profile"
// @Failure 401 {object} dto.Envelope "Missing or invalid token"
// @Router /auth/perfil [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrTokenNotFound, "Se requiere un token de acceso"))
		return
	}

	profile, err := c.authService.Profile(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, profile)
}
