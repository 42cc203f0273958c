package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/service"
	apperrors "github.com/udyogsetu/udyogsetu-backend/internal/errors"
	"github.com/udyogsetu/udyogsetu-backend/internal/middleware"
	"github.com/udyogsetu/udyogsetu-backend/pkg/redis"
	"github.com/udyogsetu/udyogsetu-backend/pkg/util"
)

type AuthController struct {
	authService          service.AuthService
	passwordResetService service.PasswordResetService
	jwtSecret            string
	accessExpiry         time.Duration
}

func NewAuthController(
	authService service.AuthService,
	passwordResetService service.PasswordResetService,
	jwtSecret string,
	accessExpiry time.Duration,
) *AuthController {
	return &AuthController{
		authService:          authService,
		passwordResetService: passwordResetService,
		jwtSecret:            jwtSecret,
		accessExpiry:         accessExpiry,
	}
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	AccountType string `json:"accountType" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// Register handles account registration
// POST /api/v1/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid registration request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Email, password, phone, and account type are required.")
		return
	}

	user, tokens, err := ctrl.authService.Register(req.Email, req.Password, req.Phone, req.AccountType)
	if err != nil {
		var weak *service.WeakPasswordError
		switch {
		case errors.As(err, &weak):
			apperrors.RespondWithValidationErrors(c, apperrors.AuthWeakPassword, "Password is not strong enough.", weak.Violations)
		case errors.Is(err, service.ErrEmailAlreadyExists):
			apperrors.Conflict(c, apperrors.AuthEmailAlreadyExists, "Email is already registered.")
		case errors.Is(err, service.ErrInvalidEmail):
			apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "Please provide a valid email.")
		case errors.Is(err, service.ErrInvalidPhone):
			apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "Phone must be a 10-digit number.")
		case errors.Is(err, service.ErrInvalidAccountType):
			apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "Account type must be Individual or Business.")
		default:
			log.Error("Registration failed", err, map[string]interface{}{
				"email": req.Email,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "register user")
		}
		return
	}

	log.Info("User registered successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful.",
		"user": gin.H{
			"email":       user.Email,
			"phone":       user.Phone,
			"accountType": user.AccountType,
		},
		"tokens": tokens,
	})
}

// Login handles account login
// POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Email and password are required.")
		return
	}

	user, tokens, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Warn("Login failed: invalid credentials", map[string]interface{}{
				"email": req.Email,
			})
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "Invalid email or password.")
			return
		}
		log.Error("Login failed", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful.",
		"user": gin.H{
			"email":       user.Email,
			"phone":       user.Phone,
			"accountType": user.AccountType,
		},
		"tokens": tokens,
	})
}

// Me returns the authenticated account
// GET /api/v1/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	user, err := ctrl.authService.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "User not found.")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get current user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"email":       user.Email,
			"phone":       user.Phone,
			"accountType": user.AccountType,
			"createdAt":   user.CreatedAt,
		},
	})
}

// Logout revokes the presented access token
// POST /api/v1/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		apperrors.Unauthorized(c, "")
		return
	}
	token := parts[1]

	// Blacklist for the remaining token lifetime only.
	expiry := ctrl.accessExpiry
	if claims, err := util.ValidateToken(token, ctrl.jwtSecret); err == nil && claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			expiry = remaining
		}
	}

	if err := redis.BlacklistToken(c.Request.Context(), token, expiry); err != nil {
		log.Error("Failed to revoke token", err, nil)
		apperrors.InternalError(c, "Logout failed. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
}

// ForgotPassword issues a password reset token
// POST /api/v1/auth/forgot-password
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Valid email is required.")
		return
	}
	if !util.IsValidEmail(service.NormalizeEmail(req.Email)) {
		apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "Valid email is required.")
		return
	}

	token, err := ctrl.passwordResetService.RequestReset(req.Email)
	if err != nil {
		log.Error("Failed to process reset request", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.InternalError(c, "Unable to generate reset token right now.")
		return
	}

	if token == "" {
		// Unknown account; respond identically to avoid enumeration.
		c.JSON(http.StatusOK, gin.H{"message": "If this email exists, reset instructions were sent."})
		return
	}

	// No mail delivery in this deployment; the token is returned directly.
	c.JSON(http.StatusOK, gin.H{
		"message":    "Password reset token generated for demo usage.",
		"resetToken": token,
	})
}

// ResetPassword consumes a reset token and sets a new password
// POST /api/v1/auth/reset-password
func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Reset token and new password are required.")
		return
	}

	if err := ctrl.passwordResetService.ResetPassword(req.Token, req.NewPassword); err != nil {
		var weak *service.WeakPasswordError
		switch {
		case errors.As(err, &weak):
			apperrors.RespondWithValidationErrors(c, apperrors.AuthWeakPassword, "Password is not strong enough.", weak.Violations)
		case errors.Is(err, service.ErrInvalidResetToken),
			errors.Is(err, service.ErrResetTokenExpired),
			errors.Is(err, service.ErrResetTokenUsed):
			apperrors.BadRequest(c, apperrors.AuthResetTokenInvalid, "Invalid or expired reset token.")
		default:
			log.Error("Password reset failed", err, nil)
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "reset password")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful."})
}
