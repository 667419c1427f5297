package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mentorhub/services/user"
)

// RegisterHandler accepts a local registration and emails a verification link.
func (hb *HandlerBundle) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := hb.UserSvc.Register(c.Request.Context(), req); err != nil {
		var dup user.DuplicateAccountError
		if errors.As(err, &dup) {
			c.JSON(http.StatusConflict, gin.H{"error": dup.Error()})
			return
		}
		logger.Error("User registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "Verification email sent. Please check your inbox."})
}

// VerifyEmailHandler redeems a verification token and signs the new user in.
func (hb *HandlerBundle) VerifyEmailHandler(c *gin.Context) {
	logger := getLogger(c)

	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing verification token"})
		return
	}

	resp, err := hb.UserSvc.VerifyEmail(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, user.ErrVerificationExpired) {
			c.JSON(http.StatusGone, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Email verification failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// LoginHandler signs in an (email, role) account with a password.
func (hb *HandlerBundle) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required,oneof=mentee mentor admin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := hb.UserSvc.Authenticate(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		var pending user.CredentialsPendingError
		switch {
		case errors.Is(err, user.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.As(err, &pending):
			c.JSON(http.StatusForbidden, gin.H{"error": pending.Error()})
		default:
			logger.Error("Login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GoogleAuthHandler exchanges an OAuth authorization code for a signed-in
// session, creating the account on first use.
func (hb *HandlerBundle) GoogleAuthHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Code string `json:"code" binding:"required"`
		Role string `json:"role" binding:"required,oneof=mentee mentor"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := hb.UserSvc.GoogleSignIn(c.Request.Context(), req.Code, req.Role)
	if err != nil {
		var pending user.CredentialsPendingError
		if errors.As(err, &pending) {
			c.JSON(http.StatusForbidden, gin.H{"error": pending.Error()})
			return
		}
		logger.Error("Google sign-in failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the authenticated user's token.
func (hb *HandlerBundle) LogoutHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := hb.UserSvc.RevokeToken(c.Request.Context(), userID.(string)); err != nil {
		logger.Error("Logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfileHandler returns the authenticated user's record.
func (hb *HandlerBundle) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := hb.UserSvc.GetUserByID(c.Request.Context(), userID.(string))
	if err != nil {
		logger.Error("Failed to get user profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
