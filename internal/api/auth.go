package api

import (
	"net/http"

	"marketplace_api/internal/config"
	"marketplace_api/internal/repository"
	"marketplace_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// TokenRequest carries the password-grant form fields.
type TokenRequest struct {
	Username string `form:"username" binding:"required"` // Login name
	Password string `form:"password" binding:"required"` // Plaintext password
}

// TokenResponse is the issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"` // Signed JWT
	TokenType   string `json:"token_type"`   // Always "bearer"
}

// TokenHandler exchanges a username/password pair for a signed access token.
// An unknown username and a wrong password produce the same response, so the
// caller cannot probe which one was wrong.
func TokenHandler(users repository.UserRepository, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TokenRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := users.FindByUsername(c.Request.Context(), req.Username)
		if err != nil {
			incorrectCredentials(c)
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			incorrectCredentials(c)
			return
		}
		token, err := utils.GenerateJWT(user.Username, cfg.JWTSecret, cfg.TokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Best effort; a failed stamp must not block the login.
		if err := users.TouchLastLogin(c.Request.Context(), user.ID); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"error":   err.Error(),
			}).Warn("Failed to stamp last login")
		}
		c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}

// incorrectCredentials writes the uniform login failure.
func incorrectCredentials(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
}
