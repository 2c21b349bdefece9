package handlers

import (
	"net/http"
	"time"

	"clinicbook/config"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AdminLoginHandler handles POST /api/admin/login. Credentials are
// checked against the configured admin account; a signed JWT is issued
// on success.
func AdminLoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	if input.Email != config.AppConfig.AdminEmail ||
		bcrypt.CompareHashAndPassword([]byte(config.AppConfig.AdminPasswordHash), []byte(input.Password)) != nil {
		logger.Warn("Admin login rejected", zap.String("email", input.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(input.Email, adminTokenTTL)
	if err != nil {
		logger.Error("Failed to sign admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(adminTokenTTL.Seconds())})
}
