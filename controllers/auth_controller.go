package controllers

import (
	"errors"
	"log"
	"net/http"

	"MoveCleanWeb/config"
	"MoveCleanWeb/services"

	"github.com/gin-gonic/gin"
)

var authService AuthServiceInterface

func SetAuthService(service AuthServiceInterface) {
	authService = service
}

func AdminLogin(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, token, err := authService.LoginAdmin(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAdmin):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Admin privileges required."})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No account found with this email"})
		case errors.Is(err, services.ErrWrongPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		case errors.Is(err, services.ErrInvalidEmail):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email address"})
		case errors.Is(err, services.ErrTooManyRequests):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Too many attempts. Please try again later."})
		default:
			log.Printf("Admin login failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication service unavailable"})
		}
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(services.SessionCookieName, token, int(services.SessionDuration.Seconds()), "/", "", config.Production, true)

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func AdminLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(services.SessionCookieName, "", -1, "/", "", config.Production, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
