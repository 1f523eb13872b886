package controllers

import (
	"log"
	"net/http"

	"MoveCleanWeb/config"
	"MoveCleanWeb/models"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

const (
	consentCookieName      = "cookie_consent"
	consentPrefsCookieName = "cookie_preferences"
	consentMaxAge          = 365 * 24 * 60 * 60
)

const (
	ConsentActionAcceptAll     = "accept_all"
	ConsentActionNecessaryOnly = "necessary_only"
	ConsentActionSave          = "save"
)

// GetConsent reports the visitor's stored choice. Before any interaction the
// store is "not yet decided" and the banner should be shown.
func GetConsent(c *gin.Context) {
	flag, err := c.Cookie(consentCookieName)
	if err != nil || flag == "" {
		c.JSON(http.StatusOK, gin.H{
			"decided":     false,
			"preferences": models.NecessaryOnlyPreferences(),
		})
		return
	}

	prefs := models.NecessaryOnlyPreferences()
	if raw, err := c.Cookie(consentPrefsCookieName); err == nil && raw != "" {
		var stored models.CookiePreferences
		if err := json.Unmarshal([]byte(raw), &stored); err == nil {
			prefs = stored
		}
	}
	prefs.Necessary = true

	c.JSON(http.StatusOK, gin.H{"decided": true, "preferences": prefs})
}

func SaveConsent(c *gin.Context) {
	var input struct {
		Action      string                    `json:"action" binding:"required"`
		Preferences *models.CookiePreferences `json:"preferences"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing consent action"})
		return
	}

	var prefs models.CookiePreferences
	switch input.Action {
	case ConsentActionAcceptAll:
		prefs = models.AcceptAllPreferences()
	case ConsentActionNecessaryOnly:
		prefs = models.NecessaryOnlyPreferences()
	case ConsentActionSave:
		if input.Preferences == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing preferences"})
			return
		}
		prefs = *input.Preferences
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown consent action"})
		return
	}
	prefs.Necessary = true

	raw, err := json.Marshal(prefs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
		return
	}

	// Consent cookies stay readable by client scripts (no httpOnly): the
	// analytics loader checks them before initializing anything optional.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(consentCookieName, "true", consentMaxAge, "/", "", config.Production, false)
	c.SetCookie(consentPrefsCookieName, string(raw), consentMaxAge, "/", "", config.Production, false)

	// Notification hook for external analytics tooling; the consent-mode
	// signal is advisory, not transactional.
	log.Printf("Consent updated: analytics=%t marketing=%t preferences=%t",
		prefs.Analytics, prefs.Marketing, prefs.Preferences)

	c.JSON(http.StatusOK, gin.H{"success": true, "preferences": prefs})
}
