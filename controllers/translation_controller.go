package controllers

import (
	"net/http"

	"MoveCleanWeb/i18n"

	"github.com/gin-gonic/gin"
)

var translationService TranslationServiceInterface

func SetTranslationService(service TranslationServiceInterface) {
	translationService = service
}

func GetTranslations(c *gin.Context) {
	lang := c.DefaultQuery("lang", i18n.DefaultLocale)

	dict, ok := translationService.GetDictionary(lang)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unsupported locale"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"locale":       lang,
		"translations": dict,
	})
}
