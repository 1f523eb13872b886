package controllers

import (
	"net/http"
	"strings"

	"MoveCleanWeb/i18n"
	"MoveCleanWeb/middlewares"

	"github.com/gin-gonic/gin"
)

func RedirectToDefaultLocale(c *gin.Context) {
	c.Redirect(http.StatusFound, "/"+i18n.DefaultLocale)
}

// ServePage is the no-route fallback. Every public page lives under
// /{locale}/..., so anything that reaches here either carries a supported
// locale prefix and gets its page context, or it is a 404. Registering a
// /:locale wildcard instead would clash with the /api tree in gin's router.
func ServePage(c *gin.Context) {
	path := c.Request.URL.Path
	if strings.HasPrefix(path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
		return
	}

	locale, ok := i18n.ResolveFromPath(path)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
		return
	}

	tr := middlewares.TranslatorFrom(c)
	if tr == nil || tr.Locale != locale {
		tr = translationService.Translator(locale)
	}

	dict, _ := translationService.GetDictionary(locale)

	c.JSON(http.StatusOK, gin.H{
		"locale":       locale,
		"path":         path,
		"breadcrumbs":  i18n.DeriveBreadcrumbs(path, tr),
		"translations": dict,
	})
}
