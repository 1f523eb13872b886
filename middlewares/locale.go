package middlewares

import (
	"MoveCleanWeb/i18n"

	"github.com/gin-gonic/gin"
)

const ContextTranslatorKey = "translator"

// LocaleMiddleware resolves the locale from the path prefix and attaches a
// request-scoped translator. Locale-agnostic routes (everything under /api)
// fall back to the default locale; locale validation for pages happens in
// the page handler, which 404s unsupported prefixes.
func LocaleMiddleware(bundle *i18n.Bundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale, ok := i18n.ResolveFromPath(c.Request.URL.Path)
		if !ok {
			locale = i18n.DefaultLocale
		}
		c.Set(ContextTranslatorKey, bundle.Translator(locale))
		c.Next()
	}
}

// TranslatorFrom returns the request's translator, or nil when the
// middleware did not run.
func TranslatorFrom(c *gin.Context) *i18n.Translator {
	if value, ok := c.Get(ContextTranslatorKey); ok {
		if tr, ok := value.(*i18n.Translator); ok {
			return tr
		}
	}
	return nil
}
