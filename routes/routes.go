package routes

import (
	"MoveCleanWeb/controllers"
	"MoveCleanWeb/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/", controllers.RedirectToDefaultLocale)

	api := r.Group("/api")
	{
		api.POST("/submit-reservation", controllers.SubmitReservation)
		api.GET("/translations", controllers.GetTranslations)
		api.GET("/consent", controllers.GetConsent)
		api.POST("/consent", controllers.SaveConsent)

		adminAuth := api.Group("/admin/auth")
		{
			adminAuth.POST("/login", controllers.AdminLogin)
			adminAuth.POST("/logout", controllers.AdminLogout)
		}

		admin := api.Group("/admin")
		admin.Use(middlewares.AdminAuthMiddleware())
		{
			admin.GET("/reservations", controllers.ListReservations)
		}
	}

	// Locale-prefixed pages live under /{locale}/... and are served from the
	// no-route fallback; a /:locale wildcard would conflict with /api.
	r.NoRoute(controllers.ServePage)
}
