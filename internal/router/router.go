// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"service-market/internal/cache"
	"service-market/internal/database"
	"service-market/internal/handler"
	"service-market/internal/handler/admin"
	"service-market/internal/handler/auth"
	"service-market/internal/handler/me"
	"service-market/internal/handler/profiles"
	"service-market/internal/middleware"
)

// Setup registers every route. The caller resolver runs on the whole /api
// group so even public endpoints see the viewer's tier.
func Setup(e *echo.Echo, db database.DB, sessions cache.Cache) {
	api := e.Group("/api", middleware.ResolveCaller(db, sessions))

	api.GET("/health", handler.HealthHandler(db, sessions))

	api.GET("/auth/me", auth.MeHandler())
	api.POST("/auth/register", auth.RegisterHandler(db, sessions))
	api.POST("/auth/login", auth.LoginHandler(db, sessions))
	api.POST("/auth/logout", auth.LogoutHandler(sessions))

	// Public directory; visibility scoping happens inside the query.
	api.GET("/profiles", profiles.ListHandler(db))

	// Owner-only self-service.
	apiMe := api.Group("/me", middleware.RequireAuth)
	apiMe.PUT("/profile", me.UpdateProfileHandler(db))
	apiMe.PATCH("/hide", me.HideHandler(db))
	apiMe.DELETE("", me.DeleteHandler(db, sessions))

	// Admin panel.
	apiAdmin := api.Group("/admin", middleware.RequireAdmin)
	apiAdmin.GET("/users", admin.ListAccountsHandler(db))
	apiAdmin.PUT("/users/:id", admin.UpdateAccountHandler(db))
	apiAdmin.DELETE("/users/:id", admin.DeleteAccountHandler(db))
}
