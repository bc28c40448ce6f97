package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/users/auth/controller"
	"schoolku_backend/internals/middlewares"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth. Register and login are public (rate limited);
// /me requires a valid token but no particular role.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ac := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ac.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ac.Login)
	auth.Get("/me", authMiddleware.AuthMiddleware(), ac.Me)
}
