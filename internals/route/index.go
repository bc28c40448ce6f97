// file: internals/route/index.go
package routes

import (
	"log"

	AuthRoutes "schoolku_backend/internals/features/users/auth/route"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
	routeDetails "schoolku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH (public) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	AuthRoutes.AuthRoutes(app, db)

	// ===================== PRIVATE =====================
	// Everything below requires a valid bearer token.
	log.Println("[INFO] Setting up PRIVATE /api group...")
	api := app.Group("/api", authMiddleware.AuthMiddleware())

	log.Println("[INFO] Mounting School routes...")
	routeDetails.SchoolRoutes(api, db)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinanceRoutes(api, db)

	log.Println("[INFO] Mounting Account routes...")
	routeDetails.AccountRoutes(api, db)

	log.Println("[INFO] Mounting Analytics routes...")
	routeDetails.AnalyticsRoutes(api, db)
}
