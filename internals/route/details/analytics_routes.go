// internals/route/details/analytics_routes.go
package details

import (
	DashboardRoutes "schoolku_backend/internals/features/analytics/dashboard/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AnalyticsRoutes mounts the admin dashboard.
func AnalyticsRoutes(r fiber.Router, db *gorm.DB) {
	DashboardRoutes.DashboardRoutes(r, db)
}
