package route

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/analytics/dashboard/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func DashboardRoutes(r fiber.Router, db *gorm.DB) {
	dc := controller.NewDashboardController(db)

	analytics := r.Group("/analytics",
		authMiddleware.OnlyRoles(
			fmt.Sprintf(constants.ErrOnlyAdminsCanAccess, "analytics"),
			constants.RoleAdmin),
	)
	analytics.Get("/dashboard", dc.GetDashboard)
}
