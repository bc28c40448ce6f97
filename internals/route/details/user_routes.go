// internals/route/details/user_routes.go
package details

import (
	UserRoutes "schoolku_backend/internals/features/users/user/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AccountRoutes mounts admin-level user management.
func AccountRoutes(r fiber.Router, db *gorm.DB) {
	UserRoutes.UserAdminRoutes(r, db)
}
