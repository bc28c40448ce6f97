package route

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/users/user/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// UserAdminRoutes mounts admin-only user management.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	uc := controller.NewUserController(db)

	users := r.Group("/users",
		authMiddleware.OnlyRoles(
			fmt.Sprintf(constants.ErrOnlyAdminsCanAccess, "user management"),
			constants.RoleAdmin),
	)
	users.Get("/", uc.GetUsers)
	users.Delete("/:id", uc.DeleteUser)
}
