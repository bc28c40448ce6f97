package route

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/classes/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// ClassRoutes: reads for any authenticated role, mutation admin only.
func ClassRoutes(r fiber.Router, db *gorm.DB) {
	cc := controller.NewClassController(db)

	classes := r.Group("/classes")
	classes.Get("/", cc.GetClasses)
	classes.Get("/:id", cc.GetClassByID)

	adminOnly := authMiddleware.OnlyRoles(
		fmt.Sprintf(constants.ErrOnlyAdminsCanAccess, "classes"), constants.RoleAdmin)
	classes.Post("/", adminOnly, cc.CreateClass)
	classes.Patch("/:id", adminOnly, cc.UpdateClass)
	classes.Delete("/:id", adminOnly, cc.DeleteClass)
}
