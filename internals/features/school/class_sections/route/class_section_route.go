package route

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/class_sections/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// SectionRoutes: reads for any authenticated role, mutation admin only.
func SectionRoutes(r fiber.Router, db *gorm.DB) {
	sc := controller.NewClassSectionController(db)

	sections := r.Group("/sections")
	sections.Get("/", sc.GetSections)

	adminOnly := authMiddleware.OnlyRoles(
		fmt.Sprintf(constants.ErrOnlyAdminsCanAccess, "sections"), constants.RoleAdmin)
	sections.Post("/", adminOnly, sc.CreateSection)
	sections.Patch("/:id", adminOnly, sc.UpdateSection)
	sections.Delete("/:id", adminOnly, sc.DeleteSection)
}
