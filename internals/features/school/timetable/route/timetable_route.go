package route

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/timetable/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func TimetableRoutes(r fiber.Router, db *gorm.DB) {
	tc := controller.NewTimetableController(db)

	timetable := r.Group("/timetable")
	timetable.Get("/substitutes", tc.GetSubstitutes)
	timetable.Get("/", tc.GetEntries)

	adminOnly := authMiddleware.OnlyRoles(
		fmt.Sprintf(constants.ErrOnlyAdminsCanAccess, "the timetable"), constants.RoleAdmin)
	timetable.Post("/", adminOnly, tc.CreateEntry)
	timetable.Delete("/:id", adminOnly, tc.DeleteEntry)
}
