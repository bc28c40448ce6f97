package route

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/attendance/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ac := controller.NewAttendanceController(db)

	attendance := r.Group("/attendance")
	attendance.Get("/", ac.GetAttendance)

	staffOnly := authMiddleware.OnlyRoles(
		fmt.Sprintf(constants.ErrOnlyStaffCanAccess, "attendance marking"),
		constants.RoleAdmin, constants.RoleTeacher)
	attendance.Post("/", staffOnly, ac.MarkAttendance)
	attendance.Post("/bulk", staffOnly, ac.BulkMark)
}
