package route

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/teachers/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func TeacherRoutes(r fiber.Router, db *gorm.DB) {
	tc := controller.NewTeacherController(db)

	adminOnly := authMiddleware.OnlyRoles(
		fmt.Sprintf(constants.ErrOnlyAdminsCanAccess, "teacher management"), constants.RoleAdmin)
	teachers := r.Group("/teachers", adminOnly)
	teachers.Get("/", tc.GetTeachers)
	teachers.Post("/", tc.CreateTeacher)
	teachers.Patch("/:id", tc.UpdateTeacher)
	teachers.Post("/:id/pay-salary", tc.PaySalary)
	teachers.Get("/:id/salary-history", tc.GetSalaryHistory)
}
