package route

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/students/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	sc := controller.NewStudentController(db)

	students := r.Group("/students")

	// /me must be registered before /:id so it is not swallowed by the param route.
	students.Get("/me",
		authMiddleware.OnlyRoles(
			fmt.Sprintf(constants.ErrOnlyStudentsCanAccess, "their own record"),
			constants.RoleStudent),
		sc.GetMyStudent,
	)

	staffOnly := authMiddleware.OnlyRoles(
		fmt.Sprintf(constants.ErrOnlyStaffCanAccess, "student records"),
		constants.RoleAdmin, constants.RoleTeacher)
	students.Get("/", staffOnly, sc.GetStudents)
	students.Get("/:id", staffOnly, sc.GetStudentByID)

	adminOnly := authMiddleware.OnlyRoles(
		fmt.Sprintf(constants.ErrOnlyAdminsCanAccess, "student management"), constants.RoleAdmin)
	students.Post("/", adminOnly, sc.CreateStudent)
	students.Patch("/:id", adminOnly, sc.UpdateStudent)
	students.Delete("/:id", adminOnly, sc.DeleteStudent)
}
