package route

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/assignments/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func AssignmentRoutes(r fiber.Router, db *gorm.DB) {
	ac := controller.NewAssignmentController(db)

	staffOnly := authMiddleware.OnlyRoles(
		fmt.Sprintf(constants.ErrOnlyStaffCanAccess, "assignments"),
		constants.RoleAdmin, constants.RoleTeacher)

	assignments := r.Group("/assignments")
	assignments.Get("/", ac.GetAssignments)
	assignments.Post("/", staffOnly, ac.CreateAssignment)
	assignments.Delete("/:id", staffOnly, ac.DeleteAssignment)

	submissions := r.Group("/submissions")
	submissions.Get("/", staffOnly, ac.GetSubmissions)
	submissions.Post("/",
		authMiddleware.OnlyRoles(
			fmt.Sprintf(constants.ErrOnlyStudentsCanAccess, "submissions"),
			constants.RoleStudent),
		ac.CreateSubmission,
	)
	submissions.Patch("/:id/grade",
		authMiddleware.OnlyRoles(
			fmt.Sprintf(constants.ErrOnlyStaffCanAccess, "grading"),
			constants.RoleTeacher, constants.RoleAdmin),
		ac.GradeSubmission,
	)
}
