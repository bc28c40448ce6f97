// internals/route/details/school_routes.go
package details

import (
	AssignmentRoutes "schoolku_backend/internals/features/school/assignments/route"
	AttendanceRoutes "schoolku_backend/internals/features/school/attendance/route"
	SectionRoutes "schoolku_backend/internals/features/school/class_sections/route"
	ClassRoutes "schoolku_backend/internals/features/school/classes/route"
	StudentRoutes "schoolku_backend/internals/features/school/students/route"
	TimetableRoutes "schoolku_backend/internals/features/school/timetable/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SchoolRoutes mounts every academic feature under the authenticated group.
// Role guards live inside each feature's route file.
func SchoolRoutes(r fiber.Router, db *gorm.DB) {
	ClassRoutes.ClassRoutes(r, db)
	SectionRoutes.SectionRoutes(r, db)
	StudentRoutes.StudentRoutes(r, db)
	AttendanceRoutes.AttendanceRoutes(r, db)
	TimetableRoutes.TimetableRoutes(r, db)
	AssignmentRoutes.AssignmentRoutes(r, db)
}
