// internals/route/details/finance_routes.go
package details

import (
	FeeRoutes "schoolku_backend/internals/features/finance/fees/route"
	TeacherRoutes "schoolku_backend/internals/features/teachers/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FinanceRoutes mounts student fees and teacher payroll.
func FinanceRoutes(r fiber.Router, db *gorm.DB) {
	FeeRoutes.FeeRoutes(r, db)
	TeacherRoutes.TeacherRoutes(r, db)
}
