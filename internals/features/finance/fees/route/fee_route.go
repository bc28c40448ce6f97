package route

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/finance/fees/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func FeeRoutes(r fiber.Router, db *gorm.DB) {
	fc := controller.NewFeeController(db)

	fees := r.Group("/fees")

	// Students may read (scoped to their own fees inside the handler).
	fees.Get("/",
		authMiddleware.OnlyRoles("Only admin or students can view fees",
			constants.RoleAdmin, constants.RoleStudent),
		fc.GetFees,
	)

	adminOnly := authMiddleware.OnlyRoles(
		fmt.Sprintf(constants.ErrOnlyAdminsCanAccess, "fee management"), constants.RoleAdmin)
	fees.Post("/", adminOnly, fc.CreateFee)
	fees.Patch("/:id/pay", adminOnly, fc.PayFee)
}
