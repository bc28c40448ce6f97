package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Locals keys. Keep these uniform: the role middleware and every controller
// read the same names.
const (
	LocalsUserID   = "user_id"
	LocalsUserName = "user_name"
	LocalsUserRole = "userRole"
	LocalsEmail    = "user_email"
)

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) error {
	idStr, _ := claims["id"].(string)
	if _, err := uuid.Parse(idStr); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing role claim")
	}

	c.Locals(LocalsUserID, idStr)
	c.Locals(LocalsUserRole, role)
	if name, _ := claims["user_name"].(string); name != "" {
		c.Locals(LocalsUserName, name)
	}
	if email, _ := claims["email"].(string); email != "" {
		c.Locals(LocalsEmail, email)
	}
	return nil
}

// GetUserUUID reads the authenticated user's id from locals.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	idStr, ok := c.Locals(LocalsUserID).(string)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid UUID format")
	}
	return id, nil
}

func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalsUserRole).(string)
	return role
}
