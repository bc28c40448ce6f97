// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"schoolku_backend/internals/configs"
)

// AuthMiddleware verifies the bearer token and stores the identity claims in
// ctx locals. Every protected group composes this before any role check.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			// Signature mismatch and expiry both land here; fail closed.
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or expired token")
		}

		if err := storeClaimsToLocals(c, claims); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := strings.TrimSpace(c.Get("Authorization"))
	if h == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing Authorization header")
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid Authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}
