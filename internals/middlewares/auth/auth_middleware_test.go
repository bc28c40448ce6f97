package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"schoolku_backend/internals/configs"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func authApp() *fiber.App {
	app := fiber.New()
	app.Get("/private", AuthMiddleware(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals(LocalsUserID),
			"role":    c.Locals(LocalsUserRole),
		})
	})
	return app
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := authApp()

	tok := signTestToken(t, "test-secret", jwt.MapClaims{
		"id":        "3f1d8f3e-58f2-4c38-9a3a-0a2b61a5a111",
		"user_name": "siti",
		"role":      "admin",
		"email":     "siti@example.com",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := authApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/private", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareBadSignature(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := authApp()

	tok := signTestToken(t, "other-secret", jwt.MapClaims{
		"id":  "3f1d8f3e-58f2-4c38-9a3a-0a2b61a5a111",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := authApp()

	tok := signTestToken(t, "test-secret", jwt.MapClaims{
		"id":  "3f1d8f3e-58f2-4c38-9a3a-0a2b61a5a111",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}
