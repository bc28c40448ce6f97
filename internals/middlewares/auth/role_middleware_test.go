package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func roleApp(role string, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	if role != "" {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals(LocalsUserRole, role)
			return c.Next()
		})
	}
	app.Get("/guarded", handler, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestOnlyRolesAllows(t *testing.T) {
	app := roleApp("admin", OnlyRoles("admins only", "admin"))
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestOnlyRolesAllowsAnyListed(t *testing.T) {
	app := roleApp("teacher", OnlyRoles("staff only", "admin", "teacher"))
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestOnlyRolesForbidsOtherRole(t *testing.T) {
	app := roleApp("student", OnlyRoles("admins only", "admin"))
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestOnlyRolesMissingRoleClaim(t *testing.T) {
	app := roleApp("", OnlyRoles("admins only", "admin"))
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}
