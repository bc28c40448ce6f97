package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolveFor(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	app := fiber.New()
	var got Paging
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	return got
}

func TestResolvePagingDefaults(t *testing.T) {
	p := resolveFor(t, "/items", 20, 100)
	if p.Page != 1 || p.PerPage != 20 || p.Offset != 0 || p.Limit != 20 {
		t.Fatalf("unexpected paging: %+v", p)
	}
}

func TestResolvePagingExplicit(t *testing.T) {
	p := resolveFor(t, "/items?page=3&per_page=10", 20, 100)
	if p.Page != 3 || p.PerPage != 10 || p.Offset != 20 || p.Limit != 10 {
		t.Fatalf("unexpected paging: %+v", p)
	}
}

func TestResolvePagingLimitAlias(t *testing.T) {
	p := resolveFor(t, "/items?limit=5", 20, 100)
	if p.PerPage != 5 {
		t.Fatalf("per_page = %d, want 5 from ?limit", p.PerPage)
	}
}

func TestResolvePagingClampsBadInput(t *testing.T) {
	p := resolveFor(t, "/items?page=-2&per_page=0", 20, 100)
	if p.Page != 1 || p.PerPage != 20 {
		t.Fatalf("unexpected paging: %+v", p)
	}

	p = resolveFor(t, "/items?per_page=9999", 20, 100)
	if p.PerPage != 100 {
		t.Fatalf("per_page = %d, want capped at 100", p.PerPage)
	}
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(45, 20, Paging{Page: 2, PerPage: 20, Offset: 20, Limit: 20})
	if p.TotalPages != 3 {
		t.Fatalf("total_pages = %d, want 3", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Fatalf("has_next=%v has_prev=%v, want both true", p.HasNext, p.HasPrev)
	}
	if p.Count != 20 || p.Total != 45 {
		t.Fatalf("count=%d total=%d", p.Count, p.Total)
	}
}

func TestBuildPaginationEmpty(t *testing.T) {
	p := BuildPagination(0, 0, Paging{Page: 1, PerPage: 20, Limit: 20})
	if p.TotalPages != 0 || p.HasNext || p.HasPrev {
		t.Fatalf("unexpected pagination for empty set: %+v", p)
	}
}
