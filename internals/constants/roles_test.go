package constants

import (
	"fmt"
	"strings"
	"testing"
)

func TestIsValidRole(t *testing.T) {
	for _, role := range AllRoles {
		if !IsValidRole(role) {
			t.Fatalf("%q should be valid", role)
		}
	}
	for _, role := range []string{"", "superadmin", "Admin"} {
		if IsValidRole(role) {
			t.Fatalf("%q should be invalid", role)
		}
	}
}

func TestRoleErrorTemplates(t *testing.T) {
	cases := []struct {
		template string
		want     string
	}{
		{ErrOnlyAdminsCanAccess, "❌ Only admin can access classes."},
		{ErrOnlyStaffCanAccess, "❌ Only admin or teacher can access classes."},
		{ErrOnlyStudentsCanAccess, "❌ Only student can access classes."},
	}
	for _, tc := range cases {
		got := fmt.Sprintf(tc.template, "classes")
		if got != tc.want {
			t.Fatalf("formatted = %q, want %q", got, tc.want)
		}
		if strings.Contains(got, "%!") {
			t.Fatalf("bad verb expansion: %q", got)
		}
	}
}
