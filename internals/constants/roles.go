package constants

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleParent  = "parent"
)

var AllRoles = []string{
	RoleAdmin,
	RoleTeacher,
	RoleStudent,
	RoleParent,
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Error message templates used by the role middleware.
const (
	ErrOnlyAdminsCanAccess   = "❌ Only admin can access %s."
	ErrOnlyStaffCanAccess    = "❌ Only admin or teacher can access %s."
	ErrOnlyStudentsCanAccess = "❌ Only student can access %s."
)
