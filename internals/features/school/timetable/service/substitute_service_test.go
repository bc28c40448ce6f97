package service

import (
	"testing"

	"github.com/google/uuid"

	teacherDto "schoolku_backend/internals/features/teachers/dto"
	teacherModel "schoolku_backend/internals/features/teachers/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

func teacherWithSubjects(t *testing.T, subjects ...string) (userModel.UserModel, teacherModel.TeacherProfileModel) {
	t.Helper()
	id := uuid.New()
	raw, err := teacherDto.StringsToJSON(subjects)
	if err != nil {
		t.Fatalf("StringsToJSON: %v", err)
	}
	user := userModel.UserModel{ID: id, Role: "teacher", IsActive: true}
	profile := teacherModel.TeacherProfileModel{UserID: id, SubjectSpecializations: raw}
	return user, profile
}

func TestFilterBySpecialization(t *testing.T) {
	mathUser, mathProfile := teacherWithSubjects(t, "Mathematics", "Physics")
	bioUser, bioProfile := teacherWithSubjects(t, "Biology")

	got := FilterBySpecialization(
		[]userModel.UserModel{mathUser, bioUser},
		[]teacherModel.TeacherProfileModel{mathProfile, bioProfile},
		"Physics",
	)
	if len(got) != 1 || got[0].ID != mathUser.ID {
		t.Fatalf("got %d candidates, want only the physics teacher", len(got))
	}
}

func TestFilterBySpecializationCaseInsensitive(t *testing.T) {
	user, profile := teacherWithSubjects(t, "Mathematics")

	got := FilterBySpecialization(
		[]userModel.UserModel{user},
		[]teacherModel.TeacherProfileModel{profile},
		"mathematics",
	)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1 for case-insensitive match", len(got))
	}
}

func TestFilterBySpecializationDropsTeacherWithoutProfile(t *testing.T) {
	noProfile := userModel.UserModel{ID: uuid.New(), Role: "teacher", IsActive: true}

	got := FilterBySpecialization(
		[]userModel.UserModel{noProfile},
		nil,
		"Mathematics",
	)
	if len(got) != 0 {
		t.Fatalf("got %d candidates, want 0 when no profile exists", len(got))
	}
}

func TestFilterBySpecializationNoMatches(t *testing.T) {
	user, profile := teacherWithSubjects(t, "History")

	got := FilterBySpecialization(
		[]userModel.UserModel{user},
		[]teacherModel.TeacherProfileModel{profile},
		"Chemistry",
	)
	if len(got) != 0 {
		t.Fatalf("got %d candidates, want 0", len(got))
	}
}
