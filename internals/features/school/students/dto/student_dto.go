package dto

import (
	"github.com/google/uuid"

	studentModel "schoolku_backend/internals/features/school/students/model"
	userDto "schoolku_backend/internals/features/users/user/dto"
	userModel "schoolku_backend/internals/features/users/user/model"
)

// CreateStudentRequest admits a student. When user_id is empty a new user
// account (role student) is created in the same transaction as the student
// row, so a half-created account cannot be left behind.
type CreateStudentRequest struct {
	UserID          *uuid.UUID `json:"user_id"`
	UserName        string     `json:"user_name" validate:"omitempty,min=3,max=50"`
	Email           string     `json:"email" validate:"omitempty,email"`
	Password        string     `json:"password" validate:"omitempty,min=8"`
	FullName        string     `json:"full_name" validate:"omitempty,min=2,max=100"`
	AdmissionNumber string     `json:"admission_number" validate:"required,min=1,max=50"`
	RollNumber      string     `json:"roll_number" validate:"omitempty,max=20"`
	ClassID         uuid.UUID  `json:"class_id" validate:"required"`
	SectionID       uuid.UUID  `json:"section_id" validate:"required"`
	GuardianName    string     `json:"guardian_name" validate:"omitempty,max=100"`
	GuardianPhone   string     `json:"guardian_phone" validate:"omitempty,max=30"`
}

type UpdateStudentRequest struct {
	RollNumber    *string    `json:"roll_number" validate:"omitempty,max=20"`
	ClassID       *uuid.UUID `json:"class_id"`
	SectionID     *uuid.UUID `json:"section_id"`
	GuardianName  *string    `json:"guardian_name" validate:"omitempty,max=100"`
	GuardianPhone *string    `json:"guardian_phone" validate:"omitempty,max=30"`
}

type StudentResponse struct {
	Student studentModel.StudentModel `json:"student"`
	User    *userDto.UserResponse     `json:"user,omitempty"`
}

func FromStudentModel(s studentModel.StudentModel, u *userModel.UserModel) StudentResponse {
	resp := StudentResponse{Student: s}
	if u != nil {
		ur := userDto.FromUserModel(*u)
		resp.User = &ur
	}
	return resp
}
