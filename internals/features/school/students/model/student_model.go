package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel links one user account (role student) to its enrollment data.
type StudentModel struct {
	StudentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:students_id" json:"students_id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_students_user;column:students_user_id" json:"students_user_id"`
	AdmissionNumber string    `gorm:"size:50;not null;uniqueIndex:uq_students_admission;column:students_admission_number" json:"students_admission_number"`
	RollNumber      string    `gorm:"size:20;column:students_roll_number" json:"students_roll_number"`
	ClassID         uuid.UUID `gorm:"type:uuid;not null;column:students_class_id" json:"students_class_id"`
	SectionID       uuid.UUID `gorm:"type:uuid;not null;column:students_section_id" json:"students_section_id"`
	GuardianName    string    `gorm:"size:100;column:students_guardian_name" json:"students_guardian_name"`
	GuardianPhone   string    `gorm:"size:30;column:students_guardian_phone" json:"students_guardian_phone"`

	CreatedAt time.Time  `gorm:"column:students_created_at;autoCreateTime" json:"students_created_at"`
	UpdatedAt *time.Time `gorm:"column:students_updated_at;autoUpdateTime" json:"students_updated_at,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}
