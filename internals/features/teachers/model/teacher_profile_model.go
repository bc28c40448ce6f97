package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TeacherProfileModel carries employment data for one teacher user.
// Qualifications and SubjectSpecializations are jsonb string arrays.
type TeacherProfileModel struct {
	TeacherProfileID       uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_profiles_id" json:"teacher_profiles_id"`
	UserID                 uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_teacher_profiles_user;column:teacher_profiles_user_id" json:"teacher_profiles_user_id"`
	EmployeeID             string         `gorm:"size:50;not null;uniqueIndex:uq_teacher_profiles_employee;column:teacher_profiles_employee_id" json:"teacher_profiles_employee_id"`
	Designation            string         `gorm:"size:100;column:teacher_profiles_designation" json:"teacher_profiles_designation"`
	Salary                 float64        `gorm:"type:numeric(12,2);not null;default:0;column:teacher_profiles_salary" json:"teacher_profiles_salary"`
	TaxNumber              string         `gorm:"size:50;column:teacher_profiles_tax_number" json:"teacher_profiles_tax_number"`
	Qualifications         datatypes.JSON `gorm:"type:jsonb;column:teacher_profiles_qualifications" json:"teacher_profiles_qualifications,omitempty"`
	SubjectSpecializations datatypes.JSON `gorm:"type:jsonb;column:teacher_profiles_subject_specializations" json:"teacher_profiles_subject_specializations,omitempty"`
	JoinDate               *time.Time     `gorm:"type:date;column:teacher_profiles_join_date" json:"teacher_profiles_join_date,omitempty"`

	CreatedAt time.Time  `gorm:"column:teacher_profiles_created_at;autoCreateTime" json:"teacher_profiles_created_at"`
	UpdatedAt *time.Time `gorm:"column:teacher_profiles_updated_at;autoUpdateTime" json:"teacher_profiles_updated_at,omitempty"`
}

func (TeacherProfileModel) TableName() string {
	return "teacher_profiles"
}
