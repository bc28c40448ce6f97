package model

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentModel struct {
	AssignmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assignments_id" json:"assignments_id"`
	ClassID      uuid.UUID `gorm:"type:uuid;not null;column:assignments_class_id" json:"assignments_class_id"`
	SectionID    uuid.UUID `gorm:"type:uuid;not null;column:assignments_section_id" json:"assignments_section_id"`
	TeacherID    uuid.UUID `gorm:"type:uuid;not null;column:assignments_teacher_id" json:"assignments_teacher_id"`
	Subject      string    `gorm:"size:100;not null;column:assignments_subject" json:"assignments_subject"`
	Title        string    `gorm:"size:200;not null;column:assignments_title" json:"assignments_title"`
	Description  string    `gorm:"column:assignments_description" json:"assignments_description"`
	Deadline     time.Time `gorm:"not null;column:assignments_deadline" json:"assignments_deadline"`

	CreatedAt time.Time `gorm:"column:assignments_created_at;autoCreateTime" json:"assignments_created_at"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}
