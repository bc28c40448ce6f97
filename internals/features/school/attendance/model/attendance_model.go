package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLate    = "Late"
)

// AttendanceModel holds one student's status for one date. The composite
// unique index makes the store the authority on "one record per student per
// day"; bulk marking upserts against it instead of appending duplicates.
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_student_date;column:attendance_date" json:"attendance_date"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_student_date;column:attendance_student_id" json:"attendance_student_id"`
	ClassID      uuid.UUID `gorm:"type:uuid;not null;column:attendance_class_id" json:"attendance_class_id"`
	SectionID    uuid.UUID `gorm:"type:uuid;not null;column:attendance_section_id" json:"attendance_section_id"`
	Status       string    `gorm:"type:varchar(10);not null;column:attendance_status" json:"attendance_status"`

	CreatedAt time.Time  `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	UpdatedAt *time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`
}

func (AttendanceModel) TableName() string {
	return "attendance_records"
}

func IsValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusLate
}
