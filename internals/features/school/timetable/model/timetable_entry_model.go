package model

import (
	"time"

	"github.com/google/uuid"
)

// Index names are load-bearing: the controller maps a unique violation on
// uq_timetable_teacher_slot vs uq_timetable_class_slot to different 409
// messages.
const (
	TeacherSlotIndex = "uq_timetable_teacher_slot"
	ClassSlotIndex   = "uq_timetable_class_slot"
)

// TimetableEntryModel is one scheduled period. Slot uniqueness — one entry
// per (teacher, day, period) and per (class, section, day, period) — is
// enforced only by the composite indexes below; there is deliberately no
// application-level pre-check, so two racing inserts cannot both win.
type TimetableEntryModel struct {
	TimetableEntryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:timetable_entries_id" json:"timetable_entries_id"`
	ClassID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_timetable_class_slot;column:timetable_entries_class_id" json:"timetable_entries_class_id"`
	SectionID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_timetable_class_slot;column:timetable_entries_section_id" json:"timetable_entries_section_id"`
	TeacherID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_timetable_teacher_slot;column:timetable_entries_teacher_id" json:"timetable_entries_teacher_id"`
	Subject          string    `gorm:"size:100;not null;column:timetable_entries_subject" json:"timetable_entries_subject"`
	DayOfWeek        int       `gorm:"not null;uniqueIndex:uq_timetable_teacher_slot;uniqueIndex:uq_timetable_class_slot;column:timetable_entries_day_of_week" json:"timetable_entries_day_of_week"`
	PeriodNumber     int       `gorm:"not null;uniqueIndex:uq_timetable_teacher_slot;uniqueIndex:uq_timetable_class_slot;column:timetable_entries_period_number" json:"timetable_entries_period_number"`
	StartTime        string    `gorm:"size:5;not null;column:timetable_entries_start_time" json:"timetable_entries_start_time"`
	EndTime          string    `gorm:"size:5;not null;column:timetable_entries_end_time" json:"timetable_entries_end_time"`

	CreatedAt time.Time `gorm:"column:timetable_entries_created_at;autoCreateTime" json:"timetable_entries_created_at"`
}

func (TimetableEntryModel) TableName() string {
	return "timetable_entries"
}
