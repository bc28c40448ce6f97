package dto

import (
	"github.com/google/uuid"
)

type CreateTimetableEntryRequest struct {
	ClassID      uuid.UUID `json:"class_id" validate:"required"`
	SectionID    uuid.UUID `json:"section_id" validate:"required"`
	TeacherID    uuid.UUID `json:"teacher_id" validate:"required"`
	Subject      string    `json:"subject" validate:"required,min=1,max=100"`
	DayOfWeek    int       `json:"day_of_week" validate:"required,min=1,max=6"`
	PeriodNumber int       `json:"period_number" validate:"required,min=1,max=8"`
	StartTime    string    `json:"start_time" validate:"required,len=5"`
	EndTime      string    `json:"end_time" validate:"required,len=5"`
}

type SubstituteCandidate struct {
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}
