package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAssignmentRequest struct {
	ClassID     uuid.UUID `json:"class_id" validate:"required"`
	SectionID   uuid.UUID `json:"section_id" validate:"required"`
	Subject     string    `json:"subject" validate:"required,min=1,max=100"`
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline" validate:"required"`
}

type CreateSubmissionRequest struct {
	AssignmentID uuid.UUID `json:"assignment_id" validate:"required"`
	Link         string    `json:"link" validate:"required,url,max=500"`
}

type GradeSubmissionRequest struct {
	Grade    string  `json:"grade" validate:"required,min=1,max=10"`
	Feedback *string `json:"feedback"`
}
