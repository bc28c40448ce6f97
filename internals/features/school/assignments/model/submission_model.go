package model

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionModel links an assignment with a student's uploaded work.
// One submission per (assignment, student); a re-submit is a conflict.
type SubmissionModel struct {
	SubmissionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:submissions_id" json:"submissions_id"`
	AssignmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_submissions_assignment_student;column:submissions_assignment_id" json:"submissions_assignment_id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_submissions_assignment_student;column:submissions_student_id" json:"submissions_student_id"`
	Link         string    `gorm:"size:500;not null;column:submissions_link" json:"submissions_link"`
	Grade        *string   `gorm:"size:10;column:submissions_grade" json:"submissions_grade,omitempty"`
	Feedback     *string   `gorm:"column:submissions_feedback" json:"submissions_feedback,omitempty"`

	SubmittedAt time.Time `gorm:"column:submissions_submitted_at;autoCreateTime" json:"submissions_submitted_at"`
}

func (SubmissionModel) TableName() string {
	return "submissions"
}
