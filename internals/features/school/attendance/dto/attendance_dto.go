package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/attendance/model"
)

const DateLayout = "2006-01-02"

type MarkAttendanceRequest struct {
	Date      string    `json:"date" validate:"required"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	ClassID   uuid.UUID `json:"class_id" validate:"required"`
	SectionID uuid.UUID `json:"section_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=Present Absent Late"`
}

type BulkMarkRecord struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=Present Absent Late"`
}

type BulkMarkRequest struct {
	Date      string           `json:"date" validate:"required"`
	ClassID   uuid.UUID        `json:"class_id" validate:"required"`
	SectionID uuid.UUID        `json:"section_id" validate:"required"`
	Records   []BulkMarkRecord `json:"records" validate:"required,min=1,dive"`
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// BuildRows turns a bulk request into attendance rows. It rejects duplicate
// student ids inside one request up front; letting them through would make
// the batch upsert fight itself.
func BuildRows(req BulkMarkRequest, date time.Time) ([]model.AttendanceModel, error) {
	seen := make(map[uuid.UUID]struct{}, len(req.Records))
	rows := make([]model.AttendanceModel, 0, len(req.Records))
	for _, rec := range req.Records {
		if _, dup := seen[rec.StudentID]; dup {
			return nil, fmt.Errorf("duplicate student_id %s in records", rec.StudentID)
		}
		seen[rec.StudentID] = struct{}{}

		if !model.IsValidStatus(rec.Status) {
			return nil, fmt.Errorf("invalid status %q for student %s", rec.Status, rec.StudentID)
		}
		rows = append(rows, model.AttendanceModel{
			Date:      date,
			StudentID: rec.StudentID,
			ClassID:   req.ClassID,
			SectionID: req.SectionID,
			Status:    rec.Status,
		})
	}
	return rows, nil
}
