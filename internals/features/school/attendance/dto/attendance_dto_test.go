package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/attendance/model"
)

func TestBuildRows(t *testing.T) {
	classID := uuid.New()
	sectionID := uuid.New()
	s1, s2 := uuid.New(), uuid.New()
	date := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	req := BulkMarkRequest{
		Date:      "2026-08-30",
		ClassID:   classID,
		SectionID: sectionID,
		Records: []BulkMarkRecord{
			{StudentID: s1, Status: model.StatusPresent},
			{StudentID: s2, Status: model.StatusLate},
		},
	}

	rows, err := BuildRows(req, date)
	if err != nil {
		t.Fatalf("BuildRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	for i, row := range rows {
		if row.ClassID != classID || row.SectionID != sectionID {
			t.Fatalf("row %d carries wrong class/section: %+v", i, row)
		}
		if !row.Date.Equal(date) {
			t.Fatalf("row %d date = %v, want %v", i, row.Date, date)
		}
	}
	if rows[0].StudentID != s1 || rows[0].Status != model.StatusPresent {
		t.Fatalf("row 0 = %+v", rows[0])
	}
	if rows[1].StudentID != s2 || rows[1].Status != model.StatusLate {
		t.Fatalf("row 1 = %+v", rows[1])
	}
}

func TestBuildRowsRejectsDuplicateStudent(t *testing.T) {
	s := uuid.New()
	req := BulkMarkRequest{
		Date:      "2026-08-30",
		ClassID:   uuid.New(),
		SectionID: uuid.New(),
		Records: []BulkMarkRecord{
			{StudentID: s, Status: model.StatusPresent},
			{StudentID: s, Status: model.StatusAbsent},
		},
	}
	if _, err := BuildRows(req, time.Now()); err == nil {
		t.Fatal("expected error for duplicate student_id, got nil")
	}
}

func TestBuildRowsRejectsInvalidStatus(t *testing.T) {
	req := BulkMarkRequest{
		Date:      "2026-08-30",
		ClassID:   uuid.New(),
		SectionID: uuid.New(),
		Records: []BulkMarkRecord{
			{StudentID: uuid.New(), Status: "Sleeping"},
		},
	}
	if _, err := BuildRows(req, time.Now()); err == nil {
		t.Fatal("expected error for invalid status, got nil")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-30")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.August || d.Day() != 30 {
		t.Fatalf("parsed = %v", d)
	}
	if _, err := ParseDate("30-08-2026"); err == nil {
		t.Fatal("expected error for wrong layout, got nil")
	}
}
