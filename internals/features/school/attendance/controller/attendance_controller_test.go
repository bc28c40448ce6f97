package controller

import "testing"

// Re-marking a (student, date) pair must overwrite, not append. That hinges
// entirely on the shape of upsertConflict, so pin it.
func TestUpsertConflictTargetsStudentDate(t *testing.T) {
	wantCols := map[string]bool{
		"attendance_student_id": false,
		"attendance_date":       false,
	}
	for _, col := range upsertConflict.Columns {
		if _, ok := wantCols[col.Name]; !ok {
			t.Fatalf("unexpected conflict column %q", col.Name)
		}
		wantCols[col.Name] = true
	}
	for name, seen := range wantCols {
		if !seen {
			t.Fatalf("conflict target missing column %q", name)
		}
	}

	if upsertConflict.DoNothing {
		t.Fatal("conflict must update the existing row, not skip it")
	}

	updated := map[string]bool{}
	for _, a := range upsertConflict.DoUpdates {
		updated[a.Column.Name] = true
	}
	for _, name := range []string{"attendance_status", "attendance_class_id", "attendance_section_id"} {
		if !updated[name] {
			t.Fatalf("DoUpdates missing column %q", name)
		}
	}
	if updated["attendance_student_id"] || updated["attendance_date"] {
		t.Fatal("DoUpdates must not rewrite the identity columns")
	}
}
