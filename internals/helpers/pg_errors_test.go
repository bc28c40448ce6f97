package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolationPqError(t *testing.T) {
	err := &pq.Error{Code: "23505", Constraint: "uq_classes_name"}
	if !IsUniqueViolation(err) {
		t.Fatal("pq 23505 should be a unique violation")
	}
	if got := UniqueViolationConstraint(err); got != "uq_classes_name" {
		t.Fatalf("constraint = %q, want uq_classes_name", got)
	}
}

func TestIsUniqueViolationWrapped(t *testing.T) {
	err := fmt.Errorf("create class: %w", &pq.Error{Code: "23505"})
	if !IsUniqueViolation(err) {
		t.Fatal("wrapped pq 23505 should be a unique violation")
	}
}

func TestIsUniqueViolationMessageFallback(t *testing.T) {
	err := errors.New(`ERROR: duplicate key value violates unique constraint "uq_timetable_teacher_slot" (SQLSTATE 23505)`)
	if !IsUniqueViolation(err) {
		t.Fatal("message with SQLSTATE 23505 should be a unique violation")
	}
	if got := UniqueViolationConstraint(err); got != "uq_timetable_teacher_slot" {
		t.Fatalf("constraint = %q, want uq_timetable_teacher_slot", got)
	}
}

func TestIsUniqueViolationNegative(t *testing.T) {
	if IsUniqueViolation(nil) {
		t.Fatal("nil is not a violation")
	}
	if IsUniqueViolation(errors.New("connection refused")) {
		t.Fatal("unrelated error is not a violation")
	}
	if IsUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatal("foreign key violation is not a unique violation")
	}
	if got := UniqueViolationConstraint(errors.New("connection refused")); got != "" {
		t.Fatalf("constraint = %q, want empty", got)
	}
}
