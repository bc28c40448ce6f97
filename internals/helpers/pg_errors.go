package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a postgres duplicate-key error.
// The store's composite indexes are the authority on slot/identity
// uniqueness; handlers translate this into 409 Conflict.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}
	// pgx surfaces the SQLSTATE in the message; keep a string fallback so the
	// translation does not depend on which driver produced the error.
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "sqlstate 23505") ||
		strings.Contains(msg, "duplicate key value")
}

// UniqueViolationConstraint returns the violated constraint name when the
// driver exposes it, "" otherwise. Used to pick the right Conflict message
// when a table carries more than one composite index.
func UniqueViolationConstraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		return pqErr.Constraint
	}
	if err != nil {
		// "... unique constraint \"idx_name\" (SQLSTATE 23505)"
		msg := err.Error()
		if i := strings.Index(msg, `unique constraint "`); i >= 0 {
			rest := msg[i+len(`unique constraint "`):]
			if j := strings.Index(rest, `"`); j >= 0 {
				return rest[:j]
			}
		}
	}
	return ""
}
