package model

import (
	"time"

	"github.com/google/uuid"
)

// SalaryPaymentModel is an append-only payment event. The log is owned by a
// teacher profile but lives in its own table, so history reads and audits
// never mutate the profile row. There is intentionally no uniqueness on
// (teacher, month): paying the same month twice appends two events.
type SalaryPaymentModel struct {
	SalaryPaymentID  uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:salary_payments_id" json:"salary_payments_id"`
	TeacherProfileID uuid.UUID `gorm:"type:uuid;not null;index:idx_salary_payments_teacher;column:salary_payments_teacher_profile_id" json:"salary_payments_teacher_profile_id"`
	Month            string    `gorm:"size:7;not null;column:salary_payments_month" json:"salary_payments_month"` // "2026-08"
	Amount           float64   `gorm:"type:numeric(12,2);not null;column:salary_payments_amount" json:"salary_payments_amount"`
	PaidAt           time.Time `gorm:"not null;column:salary_payments_paid_at" json:"salary_payments_paid_at"`
}

func (SalaryPaymentModel) TableName() string {
	return "teacher_salary_payments"
}
