package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "Pending"
	StatusCleared = "Cleared"
)

// FeeModel is one bill for one student, e.g. period "2026-08".
type FeeModel struct {
	FeeID     uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:fees_id" json:"fees_id"`
	StudentID uuid.UUID  `gorm:"type:uuid;not null;index:idx_fees_student;column:fees_student_id" json:"fees_student_id"`
	Amount    float64    `gorm:"type:numeric(12,2);not null;column:fees_amount" json:"fees_amount"`
	Period    string     `gorm:"size:50;not null;column:fees_period" json:"fees_period"`
	DueDate   time.Time  `gorm:"type:date;not null;column:fees_due_date" json:"fees_due_date"`
	Status    string     `gorm:"type:varchar(10);not null;default:'Pending';column:fees_status" json:"fees_status"`
	PaidAt    *time.Time `gorm:"column:fees_paid_at" json:"fees_paid_at,omitempty"`

	CreatedAt time.Time  `gorm:"column:fees_created_at;autoCreateTime" json:"fees_created_at"`
	UpdatedAt *time.Time `gorm:"column:fees_updated_at;autoUpdateTime" json:"fees_updated_at,omitempty"`
}

func (FeeModel) TableName() string {
	return "fees"
}
