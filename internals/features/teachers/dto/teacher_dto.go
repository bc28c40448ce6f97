package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreateTeacherRequest struct {
	UserID                 *uuid.UUID `json:"user_id"`
	UserName               string     `json:"user_name" validate:"omitempty,min=3,max=50"`
	Email                  string     `json:"email" validate:"omitempty,email"`
	Password               string     `json:"password" validate:"omitempty,min=8"`
	FullName               string     `json:"full_name" validate:"omitempty,min=2,max=100"`
	EmployeeID             string     `json:"employee_id" validate:"required,min=1,max=50"`
	Designation            string     `json:"designation" validate:"omitempty,max=100"`
	Salary                 float64    `json:"salary" validate:"gte=0"`
	TaxNumber              string     `json:"tax_number" validate:"omitempty,max=50"`
	Qualifications         []string   `json:"qualifications" validate:"omitempty,dive,min=1"`
	SubjectSpecializations []string   `json:"subject_specializations" validate:"omitempty,dive,min=1"`
	JoinDate               *string    `json:"join_date"` // YYYY-MM-DD
}

type UpdateTeacherRequest struct {
	Designation            *string   `json:"designation" validate:"omitempty,max=100"`
	Salary                 *float64  `json:"salary" validate:"omitempty,gte=0"`
	TaxNumber              *string   `json:"tax_number" validate:"omitempty,max=50"`
	Qualifications         *[]string `json:"qualifications" validate:"omitempty,dive,min=1"`
	SubjectSpecializations *[]string `json:"subject_specializations" validate:"omitempty,dive,min=1"`
}

type PaySalaryRequest struct {
	Month  string  `json:"month" validate:"required,len=7"` // "2026-08"
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

func StringsToJSON(values []string) (datatypes.JSON, error) {
	if values == nil {
		values = []string{}
	}
	b, err := sonic.Marshal(values)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func SpecializationsFromJSON(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}

// ParseMonth validates a "YYYY-MM" payroll label.
func ParseMonth(s string) (time.Time, error) {
	return time.Parse("2006-01", s)
}
