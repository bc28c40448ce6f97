package dto

import (
	"github.com/google/uuid"
)

type CreateFeeRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Amount    float64   `json:"amount" validate:"required,gt=0"`
	Period    string    `json:"period" validate:"required,min=1,max=50"`
	DueDate   string    `json:"due_date" validate:"required"` // YYYY-MM-DD
}
