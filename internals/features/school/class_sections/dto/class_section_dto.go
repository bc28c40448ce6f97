package dto

import (
	"github.com/google/uuid"
)

type CreateSectionRequest struct {
	ClassID           uuid.UUID  `json:"class_id" validate:"required"`
	Name              string     `json:"name" validate:"required,min=1,max=50"`
	Room              *string    `json:"room" validate:"omitempty,max=50"`
	HomeroomTeacherID *uuid.UUID `json:"homeroom_teacher_id"`
}

type UpdateSectionRequest struct {
	Name              *string    `json:"name" validate:"omitempty,min=1,max=50"`
	Room              *string    `json:"room" validate:"omitempty,max=50"`
	HomeroomTeacherID *uuid.UUID `json:"homeroom_teacher_id"`
}
