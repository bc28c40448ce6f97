package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/school/classes/model"
)

type CreateClassRequest struct {
	Name     string   `json:"name" validate:"required,min=1,max=100"`
	Subjects []string `json:"subjects" validate:"omitempty,dive,min=1"`
}

type UpdateClassRequest struct {
	Name     *string   `json:"name" validate:"omitempty,min=1,max=100"`
	Subjects *[]string `json:"subjects" validate:"omitempty,dive,min=1"`
}

type ClassResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Subjects  []string  `json:"subjects"`
	CreatedAt time.Time `json:"created_at"`
}

func SubjectsToJSON(subjects []string) (datatypes.JSON, error) {
	if subjects == nil {
		subjects = []string{}
	}
	b, err := sonic.Marshal(subjects)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func SubjectsFromJSON(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}

func FromClassModel(m model.ClassModel) ClassResponse {
	return ClassResponse{
		ID:        m.ClassID,
		Name:      m.Name,
		Subjects:  SubjectsFromJSON(m.Subjects),
		CreatedAt: m.CreatedAt,
	}
}

func FromClassModels(ms []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromClassModel(m))
	}
	return out
}
