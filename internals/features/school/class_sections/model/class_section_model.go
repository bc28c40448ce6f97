package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassSectionModel is a subdivision of a class, e.g. "Grade 10 - A".
// (class, name) is unique at the store level.
type ClassSectionModel struct {
	ClassSectionID    uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_sections_id" json:"class_sections_id"`
	ClassID           uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_class_sections_class_name;column:class_sections_class_id" json:"class_sections_class_id"`
	Name              string     `gorm:"size:50;not null;uniqueIndex:uq_class_sections_class_name;column:class_sections_name" json:"class_sections_name"`
	Room              *string    `gorm:"size:50;column:class_sections_room" json:"class_sections_room,omitempty"`
	HomeroomTeacherID *uuid.UUID `gorm:"type:uuid;column:class_sections_homeroom_teacher_id" json:"class_sections_homeroom_teacher_id,omitempty"`

	CreatedAt time.Time  `gorm:"column:class_sections_created_at;autoCreateTime" json:"class_sections_created_at"`
	UpdatedAt *time.Time `gorm:"column:class_sections_updated_at;autoUpdateTime" json:"class_sections_updated_at,omitempty"`
}

func (ClassSectionModel) TableName() string {
	return "class_sections"
}
