package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ClassModel represents one grade/class, e.g. "Grade 5".
// Subjects is a jsonb array of subject names.
type ClassModel struct {
	ClassID   uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:classes_id" json:"classes_id"`
	Name      string         `gorm:"size:100;uniqueIndex:uq_classes_name;not null;column:classes_name" json:"classes_name"`
	Subjects  datatypes.JSON `gorm:"type:jsonb;column:classes_subjects" json:"classes_subjects,omitempty"`
	CreatedAt time.Time      `gorm:"column:classes_created_at;autoCreateTime" json:"classes_created_at"`
	UpdatedAt *time.Time     `gorm:"column:classes_updated_at;autoUpdateTime" json:"classes_updated_at,omitempty"`
}

func (ClassModel) TableName() string {
	return "classes"
}
