package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/class_sections/dto"
	"schoolku_backend/internals/features/school/class_sections/model"
	classModel "schoolku_backend/internals/features/school/classes/model"
	helper "schoolku_backend/internals/helpers"
)

type ClassSectionController struct {
	DB *gorm.DB
}

func NewClassSectionController(db *gorm.DB) *ClassSectionController {
	return &ClassSectionController{DB: db}
}

var validate = validator.New()

// POST /api/sections
func (sc *ClassSectionController) CreateSection(c *fiber.Ctx) error {
	var input dto.CreateSectionRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	// Referential check: the owning class must exist.
	var count int64
	if err := sc.DB.Model(&classModel.ClassModel{}).
		Where("classes_id = ?", input.ClassID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id does not reference an existing class")
	}

	section := model.ClassSectionModel{
		ClassID:           input.ClassID,
		Name:              input.Name,
		Room:              input.Room,
		HomeroomTeacherID: input.HomeroomTeacherID,
	}
	if err := sc.DB.Create(&section).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Section already exists in this class")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create section")
	}

	return helper.Success(c, fiber.StatusCreated, "Section created", section)
}

// GET /api/sections?class_id=
func (sc *ClassSectionController) GetSections(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := sc.DB.Model(&model.ClassSectionModel{})
	if classIDStr := c.Query("class_id"); classIDStr != "" {
		classID, err := uuid.Parse(classIDStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id filter")
		}
		q = q.Where("class_sections_class_id = ?", classID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count sections")
	}

	var sections []model.ClassSectionModel
	if err := q.Order("class_sections_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&sections).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sections")
	}

	return helper.JsonOK(c, "Sections fetched", fiber.Map{
		"sections":   sections,
		"pagination": helper.BuildPagination(total, len(sections), paging),
	})
}

// PATCH /api/sections/:id
func (sc *ClassSectionController) UpdateSection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid section ID")
	}

	var input dto.UpdateSectionRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	var section model.ClassSectionModel
	if err := sc.DB.First(&section, "class_sections_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Section not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["class_sections_name"] = *input.Name
	}
	if input.Room != nil {
		updates["class_sections_room"] = *input.Room
	}
	if input.HomeroomTeacherID != nil {
		updates["class_sections_homeroom_teacher_id"] = *input.HomeroomTeacherID
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Nothing to update", section)
	}

	if err := sc.DB.Model(&section).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Section already exists in this class")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update section")
	}

	return helper.JsonOK(c, "Section updated", section)
}

// DELETE /api/sections/:id
func (sc *ClassSectionController) DeleteSection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid section ID")
	}

	res := sc.DB.Delete(&model.ClassSectionModel{}, "class_sections_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete section")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Section not found")
	}

	return helper.JsonOK(c, "Section deleted", fiber.Map{"id": id})
}
