package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/classes/dto"
	"schoolku_backend/internals/features/school/classes/model"
	helper "schoolku_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

// POST /api/classes
func (cc *ClassController) CreateClass(c *fiber.Ctx) error {
	var input dto.CreateClassRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	subjects, err := dto.SubjectsToJSON(input.Subjects)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subjects payload")
	}

	class := model.ClassModel{
		Name:     input.Name,
		Subjects: subjects,
	}
	if err := cc.DB.Create(&class).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Class name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}

	return helper.Success(c, fiber.StatusCreated, "Class created", dto.FromClassModel(class))
}

// GET /api/classes
func (cc *ClassController) GetClasses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := cc.DB.Model(&model.ClassModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count classes")
	}

	var classes []model.ClassModel
	if err := cc.DB.Order("classes_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch classes")
	}

	return helper.JsonOK(c, "Classes fetched", fiber.Map{
		"classes":    dto.FromClassModels(classes),
		"pagination": helper.BuildPagination(total, len(classes), paging),
	})
}

// GET /api/classes/:id
func (cc *ClassController) GetClassByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var class model.ClassModel
	if err := cc.DB.First(&class, "classes_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "Class fetched", dto.FromClassModel(class))
}

// PATCH /api/classes/:id
func (cc *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var input dto.UpdateClassRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	var class model.ClassModel
	if err := cc.DB.First(&class, "classes_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["classes_name"] = *input.Name
	}
	if input.Subjects != nil {
		subjects, err := dto.SubjectsToJSON(*input.Subjects)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subjects payload")
		}
		updates["classes_subjects"] = subjects
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Nothing to update", dto.FromClassModel(class))
	}

	if err := cc.DB.Model(&class).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Class name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class")
	}

	return helper.JsonOK(c, "Class updated", dto.FromClassModel(class))
}

// DELETE /api/classes/:id
// Deleting a class does NOT cascade to its sections or students; their
// references simply go stale. Callers are expected to reassign first.
func (cc *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	res := cc.DB.Delete(&model.ClassModel{}, "classes_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	return helper.JsonOK(c, "Class deleted", fiber.Map{"id": id})
}
