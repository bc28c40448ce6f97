package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/finance/fees/dto"
	"schoolku_backend/internals/features/finance/fees/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

type FeeController struct {
	DB *gorm.DB
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{DB: db}
}

var validate = validator.New()

// POST /api/fees
func (fc *FeeController) CreateFee(c *fiber.Ctx) error {
	var input dto.CreateFeeRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	dueDate, err := time.Parse("2006-01-02", input.DueDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "due_date must be YYYY-MM-DD")
	}

	// Referential check: the billed student must exist.
	var count int64
	if err := fc.DB.Model(&studentModel.StudentModel{}).
		Where("students_id = ?", input.StudentID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id does not reference an existing student")
	}

	fee := model.FeeModel{
		StudentID: input.StudentID,
		Amount:    input.Amount,
		Period:    input.Period,
		DueDate:   dueDate,
		Status:    model.StatusPending,
	}
	if err := fc.DB.Create(&fee).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create fee")
	}

	return helper.Success(c, fiber.StatusCreated, "Fee created", fee)
}

// GET /api/fees?student_id=&status=
// Admin sees everything; a student is always scoped to their own record.
func (fc *FeeController) GetFees(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := fc.DB.Model(&model.FeeModel{})

	if authMiddleware.GetUserRole(c) == constants.RoleStudent {
		userID, err := authMiddleware.GetUserUUID(c)
		if err != nil {
			return err
		}
		var student studentModel.StudentModel
		if err := fc.DB.First(&student, "students_user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		q = q.Where("fees_student_id = ?", student.StudentID)
	} else if v := c.Query("student_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id filter")
		}
		q = q.Where("fees_student_id = ?", id)
	}

	if status := c.Query("status"); status != "" {
		if status != model.StatusPending && status != model.StatusCleared {
			return helper.JsonError(c, fiber.StatusBadRequest, "status must be Pending or Cleared")
		}
		q = q.Where("fees_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count fees")
	}

	var fees []model.FeeModel
	if err := q.Order("fees_due_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&fees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch fees")
	}

	return helper.JsonOK(c, "Fees fetched", fiber.Map{
		"fees":       fees,
		"pagination": helper.BuildPagination(total, len(fees), paging),
	})
}

// PATCH /api/fees/:id/pay
// Pending → Cleared with paid_at = now. The guarded UPDATE makes the
// transition race-free: a second pay sees zero rows affected and gets 409.
func (fc *FeeController) PayFee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee ID")
	}

	now := time.Now().UTC()
	res := fc.DB.Model(&model.FeeModel{}).
		Where("fees_id = ? AND fees_status = ?", id, model.StatusPending).
		Updates(map[string]interface{}{
			"fees_status":  model.StatusCleared,
			"fees_paid_at": now,
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update fee")
	}
	if res.RowsAffected == 0 {
		var fee model.FeeModel
		if err := fc.DB.First(&fee, "fees_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Fee not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		return helper.JsonError(c, fiber.StatusConflict, "Fee is already cleared")
	}

	var fee model.FeeModel
	if err := fc.DB.First(&fee, "fees_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "Fee paid", fee)
}
