package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/teachers/dto"
	"schoolku_backend/internals/features/teachers/model"
	authHelper "schoolku_backend/internals/features/users/auth/helper"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

var validate = validator.New()

// POST /api/teachers
// User account and profile are created in one transaction; a failure in the
// profile insert rolls the account back instead of leaving an orphaned user.
func (tc *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var input dto.CreateTeacherRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	qualifications, err := dto.StringsToJSON(input.Qualifications)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid qualifications payload")
	}
	specializations, err := dto.StringsToJSON(input.SubjectSpecializations)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject_specializations payload")
	}

	var joinDate *time.Time
	if input.JoinDate != nil && *input.JoinDate != "" {
		d, err := time.Parse("2006-01-02", *input.JoinDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "join_date must be YYYY-MM-DD")
		}
		joinDate = &d
	}

	var profile model.TeacherProfileModel
	var user userModel.UserModel

	txErr := tc.DB.Transaction(func(tx *gorm.DB) error {
		if input.UserID != nil {
			if err := tx.First(&user, "id = ?", *input.UserID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusBadRequest, "user_id does not reference an existing user")
				}
				return err
			}
			if user.Role != constants.RoleTeacher {
				return fiber.NewError(fiber.StatusBadRequest, "user does not have the teacher role")
			}
		} else {
			if input.UserName == "" || input.Email == "" || input.Password == "" || input.FullName == "" {
				return fiber.NewError(fiber.StatusBadRequest, "user_name, email, password and full_name are required when user_id is not given")
			}
			hash, err := authHelper.HashPassword(input.Password)
			if err != nil {
				return err
			}
			user = userModel.UserModel{
				UserName: input.UserName,
				Email:    input.Email,
				Password: hash,
				FullName: input.FullName,
				Role:     constants.RoleTeacher,
			}
			if err := tx.Create(&user).Error; err != nil {
				if helper.IsUniqueViolation(err) {
					return fiber.NewError(fiber.StatusConflict, "Username or email already registered")
				}
				return err
			}
		}

		profile = model.TeacherProfileModel{
			UserID:                 user.ID,
			EmployeeID:             input.EmployeeID,
			Designation:            input.Designation,
			Salary:                 input.Salary,
			TaxNumber:              input.TaxNumber,
			Qualifications:         qualifications,
			SubjectSpecializations: specializations,
			JoinDate:               joinDate,
		}
		if err := tx.Create(&profile).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Teacher profile already exists for this user or employee ID")
			}
			return err
		}
		return nil
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}

	return helper.Success(c, fiber.StatusCreated, "Teacher created", fiber.Map{
		"profile": profile,
		"user_id": user.ID,
	})
}

// GET /api/teachers
func (tc *TeacherController) GetTeachers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := tc.DB.Model(&model.TeacherProfileModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count teachers")
	}

	var profiles []model.TeacherProfileModel
	if err := tc.DB.Order("teacher_profiles_employee_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&profiles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}

	return helper.JsonOK(c, "Teachers fetched", fiber.Map{
		"teachers":   profiles,
		"pagination": helper.BuildPagination(total, len(profiles), paging),
	})
}

// PATCH /api/teachers/:id
func (tc *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var input dto.UpdateTeacherRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	var profile model.TeacherProfileModel
	if err := tc.DB.First(&profile, "teacher_profiles_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	updates := map[string]interface{}{}
	if input.Designation != nil {
		updates["teacher_profiles_designation"] = *input.Designation
	}
	if input.Salary != nil {
		updates["teacher_profiles_salary"] = *input.Salary
	}
	if input.TaxNumber != nil {
		updates["teacher_profiles_tax_number"] = *input.TaxNumber
	}
	if input.Qualifications != nil {
		j, err := dto.StringsToJSON(*input.Qualifications)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid qualifications payload")
		}
		updates["teacher_profiles_qualifications"] = j
	}
	if input.SubjectSpecializations != nil {
		j, err := dto.StringsToJSON(*input.SubjectSpecializations)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject_specializations payload")
		}
		updates["teacher_profiles_subject_specializations"] = j
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Nothing to update", profile)
	}

	if err := tc.DB.Model(&profile).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update teacher")
	}

	return helper.JsonOK(c, "Teacher updated", profile)
}

// POST /api/teachers/:id/pay-salary
// Appends a payment event. No month dedup: payroll corrections are expected
// to be handled by a compensating entry, not by rejecting the write.
func (tc *TeacherController) PaySalary(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var input dto.PaySalaryRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}
	if _, err := dto.ParseMonth(input.Month); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "month must be YYYY-MM")
	}

	var profile model.TeacherProfileModel
	if err := tc.DB.First(&profile, "teacher_profiles_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	payment := model.SalaryPaymentModel{
		TeacherProfileID: profile.TeacherProfileID,
		Month:            input.Month,
		Amount:           input.Amount,
		PaidAt:           time.Now().UTC(),
	}
	if err := tc.DB.Create(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record salary payment")
	}

	return helper.Success(c, fiber.StatusCreated, "Salary paid", payment)
}

// GET /api/teachers/:id/salary-history
func (tc *TeacherController) GetSalaryHistory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	// An unknown teacher is 404, same as PaySalary on this path; an empty
	// list is reserved for teachers that exist but were never paid.
	var profile model.TeacherProfileModel
	if err := tc.DB.First(&profile, "teacher_profiles_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var payments []model.SalaryPaymentModel
	if err := tc.DB.
		Where("salary_payments_teacher_profile_id = ?", id).
		Order("salary_payments_paid_at ASC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch salary history")
	}

	return helper.JsonOK(c, "Salary history fetched", fiber.Map{"payments": payments})
}
