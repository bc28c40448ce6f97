package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	sectionModel "schoolku_backend/internals/features/school/class_sections/model"
	classModel "schoolku_backend/internals/features/school/classes/model"
	"schoolku_backend/internals/features/school/students/dto"
	"schoolku_backend/internals/features/school/students/model"
	authHelper "schoolku_backend/internals/features/users/auth/helper"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

// ensureClassSectionPair rejects writes whose (class_id, section_id) does not
// reference an existing section of that class. Enrollment integrity is
// enforced here, not by caller discipline.
func (sc *StudentController) ensureClassSectionPair(classID, sectionID uuid.UUID) error {
	var count int64
	if err := sc.DB.Model(&classModel.ClassModel{}).
		Where("classes_id = ?", classID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "class_id does not reference an existing class")
	}

	if err := sc.DB.Model(&sectionModel.ClassSectionModel{}).
		Where("class_sections_id = ? AND class_sections_class_id = ?", sectionID, classID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "section_id does not belong to the given class")
	}
	return nil
}

// POST /api/students
func (sc *StudentController) CreateStudent(c *fiber.Ctx) error {
	var input dto.CreateStudentRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := sc.ensureClassSectionPair(input.ClassID, input.SectionID); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var student model.StudentModel
	var user userModel.UserModel

	txErr := sc.DB.Transaction(func(tx *gorm.DB) error {
		if input.UserID != nil {
			if err := tx.First(&user, "id = ?", *input.UserID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusBadRequest, "user_id does not reference an existing user")
				}
				return err
			}
			if user.Role != constants.RoleStudent {
				return fiber.NewError(fiber.StatusBadRequest, "user does not have the student role")
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
				Role:     constants.RoleStudent,
			}
			if err := tx.Create(&user).Error; err != nil {
				if helper.IsUniqueViolation(err) {
					return fiber.NewError(fiber.StatusConflict, "Username or email already registered")
				}
				return err
			}
		}

		student = model.StudentModel{
			UserID:          user.ID,
			AdmissionNumber: input.AdmissionNumber,
			RollNumber:      input.RollNumber,
			ClassID:         input.ClassID,
			SectionID:       input.SectionID,
			GuardianName:    input.GuardianName,
			GuardianPhone:   input.GuardianPhone,
		}
		if err := tx.Create(&student).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Student already exists for this user or admission number")
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
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}

	return helper.Success(c, fiber.StatusCreated, "Student created", dto.FromStudentModel(student, &user))
}

// GET /api/students?class_id=&section_id=
func (sc *StudentController) GetStudents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := sc.DB.Model(&model.StudentModel{})
	if v := c.Query("class_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id filter")
		}
		q = q.Where("students_class_id = ?", id)
	}
	if v := c.Query("section_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid section_id filter")
		}
		q = q.Where("students_section_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var students []model.StudentModel
	if err := q.Order("students_admission_number ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	return helper.JsonOK(c, "Students fetched", fiber.Map{
		"students":   students,
		"pagination": helper.BuildPagination(total, len(students), paging),
	})
}

// GET /api/students/me
func (sc *StudentController) GetMyStudent(c *fiber.Ctx) error {
	userID, err := authMiddleware.GetUserUUID(c)
	if err != nil {
		return err
	}

	var student model.StudentModel
	if err := sc.DB.First(&student, "students_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "Student fetched", student)
}

// GET /api/students/:id
func (sc *StudentController) GetStudentByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var student model.StudentModel
	if err := sc.DB.First(&student, "students_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "Student fetched", student)
}

// PATCH /api/students/:id
func (sc *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var input dto.UpdateStudentRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	var student model.StudentModel
	if err := sc.DB.First(&student, "students_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	// A class/section move must be checked as a pair; take the current value
	// for whichever side the request leaves out.
	if input.ClassID != nil || input.SectionID != nil {
		classID := student.ClassID
		sectionID := student.SectionID
		if input.ClassID != nil {
			classID = *input.ClassID
		}
		if input.SectionID != nil {
			sectionID = *input.SectionID
		}
		if err := sc.ensureClassSectionPair(classID, sectionID); err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return helper.JsonError(c, fe.Code, fe.Message)
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		student.ClassID = classID
		student.SectionID = sectionID
	}

	if input.RollNumber != nil {
		student.RollNumber = *input.RollNumber
	}
	if input.GuardianName != nil {
		student.GuardianName = *input.GuardianName
	}
	if input.GuardianPhone != nil {
		student.GuardianPhone = *input.GuardianPhone
	}

	if err := sc.DB.Save(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}

	return helper.JsonOK(c, "Student updated", student)
}

// DELETE /api/students/:id
func (sc *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	res := sc.DB.Delete(&model.StudentModel{}, "students_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	return helper.JsonOK(c, "Student deleted", fiber.Map{"id": id})
}
