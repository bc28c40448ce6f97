package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/assignments/dto"
	"schoolku_backend/internals/features/school/assignments/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

type AssignmentController struct {
	DB *gorm.DB
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db}
}

var validate = validator.New()

// POST /api/assignments
// The teacher is taken from the token, not from the payload.
func (ac *AssignmentController) CreateAssignment(c *fiber.Ctx) error {
	teacherID, err := authMiddleware.GetUserUUID(c)
	if err != nil {
		return err
	}

	var input dto.CreateAssignmentRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	assignment := model.AssignmentModel{
		ClassID:     input.ClassID,
		SectionID:   input.SectionID,
		TeacherID:   teacherID,
		Subject:     input.Subject,
		Title:       input.Title,
		Description: input.Description,
		Deadline:    input.Deadline,
	}
	if err := ac.DB.Create(&assignment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create assignment")
	}

	return helper.Success(c, fiber.StatusCreated, "Assignment created", assignment)
}

// GET /api/assignments?class_id=&section_id=
func (ac *AssignmentController) GetAssignments(c *fiber.Ctx) error {
	q := ac.DB.Model(&model.AssignmentModel{})
	for param, column := range map[string]string{
		"class_id":   "assignments_class_id",
		"section_id": "assignments_section_id",
	} {
		if v := c.Query(param); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid "+param+" filter")
			}
			q = q.Where(column+" = ?", id)
		}
	}

	var assignments []model.AssignmentModel
	if err := q.Order("assignments_deadline ASC").Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}

	return helper.JsonOK(c, "Assignments fetched", fiber.Map{"assignments": assignments})
}

// DELETE /api/assignments/:id
func (ac *AssignmentController) DeleteAssignment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment ID")
	}

	res := ac.DB.Delete(&model.AssignmentModel{}, "assignments_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete assignment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}

	return helper.JsonOK(c, "Assignment deleted", fiber.Map{"id": id})
}

// POST /api/submissions (student)
func (ac *AssignmentController) CreateSubmission(c *fiber.Ctx) error {
	userID, err := authMiddleware.GetUserUUID(c)
	if err != nil {
		return err
	}

	var input dto.CreateSubmissionRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	var student studentModel.StudentModel
	if err := ac.DB.First(&student, "students_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var count int64
	if err := ac.DB.Model(&model.AssignmentModel{}).
		Where("assignments_id = ?", input.AssignmentID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}

	submission := model.SubmissionModel{
		AssignmentID: input.AssignmentID,
		StudentID:    student.StudentID,
		Link:         input.Link,
	}
	if err := ac.DB.Create(&submission).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Submission already exists for this assignment")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create submission")
	}

	return helper.Success(c, fiber.StatusCreated, "Submission created", submission)
}

// GET /api/submissions?assignment_id=
func (ac *AssignmentController) GetSubmissions(c *fiber.Ctx) error {
	q := ac.DB.Model(&model.SubmissionModel{})
	if v := c.Query("assignment_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment_id filter")
		}
		q = q.Where("submissions_assignment_id = ?", id)
	}

	var submissions []model.SubmissionModel
	if err := q.Order("submissions_submitted_at DESC").Find(&submissions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}

	return helper.JsonOK(c, "Submissions fetched", fiber.Map{"submissions": submissions})
}

// PATCH /api/submissions/:id/grade (teacher)
func (ac *AssignmentController) GradeSubmission(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission ID")
	}

	var input dto.GradeSubmissionRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	var submission model.SubmissionModel
	if err := ac.DB.First(&submission, "submissions_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	updates := map[string]interface{}{"submissions_grade": input.Grade}
	if input.Feedback != nil {
		updates["submissions_feedback"] = *input.Feedback
	}
	if err := ac.DB.Model(&submission).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to grade submission")
	}

	return helper.JsonOK(c, "Submission graded", submission)
}
