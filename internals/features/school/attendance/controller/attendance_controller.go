package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/school/attendance/dto"
	"schoolku_backend/internals/features/school/attendance/model"
	helper "schoolku_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validate = validator.New()

// upsertConflict targets the (student, date) unique index so re-marking a day
// overwrites the previous status instead of appending a duplicate row.
var upsertConflict = clause.OnConflict{
	Columns: []clause.Column{
		{Name: "attendance_student_id"},
		{Name: "attendance_date"},
	},
	DoUpdates: clause.AssignmentColumns([]string{
		"attendance_status",
		"attendance_class_id",
		"attendance_section_id",
	}),
}

// POST /api/attendance
func (ac *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var input dto.MarkAttendanceRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := dto.ParseDate(input.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	row := model.AttendanceModel{
		Date:      date,
		StudentID: input.StudentID,
		ClassID:   input.ClassID,
		SectionID: input.SectionID,
		Status:    input.Status,
	}
	if err := ac.DB.Clauses(upsertConflict).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record attendance")
	}

	return helper.Success(c, fiber.StatusCreated, "Attendance recorded", row)
}

// POST /api/attendance/bulk
func (ac *AttendanceController) BulkMark(c *fiber.Ctx) error {
	var input dto.BulkMarkRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := dto.ParseDate(input.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	rows, err := dto.BuildRows(input, date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// One statement for the whole batch: either every row lands (insert or
	// overwrite) or none does, so a mid-batch failure cannot leave a
	// half-marked day behind.
	if err := ac.DB.Clauses(upsertConflict).Create(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record attendance")
	}

	return helper.Success(c, fiber.StatusCreated, "Attendance recorded", fiber.Map{
		"count": len(rows),
	})
}

// GET /api/attendance?date=&class_id=&section_id=&student_id=
func (ac *AttendanceController) GetAttendance(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 500)

	q := ac.DB.Model(&model.AttendanceModel{})
	if v := c.Query("date"); v != "" {
		date, err := dto.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		q = q.Where("attendance_date = ?", date)
	}
	for param, column := range map[string]string{
		"class_id":   "attendance_class_id",
		"section_id": "attendance_section_id",
		"student_id": "attendance_student_id",
	} {
		if v := c.Query(param); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid "+param+" filter")
			}
			q = q.Where(column+" = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attendance")
	}

	var records []model.AttendanceModel
	if err := q.Order("attendance_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	return helper.JsonOK(c, "Attendance fetched", fiber.Map{
		"records":    records,
		"pagination": helper.BuildPagination(total, len(records), paging),
	})
}
