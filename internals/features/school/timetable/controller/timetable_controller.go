package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/timetable/dto"
	"schoolku_backend/internals/features/school/timetable/model"
	"schoolku_backend/internals/features/school/timetable/service"
	helper "schoolku_backend/internals/helpers"
)

type TimetableController struct {
	DB *gorm.DB
}

func NewTimetableController(db *gorm.DB) *TimetableController {
	return &TimetableController{DB: db}
}

var validate = validator.New()

// slotConflictMessage picks the 409 body by the violated composite index.
// A driver that hides the constraint name falls through to the generic body.
func slotConflictMessage(constraint string) string {
	switch constraint {
	case model.ClassSlotIndex:
		return "Slot already scheduled for this class section"
	case model.TeacherSlotIndex:
		return "Teacher already busy in this slot"
	default:
		return "Timetable slot conflict"
	}
}

// POST /api/timetable
// No existence pre-check here: the insert is attempted and the store's
// composite indexes decide. A duplicate-key error is the authoritative
// conflict signal and is translated per violated index.
func (tc *TimetableController) CreateEntry(c *fiber.Ctx) error {
	var input dto.CreateTimetableEntryRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	entry := model.TimetableEntryModel{
		ClassID:      input.ClassID,
		SectionID:    input.SectionID,
		TeacherID:    input.TeacherID,
		Subject:      input.Subject,
		DayOfWeek:    input.DayOfWeek,
		PeriodNumber: input.PeriodNumber,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
	}
	if err := tc.DB.Create(&entry).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				slotConflictMessage(helper.UniqueViolationConstraint(err)))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create timetable entry")
	}

	return helper.Success(c, fiber.StatusCreated, "Timetable entry created", entry)
}

// GET /api/timetable?class_id=&section_id=&teacher_id=&day=
func (tc *TimetableController) GetEntries(c *fiber.Ctx) error {
	q := tc.DB.Model(&model.TimetableEntryModel{})

	for param, column := range map[string]string{
		"class_id":   "timetable_entries_class_id",
		"section_id": "timetable_entries_section_id",
		"teacher_id": "timetable_entries_teacher_id",
	} {
		if v := c.Query(param); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid "+param+" filter")
			}
			q = q.Where(column+" = ?", id)
		}
	}
	if v := c.Query("day"); v != "" {
		day, err := strconv.Atoi(v)
		if err != nil || day < 1 || day > 6 {
			return helper.JsonError(c, fiber.StatusBadRequest, "day must be 1-6")
		}
		q = q.Where("timetable_entries_day_of_week = ?", day)
	}

	var entries []model.TimetableEntryModel
	if err := q.Order("timetable_entries_day_of_week ASC, timetable_entries_period_number ASC").
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch timetable")
	}

	return helper.JsonOK(c, "Timetable fetched", fiber.Map{"entries": entries})
}

// DELETE /api/timetable/:id
func (tc *TimetableController) DeleteEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid entry ID")
	}

	res := tc.DB.Delete(&model.TimetableEntryModel{}, "timetable_entries_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete entry")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Timetable entry not found")
	}

	return helper.JsonOK(c, "Timetable entry deleted", fiber.Map{"id": id})
}

// GET /api/timetable/substitutes?day=&period=&exclude=&subject=
func (tc *TimetableController) GetSubstitutes(c *fiber.Ctx) error {
	day, err := strconv.Atoi(c.Query("day"))
	if err != nil || day < 1 || day > 6 {
		return helper.JsonError(c, fiber.StatusBadRequest, "day must be 1-6")
	}
	period, err := strconv.Atoi(c.Query("period"))
	if err != nil || period < 1 || period > 8 {
		return helper.JsonError(c, fiber.StatusBadRequest, "period must be 1-8")
	}
	excludeID, err := uuid.Parse(c.Query("exclude"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "exclude must be a teacher user ID")
	}
	subject := c.Query("subject")

	teachers, err := service.FindSubstitutes(tc.DB, day, period, excludeID, subject)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up substitutes")
	}

	candidates := make([]dto.SubstituteCandidate, 0, len(teachers))
	for _, t := range teachers {
		candidates = append(candidates, dto.SubstituteCandidate{
			UserID:   t.ID,
			FullName: t.FullName,
			Email:    t.Email,
		})
	}

	return helper.JsonOK(c, "Substitutes fetched", fiber.Map{"substitutes": candidates})
}
