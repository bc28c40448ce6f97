package service

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	timetableModel "schoolku_backend/internals/features/school/timetable/model"
	teacherDto "schoolku_backend/internals/features/teachers/dto"
	teacherModel "schoolku_backend/internals/features/teachers/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

// FindSubstitutes returns active teacher users who are free at (day, period),
// excluding excludeID. When subject is non-empty, candidates are narrowed to
// teachers whose profile lists that subject as a specialization.
func FindSubstitutes(db *gorm.DB, dayOfWeek, periodNumber int, excludeID uuid.UUID, subject string) ([]userModel.UserModel, error) {
	busy := db.Model(&timetableModel.TimetableEntryModel{}).
		Select("timetable_entries_teacher_id").
		Where("timetable_entries_day_of_week = ? AND timetable_entries_period_number = ?",
			dayOfWeek, periodNumber)

	var teachers []userModel.UserModel
	if err := db.Model(&userModel.UserModel{}).
		Where("role = ? AND is_active = true", constants.RoleTeacher).
		Where("id <> ?", excludeID).
		Where("id NOT IN (?)", busy).
		Order("full_name ASC").
		Find(&teachers).Error; err != nil {
		return nil, err
	}

	if subject == "" || len(teachers) == 0 {
		return teachers, nil
	}

	ids := make([]uuid.UUID, 0, len(teachers))
	for _, t := range teachers {
		ids = append(ids, t.ID)
	}
	var profiles []teacherModel.TeacherProfileModel
	if err := db.Where("teacher_profiles_user_id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, err
	}

	return FilterBySpecialization(teachers, profiles, subject), nil
}

// FilterBySpecialization keeps only teachers whose profile lists subject
// (case-insensitive) among its specializations. A teacher with no profile is
// dropped: there is nothing to match against.
func FilterBySpecialization(teachers []userModel.UserModel, profiles []teacherModel.TeacherProfileModel, subject string) []userModel.UserModel {
	specialized := make(map[uuid.UUID]bool, len(profiles))
	for _, p := range profiles {
		for _, s := range teacherDto.SpecializationsFromJSON(p.SubjectSpecializations) {
			if strings.EqualFold(s, subject) {
				specialized[p.UserID] = true
				break
			}
		}
	}

	out := make([]userModel.UserModel, 0, len(teachers))
	for _, t := range teachers {
		if specialized[t.ID] {
			out = append(out, t)
		}
	}
	return out
}
