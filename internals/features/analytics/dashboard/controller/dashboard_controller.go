package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/analytics/dashboard/dto"
	"schoolku_backend/internals/features/analytics/dashboard/service"
	feeModel "schoolku_backend/internals/features/finance/fees/model"
	attendanceModel "schoolku_backend/internals/features/school/attendance/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	teacherModel "schoolku_backend/internals/features/teachers/model"
	helper "schoolku_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/analytics/dashboard
// Everything is recomputed per request; nothing here is cached.
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	now := time.Now().UTC()

	var totalStudents, totalTeachers int64
	if err := dc.DB.Model(&studentModel.StudentModel{}).Count(&totalStudents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}
	if err := dc.DB.Model(&teacherModel.TeacherProfileModel{}).Count(&totalTeachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count teachers")
	}

	monthStart, monthEnd := service.MonthWindow(now)
	var monthlyRevenue float64
	if err := dc.DB.Model(&feeModel.FeeModel{}).
		Where("fees_status = ? AND fees_paid_at >= ? AND fees_paid_at < ?",
			feeModel.StatusCleared, monthStart, monthEnd).
		Select("COALESCE(SUM(fees_amount), 0)").
		Scan(&monthlyRevenue).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sum revenue")
	}

	dayStart, _ := service.DayWindow(now)
	var presentToday int64
	if err := dc.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_date = ? AND attendance_status = ?", dayStart, attendanceModel.StatusPresent).
		Count(&presentToday).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attendance")
	}

	revenueTrend, err := dc.revenueTrend(now, 6)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build revenue trend")
	}
	attendanceTrend, err := dc.attendanceTrend(now, 7, totalStudents)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build attendance trend")
	}

	resp := dto.DashboardResponse{
		TotalStudents:          totalStudents,
		TotalTeachers:          totalTeachers,
		MonthlyRevenue:         monthlyRevenue,
		TodayAttendancePercent: service.Percent(presentToday, totalStudents),
		RevenueTrend:           revenueTrend,
		AttendanceTrend:        attendanceTrend,
	}

	return helper.JsonOK(c, "Dashboard computed", resp)
}

// revenueTrend sums cleared fees per calendar month for the last n months,
// oldest first. Months with no payments appear with zero revenue.
func (dc *DashboardController) revenueTrend(now time.Time, n int) ([]dto.RevenuePoint, error) {
	months := service.MonthsBack(now, n)
	windowStart := months[0]

	type row struct {
		Month   time.Time `gorm:"column:month"`
		Revenue float64   `gorm:"column:revenue"`
	}
	var rows []row
	if err := dc.DB.Model(&feeModel.FeeModel{}).
		Where("fees_status = ? AND fees_paid_at >= ?", feeModel.StatusCleared, windowStart).
		Select("date_trunc('month', fees_paid_at) AS month, SUM(fees_amount) AS revenue").
		Group("month").
		Order("month ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	byMonth := make(map[string]float64, len(rows))
	for _, r := range rows {
		byMonth[r.Month.Format("2006-01")] = r.Revenue
	}

	points := make([]dto.RevenuePoint, 0, n)
	for _, m := range months {
		label := m.Format("2006-01")
		points = append(points, dto.RevenuePoint{Month: label, Revenue: byMonth[label]})
	}
	return points, nil
}

// attendanceTrend computes the present percentage per day for the last n
// days, oldest first.
func (dc *DashboardController) attendanceTrend(now time.Time, n int, totalStudents int64) ([]dto.AttendancePoint, error) {
	dayStart, _ := service.DayWindow(now.AddDate(0, 0, -(n - 1)))

	type row struct {
		Date    time.Time `gorm:"column:date"`
		Present int64     `gorm:"column:present"`
	}
	var rows []row
	if err := dc.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_date >= ? AND attendance_status = ?", dayStart, attendanceModel.StatusPresent).
		Select("attendance_date AS date, COUNT(*) AS present").
		Group("attendance_date").
		Order("date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	byDate := make(map[string]int64, len(rows))
	for _, r := range rows {
		byDate[r.Date.Format("2006-01-02")] = r.Present
	}

	points := make([]dto.AttendancePoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		label := now.AddDate(0, 0, -i).Format("2006-01-02")
		points = append(points, dto.AttendancePoint{
			Date:    label,
			Percent: service.Percent(byDate[label], totalStudents),
		})
	}
	return points, nil
}
