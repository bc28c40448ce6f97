package dto

type RevenuePoint struct {
	Month   string  `json:"month"` // "2026-08"
	Revenue float64 `json:"revenue"`
}

type AttendancePoint struct {
	Date    string  `json:"date"` // "2026-08-30"
	Percent float64 `json:"percent"`
}

type DashboardResponse struct {
	TotalStudents          int64             `json:"total_students"`
	TotalTeachers          int64             `json:"total_teachers"`
	MonthlyRevenue         float64           `json:"monthly_revenue"`
	TodayAttendancePercent float64           `json:"today_attendance_percent"`
	RevenueTrend           []RevenuePoint    `json:"revenue_trend"`
	AttendanceTrend        []AttendancePoint `json:"attendance_trend"`
}
