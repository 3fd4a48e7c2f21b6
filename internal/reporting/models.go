package reporting

import "time"

// EventPopularity is a ranked registration count for one event.
type EventPopularity struct {
	EventID       int64  `json:"event_id"`
	Title         string `json:"title"`
	Registrations int    `json:"registrations"`
}

// AttendanceReport is the attendance percentage for one event. Title is
// null when the event does not exist; the percentage is then 0.
type AttendanceReport struct {
	EventID           int64   `json:"event_id"`
	Title             *string `json:"title"`
	AttendancePercent float64 `json:"attendance_percent"`
}

// FeedbackReport is the average rating for one event. AvgRating is null
// when no feedback exists.
type FeedbackReport struct {
	EventID       int64    `json:"event_id"`
	Title         *string  `json:"title"`
	AvgRating     *float64 `json:"avg_rating"`
	FeedbackCount int      `json:"feedback_count"`
}

// Participation is a student's confirmed-present count across a college's
// events.
type Participation struct {
	StudentID      int64  `json:"student_id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	EventsAttended int    `json:"events_attended"`
}

// DashboardStats is the aggregate snapshot the admin dashboard renders.
// Trend figures are naive month-over-month heuristics, not statistics.
type DashboardStats struct {
	TotalEvents         int `json:"totalEvents"`
	EventsTrend         int `json:"eventsTrend"`
	ActiveRegistrations int `json:"activeRegistrations"`
	RegistrationsTrend  int `json:"registrationsTrend"`
	AvgAttendance       int `json:"avgAttendance"`
	AttendanceTrend     int `json:"attendanceTrend"`
	AvgSatisfaction     int `json:"avgSatisfaction"`
	SatisfactionTrend   int `json:"satisfactionTrend"`
}

// TrendPoint is one month of the 12-month registration series.
type TrendPoint struct {
	Month         string `json:"month"`
	Registrations int    `json:"registrations"`
}

// CategoryShare is an event type's slice of a college's events.
type CategoryShare struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Raw aggregates returned by the store; the service does the arithmetic.

// AttendanceCounts carries present/registered counts for one event.
type AttendanceCounts struct {
	EventID    int64
	Title      string
	Registered int
	Present    int
}

// FeedbackTotals carries rating sum and count for one event.
type FeedbackTotals struct {
	EventID   int64
	Title     string
	RatingSum float64
	Count     int
}

// DashboardCounts carries the raw counts behind DashboardStats.
type DashboardCounts struct {
	TotalEvents        int
	Registrations      int
	PresentCount       int
	RatingSum          float64
	RatingCount        int
	CurrentMonthEvents int
	PrevMonthEvents    int
}

// MonthCount is a registration count for one calendar month.
type MonthCount struct {
	Month time.Time
	Count int
}

// CategoryCount is a raw per-type event count.
type CategoryCount struct {
	Category string
	Count    int
}
