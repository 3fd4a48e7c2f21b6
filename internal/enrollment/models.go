package enrollment

import "time"

// Registration records a student's intent to attend an event. The pair
// (event_id, student_id) is unique; registrations are never deleted.
type Registration struct {
	ID           int64     `json:"id"`
	EventID      int64     `json:"event_id"`
	StudentID    int64     `json:"student_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

// RegistrationDetail is a registration joined with the student.
type RegistrationDetail struct {
	Registration
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// Attendance is the confirmed presence fact tied 1:1 to a registration.
// Once present is true the row never changes again.
type Attendance struct {
	ID             int64     `json:"id"`
	RegistrationID int64     `json:"registration_id"`
	Present        bool      `json:"present"`
	MarkedAt       time.Time `json:"marked_at"`
}

// AttendanceDetail is an attendance row joined with its registration.
type AttendanceDetail struct {
	Attendance
	EventID   int64 `json:"event_id"`
	StudentID int64 `json:"student_id"`
}
