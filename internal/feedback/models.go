package feedback

import "time"

// Feedback is a student's rating for an event, freely revisable. One row
// per (event, student); resubmission overwrites rating, comment and
// given_at, in deliberate contrast to the attendance lock.
type Feedback struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	StudentID int64     `json:"student_id"`
	Rating    float64   `json:"rating"`
	Comment   *string   `json:"comment"`
	GivenAt   time.Time `json:"given_at"`
}

// FeedbackDetail is feedback joined with the student.
type FeedbackDetail struct {
	Feedback
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
