package catalog

import "time"

// College is the root entity; events and students hang off it.
type College struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Student belongs to a college. Email is stored lower-cased and unique.
type Student struct {
	ID        int64     `json:"id"`
	CollegeID int64     `json:"college_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Event is a college-owned happening students register for.
type Event struct {
	ID        int64     `json:"id"`
	CollegeID int64     `json:"college_id"`
	Title     string    `json:"title"`
	EventType string    `json:"event_type"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// EventTypes enumerates the allowed event_type values.
var EventTypes = []string{"Hackathon", "Workshop", "TechTalk", "Fest", "Seminar"}

// ValidEventType reports whether t is one of the allowed event types.
func ValidEventType(t string) bool {
	for _, v := range EventTypes {
		if v == t {
			return true
		}
	}
	return false
}
