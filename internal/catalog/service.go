package catalog

import (
	"context"
	"regexp"
	"strings"

	"campusevents/internal/domain"
	"campusevents/internal/store"
)

// Store is the persistence surface the service needs.
type Store interface {
	InsertCollege(ctx context.Context, name string) (College, error)
	InsertStudent(ctx context.Context, collegeID int64, fullName, email string) (Student, error)
	ListStudents(ctx context.Context, collegeID int64) ([]Student, error)
	InsertEvent(ctx context.Context, evt Event) (Event, error)
	ListEvents(ctx context.Context, collegeID int64) ([]Event, error)
	GetEvent(ctx context.Context, id int64) (*Event, error)
}

// Service validates and persists colleges, students and events.
type Service struct {
	store Store
}

// NewService creates a service backed by a store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CreateCollege validates the name and inserts the college.
func (s *Service) CreateCollege(ctx context.Context, name string) (College, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return College{}, domain.InvalidInput("college name must be at least 2 characters long")
	}
	if len(name) > 100 {
		return College{}, domain.InvalidInput("college name cannot exceed 100 characters")
	}
	col, err := s.store.InsertCollege(ctx, name)
	if err != nil {
		return College{}, store.Translate(err,
			"college with this name already exists",
			"invalid college id")
	}
	return col, nil
}

// CreateStudent validates the input, normalizes the email and inserts the
// student. Emails are stored lower-cased.
func (s *Service) CreateStudent(ctx context.Context, collegeID int64, fullName, email string) (Student, error) {
	if collegeID <= 0 {
		return Student{}, domain.InvalidInput("college id must be a positive number")
	}
	fullName = strings.TrimSpace(fullName)
	if len(strings.Fields(fullName)) < 2 {
		return Student{}, domain.InvalidInput("full name should include at least first and last name")
	}
	if !emailRx.MatchString(email) {
		return Student{}, domain.InvalidInput("invalid email format")
	}
	st, err := s.store.InsertStudent(ctx, collegeID, fullName, strings.ToLower(email))
	if err != nil {
		return Student{}, store.Translate(err,
			"student with this email already exists",
			"invalid college id")
	}
	return st, nil
}

// ListStudents returns students ordered by name. collegeID <= 0 lists all.
func (s *Service) ListStudents(ctx context.Context, collegeID int64) ([]Student, error) {
	return s.store.ListStudents(ctx, collegeID)
}

// CreateEvent validates the event and inserts it.
func (s *Service) CreateEvent(ctx context.Context, evt Event) (Event, error) {
	if evt.CollegeID <= 0 {
		return Event{}, domain.InvalidInput("college id must be a positive number")
	}
	evt.Title = strings.TrimSpace(evt.Title)
	if evt.Title == "" {
		return Event{}, domain.InvalidInput("title is required")
	}
	if !ValidEventType(evt.EventType) {
		return Event{}, domain.InvalidInput("invalid event type")
	}
	if evt.StartsAt.IsZero() || evt.EndsAt.IsZero() {
		return Event{}, domain.InvalidInput("startsAt and endsAt are required")
	}
	if !evt.EndsAt.After(evt.StartsAt) {
		return Event{}, domain.InvalidInput("event end time must be after start time")
	}
	if strings.TrimSpace(evt.Location) == "" {
		return Event{}, domain.InvalidInput("location is required")
	}
	created, err := s.store.InsertEvent(ctx, evt)
	if err != nil {
		return Event{}, store.Translate(err, "event already exists", "invalid college id")
	}
	return created, nil
}

// ListEvents returns a college's events ordered by start time.
func (s *Service) ListEvents(ctx context.Context, collegeID int64) ([]Event, error) {
	if collegeID <= 0 {
		return nil, domain.InvalidInput("collegeId query parameter required")
	}
	return s.store.ListEvents(ctx, collegeID)
}

// GetEvent returns one event or a NotFoundError.
func (s *Service) GetEvent(ctx context.Context, id int64) (Event, error) {
	if id <= 0 {
		return Event{}, domain.InvalidInput("valid event id required")
	}
	evt, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return Event{}, err
	}
	if evt == nil {
		return Event{}, domain.NotFound("event not found")
	}
	return *evt, nil
}
