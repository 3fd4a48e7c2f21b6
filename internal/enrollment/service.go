package enrollment

import (
	"context"

	"campusevents/internal/domain"
	"campusevents/internal/store"
)

// Store is the persistence surface the service needs.
type Store interface {
	InsertRegistration(ctx context.Context, eventID, studentID int64) (Registration, error)
	ListRegistrations(ctx context.Context, eventID int64) ([]RegistrationDetail, error)
	GetAttendance(ctx context.Context, registrationID int64) (*Attendance, error)
	UpsertAttendance(ctx context.Context, registrationID int64, present bool) (Attendance, error)
	ListAttendance(ctx context.Context, eventID int64) ([]AttendanceDetail, error)
}

// Service coordinates registrations and the attendance state machine.
//
// A registration moves through three states: unmarked, marked absent and
// marked present. Absence can be re-affirmed or corrected to present;
// marked present is terminal.
type Service struct {
	store Store
}

// NewService creates a service backed by a store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Register creates a registration for (event, student).
func (s *Service) Register(ctx context.Context, eventID, studentID int64) (Registration, error) {
	if eventID <= 0 || studentID <= 0 {
		return Registration{}, domain.InvalidInput("eventId and studentId must be positive numbers")
	}
	reg, err := s.store.InsertRegistration(ctx, eventID, studentID)
	if err != nil {
		return Registration{}, store.Translate(err,
			"student already registered for this event",
			"invalid student or event id")
	}
	return reg, nil
}

// ListRegistrations returns an event's registrations, newest first.
func (s *Service) ListRegistrations(ctx context.Context, eventID int64) ([]RegistrationDetail, error) {
	if eventID <= 0 {
		return nil, domain.InvalidInput("eventId query parameter required")
	}
	return s.store.ListRegistrations(ctx, eventID)
}

// MarkAttendance records presence or absence for a registration.
//
// A pre-check read surfaces AttendanceLockedError when the row is already
// confirmed present, so the caller learns why nothing changed. The write
// itself is a conditional upsert that preserves a present row regardless,
// so the invariant holds even if a concurrent mark lands between the read
// and the write.
func (s *Service) MarkAttendance(ctx context.Context, registrationID int64, present bool) (Attendance, error) {
	if registrationID <= 0 {
		return Attendance{}, domain.InvalidInput("registration id must be a positive number")
	}

	existing, err := s.store.GetAttendance(ctx, registrationID)
	if err != nil {
		return Attendance{}, err
	}
	if existing != nil && existing.Present {
		return Attendance{}, &domain.AttendanceLockedError{RegistrationID: registrationID}
	}

	att, err := s.store.UpsertAttendance(ctx, registrationID, present)
	if err != nil {
		return Attendance{}, store.Translate(err,
			"attendance already recorded for this registration",
			"invalid registration id")
	}
	return att, nil
}

// ListAttendance returns attendance records for an event.
func (s *Service) ListAttendance(ctx context.Context, eventID int64) ([]AttendanceDetail, error) {
	if eventID <= 0 {
		return nil, domain.InvalidInput("eventId query parameter required")
	}
	return s.store.ListAttendance(ctx, eventID)
}
