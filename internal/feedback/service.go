package feedback

import (
	"context"

	"campusevents/internal/domain"
	"campusevents/internal/store"
)

// Store is the persistence surface the service needs.
type Store interface {
	Upsert(ctx context.Context, eventID, studentID int64, rating float64, comment *string) (Feedback, error)
	ListForEvent(ctx context.Context, eventID int64) ([]FeedbackDetail, error)
}

// Service validates and persists event feedback.
type Service struct {
	store Store
}

// NewService creates a service backed by a store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

const maxCommentLen = 1000

// Submit records a rating and optional comment for (event, student),
// overwriting any previous submission. Ratings are numeric in [1,5];
// fractional values are accepted.
func (s *Service) Submit(ctx context.Context, eventID, studentID int64, rating float64, comment *string) (Feedback, error) {
	if eventID <= 0 || studentID <= 0 {
		return Feedback{}, domain.InvalidInput("eventId and studentId must be positive numbers")
	}
	if rating < 1 || rating > 5 {
		return Feedback{}, domain.InvalidInput("rating must be a number between 1 and 5")
	}
	if comment != nil && len(*comment) > maxCommentLen {
		return Feedback{}, domain.InvalidInput("comment cannot exceed 1000 characters")
	}
	fb, err := s.store.Upsert(ctx, eventID, studentID, rating, comment)
	if err != nil {
		return Feedback{}, store.Translate(err,
			"feedback already submitted for this event",
			"invalid event or student id")
	}
	return fb, nil
}

// ListForEvent returns an event's feedback, newest first.
func (s *Service) ListForEvent(ctx context.Context, eventID int64) ([]FeedbackDetail, error) {
	if eventID <= 0 {
		return nil, domain.InvalidInput("eventId query parameter required")
	}
	return s.store.ListForEvent(ctx, eventID)
}
