package feedback

import (
	"context"
	"database/sql"
)

// Repository persists feedback in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts or unconditionally overwrites the feedback row for
// (event, student).
func (r *Repository) Upsert(ctx context.Context, eventID, studentID int64, rating float64, comment *string) (Feedback, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO feedback (event_id, student_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id, student_id)
		DO UPDATE SET rating = $3, comment = $4, given_at = NOW()
		RETURNING id, event_id, student_id, rating, comment, given_at
	`, eventID, studentID, rating, comment)
	var fb Feedback
	if err := row.Scan(&fb.ID, &fb.EventID, &fb.StudentID, &fb.Rating, &fb.Comment, &fb.GivenAt); err != nil {
		return Feedback{}, err
	}
	return fb, nil
}

// ListForEvent returns an event's feedback joined with students, newest
// first.
func (r *Repository) ListForEvent(ctx context.Context, eventID int64) ([]FeedbackDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT f.id, f.event_id, f.student_id, f.rating, f.comment, f.given_at, s.full_name, s.email
		FROM feedback f
		JOIN students s ON f.student_id = s.id
		WHERE f.event_id = $1
		ORDER BY f.given_at DESC
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []FeedbackDetail
	for rows.Next() {
		var fb FeedbackDetail
		if err := rows.Scan(&fb.ID, &fb.EventID, &fb.StudentID, &fb.Rating, &fb.Comment, &fb.GivenAt, &fb.FullName, &fb.Email); err != nil {
			return nil, err
		}
		items = append(items, fb)
	}
	return items, rows.Err()
}
