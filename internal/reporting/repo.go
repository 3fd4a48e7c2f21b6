package reporting

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Repository runs the read-side aggregation queries. Nothing here mutates.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// EventRegistrationCounts returns registration counts per event for a
// college. Ordering is applied by the service.
func (r *Repository) EventRegistrationCounts(ctx context.Context, collegeID int64) ([]EventPopularity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.id, e.title, COUNT(r.id)
		FROM events e
		LEFT JOIN registrations r ON r.event_id = e.id
		WHERE e.college_id = $1
		GROUP BY e.id
	`, collegeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []EventPopularity
	for rows.Next() {
		var p EventPopularity
		if err := rows.Scan(&p.EventID, &p.Title, &p.Registrations); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// AttendanceCounts returns present/registered counts for one event, or nil
// when the event does not exist.
func (r *Repository) AttendanceCounts(ctx context.Context, eventID int64) (*AttendanceCounts, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT e.id, e.title, COUNT(r.id),
		       COALESCE(SUM(CASE WHEN a.present THEN 1 ELSE 0 END), 0)
		FROM events e
		LEFT JOIN registrations r ON r.event_id = e.id
		LEFT JOIN attendance a ON a.registration_id = r.id
		WHERE e.id = $1
		GROUP BY e.id
	`, eventID)
	var c AttendanceCounts
	if err := row.Scan(&c.EventID, &c.Title, &c.Registered, &c.Present); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// FeedbackTotals returns rating sum and count for one event, or nil when
// the event does not exist.
func (r *Repository) FeedbackTotals(ctx context.Context, eventID int64) (*FeedbackTotals, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT e.id, e.title, COALESCE(SUM(f.rating), 0), COUNT(f.id)
		FROM events e
		LEFT JOIN feedback f ON f.event_id = e.id
		WHERE e.id = $1
		GROUP BY e.id
	`, eventID)
	var t FeedbackTotals
	if err := row.Scan(&t.EventID, &t.Title, &t.RatingSum, &t.Count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// ParticipationCounts returns confirmed-present counts per student for
// students with at least one registration to a college event.
func (r *Repository) ParticipationCounts(ctx context.Context, collegeID int64) ([]Participation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.full_name, s.email,
		       COALESCE(SUM(CASE WHEN a.present THEN 1 ELSE 0 END), 0)
		FROM students s
		JOIN registrations r ON r.student_id = s.id
		LEFT JOIN attendance a ON a.registration_id = r.id
		WHERE s.college_id = $1
		GROUP BY s.id
	`, collegeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Participation
	for rows.Next() {
		var p Participation
		if err := rows.Scan(&p.StudentID, &p.FullName, &p.Email, &p.EventsAttended); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// DashboardCounts gathers the raw counts behind the dashboard snapshot.
// now anchors the calendar-month comparisons.
func (r *Repository) DashboardCounts(ctx context.Context, collegeID int64, now time.Time) (DashboardCounts, error) {
	var c DashboardCounts

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM events WHERE college_id = $1
	`, collegeID).Scan(&c.TotalEvents)
	if err != nil {
		return DashboardCounts{}, err
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(r.id),
		       COALESCE(SUM(CASE WHEN a.present THEN 1 ELSE 0 END), 0)
		FROM events e
		LEFT JOIN registrations r ON r.event_id = e.id
		LEFT JOIN attendance a ON a.registration_id = r.id
		WHERE e.college_id = $1
	`, collegeID).Scan(&c.Registrations, &c.PresentCount)
	if err != nil {
		return DashboardCounts{}, err
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(f.rating), 0), COUNT(f.id)
		FROM feedback f
		JOIN events e ON f.event_id = e.id
		WHERE e.college_id = $1
	`, collegeID).Scan(&c.RatingSum, &c.RatingCount)
	if err != nil {
		return DashboardCounts{}, err
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM events
		WHERE college_id = $1
		AND starts_at >= DATE_TRUNC('month', $2::timestamptz)
	`, collegeID, now).Scan(&c.CurrentMonthEvents)
	if err != nil {
		return DashboardCounts{}, err
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM events
		WHERE college_id = $1
		AND starts_at >= DATE_TRUNC('month', $2::timestamptz - INTERVAL '1 month')
		AND starts_at < DATE_TRUNC('month', $2::timestamptz)
	`, collegeID, now).Scan(&c.PrevMonthEvents)
	if err != nil {
		return DashboardCounts{}, err
	}

	return c, nil
}

// MonthlyRegistrations returns per-calendar-month registration counts for a
// college's events from the given month onward, chronological.
func (r *Repository) MonthlyRegistrations(ctx context.Context, collegeID int64, from time.Time) ([]MonthCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DATE_TRUNC('month', r.registered_at) AS month, COUNT(r.id)
		FROM registrations r
		JOIN events e ON r.event_id = e.id
		WHERE e.college_id = $1
		AND r.registered_at >= $2
		GROUP BY DATE_TRUNC('month', r.registered_at)
		ORDER BY month
	`, collegeID, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MonthCount
	for rows.Next() {
		var m MonthCount
		if err := rows.Scan(&m.Month, &m.Count); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// EventTypeCounts returns per-type event counts for a college.
func (r *Repository) EventTypeCounts(ctx context.Context, collegeID int64) ([]CategoryCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT event_type, COUNT(*)
		FROM events
		WHERE college_id = $1
		GROUP BY event_type
	`, collegeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CategoryCount
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}
