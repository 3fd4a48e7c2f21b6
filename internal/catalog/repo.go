package catalog

import (
	"context"
	"database/sql"
	"errors"
)

// Repository persists catalog entities in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// InsertCollege creates a college row.
func (r *Repository) InsertCollege(ctx context.Context, name string) (College, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO colleges (name)
		VALUES ($1)
		RETURNING id, name, created_at
	`, name)
	var col College
	if err := row.Scan(&col.ID, &col.Name, &col.CreatedAt); err != nil {
		return College{}, err
	}
	return col, nil
}

// InsertStudent creates a student row.
func (r *Repository) InsertStudent(ctx context.Context, collegeID int64, fullName, email string) (Student, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO students (college_id, full_name, email)
		VALUES ($1, $2, $3)
		RETURNING id, college_id, full_name, email, created_at
	`, collegeID, fullName, email)
	var st Student
	if err := row.Scan(&st.ID, &st.CollegeID, &st.FullName, &st.Email, &st.CreatedAt); err != nil {
		return Student{}, err
	}
	return st, nil
}

// ListStudents returns students ordered by name, optionally filtered by
// college. collegeID <= 0 lists all students.
func (r *Repository) ListStudents(ctx context.Context, collegeID int64) ([]Student, error) {
	query := `SELECT id, college_id, full_name, email, created_at FROM students`
	args := []any{}
	if collegeID > 0 {
		query += ` WHERE college_id = $1`
		args = append(args, collegeID)
	}
	query += ` ORDER BY full_name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []Student
	for rows.Next() {
		var st Student
		if err := rows.Scan(&st.ID, &st.CollegeID, &st.FullName, &st.Email, &st.CreatedAt); err != nil {
			return nil, err
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

// InsertEvent creates an event row.
func (r *Repository) InsertEvent(ctx context.Context, evt Event) (Event, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO events (college_id, title, event_type, starts_at, ends_at, location)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, evt.CollegeID, evt.Title, evt.EventType, evt.StartsAt, evt.EndsAt, evt.Location)
	if err := row.Scan(&evt.ID, &evt.CreatedAt); err != nil {
		return Event{}, err
	}
	return evt, nil
}

// ListEvents returns a college's events ordered by start time.
func (r *Repository) ListEvents(ctx context.Context, collegeID int64) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, college_id, title, event_type, starts_at, ends_at, location, created_at
		FROM events
		WHERE college_id = $1
		ORDER BY starts_at ASC
	`, collegeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var evt Event
		if err := rows.Scan(&evt.ID, &evt.CollegeID, &evt.Title, &evt.EventType, &evt.StartsAt, &evt.EndsAt, &evt.Location, &evt.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, evt)
	}
	return events, rows.Err()
}

// GetEvent returns a single event by id, or nil when absent.
func (r *Repository) GetEvent(ctx context.Context, id int64) (*Event, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, college_id, title, event_type, starts_at, ends_at, location, created_at
		FROM events WHERE id = $1
	`, id)
	var evt Event
	if err := row.Scan(&evt.ID, &evt.CollegeID, &evt.Title, &evt.EventType, &evt.StartsAt, &evt.EndsAt, &evt.Location, &evt.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &evt, nil
}
