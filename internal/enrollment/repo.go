package enrollment

import (
	"context"
	"database/sql"
	"errors"
)

// Repository persists registrations and attendance in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// InsertRegistration creates a registration row. Duplicate (event, student)
// pairs are rejected by the unique constraint, not by an application-level
// check, so concurrent requests cannot slip a second row in.
func (r *Repository) InsertRegistration(ctx context.Context, eventID, studentID int64) (Registration, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO registrations (event_id, student_id)
		VALUES ($1, $2)
		RETURNING id, event_id, student_id, registered_at
	`, eventID, studentID)
	var reg Registration
	if err := row.Scan(&reg.ID, &reg.EventID, &reg.StudentID, &reg.RegisteredAt); err != nil {
		return Registration{}, err
	}
	return reg, nil
}

// ListRegistrations returns an event's registrations joined with students,
// newest first.
func (r *Repository) ListRegistrations(ctx context.Context, eventID int64) ([]RegistrationDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, r.event_id, r.student_id, r.registered_at, s.full_name, s.email
		FROM registrations r
		JOIN students s ON r.student_id = s.id
		WHERE r.event_id = $1
		ORDER BY r.registered_at DESC
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []RegistrationDetail
	for rows.Next() {
		var reg RegistrationDetail
		if err := rows.Scan(&reg.ID, &reg.EventID, &reg.StudentID, &reg.RegisteredAt, &reg.FullName, &reg.Email); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

// GetAttendance returns the attendance row for a registration, or nil when
// the registration has not been marked yet.
func (r *Repository) GetAttendance(ctx context.Context, registrationID int64) (*Attendance, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, registration_id, present, marked_at
		FROM attendance WHERE registration_id = $1
	`, registrationID)
	var att Attendance
	if err := row.Scan(&att.ID, &att.RegistrationID, &att.Present, &att.MarkedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &att, nil
}

// UpsertAttendance applies a mark in a single atomic statement. The conflict
// clause preserves present and marked_at whenever the stored present is
// already true, so a row confirmed present can never be flipped back even
// when two marks race. Decomposing this into a read plus a write would
// reintroduce the lost update.
func (r *Repository) UpsertAttendance(ctx context.Context, registrationID int64, present bool) (Attendance, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO attendance (registration_id, present)
		VALUES ($1, $2)
		ON CONFLICT (registration_id)
		DO UPDATE SET
			present   = CASE WHEN attendance.present THEN attendance.present ELSE EXCLUDED.present END,
			marked_at = CASE WHEN attendance.present THEN attendance.marked_at ELSE NOW() END
		RETURNING id, registration_id, present, marked_at
	`, registrationID, present)
	var att Attendance
	if err := row.Scan(&att.ID, &att.RegistrationID, &att.Present, &att.MarkedAt); err != nil {
		return Attendance{}, err
	}
	return att, nil
}

// ListAttendance returns attendance rows for an event's registrations.
func (r *Repository) ListAttendance(ctx context.Context, eventID int64) ([]AttendanceDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT a.id, a.registration_id, a.present, a.marked_at, r.event_id, r.student_id
		FROM attendance a
		JOIN registrations r ON r.id = a.registration_id
		WHERE r.event_id = $1
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []AttendanceDetail
	for rows.Next() {
		var rec AttendanceDetail
		if err := rows.Scan(&rec.ID, &rec.RegistrationID, &rec.Present, &rec.MarkedAt, &rec.EventID, &rec.StudentID); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
