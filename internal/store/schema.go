package store

import "context"

// schema is applied at startup. Constraints carry the business rules the
// services rely on: unique college names and student emails, one
// registration per (event, student), one attendance row per registration,
// one feedback row per (event, student).
const schema = `
CREATE TABLE IF NOT EXISTS colleges (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS students (
	id         BIGSERIAL PRIMARY KEY,
	college_id BIGINT NOT NULL REFERENCES colleges(id),
	full_name  TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS events (
	id         BIGSERIAL PRIMARY KEY,
	college_id BIGINT NOT NULL REFERENCES colleges(id),
	title      TEXT NOT NULL,
	event_type TEXT NOT NULL CHECK (event_type IN ('Hackathon','Workshop','TechTalk','Fest','Seminar')),
	starts_at  TIMESTAMPTZ NOT NULL,
	ends_at    TIMESTAMPTZ NOT NULL CHECK (ends_at > starts_at),
	location   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS registrations (
	id            BIGSERIAL PRIMARY KEY,
	event_id      BIGINT NOT NULL REFERENCES events(id),
	student_id    BIGINT NOT NULL REFERENCES students(id),
	registered_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (event_id, student_id)
);

CREATE TABLE IF NOT EXISTS attendance (
	id              BIGSERIAL PRIMARY KEY,
	registration_id BIGINT NOT NULL UNIQUE REFERENCES registrations(id),
	present         BOOLEAN NOT NULL,
	marked_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS feedback (
	id         BIGSERIAL PRIMARY KEY,
	event_id   BIGINT NOT NULL REFERENCES events(id),
	student_id BIGINT NOT NULL REFERENCES students(id),
	rating     NUMERIC(3,1) NOT NULL CHECK (rating >= 1 AND rating <= 5),
	comment    TEXT,
	given_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (event_id, student_id)
);
`

// EnsureSchema creates missing tables.
func (d *DB) EnsureSchema(ctx context.Context) error {
	_, err := d.Client.ExecContext(ctx, schema)
	return err
}
