package catalog

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusevents/internal/domain"
)

type fakeStore struct {
	colleges map[string]College
	students map[string]Student
	events   map[int64]Event
	nextID   int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		colleges: map[string]College{},
		students: map[string]Student{},
		events:   map[int64]Event{},
	}
}

func (f *fakeStore) InsertCollege(_ context.Context, name string) (College, error) {
	if _, dup := f.colleges[name]; dup {
		return College{}, &pgconn.PgError{Code: "23505"}
	}
	f.nextID++
	col := College{ID: f.nextID, Name: name, CreatedAt: time.Now().UTC()}
	f.colleges[name] = col
	return col, nil
}

func (f *fakeStore) InsertStudent(_ context.Context, collegeID int64, fullName, email string) (Student, error) {
	if _, dup := f.students[email]; dup {
		return Student{}, &pgconn.PgError{Code: "23505"}
	}
	f.nextID++
	st := Student{ID: f.nextID, CollegeID: collegeID, FullName: fullName, Email: email}
	f.students[email] = st
	return st, nil
}

func (f *fakeStore) ListStudents(_ context.Context, collegeID int64) ([]Student, error) {
	var out []Student
	for _, st := range f.students {
		if collegeID <= 0 || st.CollegeID == collegeID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertEvent(_ context.Context, evt Event) (Event, error) {
	f.nextID++
	evt.ID = f.nextID
	f.events[evt.ID] = evt
	return evt, nil
}

func (f *fakeStore) ListEvents(_ context.Context, collegeID int64) ([]Event, error) {
	var out []Event
	for _, evt := range f.events {
		if evt.CollegeID == collegeID {
			out = append(out, evt)
		}
	}
	return out, nil
}

func (f *fakeStore) GetEvent(_ context.Context, id int64) (*Event, error) {
	if evt, ok := f.events[id]; ok {
		return &evt, nil
	}
	return nil, nil
}

func TestCreateCollegeValidation(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	var invalid *domain.InvalidInputError
	_, err := svc.CreateCollege(ctx, "A")
	require.ErrorAs(t, err, &invalid)
	_, err = svc.CreateCollege(ctx, "  X  ")
	require.ErrorAs(t, err, &invalid, "whitespace is trimmed before the length check")
	_, err = svc.CreateCollege(ctx, strings.Repeat("a", 101))
	require.ErrorAs(t, err, &invalid)

	col, err := svc.CreateCollege(ctx, "  MIT  ")
	require.NoError(t, err)
	assert.Equal(t, "MIT", col.Name)

	_, err = svc.CreateCollege(ctx, "MIT")
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestCreateStudentValidation(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	var invalid *domain.InvalidInputError
	_, err := svc.CreateStudent(ctx, 1, "Cher", "cher@example.com")
	require.ErrorAs(t, err, &invalid, "single-token names are rejected")
	_, err = svc.CreateStudent(ctx, 1, "Ada Lovelace", "not-an-email")
	require.ErrorAs(t, err, &invalid)
	_, err = svc.CreateStudent(ctx, 0, "Ada Lovelace", "ada@example.com")
	require.ErrorAs(t, err, &invalid)

	st, err := svc.CreateStudent(ctx, 1, "  Ada Lovelace  ", "Ada@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", st.FullName)
	assert.Equal(t, "ada@example.com", st.Email, "emails are stored lower-cased")

	_, err = svc.CreateStudent(ctx, 1, "Ada Byron", "ada@example.com")
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestCreateEventValidation(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()
	starts := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	base := Event{
		CollegeID: 1,
		Title:     "Spring Hack",
		EventType: "Hackathon",
		StartsAt:  starts,
		EndsAt:    starts.Add(8 * time.Hour),
		Location:  "Main Hall",
	}

	evt, err := svc.CreateEvent(ctx, base)
	require.NoError(t, err)
	assert.NotZero(t, evt.ID)

	var invalid *domain.InvalidInputError

	bad := base
	bad.EventType = "Concert"
	_, err = svc.CreateEvent(ctx, bad)
	require.ErrorAs(t, err, &invalid)

	bad = base
	bad.EndsAt = starts
	_, err = svc.CreateEvent(ctx, bad)
	require.ErrorAs(t, err, &invalid, "ends_at must be strictly after starts_at")

	bad = base
	bad.EndsAt = starts.Add(-time.Hour)
	_, err = svc.CreateEvent(ctx, bad)
	require.ErrorAs(t, err, &invalid)

	bad = base
	bad.Title = "   "
	_, err = svc.CreateEvent(ctx, bad)
	require.ErrorAs(t, err, &invalid)

	bad = base
	bad.Location = ""
	_, err = svc.CreateEvent(ctx, bad)
	require.ErrorAs(t, err, &invalid)
}

func TestGetEventNotFound(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	_, err := svc.GetEvent(ctx, 42)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)

	var invalid *domain.InvalidInputError
	_, err = svc.GetEvent(ctx, 0)
	require.ErrorAs(t, err, &invalid)
}

func TestValidEventType(t *testing.T) {
	for _, typ := range EventTypes {
		assert.True(t, ValidEventType(typ))
	}
	assert.False(t, ValidEventType("hackathon"), "event types are case sensitive")
	assert.False(t, ValidEventType(""))
}
