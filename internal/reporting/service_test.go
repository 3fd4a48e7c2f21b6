package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusevents/internal/domain"
)

type fakeStore struct {
	popularity    []EventPopularity
	attendance    *AttendanceCounts
	feedback      *FeedbackTotals
	participation []Participation
	dashboard     DashboardCounts
	monthly       []MonthCount
	categories    []CategoryCount

	dashboardCalls int
}

func (f *fakeStore) EventRegistrationCounts(context.Context, int64) ([]EventPopularity, error) {
	return f.popularity, nil
}
func (f *fakeStore) AttendanceCounts(context.Context, int64) (*AttendanceCounts, error) {
	return f.attendance, nil
}
func (f *fakeStore) FeedbackTotals(context.Context, int64) (*FeedbackTotals, error) {
	return f.feedback, nil
}
func (f *fakeStore) ParticipationCounts(context.Context, int64) ([]Participation, error) {
	return f.participation, nil
}
func (f *fakeStore) DashboardCounts(context.Context, int64, time.Time) (DashboardCounts, error) {
	f.dashboardCalls++
	return f.dashboard, nil
}
func (f *fakeStore) MonthlyRegistrations(context.Context, int64, time.Time) ([]MonthCount, error) {
	return f.monthly, nil
}
func (f *fakeStore) EventTypeCounts(context.Context, int64) ([]CategoryCount, error) {
	return f.categories, nil
}

type fakeCache struct {
	data map[string][]byte
}

func (f *fakeCache) GetCached(_ context.Context, key string) ([]byte, bool) {
	v, ok := f.data[key]
	return v, ok
}

func (f *fakeCache) SetCached(_ context.Context, key string, payload []byte, _ time.Duration) {
	f.data[key] = payload
}

func TestEventPopularityOrdering(t *testing.T) {
	fs := &fakeStore{popularity: []EventPopularity{
		{EventID: 3, Title: "C", Registrations: 2},
		{EventID: 2, Title: "B", Registrations: 5},
		{EventID: 1, Title: "A", Registrations: 5},
	}}
	svc := NewService(fs, nil, 0)

	items, err := svc.EventPopularity(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 3)
	// ties on count fall back to ascending event id
	assert.Equal(t, int64(1), items[0].EventID)
	assert.Equal(t, int64(2), items[1].EventID)
	assert.Equal(t, int64(3), items[2].EventID)
}

func TestAttendancePercent(t *testing.T) {
	fs := &fakeStore{attendance: &AttendanceCounts{EventID: 7, Title: "Demo Day", Registered: 4, Present: 3}}
	svc := NewService(fs, nil, 0)

	rep, err := svc.AttendancePercent(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 75.0, rep.AttendancePercent)
	require.NotNil(t, rep.Title)
	assert.Equal(t, "Demo Day", *rep.Title)

	// zero registrations must not divide by zero
	fs.attendance = &AttendanceCounts{EventID: 8, Title: "Empty", Registered: 0, Present: 0}
	rep, err = svc.AttendancePercent(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep.AttendancePercent)

	// unknown event falls back to a zeroed report, matching the API contract
	fs.attendance = nil
	rep, err = svc.AttendancePercent(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), rep.EventID)
	assert.Nil(t, rep.Title)
	assert.Equal(t, 0.0, rep.AttendancePercent)
}

func TestAttendancePercentRounding(t *testing.T) {
	assert.Equal(t, 66.67, attendancePercent(2, 3))
	assert.Equal(t, 33.33, attendancePercent(1, 3))
	assert.Equal(t, 100.0, attendancePercent(5, 5))
	assert.Equal(t, 0.0, attendancePercent(0, 0))
}

func TestAvgFeedback(t *testing.T) {
	fs := &fakeStore{feedback: &FeedbackTotals{EventID: 7, Title: "Demo Day", RatingSum: 12, Count: 3}}
	svc := NewService(fs, nil, 0)

	rep, err := svc.AvgFeedback(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, rep.AvgRating)
	assert.Equal(t, 4.0, *rep.AvgRating)
	assert.Equal(t, 3, rep.FeedbackCount)

	// no feedback yields a null average, not zero
	fs.feedback = &FeedbackTotals{EventID: 8, Title: "Quiet", RatingSum: 0, Count: 0}
	rep, err = svc.AvgFeedback(context.Background(), 8)
	require.NoError(t, err)
	assert.Nil(t, rep.AvgRating)
	assert.Equal(t, 0, rep.FeedbackCount)
}

func TestStudentParticipationOrdering(t *testing.T) {
	fs := &fakeStore{participation: []Participation{
		{StudentID: 5, EventsAttended: 1},
		{StudentID: 2, EventsAttended: 4},
		{StudentID: 1, EventsAttended: 4},
	}}
	svc := NewService(fs, nil, 0)

	items, err := svc.StudentParticipation(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, int64(1), items[0].StudentID)
	assert.Equal(t, int64(2), items[1].StudentID)
	assert.Equal(t, int64(5), items[2].StudentID)
}

func TestBuildDashboardStats(t *testing.T) {
	stats := buildDashboardStats(DashboardCounts{
		TotalEvents:        10,
		Registrations:      60,
		PresentCount:       51,
		RatingSum:          27,
		RatingCount:        6,
		CurrentMonthEvents: 6,
		PrevMonthEvents:    4,
	})

	assert.Equal(t, 10, stats.TotalEvents)
	assert.Equal(t, 50, stats.EventsTrend, "(6-4)/4 = +50%")
	assert.Equal(t, 60, stats.ActiveRegistrations)
	assert.Equal(t, 8, stats.RegistrationsTrend, "more than 50 registrations")
	assert.Equal(t, 85, stats.AvgAttendance, "51/60 = 85%")
	assert.Equal(t, 5, stats.AttendanceTrend, "attendance above 80")
	assert.Equal(t, 90, stats.AvgSatisfaction, "4.5 average scaled by 20")
	assert.Equal(t, 3, stats.SatisfactionTrend, "satisfaction above 4")
}

func TestBuildDashboardStatsEdges(t *testing.T) {
	// no previous month, some current month events: trend pegged at 100
	stats := buildDashboardStats(DashboardCounts{CurrentMonthEvents: 2})
	assert.Equal(t, 100, stats.EventsTrend)

	// nothing at all: everything bottoms out
	stats = buildDashboardStats(DashboardCounts{})
	assert.Equal(t, 0, stats.EventsTrend)
	assert.Equal(t, 0, stats.AvgAttendance)
	assert.Equal(t, 0, stats.AvgSatisfaction)
	assert.Equal(t, 5, stats.RegistrationsTrend)
	assert.Equal(t, 2, stats.AttendanceTrend)
	assert.Equal(t, 1, stats.SatisfactionTrend)

	// shrinking month count goes negative
	stats = buildDashboardStats(DashboardCounts{CurrentMonthEvents: 1, PrevMonthEvents: 4})
	assert.Equal(t, -75, stats.EventsTrend)
}

func TestDashboardStatsCache(t *testing.T) {
	fs := &fakeStore{dashboard: DashboardCounts{TotalEvents: 3}}
	cache := &fakeCache{data: map[string][]byte{}}
	svc := NewService(fs, cache, time.Minute)

	first, err := svc.DashboardStats(context.Background(), 1)
	require.NoError(t, err)
	second, err := svc.DashboardStats(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fs.dashboardCalls, "second call must be served from cache")

	// ttl zero disables caching entirely
	fs2 := &fakeStore{dashboard: DashboardCounts{TotalEvents: 3}}
	svc = NewService(fs2, cache, 0)
	_, err = svc.DashboardStats(context.Background(), 1)
	require.NoError(t, err)
	_, err = svc.DashboardStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, fs2.dashboardCalls)
}

func TestBuildMonthlySeries(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	points := []MonthCount{
		{Month: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), Count: 4},
		{Month: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Count: 9},
	}

	series := buildMonthlySeries(points, now)
	require.Len(t, series, 12)
	assert.Equal(t, "Sep", series[0].Month)
	assert.Equal(t, 4, series[0].Registrations)
	assert.Equal(t, "Aug", series[11].Month)
	assert.Equal(t, 9, series[11].Registrations)

	// months without registrations are zero-filled, keeping the series continuous
	for i := 1; i < 11; i++ {
		assert.Equal(t, 0, series[i].Registrations)
	}
}

func TestRegistrationTrendsUsesTrailingYear(t *testing.T) {
	fs := &fakeStore{}
	svc := NewService(fs, nil, 0)
	svc.now = func() time.Time { return time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC) }

	series, err := svc.RegistrationTrends(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, series, 12)
	assert.Equal(t, "Mar", series[0].Month)
	assert.Equal(t, "Feb", series[11].Month)
}

func TestBuildCategoryShares(t *testing.T) {
	shares := buildCategoryShares([]CategoryCount{
		{Category: "Workshop", Count: 2},
		{Category: "Hackathon", Count: 4},
		{Category: "Seminar", Count: 2},
	})
	require.Len(t, shares, 3)
	assert.Equal(t, "Hackathon", shares[0].Category)
	assert.Equal(t, 50.0, shares[0].Percentage)
	// tied counts fall back to category name
	assert.Equal(t, "Seminar", shares[1].Category)
	assert.Equal(t, 25.0, shares[1].Percentage)
	assert.Equal(t, "Workshop", shares[2].Category)

	assert.Empty(t, buildCategoryShares(nil))
}

func TestReportValidation(t *testing.T) {
	svc := NewService(&fakeStore{}, nil, 0)
	ctx := context.Background()

	var invalid *domain.InvalidInputError
	_, err := svc.EventPopularity(ctx, 0)
	require.ErrorAs(t, err, &invalid)
	_, err = svc.AttendancePercent(ctx, 0)
	require.ErrorAs(t, err, &invalid)
	_, err = svc.AvgFeedback(ctx, -2)
	require.ErrorAs(t, err, &invalid)
	_, err = svc.StudentParticipation(ctx, 0)
	require.ErrorAs(t, err, &invalid)
	_, err = svc.DashboardStats(ctx, 0)
	require.ErrorAs(t, err, &invalid)
	_, err = svc.RegistrationTrends(ctx, 0)
	require.ErrorAs(t, err, &invalid)
	_, err = svc.EventCategories(ctx, 0)
	require.ErrorAs(t, err, &invalid)
}
