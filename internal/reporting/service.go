package reporting

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"campusevents/internal/domain"
)

// Store is the aggregation surface the service needs.
type Store interface {
	EventRegistrationCounts(ctx context.Context, collegeID int64) ([]EventPopularity, error)
	AttendanceCounts(ctx context.Context, eventID int64) (*AttendanceCounts, error)
	FeedbackTotals(ctx context.Context, eventID int64) (*FeedbackTotals, error)
	ParticipationCounts(ctx context.Context, collegeID int64) ([]Participation, error)
	DashboardCounts(ctx context.Context, collegeID int64, now time.Time) (DashboardCounts, error)
	MonthlyRegistrations(ctx context.Context, collegeID int64, from time.Time) ([]MonthCount, error)
	EventTypeCounts(ctx context.Context, collegeID int64) ([]CategoryCount, error)
}

// Cache is an optional short-TTL cache for the dashboard snapshot. All
// other reports are always computed fresh.
type Cache interface {
	GetCached(ctx context.Context, key string) ([]byte, bool)
	SetCached(ctx context.Context, key string, payload []byte, ttl time.Duration)
}

// Service computes the read-side reports. SQL does the grouping and
// counting; the arithmetic, ordering and series shaping happen here.
type Service struct {
	store    Store
	cache    Cache
	cacheTTL time.Duration
	now      func() time.Time
}

// NewService creates a service backed by a store. cache may be nil; a
// non-positive ttl disables caching.
func NewService(store Store, cache Cache, cacheTTL time.Duration) *Service {
	return &Service{store: store, cache: cache, cacheTTL: cacheTTL, now: time.Now}
}

// EventPopularity ranks a college's events by registration count,
// descending, ties broken by ascending event id.
func (s *Service) EventPopularity(ctx context.Context, collegeID int64) ([]EventPopularity, error) {
	if collegeID <= 0 {
		return nil, domain.InvalidInput("collegeId query parameter required")
	}
	items, err := s.store.EventRegistrationCounts(ctx, collegeID)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Registrations != items[j].Registrations {
			return items[i].Registrations > items[j].Registrations
		}
		return items[i].EventID < items[j].EventID
	})
	return items, nil
}

// AttendancePercent computes round(100 * present / registered, 2) for one
// event, 0 when the event has no registrations or does not exist.
func (s *Service) AttendancePercent(ctx context.Context, eventID int64) (AttendanceReport, error) {
	if eventID <= 0 {
		return AttendanceReport{}, domain.InvalidInput("eventId query parameter required")
	}
	counts, err := s.store.AttendanceCounts(ctx, eventID)
	if err != nil {
		return AttendanceReport{}, err
	}
	if counts == nil {
		return AttendanceReport{EventID: eventID}, nil
	}
	return AttendanceReport{
		EventID:           counts.EventID,
		Title:             &counts.Title,
		AttendancePercent: attendancePercent(counts.Present, counts.Registered),
	}, nil
}

// AvgFeedback computes the average rating (2 decimals) and feedback count
// for one event. The average is null when no feedback exists.
func (s *Service) AvgFeedback(ctx context.Context, eventID int64) (FeedbackReport, error) {
	if eventID <= 0 {
		return FeedbackReport{}, domain.InvalidInput("eventId query parameter required")
	}
	totals, err := s.store.FeedbackTotals(ctx, eventID)
	if err != nil {
		return FeedbackReport{}, err
	}
	if totals == nil {
		return FeedbackReport{EventID: eventID}, nil
	}
	rep := FeedbackReport{
		EventID:       totals.EventID,
		Title:         &totals.Title,
		FeedbackCount: totals.Count,
	}
	if totals.Count > 0 {
		avg := round2(totals.RatingSum / float64(totals.Count))
		rep.AvgRating = &avg
	}
	return rep, nil
}

// StudentParticipation ranks a college's students by confirmed-present
// count, descending, ties broken by ascending student id.
func (s *Service) StudentParticipation(ctx context.Context, collegeID int64) ([]Participation, error) {
	if collegeID <= 0 {
		return nil, domain.InvalidInput("collegeId query parameter required")
	}
	items, err := s.store.ParticipationCounts(ctx, collegeID)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].EventsAttended != items[j].EventsAttended {
			return items[i].EventsAttended > items[j].EventsAttended
		}
		return items[i].StudentID < items[j].StudentID
	})
	return items, nil
}

// DashboardStats assembles the aggregate snapshot for a college. When a
// cache is configured the result may be up to cacheTTL stale.
func (s *Service) DashboardStats(ctx context.Context, collegeID int64) (DashboardStats, error) {
	if collegeID <= 0 {
		return DashboardStats{}, domain.InvalidInput("collegeId query parameter required")
	}

	key := fmt.Sprintf("reports:dashboard:%d", collegeID)
	if s.cache != nil && s.cacheTTL > 0 {
		if data, ok := s.cache.GetCached(ctx, key); ok {
			var stats DashboardStats
			if err := json.Unmarshal(data, &stats); err == nil {
				return stats, nil
			}
		}
	}

	counts, err := s.store.DashboardCounts(ctx, collegeID, s.now().UTC())
	if err != nil {
		return DashboardStats{}, err
	}
	stats := buildDashboardStats(counts)

	if s.cache != nil && s.cacheTTL > 0 {
		if data, err := json.Marshal(stats); err == nil {
			s.cache.SetCached(ctx, key, data, s.cacheTTL)
		}
	}
	return stats, nil
}

// RegistrationTrends returns the trailing-12-month registration series,
// one point per calendar month, months without registrations zero-filled.
func (s *Service) RegistrationTrends(ctx context.Context, collegeID int64) ([]TrendPoint, error) {
	if collegeID <= 0 {
		return nil, domain.InvalidInput("collegeId query parameter required")
	}
	now := s.now().UTC()
	from := monthStart(now).AddDate(0, -11, 0)
	points, err := s.store.MonthlyRegistrations(ctx, collegeID, from)
	if err != nil {
		return nil, err
	}
	return buildMonthlySeries(points, now), nil
}

// EventCategories returns the per-type event distribution with percentage
// shares, largest first.
func (s *Service) EventCategories(ctx context.Context, collegeID int64) ([]CategoryShare, error) {
	if collegeID <= 0 {
		return nil, domain.InvalidInput("collegeId query parameter required")
	}
	counts, err := s.store.EventTypeCounts(ctx, collegeID)
	if err != nil {
		return nil, err
	}
	return buildCategoryShares(counts), nil
}

// --- pure computation ---

func attendancePercent(present, registered int) float64 {
	if registered == 0 {
		return 0
	}
	return round2(100 * float64(present) / float64(registered))
}

// buildDashboardStats turns raw counts into the dashboard snapshot. The
// trend figures mirror the long-standing dashboard heuristics: events get a
// real month-over-month delta, the rest are fixed placeholder trends.
func buildDashboardStats(c DashboardCounts) DashboardStats {
	avgAttendance := attendancePercent(c.PresentCount, c.Registrations)

	var avgSatisfaction float64
	if c.RatingCount > 0 {
		avgSatisfaction = round2(c.RatingSum / float64(c.RatingCount))
	}

	eventsTrend := 0
	switch {
	case c.PrevMonthEvents > 0:
		eventsTrend = int(math.Round(100 * float64(c.CurrentMonthEvents-c.PrevMonthEvents) / float64(c.PrevMonthEvents)))
	case c.CurrentMonthEvents > 0:
		eventsTrend = 100
	}

	registrationsTrend := 5
	if c.Registrations > 50 {
		registrationsTrend = 8
	}
	attendanceTrend := 2
	if avgAttendance > 80 {
		attendanceTrend = 5
	}
	satisfactionTrend := 1
	if avgSatisfaction > 4 {
		satisfactionTrend = 3
	}

	return DashboardStats{
		TotalEvents:         c.TotalEvents,
		EventsTrend:         eventsTrend,
		ActiveRegistrations: c.Registrations,
		RegistrationsTrend:  registrationsTrend,
		AvgAttendance:       int(math.Round(avgAttendance)),
		AttendanceTrend:     attendanceTrend,
		// 1-5 average scaled to a 0-100 figure
		AvgSatisfaction:   int(math.Round(avgSatisfaction * 20)),
		SatisfactionTrend: satisfactionTrend,
	}
}

// buildMonthlySeries expands sparse month counts into a continuous
// 12-month series ending at now's month.
func buildMonthlySeries(points []MonthCount, now time.Time) []TrendPoint {
	counts := make(map[string]int, len(points))
	for _, p := range points {
		counts[p.Month.UTC().Format("2006-01")] = p.Count
	}
	series := make([]TrendPoint, 0, 12)
	start := monthStart(now).AddDate(0, -11, 0)
	for i := 0; i < 12; i++ {
		m := start.AddDate(0, i, 0)
		series = append(series, TrendPoint{
			Month:         m.Format("Jan"),
			Registrations: counts[m.Format("2006-01")],
		})
	}
	return series
}

func buildCategoryShares(counts []CategoryCount) []CategoryShare {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	shares := make([]CategoryShare, 0, len(counts))
	for _, c := range counts {
		pct := 0.0
		if total > 0 {
			pct = round1(100 * float64(c.Count) / float64(total))
		}
		shares = append(shares, CategoryShare{Category: c.Category, Count: c.Count, Percentage: pct})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Category < shares[j].Category
	})
	return shares
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }

func round1(x float64) float64 { return math.Round(x*10) / 10 }
