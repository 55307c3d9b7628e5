package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shenikar/emergency_management_system/internal/config"
	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/shenikar/emergency_management_system/pkg/metrics"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	trendMonths          = 6
	trendRecentLimit     = 50
	trendTopNeighborhood = 10
	defaultSnapshotDays  = 30
	maxSnapshotDays      = 366
	unspecifiedLabel     = "unspecified"
)

// StatsRepository runs the incident aggregations and stores daily snapshots
type StatsRepository interface {
	Facets(ctx context.Context, q models.StatsQuery) (*models.IncidentFacets, error)
	MonthlySeries(ctx context.Context, from time.Time, filter models.IncidentFilter) ([]models.MonthBucket, error)
	UpsertSnapshot(ctx context.Context, stat *models.DashboardStat) (*models.DashboardStat, error)
	ListSnapshots(ctx context.Context, since time.Time) ([]models.DashboardStat, error)
}

type StatsService interface {
	DashboardStats(ctx context.Context, req models.StatsRequest) (*models.DashboardStats, error)
	IncidentTrends(ctx context.Context, filter models.IncidentFilter) (*models.IncidentTrends, error)
	RecalculateDailyStats(ctx context.Context) (*models.DashboardStat, error)
	ListSnapshots(ctx context.Context, days int) ([]models.DashboardStat, error)
}

type statsService struct {
	repo      StatsRepository
	incidents IncidentRepository
	metrics   *metrics.Metrics
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewStatsService(repo StatsRepository, incidents IncidentRepository, m *metrics.Metrics, logger *logrus.Logger, cfg *config.Config) StatsService {
	return &statsService{
		repo:      repo,
		incidents: incidents,
		metrics:   m,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// DashboardStats computes the statistics bundle for a window
func (s *statsService) DashboardStats(ctx context.Context, req models.StatsRequest) (*models.DashboardStats, error) {
	if req.Window.From.IsZero() && req.Window.To.IsZero() {
		req.Window = models.MonthWindow(s.now().UTC())
	}
	if !req.Window.From.IsZero() && !req.Window.To.IsZero() && !req.Window.From.Before(req.Window.To) {
		return nil, fmt.Errorf("%w: window start must precede its end", models.ErrBadRequest)
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "stats",
		"method":  "DashboardStats",
		"from":    req.Window.From,
		"to":      req.Window.To,
	})
	log.Info("Computing dashboard statistics")

	facets, err := s.repo.Facets(ctx, models.StatsQuery{Window: req.Window, Filter: req.Filter})
	if err != nil {
		log.WithError(err).Error("Failed to aggregate incidents")
		return nil, fmt.Errorf("service: could not compute dashboard stats: %w", err)
	}

	stats := buildDashboardStats(facets, req.Top)
	stats.From, stats.To = req.Window.From, req.Window.To
	return stats, nil
}

// IncidentTrends backs the incidents panel: newest reports, the trailing six
// months and breakdowns over all time.
func (s *statsService) IncidentTrends(ctx context.Context, filter models.IncidentFilter) (*models.IncidentTrends, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "stats",
		"method":  "IncidentTrends",
	})
	log.Info("Computing incident trends")

	now := s.now().UTC()
	first := firstMonth(now, trendMonths)

	var (
		recent []models.Incident
		series []models.MonthBucket
		facets *models.IncidentFacets
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recentFilter := filter
		recentFilter.Limit = trendRecentLimit
		recent, err = s.incidents.List(gctx, models.StatsQuery{Filter: recentFilter})
		return err
	})
	g.Go(func() error {
		var err error
		series, err = s.repo.MonthlySeries(gctx, first, filter)
		return err
	})
	g.Go(func() error {
		var err error
		facets, err = s.repo.Facets(gctx, models.StatsQuery{Filter: filter})
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to aggregate incident trends")
		return nil, fmt.Errorf("service: could not compute incident trends: %w", err)
	}

	return &models.IncidentTrends{
		RecentIncidents:         recent,
		IncidentsByMonth:        fillMonths(first, trendMonths, series),
		IncidentsByType:         breakdown(models.IncidentTypes, facets.ByType),
		IncidentsBySeverity:     breakdown(models.Severities, facets.BySeverity),
		IncidentsByNeighborhood: namedCounts(facets.ByNeighborhood, trendTopNeighborhood),
	}, nil
}

// RecalculateDailyStats computes today's bundle and upserts the dated snapshot.
// Repeated calls on the same day rewrite the same document.
func (s *statsService) RecalculateDailyStats(ctx context.Context) (*models.DashboardStat, error) {
	day := models.DayWindow(s.now().UTC())
	log := s.logger.WithFields(logrus.Fields{
		"service": "stats",
		"method":  "RecalculateDailyStats",
		"date":    day.From.Format(time.DateOnly),
	})
	log.Info("Recalculating daily statistics")

	facets, err := s.repo.Facets(ctx, models.StatsQuery{Window: day})
	if err != nil {
		log.WithError(err).Error("Failed to aggregate incidents")
		return nil, fmt.Errorf("service: could not recalculate stats: %w", err)
	}
	stats := buildDashboardStats(facets, 0)

	snapshot := &models.DashboardStat{
		Date:   day.From,
		Source: models.StatSourceInternal,
		Metrics: models.SnapshotMetrics{
			TotalIncidents:      stats.TotalIncidents,
			ActiveIncidents:     stats.ActiveIncidents,
			ResolvedIncidents:   stats.ResolvedIncidents,
			CriticalIncidents:   stats.CriticalIncidents,
			AverageResponseTime: stats.AverageResponseTime,
			AffectedPeople:      stats.AffectedPeople,
		},
		IncidentsByType:       stats.IncidentsByType,
		IncidentsBySeverity:   stats.IncidentsBySeverity,
		IncidentsByDepartment: stats.IncidentsByDepartment,
		ResponseMetrics:       stats.ResponseMetrics,
	}

	stored, err := s.repo.UpsertSnapshot(ctx, snapshot)
	if err != nil {
		log.WithError(err).Error("Failed to store daily statistics")
		return nil, fmt.Errorf("service: could not store daily stats: %w", err)
	}
	s.metrics.StatsRecomputed()

	log.Info("Daily statistics stored")
	return stored, nil
}

// ListSnapshots returns the snapshots of the last days calendar days, newest first
func (s *statsService) ListSnapshots(ctx context.Context, days int) ([]models.DashboardStat, error) {
	if days < 1 {
		days = defaultSnapshotDays
	}
	if days > maxSnapshotDays {
		days = maxSnapshotDays
	}
	since := models.StartOfDay(s.now().UTC()).AddDate(0, 0, -(days - 1))

	snapshots, err := s.repo.ListSnapshots(ctx, since)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"service": "stats", "method": "ListSnapshots"}).
			WithError(err).Error("Failed to list snapshots")
		return nil, fmt.Errorf("service: could not list snapshots: %w", err)
	}
	return snapshots, nil
}

// facetSummary is what every statistics bundle reads off an aggregation result
type facetSummary struct {
	totals   models.FacetTotals
	response models.ResponseAverages
	byStatus map[string]int64
	active   int64
	resolved int64
}

func summarize(f *models.IncidentFacets) facetSummary {
	var sum facetSummary
	if len(f.Totals) > 0 {
		sum.totals = f.Totals[0]
	}
	if len(f.Response) > 0 {
		sum.response = f.Response[0]
	}
	sum.byStatus = breakdown(models.IncidentStatuses, f.ByStatus)
	for _, st := range models.ActiveStatuses {
		sum.active += sum.byStatus[string(st)]
	}
	sum.resolved = sum.byStatus[string(models.IncidentStatusResolved)]
	return sum
}

func buildDashboardStats(f *models.IncidentFacets, top int) *models.DashboardStats {
	sum := summarize(f)
	totals, resp := sum.totals, sum.response

	phases := models.ResponseMetrics{
		AverageAssignmentTime: roundMinutes(resp.Assignment),
		AverageArrivalTime:    roundMinutes(resp.Arrival),
		AverageResolutionTime: roundMinutes(resp.Resolution),
	}

	return &models.DashboardStats{
		TotalIncidents:          totals.Total,
		ActiveIncidents:         sum.active,
		ResolvedIncidents:       sum.resolved,
		ClosedIncidents:         sum.byStatus[string(models.IncidentStatusClosed)],
		CriticalIncidents:       totals.CriticalActive,
		AffectedPeople:          totals.AffectedPeople,
		PeopleHelped:            totals.AffectedResolved,
		AverageResponseTime:     overallResponse(resp),
		ResponseMetrics:         phases,
		IncidentsByType:         breakdown(models.IncidentTypes, f.ByType),
		IncidentsBySeverity:     breakdown(models.Severities, f.BySeverity),
		IncidentsByStatus:       sum.byStatus,
		IncidentsByDepartment:   namedCounts(f.ByDepartment, top),
		IncidentsByNeighborhood: namedCounts(f.ByNeighborhood, top),
	}
}

// overallResponse prefers the rounded sum of the phase averages when some incident
// carries the full timeline, otherwise the assigned-to-resolved average.
// The phases are averaged over the same incidents, so their sum is a mean too.
func overallResponse(r models.ResponseAverages) int64 {
	if r.PhaseSamples > 0 {
		return int64(math.Round(deref(r.Assignment) + deref(r.Arrival) + deref(r.Resolution)))
	}
	return roundMinutes(r.Overall)
}

// breakdown seeds every known key with 0 and passes unknown labels through
func breakdown[K ~string](keys []K, rows []models.KeyCount) map[string]int64 {
	out := make(map[string]int64, len(keys)+len(rows))
	for _, k := range keys {
		out[string(k)] = 0
	}
	for _, row := range rows {
		key := row.Key
		if key == "" {
			key = unspecifiedLabel
		}
		out[key] += row.Count
	}
	return out
}

// namedCounts sorts by count descending (name ascending on ties) and keeps the first top
func namedCounts(rows []models.KeyCount, top int) []models.NamedCount {
	out := make([]models.NamedCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.NamedCount{Name: row.Key, Count: row.Count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if top > 0 && len(out) > top {
		out = out[:top]
	}
	return out
}

// firstMonth is the start of the oldest month of a trailing n-month range ending with now's month
func firstMonth(now time.Time, n int) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)
}

// fillMonths returns exactly n ascending buckets starting at first, zero-filling gaps
func fillMonths(first time.Time, n int, rows []models.MonthBucket) []models.MonthBucket {
	type ym struct{ y, m int }
	found := make(map[ym]models.MonthBucket, len(rows))
	for _, row := range rows {
		found[ym{row.Year, row.Month}] = row
	}

	out := make([]models.MonthBucket, 0, n)
	for i := 0; i < n; i++ {
		t := first.AddDate(0, i, 0)
		key := ym{t.Year(), int(t.Month())}
		bucket, ok := found[key]
		if !ok {
			bucket = models.MonthBucket{Year: key.y, Month: key.m}
		}
		out = append(out, bucket)
	}
	return out
}

func roundMinutes(v *float64) int64 {
	return int64(math.Round(deref(v)))
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
