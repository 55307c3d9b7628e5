package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/emergency_management_system/internal/config"
	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/shenikar/emergency_management_system/internal/service/mocks"
	"github.com/shenikar/emergency_management_system/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func newTestStatsService(t *testing.T) (*statsService, *mocks.MockStatsRepository, *mocks.MockIncidentRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockStatsRepository(ctrl)
	incidentsMock := mocks.NewMockIncidentRepository(ctrl)

	svc := NewStatsService(repoMock, incidentsMock, metrics.New(), newTestLogger(), &config.Config{}).(*statsService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repoMock, incidentsMock
}

func sampleFacets() *models.IncidentFacets {
	return &models.IncidentFacets{
		Totals: []models.FacetTotals{{Total: 10, Critical: 3, CriticalActive: 2, AffectedPeople: 120, AffectedResolved: 45}},
		ByStatus: []models.KeyCount{
			{Key: "reported", Count: 3},
			{Key: "in-progress", Count: 1},
			{Key: "resolved", Count: 5},
			{Key: "closed", Count: 1},
		},
		ByType:       []models.KeyCount{{Key: "fire", Count: 6}, {Key: "flood", Count: 4}},
		BySeverity:   []models.KeyCount{{Key: "critical", Count: 3}, {Key: "", Count: 7}},
		ByDepartment: []models.KeyCount{{Key: "Cundinamarca", Count: 7}, {Key: "Antioquia", Count: 3}},
		ByNeighborhood: []models.KeyCount{
			{Key: "Usaquen", Count: 2},
			{Key: "Chapinero", Count: 5},
			{Key: "Bosa", Count: 2},
		},
		Response: []models.ResponseAverages{{
			Overall: ptr(35.9), OverallSamples: 2,
			Assignment: ptr(4.4), Arrival: ptr(10.3), Resolution: ptr(25.6), PhaseSamples: 2,
			SinceCreated: ptr(61.5), CreatedSamples: 5,
		}},
	}
}

func TestDashboardStats_DefaultsToCurrentMonth(t *testing.T) {
	svc, repoMock, _ := newTestStatsService(t)
	want := models.StatsQuery{Window: models.TimeWindow{
		From: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}}

	repoMock.EXPECT().Facets(gomock.Any(), want).Return(sampleFacets(), nil).Times(1)

	stats, err := svc.DashboardStats(context.Background(), models.StatsRequest{})
	require.NoError(t, err)

	assert.Equal(t, want.Window.From, stats.From)
	assert.Equal(t, want.Window.To, stats.To)
	assert.EqualValues(t, 10, stats.TotalIncidents)
	assert.EqualValues(t, 4, stats.ActiveIncidents)
	assert.EqualValues(t, 5, stats.ResolvedIncidents)
	assert.EqualValues(t, 1, stats.ClosedIncidents)
	assert.Equal(t, stats.TotalIncidents, stats.ActiveIncidents+stats.ResolvedIncidents+stats.ClosedIncidents)
	assert.EqualValues(t, 2, stats.CriticalIncidents)
	assert.EqualValues(t, 120, stats.AffectedPeople)
	assert.EqualValues(t, 45, stats.PeopleHelped)
}

func TestDashboardStats_Breakdowns(t *testing.T) {
	svc, repoMock, _ := newTestStatsService(t)
	repoMock.EXPECT().Facets(gomock.Any(), gomock.Any()).Return(sampleFacets(), nil).Times(1)

	stats, err := svc.DashboardStats(context.Background(), models.StatsRequest{Top: 2})
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{
		"medical": 0, "fire": 6, "flood": 4, "earthquake": 0, "accident": 0, "other": 0,
	}, stats.IncidentsByType)
	assert.Equal(t, map[string]int64{
		"low": 0, "medium": 0, "high": 0, "critical": 3, "unspecified": 7,
	}, stats.IncidentsBySeverity)
	assert.Len(t, stats.IncidentsByStatus, 4)
	assert.Equal(t, []models.NamedCount{{Name: "Cundinamarca", Count: 7}, {Name: "Antioquia", Count: 3}}, stats.IncidentsByDepartment)
	assert.Equal(t, []models.NamedCount{{Name: "Chapinero", Count: 5}, {Name: "Bosa", Count: 2}}, stats.IncidentsByNeighborhood)
}

func TestDashboardStats_ResponseTimes(t *testing.T) {
	svc, repoMock, _ := newTestStatsService(t)
	repoMock.EXPECT().Facets(gomock.Any(), gomock.Any()).Return(sampleFacets(), nil).Times(1)

	stats, err := svc.DashboardStats(context.Background(), models.StatsRequest{})
	require.NoError(t, err)

	assert.EqualValues(t, 4, stats.ResponseMetrics.AverageAssignmentTime)
	assert.EqualValues(t, 10, stats.ResponseMetrics.AverageArrivalTime)
	assert.EqualValues(t, 26, stats.ResponseMetrics.AverageResolutionTime)
	// 4.4 + 10.3 + 25.6 rounded once
	assert.EqualValues(t, 40, stats.AverageResponseTime)
}

func TestDashboardStats_ResponseTimeExcludesIncompleteIncidents(t *testing.T) {
	// two incidents took 10 and 20 minutes end to end; a third without resolvedAt
	// is nulled out of every projection and never reaches the averages
	tests := []struct {
		name     string
		response models.ResponseAverages
		want     int64
	}{
		{
			name: "full timeline",
			response: models.ResponseAverages{
				Overall: ptr(15.0), OverallSamples: 2,
				Assignment: ptr(0.0), Arrival: ptr(7.5), Resolution: ptr(7.5), PhaseSamples: 2,
			},
			want: 15,
		},
		{
			name: "no arrival recorded",
			response: models.ResponseAverages{
				Overall: ptr(15.0), OverallSamples: 2,
			},
			want: 15,
		},
		{
			name:     "nothing resolved",
			response: models.ResponseAverages{},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repoMock, _ := newTestStatsService(t)
			repoMock.EXPECT().Facets(gomock.Any(), gomock.Any()).
				Return(&models.IncidentFacets{Response: []models.ResponseAverages{tt.response}}, nil).Times(1)

			stats, err := svc.DashboardStats(context.Background(), models.StatsRequest{})
			require.NoError(t, err)
			assert.EqualValues(t, tt.want, stats.AverageResponseTime)
		})
	}
}

func TestSummarize_SharedByDashboardAndZone(t *testing.T) {
	facets := sampleFacets()

	dashboard := buildDashboardStats(facets, 0)
	zone := buildZoneStats("Chapinero", facets)

	assert.Equal(t, dashboard.TotalIncidents, zone.TotalIncidents)
	assert.Equal(t, dashboard.ActiveIncidents, zone.ActiveIncidents)
	assert.Equal(t, dashboard.ResolvedIncidents, zone.ResolvedIncidents)
	assert.Equal(t, dashboard.IncidentsByType, zone.IncidentsByType)

	sum := summarize(&models.IncidentFacets{})
	assert.Len(t, sum.byStatus, len(models.IncidentStatuses))
	assert.Zero(t, sum.active)
	assert.Zero(t, sum.resolved)
}

func TestDashboardStats_EmptyWindow(t *testing.T) {
	svc, repoMock, _ := newTestStatsService(t)
	repoMock.EXPECT().Facets(gomock.Any(), gomock.Any()).Return(&models.IncidentFacets{}, nil).Times(1)

	stats, err := svc.DashboardStats(context.Background(), models.StatsRequest{})
	require.NoError(t, err)

	assert.Zero(t, stats.TotalIncidents)
	assert.Zero(t, stats.AverageResponseTime)
	assert.Len(t, stats.IncidentsByType, len(models.IncidentTypes))
	assert.Len(t, stats.IncidentsBySeverity, len(models.Severities))
	assert.NotNil(t, stats.IncidentsByDepartment)
	assert.Empty(t, stats.IncidentsByDepartment)
}

func TestDashboardStats_InvalidWindow(t *testing.T) {
	svc, repoMock, _ := newTestStatsService(t)
	repoMock.EXPECT().Facets(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.DashboardStats(context.Background(), models.StatsRequest{Window: models.TimeWindow{
		From: fixedNow,
		To:   fixedNow.Add(-time.Hour),
	}})
	assert.ErrorIs(t, err, models.ErrBadRequest)
}

func TestDashboardStats_RepositoryError(t *testing.T) {
	svc, repoMock, _ := newTestStatsService(t)
	dbErr := errors.New("aggregate failed")
	repoMock.EXPECT().Facets(gomock.Any(), gomock.Any()).Return(nil, dbErr).Times(1)

	_, err := svc.DashboardStats(context.Background(), models.StatsRequest{})
	assert.ErrorIs(t, err, dbErr)
}

func TestOverallResponse_FallsBackToAssignedResolved(t *testing.T) {
	assert.EqualValues(t, 15, overallResponse(models.ResponseAverages{Overall: ptr(15.0), OverallSamples: 2}))
	assert.EqualValues(t, 0, overallResponse(models.ResponseAverages{}))
}

func TestIncidentTrends(t *testing.T) {
	svc, repoMock, incidentsMock := newTestStatsService(t)
	first := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	incidentsMock.EXPECT().
		List(gomock.Any(), models.StatsQuery{Filter: models.IncidentFilter{Limit: 50}}).
		Return([]models.Incident{{Title: "latest"}}, nil).Times(1)
	repoMock.EXPECT().
		MonthlySeries(gomock.Any(), first, models.IncidentFilter{}).
		Return([]models.MonthBucket{
			{Year: 2025, Month: 2, Total: 4, Resolved: 1},
			{Year: 2025, Month: 6, Total: 2, Resolved: 0},
		}, nil).Times(1)
	repoMock.EXPECT().
		Facets(gomock.Any(), models.StatsQuery{}).
		Return(sampleFacets(), nil).Times(1)

	trends, err := svc.IncidentTrends(context.Background(), models.IncidentFilter{})
	require.NoError(t, err)

	require.Len(t, trends.IncidentsByMonth, 6)
	for i, bucket := range trends.IncidentsByMonth {
		assert.Equal(t, 2025, bucket.Year)
		assert.Equal(t, i+1, bucket.Month)
	}
	assert.EqualValues(t, 4, trends.IncidentsByMonth[1].Total)
	assert.EqualValues(t, 0, trends.IncidentsByMonth[2].Total)
	assert.EqualValues(t, 2, trends.IncidentsByMonth[5].Total)

	assert.Len(t, trends.RecentIncidents, 1)
	assert.Len(t, trends.IncidentsByType, len(models.IncidentTypes))
	assert.Equal(t, "Chapinero", trends.IncidentsByNeighborhood[0].Name)
}

func TestIncidentTrends_PartialFailure(t *testing.T) {
	svc, repoMock, incidentsMock := newTestStatsService(t)
	dbErr := errors.New("series failed")

	incidentsMock.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	repoMock.EXPECT().MonthlySeries(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr).Times(1)
	repoMock.EXPECT().Facets(gomock.Any(), gomock.Any()).Return(&models.IncidentFacets{}, nil).AnyTimes()

	_, err := svc.IncidentTrends(context.Background(), models.IncidentFilter{})
	assert.ErrorIs(t, err, dbErr)
}

func TestFillMonths_AcrossYearBoundary(t *testing.T) {
	now := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	first := firstMonth(now, 6)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), first)

	buckets := fillMonths(first, 6, nil)
	require.Len(t, buckets, 6)
	assert.Equal(t, models.MonthBucket{Year: 2025, Month: 9}, buckets[0])
	assert.Equal(t, models.MonthBucket{Year: 2026, Month: 2}, buckets[5])

	seen := map[[2]int]bool{}
	for _, b := range buckets {
		key := [2]int{b.Year, b.Month}
		assert.False(t, seen[key])
		seen[key] = true
	}
}

func TestRecalculateDailyStats(t *testing.T) {
	svc, repoMock, _ := newTestStatsService(t)
	day := models.TimeWindow{
		From: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
	}

	repoMock.EXPECT().Facets(gomock.Any(), models.StatsQuery{Window: day}).Return(sampleFacets(), nil).Times(1)
	repoMock.EXPECT().
		UpsertSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, stat *models.DashboardStat) (*models.DashboardStat, error) {
			assert.Equal(t, day.From, stat.Date)
			assert.Equal(t, models.StatSourceInternal, stat.Source)
			assert.EqualValues(t, 10, stat.Metrics.TotalIncidents)
			assert.EqualValues(t, 4, stat.Metrics.ActiveIncidents)
			assert.EqualValues(t, 40, stat.Metrics.AverageResponseTime)
			assert.EqualValues(t, 6, stat.IncidentsByType["fire"])
			stored := *stat
			stored.CreatedAt = fixedNow
			return &stored, nil
		}).Times(1)

	stat, err := svc.RecalculateDailyStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fixedNow, stat.CreatedAt)
}

func TestRecalculateDailyStats_UpsertError(t *testing.T) {
	svc, repoMock, _ := newTestStatsService(t)
	dbErr := errors.New("upsert failed")

	repoMock.EXPECT().Facets(gomock.Any(), gomock.Any()).Return(&models.IncidentFacets{}, nil).Times(1)
	repoMock.EXPECT().UpsertSnapshot(gomock.Any(), gomock.Any()).Return(nil, dbErr).Times(1)

	_, err := svc.RecalculateDailyStats(context.Background())
	assert.ErrorIs(t, err, dbErr)
}

func TestListSnapshots_DayBounds(t *testing.T) {
	tests := []struct {
		name  string
		days  int
		since time.Time
	}{
		{name: "default", days: 0, since: time.Date(2025, 5, 17, 0, 0, 0, 0, time.UTC)},
		{name: "today only", days: 1, since: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "capped", days: 5000, since: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repoMock, _ := newTestStatsService(t)
			repoMock.EXPECT().ListSnapshots(gomock.Any(), tt.since).Return([]models.DashboardStat{}, nil).Times(1)

			_, err := svc.ListSnapshots(context.Background(), tt.days)
			require.NoError(t, err)
		})
	}
}

func TestNamedCounts_TieBreakByName(t *testing.T) {
	rows := []models.KeyCount{{Key: "b", Count: 2}, {Key: "a", Count: 2}, {Key: "c", Count: 9}}
	assert.Equal(t, []models.NamedCount{{Name: "c", Count: 9}, {Name: "a", Count: 2}, {Name: "b", Count: 2}}, namedCounts(rows, 0))
	assert.Len(t, namedCounts(rows, 1), 1)
}
