package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/shenikar/emergency_management_system/internal/config"
	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ZoneService computes comparable metrics for a neighborhood or department label
type ZoneService interface {
	ZoneStats(ctx context.Context, zone string) (*models.ZoneStats, error)
	CompareZones(ctx context.Context, zoneA, zoneB string) (*models.ZoneComparison, error)
}

type zoneService struct {
	stats     StatsRepository
	incidents IncidentRepository
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewZoneService(stats StatsRepository, incidents IncidentRepository, logger *logrus.Logger, cfg *config.Config) ZoneService {
	return &zoneService{
		stats:     stats,
		incidents: incidents,
		logger:    logger,
		cfg:       cfg,
	}
}

func (s *zoneService) ZoneStats(ctx context.Context, zone string) (*models.ZoneStats, error) {
	zone = strings.TrimSpace(zone)
	if zone == "" {
		return nil, fmt.Errorf("%w: zone parameter is required", models.ErrBadRequest)
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "ZoneStats",
		"zone":    zone,
	})
	log.Info("Computing zone statistics")

	q := models.StatsQuery{Zone: zone, Filter: models.IncidentFilter{Limit: s.cfg.ZoneRecentLimit}}

	var (
		facets *models.IncidentFacets
		recent []models.Incident
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		facets, err = s.stats.Facets(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.incidents.List(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to aggregate zone incidents")
		return nil, fmt.Errorf("service: could not compute zone stats: %w", err)
	}

	stats := buildZoneStats(zone, facets)
	stats.RecentIncidents = recent
	return stats, nil
}

// CompareZones computes both zones independently; either failing fails the comparison
func (s *zoneService) CompareZones(ctx context.Context, zoneA, zoneB string) (*models.ZoneComparison, error) {
	if strings.TrimSpace(zoneA) == "" || strings.TrimSpace(zoneB) == "" {
		return nil, fmt.Errorf("%w: zoneA and zoneB are required", models.ErrBadRequest)
	}

	var a, b *models.ZoneStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		a, err = s.ZoneStats(gctx, zoneA)
		return err
	})
	g.Go(func() error {
		var err error
		b, err = s.ZoneStats(gctx, zoneB)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &models.ZoneComparison{ZoneA: *a, ZoneB: *b}, nil
}

func buildZoneStats(zone string, f *models.IncidentFacets) *models.ZoneStats {
	sum := summarize(f)
	totals := sum.totals

	return &models.ZoneStats{
		Zone:                zone,
		TotalIncidents:      totals.Total,
		ActiveIncidents:     sum.active,
		ResolvedIncidents:   sum.resolved,
		CriticalIncidents:   totals.Critical,
		ResolutionRate:      resolutionRate(sum.resolved, totals.Total),
		AverageResponseTime: roundMinutes(sum.response.SinceCreated),
		PeopleAffected:      totals.AffectedPeople,
		IncidentsByType:     breakdown(models.IncidentTypes, f.ByType),
		IncidentsBySeverity: breakdown(models.Severities, f.BySeverity),
		RecentIncidents:     []models.Incident{},
	}
}

// resolutionRate is round(resolved/total*100), 0 for an empty zone
func resolutionRate(resolved, total int64) int64 {
	if total <= 0 {
		return 0
	}
	rate := int64(math.Round(float64(resolved) * 100 / float64(total)))
	return min(max(rate, 0), 100)
}
