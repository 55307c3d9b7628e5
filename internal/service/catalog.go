package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogRepository interface {
	ListRiskZones(ctx context.Context) ([]models.RiskZone, error)
	GetRiskZone(ctx context.Context, id primitive.ObjectID) (*models.RiskZone, error)
	CreateRiskZone(ctx context.Context, zone *models.RiskZone) error
	UpdateRiskZone(ctx context.Context, zone *models.RiskZone) error
	DeleteRiskZone(ctx context.Context, id primitive.ObjectID) error

	ListMeetingPoints(ctx context.Context, status string) ([]models.MeetingPoint, error)
	CreateMeetingPoint(ctx context.Context, point *models.MeetingPoint) error
	UpdateMeetingPoint(ctx context.Context, point *models.MeetingPoint) error
	DeleteMeetingPoint(ctx context.Context, id primitive.ObjectID) error

	ListRoutes(ctx context.Context) ([]models.EvacuationRoute, error)
	CreateRoute(ctx context.Context, route *models.EvacuationRoute) error
	UpdateRoute(ctx context.Context, route *models.EvacuationRoute) error
	DeleteRoute(ctx context.Context, id primitive.ObjectID) error
}

// CatalogService manages the evacuation reference data: risk zones, meeting points and routes
type CatalogService interface {
	ListRiskZones(ctx context.Context) ([]models.RiskZone, error)
	GetRiskZone(ctx context.Context, id primitive.ObjectID) (*models.RiskZone, error)
	CreateRiskZone(ctx context.Context, zone *models.RiskZone) error
	UpdateRiskZone(ctx context.Context, zone *models.RiskZone) error
	DeleteRiskZone(ctx context.Context, id primitive.ObjectID) error

	ListMeetingPoints(ctx context.Context, status string) ([]models.MeetingPoint, error)
	CreateMeetingPoint(ctx context.Context, point *models.MeetingPoint) error
	UpdateMeetingPoint(ctx context.Context, point *models.MeetingPoint) error
	DeleteMeetingPoint(ctx context.Context, id primitive.ObjectID) error

	ListRoutes(ctx context.Context) ([]models.EvacuationRoute, error)
	CreateRoute(ctx context.Context, route *models.EvacuationRoute) error
	UpdateRoute(ctx context.Context, route *models.EvacuationRoute) error
	DeleteRoute(ctx context.Context, id primitive.ObjectID) error
}

type catalogService struct {
	repo   CatalogRepository
	logger *logrus.Logger
}

func NewCatalogService(repo CatalogRepository, logger *logrus.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

// run logs and wraps a repository call the same way for every catalog method
func (s *catalogService) run(method, action string, fields logrus.Fields, call func() error) error {
	log := s.logger.WithFields(logrus.Fields{"service": "catalog", "method": method}).WithFields(fields)
	if err := call(); err != nil {
		log.WithError(err).Error("Catalog repository call failed")
		return fmt.Errorf("service: could not %s: %w", action, err)
	}
	log.Debug("Catalog repository call succeeded")
	return nil
}

func (s *catalogService) ListRiskZones(ctx context.Context) ([]models.RiskZone, error) {
	var zones []models.RiskZone
	err := s.run("ListRiskZones", "list risk zones", nil, func() (err error) {
		zones, err = s.repo.ListRiskZones(ctx)
		return err
	})
	return zones, err
}

func (s *catalogService) GetRiskZone(ctx context.Context, id primitive.ObjectID) (*models.RiskZone, error) {
	var zone *models.RiskZone
	err := s.run("GetRiskZone", "get risk zone", logrus.Fields{"zone_id": id.Hex()}, func() (err error) {
		zone, err = s.repo.GetRiskZone(ctx, id)
		return err
	})
	return zone, err
}

func (s *catalogService) CreateRiskZone(ctx context.Context, zone *models.RiskZone) error {
	return s.run("CreateRiskZone", "create risk zone", logrus.Fields{"name": zone.Name}, func() error {
		return s.repo.CreateRiskZone(ctx, zone)
	})
}

func (s *catalogService) UpdateRiskZone(ctx context.Context, zone *models.RiskZone) error {
	return s.run("UpdateRiskZone", "update risk zone", logrus.Fields{"zone_id": zone.ID.Hex()}, func() error {
		return s.repo.UpdateRiskZone(ctx, zone)
	})
}

func (s *catalogService) DeleteRiskZone(ctx context.Context, id primitive.ObjectID) error {
	return s.run("DeleteRiskZone", "delete risk zone", logrus.Fields{"zone_id": id.Hex()}, func() error {
		return s.repo.DeleteRiskZone(ctx, id)
	})
}

func (s *catalogService) ListMeetingPoints(ctx context.Context, status string) ([]models.MeetingPoint, error) {
	var points []models.MeetingPoint
	err := s.run("ListMeetingPoints", "list meeting points", logrus.Fields{"status": status}, func() (err error) {
		points, err = s.repo.ListMeetingPoints(ctx, status)
		return err
	})
	return points, err
}

func (s *catalogService) CreateMeetingPoint(ctx context.Context, point *models.MeetingPoint) error {
	return s.run("CreateMeetingPoint", "create meeting point", logrus.Fields{"name": point.Name}, func() error {
		return s.repo.CreateMeetingPoint(ctx, point)
	})
}

func (s *catalogService) UpdateMeetingPoint(ctx context.Context, point *models.MeetingPoint) error {
	return s.run("UpdateMeetingPoint", "update meeting point", logrus.Fields{"point_id": point.ID.Hex()}, func() error {
		return s.repo.UpdateMeetingPoint(ctx, point)
	})
}

func (s *catalogService) DeleteMeetingPoint(ctx context.Context, id primitive.ObjectID) error {
	return s.run("DeleteMeetingPoint", "delete meeting point", logrus.Fields{"point_id": id.Hex()}, func() error {
		return s.repo.DeleteMeetingPoint(ctx, id)
	})
}

func (s *catalogService) ListRoutes(ctx context.Context) ([]models.EvacuationRoute, error) {
	var routes []models.EvacuationRoute
	err := s.run("ListRoutes", "list evacuation routes", nil, func() (err error) {
		routes, err = s.repo.ListRoutes(ctx)
		return err
	})
	return routes, err
}

func (s *catalogService) CreateRoute(ctx context.Context, route *models.EvacuationRoute) error {
	sortRoute(route)
	return s.run("CreateRoute", "create evacuation route", logrus.Fields{"name": route.Name}, func() error {
		return s.repo.CreateRoute(ctx, route)
	})
}

func (s *catalogService) UpdateRoute(ctx context.Context, route *models.EvacuationRoute) error {
	sortRoute(route)
	return s.run("UpdateRoute", "update evacuation route", logrus.Fields{"route_id": route.ID.Hex()}, func() error {
		return s.repo.UpdateRoute(ctx, route)
	})
}

func (s *catalogService) DeleteRoute(ctx context.Context, id primitive.ObjectID) error {
	return s.run("DeleteRoute", "delete evacuation route", logrus.Fields{"route_id": id.Hex()}, func() error {
		return s.repo.DeleteRoute(ctx, id)
	})
}

// sortRoute stores the polyline in its declared order
func sortRoute(route *models.EvacuationRoute) {
	sort.SliceStable(route.Coordinates, func(i, j int) bool {
		return route.Coordinates[i].Order < route.Coordinates[j].Order
	})
}
