package repository

import (
	"context"
	"time"

	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/shenikar/emergency_management_system/internal/service"
	"github.com/shenikar/emergency_management_system/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CatalogRepository stores risk zones, meeting points and evacuation routes.
type CatalogRepository struct {
	zones  collection[models.RiskZone]
	points collection[models.MeetingPoint]
	routes collection[models.EvacuationRoute]
	now    func() time.Time
}

func NewCatalogRepository(db *mongo.Database) service.CatalogRepository {
	return &CatalogRepository{
		zones:  newCollection[models.RiskZone](db, mongodb.CollectionRiskZones),
		points: newCollection[models.MeetingPoint](db, mongodb.CollectionMeetingPoints),
		routes: newCollection[models.EvacuationRoute](db, mongodb.CollectionEvacuationRoutes),
		now:    time.Now,
	}
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

func (r *CatalogRepository) ListRiskZones(ctx context.Context) ([]models.RiskZone, error) {
	return r.zones.find(ctx, bson.M{}, newestFirst())
}

func (r *CatalogRepository) GetRiskZone(ctx context.Context, id primitive.ObjectID) (*models.RiskZone, error) {
	return r.zones.findByID(ctx, id)
}

func (r *CatalogRepository) CreateRiskZone(ctx context.Context, zone *models.RiskZone) error {
	now := r.now().UTC()
	zone.ID = primitive.NewObjectID()
	zone.CreatedAt, zone.UpdatedAt, zone.LastUpdated = now, now, now
	return r.zones.insert(ctx, zone)
}

func (r *CatalogRepository) UpdateRiskZone(ctx context.Context, zone *models.RiskZone) error {
	now := r.now().UTC()
	zone.UpdatedAt, zone.LastUpdated = now, now
	return r.zones.update(ctx, zone.ID, zone)
}

func (r *CatalogRepository) DeleteRiskZone(ctx context.Context, id primitive.ObjectID) error {
	return r.zones.delete(ctx, id)
}

// ListMeetingPoints returns meeting points, optionally only those with the given status
func (r *CatalogRepository) ListMeetingPoints(ctx context.Context, status string) ([]models.MeetingPoint, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.points.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (r *CatalogRepository) CreateMeetingPoint(ctx context.Context, point *models.MeetingPoint) error {
	now := r.now().UTC()
	point.ID = primitive.NewObjectID()
	point.CreatedAt, point.UpdatedAt = now, now
	return r.points.insert(ctx, point)
}

func (r *CatalogRepository) UpdateMeetingPoint(ctx context.Context, point *models.MeetingPoint) error {
	point.UpdatedAt = r.now().UTC()
	return r.points.update(ctx, point.ID, point)
}

func (r *CatalogRepository) DeleteMeetingPoint(ctx context.Context, id primitive.ObjectID) error {
	return r.points.delete(ctx, id)
}

func (r *CatalogRepository) ListRoutes(ctx context.Context) ([]models.EvacuationRoute, error) {
	return r.routes.find(ctx, bson.M{}, newestFirst())
}

func (r *CatalogRepository) CreateRoute(ctx context.Context, route *models.EvacuationRoute) error {
	now := r.now().UTC()
	route.ID = primitive.NewObjectID()
	route.CreatedAt, route.UpdatedAt = now, now
	return r.routes.insert(ctx, route)
}

func (r *CatalogRepository) UpdateRoute(ctx context.Context, route *models.EvacuationRoute) error {
	route.UpdatedAt = r.now().UTC()
	return r.routes.update(ctx, route.ID, route)
}

func (r *CatalogRepository) DeleteRoute(ctx context.Context, id primitive.ObjectID) error {
	return r.routes.delete(ctx, id)
}
