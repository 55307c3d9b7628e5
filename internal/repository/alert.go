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

type AlertRepository struct {
	alerts collection[models.Alert]
	now    func() time.Time
}

func NewAlertRepository(db *mongo.Database) service.AlertRepository {
	return &AlertRepository{
		alerts: newCollection[models.Alert](db, mongodb.CollectionAlerts),
		now:    time.Now,
	}
}

func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	now := r.now().UTC()
	alert.ID = primitive.NewObjectID()
	alert.CreatedAt = now
	alert.UpdatedAt = now
	return r.alerts.insert(ctx, alert)
}

// List returns up to limit alerts newest first; an empty status matches all
func (r *AlertRepository) List(ctx context.Context, status models.AlertStatus, limit int) ([]models.Alert, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return r.alerts.find(ctx, filter, opts)
}

func (r *AlertRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Alert, error) {
	return r.alerts.findByID(ctx, id)
}

func (r *AlertRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.AlertStatus) (*models.Alert, error) {
	return r.alerts.findOneAndSet(ctx, id, bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": r.now().UTC(),
	}})
}

func (r *AlertRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.alerts.delete(ctx, id)
}
