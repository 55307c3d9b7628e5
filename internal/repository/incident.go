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

type IncidentRepository struct {
	incidents collection[models.Incident]
	now       func() time.Time
}

func NewIncidentRepository(db *mongo.Database) service.IncidentRepository {
	return &IncidentRepository{
		incidents: newCollection[models.Incident](db, mongodb.CollectionIncidents),
		now:       time.Now,
	}
}

// Create assigns an id and timestamps and stores the incident
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	now := r.now().UTC()
	incident.ID = primitive.NewObjectID()
	incident.CreatedAt = now
	incident.UpdatedAt = now
	if incident.Attachments == nil {
		incident.Attachments = []models.Attachment{}
	}
	return r.incidents.insert(ctx, incident)
}

func (r *IncidentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Incident, error) {
	return r.incidents.findByID(ctx, id)
}

// List returns incidents matching the filter, newest first
func (r *IncidentRepository) List(ctx context.Context, q models.StatsQuery) ([]models.Incident, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if q.Filter.Limit > 0 {
		opts.SetLimit(int64(q.Filter.Limit))
	}
	return r.incidents.find(ctx, incidentMatch(q), opts)
}

// Update writes only the fields present in upd and returns the stored incident
func (r *IncidentRepository) Update(ctx context.Context, id primitive.ObjectID, upd models.IncidentUpdate) (*models.Incident, error) {
	set := bson.M{"updatedAt": r.now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}
	if upd.Severity != nil {
		set["severity"] = *upd.Severity
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.AffectedPeople != nil {
		set["affectedPeople"] = *upd.AffectedPeople
	}
	if upd.ResponseTeam != nil {
		set["responseTeam"] = *upd.ResponseTeam
	}
	if upd.ResolvedAt != nil {
		set["resolvedAt"] = *upd.ResolvedAt
	}
	if upd.Notes != nil {
		set["notes"] = *upd.Notes
	}
	return r.incidents.findOneAndSet(ctx, id, bson.M{"$set": set})
}

func (r *IncidentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.incidents.delete(ctx, id)
}
