package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/emergency_management_system/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection wraps the CRUD calls every document repository repeats.
type collection[T any] struct {
	coll *mongo.Collection
	name string
}

func newCollection[T any](db *mongo.Database, name string) collection[T] {
	return collection[T]{coll: db.Collection(name), name: name}
}

func (c collection[T]) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.name, err)
	}
	defer cursor.Close(ctx)

	items := make([]T, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.name, err)
	}
	return items, nil
}

func (c collection[T]) insert(ctx context.Context, doc *T) error {
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: duplicate %s document", models.ErrConflict, c.name)
		}
		return fmt.Errorf("failed to insert into %s: %w", c.name, err)
	}
	return nil
}

func (c collection[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	if err := c.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s document: %w", c.name, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s document: %w", c.name, err)
	}
	return &doc, nil
}

func (c collection[T]) findByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return c.findOne(ctx, bson.M{"_id": id})
}

// update overwrites every field of doc except _id and createdAt, then reloads doc
// from the stored version
func (c collection[T]) update(ctx context.Context, id primitive.ObjectID, doc *T) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s document: %w", c.name, err)
	}
	var set bson.M
	if err := bson.Unmarshal(raw, &set); err != nil {
		return fmt.Errorf("failed to encode %s document: %w", c.name, err)
	}
	delete(set, "_id")
	delete(set, "createdAt")

	stored, err := c.findOneAndSet(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	*doc = *stored
	return nil
}

// findOneAndSet applies update and returns the document as it is after the write.
func (c collection[T]) findOneAndSet(ctx context.Context, id primitive.ObjectID, update bson.M) (*T, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc T
	if err := c.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s document %s: %w", c.name, id.Hex(), models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update %s document: %w", c.name, err)
	}
	return &doc, nil
}

func (c collection[T]) delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s document: %w", c.name, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s document %s: %w", c.name, id.Hex(), models.ErrNotFound)
	}
	return nil
}

// incidentMatch builds the $match document shared by listings and aggregations.
func incidentMatch(q models.StatsQuery) bson.M {
	match := bson.M{}
	if q.Filter.Status != "" {
		match["status"] = q.Filter.Status
	}
	if q.Filter.Type != "" {
		match["type"] = q.Filter.Type
	}
	if q.Filter.Severity != "" {
		match["severity"] = q.Filter.Severity
	}

	created := bson.M{}
	if !q.Window.From.IsZero() {
		created["$gte"] = q.Window.From
	}
	if !q.Window.To.IsZero() {
		created["$lt"] = q.Window.To
	}
	if len(created) > 0 {
		match["createdAt"] = created
	}

	if q.Zone != "" {
		match["$or"] = bson.A{
			bson.M{"location.neighborhood": q.Zone},
			bson.M{"location.department": q.Zone},
		}
	}
	return match
}
