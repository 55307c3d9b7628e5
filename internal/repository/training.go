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
)

type TrainingRepository struct {
	courses   collection[models.Course]
	videos    collection[models.Video]
	resources collection[models.Resource]
	now       func() time.Time
}

func NewTrainingRepository(db *mongo.Database) service.TrainingRepository {
	return &TrainingRepository{
		courses:   newCollection[models.Course](db, mongodb.CollectionCourses),
		videos:    newCollection[models.Video](db, mongodb.CollectionVideos),
		resources: newCollection[models.Resource](db, mongodb.CollectionResources),
		now:       time.Now,
	}
}

func trainingFilter(f models.TrainingFilter) bson.M {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

func (r *TrainingRepository) ListCourses(ctx context.Context, f models.TrainingFilter) ([]models.Course, error) {
	return r.courses.find(ctx, trainingFilter(f), newestFirst())
}

func (r *TrainingRepository) CreateCourse(ctx context.Context, course *models.Course) error {
	now := r.now().UTC()
	course.ID = primitive.NewObjectID()
	course.CreatedAt, course.UpdatedAt = now, now
	return r.courses.insert(ctx, course)
}

func (r *TrainingRepository) ListVideos(ctx context.Context, f models.TrainingFilter) ([]models.Video, error) {
	return r.videos.find(ctx, trainingFilter(f), newestFirst())
}

func (r *TrainingRepository) CreateVideo(ctx context.Context, video *models.Video) error {
	now := r.now().UTC()
	video.ID = primitive.NewObjectID()
	video.CreatedAt, video.UpdatedAt = now, now
	return r.videos.insert(ctx, video)
}

func (r *TrainingRepository) ListResources(ctx context.Context, f models.TrainingFilter) ([]models.Resource, error) {
	return r.resources.find(ctx, trainingFilter(f), newestFirst())
}

func (r *TrainingRepository) CreateResource(ctx context.Context, res *models.Resource) error {
	now := r.now().UTC()
	res.ID = primitive.NewObjectID()
	res.CreatedAt, res.UpdatedAt = now, now
	return r.resources.insert(ctx, res)
}
