package service

import (
	"context"
	"fmt"

	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/sirupsen/logrus"
)

type TrainingRepository interface {
	ListCourses(ctx context.Context, f models.TrainingFilter) ([]models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) error
	ListVideos(ctx context.Context, f models.TrainingFilter) ([]models.Video, error)
	CreateVideo(ctx context.Context, video *models.Video) error
	ListResources(ctx context.Context, f models.TrainingFilter) ([]models.Resource, error)
	CreateResource(ctx context.Context, res *models.Resource) error
}

type TrainingService interface {
	ListCourses(ctx context.Context, f models.TrainingFilter) ([]models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) error
	ListVideos(ctx context.Context, f models.TrainingFilter) ([]models.Video, error)
	CreateVideo(ctx context.Context, video *models.Video) error
	ListResources(ctx context.Context, f models.TrainingFilter) ([]models.Resource, error)
	CreateResource(ctx context.Context, res *models.Resource) error
}

type trainingService struct {
	repo   TrainingRepository
	logger *logrus.Logger
}

func NewTrainingService(repo TrainingRepository, logger *logrus.Logger) TrainingService {
	return &trainingService{repo: repo, logger: logger}
}

func (s *trainingService) fail(method string, err error, action string) error {
	s.logger.WithFields(logrus.Fields{"service": "training", "method": method}).
		WithError(err).Error("Training repository call failed")
	return fmt.Errorf("service: could not %s: %w", action, err)
}

func (s *trainingService) ListCourses(ctx context.Context, f models.TrainingFilter) ([]models.Course, error) {
	courses, err := s.repo.ListCourses(ctx, f)
	if err != nil {
		return nil, s.fail("ListCourses", err, "list courses")
	}
	return courses, nil
}

// CreateCourse stores a course; new courses start as drafts unless a status was given
func (s *trainingService) CreateCourse(ctx context.Context, course *models.Course) error {
	if course.Status == "" {
		course.Status = "draft"
	}
	if err := s.repo.CreateCourse(ctx, course); err != nil {
		return s.fail("CreateCourse", err, "create course")
	}
	s.logger.WithFields(logrus.Fields{"service": "training", "course_id": course.ID.Hex()}).Info("Course created")
	return nil
}

func (s *trainingService) ListVideos(ctx context.Context, f models.TrainingFilter) ([]models.Video, error) {
	videos, err := s.repo.ListVideos(ctx, f)
	if err != nil {
		return nil, s.fail("ListVideos", err, "list videos")
	}
	return videos, nil
}

func (s *trainingService) CreateVideo(ctx context.Context, video *models.Video) error {
	if video.Status == "" {
		video.Status = "active"
	}
	if err := s.repo.CreateVideo(ctx, video); err != nil {
		return s.fail("CreateVideo", err, "create video")
	}
	return nil
}

func (s *trainingService) ListResources(ctx context.Context, f models.TrainingFilter) ([]models.Resource, error) {
	resources, err := s.repo.ListResources(ctx, f)
	if err != nil {
		return nil, s.fail("ListResources", err, "list resources")
	}
	return resources, nil
}

func (s *trainingService) CreateResource(ctx context.Context, res *models.Resource) error {
	if res.Status == "" {
		res.Status = "active"
	}
	if err := s.repo.CreateResource(ctx, res); err != nil {
		return s.fail("CreateResource", err, "create resource")
	}
	return nil
}
