package service

import (
	"context"
	"fmt"

	"github.com/shenikar/emergency_management_system/internal/config"
	"github.com/shenikar/emergency_management_system/internal/feed"
	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/shenikar/emergency_management_system/internal/webhook"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	List(ctx context.Context, status models.AlertStatus, limit int) ([]models.Alert, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Alert, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.AlertStatus) (*models.Alert, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type AlertService interface {
	ListAlerts(ctx context.Context, status models.AlertStatus) ([]models.Alert, error)
	CreateAlert(ctx context.Context, alert *models.Alert, session models.Session) error
	UpdateAlertStatus(ctx context.Context, id primitive.ObjectID, status models.AlertStatus) (*models.Alert, error)
	DeleteAlert(ctx context.Context, id primitive.ObjectID) error
}

type alertService struct {
	repo     AlertRepository
	feed     feed.Publisher
	webhooks webhook.WebhookPublisher
	logger   *logrus.Logger
	cfg      *config.Config
}

func NewAlertService(repo AlertRepository, publisher feed.Publisher, webhooks webhook.WebhookPublisher, logger *logrus.Logger, cfg *config.Config) AlertService {
	return &alertService{
		repo:     repo,
		feed:     publisher,
		webhooks: webhooks,
		logger:   logger,
		cfg:      cfg,
	}
}

// ListAlerts returns the newest alerts, bounded by ALERT_FEED_LIMIT
func (s *alertService) ListAlerts(ctx context.Context, status models.AlertStatus) ([]models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "ListAlerts",
		"status":  status,
	})

	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown alert status %q", models.ErrBadRequest, status)
	}

	alerts, err := s.repo.List(ctx, status, s.cfg.AlertFeedLimit)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}

// CreateAlert stores a new active alert owned by the session user
func (s *alertService) CreateAlert(ctx context.Context, alert *models.Alert, session models.Session) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "CreateAlert",
		"severity": alert.Severity,
		"user_id":  session.UserID,
	})
	log.Info("Attempting to create a new alert")

	alert.Status = models.AlertStatusActive
	alert.UserID = session.UserID
	if err := s.repo.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return fmt.Errorf("service: could not create alert: %w", err)
	}

	log = log.WithField("alert_id", alert.ID.Hex())
	s.publish(ctx, log, feed.NewEvent(feed.AlertCreated, alert))
	if alert.Severity == models.SeverityCritical {
		if err := s.webhooks.Publish(ctx, webhook.NewAlertEvent(alert)); err != nil {
			log.WithError(err).Error("Failed to enqueue critical alert webhook")
		}
	}

	log.Info("Alert created successfully")
	return nil
}

// UpdateAlertStatus writes a new status. With strict transitions enabled only
// active alerts can be resolved or dismissed.
func (s *alertService) UpdateAlertStatus(ctx context.Context, id primitive.ObjectID, status models.AlertStatus) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "UpdateAlertStatus",
		"alert_id": id.Hex(),
		"status":   status,
	})
	log.Info("Attempting to update alert status")

	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown alert status %q", models.ErrBadRequest, status)
	}

	if s.cfg.AlertStrictTransitions {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			log.WithError(err).Warn("Attempted to update a non-existent alert")
			return nil, fmt.Errorf("service: could not update alert: %w", err)
		}
		if !current.Status.CanTransitionTo(status) {
			log.WithField("from", current.Status).Warn("Rejected alert status transition")
			return nil, fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, current.Status, status)
		}
	}

	alert, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.WithError(err).Error("Failed to update alert in repository")
		return nil, fmt.Errorf("service: could not update alert: %w", err)
	}

	s.publish(ctx, log, feed.NewEvent(feed.AlertUpdated, alert))
	log.Info("Alert status updated successfully")
	return alert, nil
}

func (s *alertService) DeleteAlert(ctx context.Context, id primitive.ObjectID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "DeleteAlert",
		"alert_id": id.Hex(),
	})
	log.Info("Attempting to delete alert")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete alert in repository")
		return fmt.Errorf("service: could not delete alert: %w", err)
	}

	s.publish(ctx, log, feed.NewDeletedEvent(id.Hex()))
	log.Info("Alert deleted successfully")
	return nil
}

// publish never fails the caller; polling clients still see the change
func (s *alertService) publish(ctx context.Context, log *logrus.Entry, event feed.Event) {
	if err := s.feed.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish alert feed event")
	}
}
