package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_management_system/internal/config"
	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/shenikar/emergency_management_system/internal/webhook"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultIncidentLimit = 50
	maxIncidentLimit     = 500
)

// IncidentRepository defines persistence for incidents
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Incident, error)
	List(ctx context.Context, q models.StatsQuery) ([]models.Incident, error)
	Update(ctx context.Context, id primitive.ObjectID, upd models.IncidentUpdate) (*models.Incident, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// AttachmentStore keeps attachment files outside the database
type AttachmentStore interface {
	Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectURL string) error
}

// IncidentService defines the incident business operations
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident, uploads []models.AttachmentUpload) error
	GetIncident(ctx context.Context, id primitive.ObjectID) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]models.Incident, error)
	UpdateIncident(ctx context.Context, id primitive.ObjectID, upd models.IncidentUpdate) (*models.Incident, error)
	DeleteIncident(ctx context.Context, id primitive.ObjectID) error
}

type incidentService struct {
	repo     IncidentRepository
	store    AttachmentStore
	webhooks webhook.WebhookPublisher
	logger   *logrus.Logger
	cfg      *config.Config
	now      func() time.Time
}

func NewIncidentService(repo IncidentRepository, store AttachmentStore, webhooks webhook.WebhookPublisher, logger *logrus.Logger, cfg *config.Config) IncidentService {
	return &incidentService{
		repo:     repo,
		store:    store,
		webhooks: webhooks,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

// CreateIncident uploads the attachments, stores the report and notifies on critical severity
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident, uploads []models.AttachmentUpload) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "CreateIncident",
		"type":     incident.Type,
		"severity": incident.Severity,
		"files":    len(uploads),
	})
	log.Info("Attempting to create a new incident")

	if err := incident.Validate(); err != nil {
		log.WithError(err).Warn("Rejected incident with inconsistent response timeline")
		return err
	}

	incident.Status = models.IncidentStatusReported
	incident.Attachments = make([]models.Attachment, 0, len(uploads))
	for _, up := range uploads {
		att, err := s.upload(ctx, up)
		if err != nil {
			log.WithError(err).WithField("file", up.FileName).Error("Failed to upload attachment")
			s.removeAttachments(ctx, log, incident.Attachments)
			return fmt.Errorf("service: could not upload attachment %s: %w", up.FileName, err)
		}
		incident.Attachments = append(incident.Attachments, att)
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		s.removeAttachments(ctx, log, incident.Attachments)
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	log = log.WithField("incident_id", incident.ID.Hex())
	if incident.Severity == models.SeverityCritical {
		if err := s.webhooks.Publish(ctx, webhook.NewIncidentEvent(incident)); err != nil {
			log.WithError(err).Error("Failed to enqueue critical incident webhook")
		}
	}

	log.Info("Incident created successfully")
	return nil
}

func (s *incidentService) upload(ctx context.Context, up models.AttachmentUpload) (models.Attachment, error) {
	objectName := "incidents/" + uuid.NewString() + strings.ToLower(filepath.Ext(up.FileName))
	url, err := s.store.Upload(ctx, objectName, up.Content, up.Size, up.ContentType)
	if err != nil {
		return models.Attachment{}, err
	}

	kind := models.AttachmentVideo
	if strings.HasPrefix(up.ContentType, "image/") {
		kind = models.AttachmentImage
	}
	return models.Attachment{
		URL:        url,
		Type:       kind,
		FileName:   up.FileName,
		UploadedAt: s.now().UTC(),
	}, nil
}

// removeAttachments is best effort; failures are only logged
func (s *incidentService) removeAttachments(ctx context.Context, log *logrus.Entry, attachments []models.Attachment) {
	for _, att := range attachments {
		if err := s.store.Delete(ctx, att.URL); err != nil {
			log.WithError(err).WithField("url", att.URL).Warn("Failed to delete attachment")
		}
	}
}

func (s *incidentService) GetIncident(ctx context.Context, id primitive.ObjectID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id.Hex(),
	})
	log.Info("Fetching incident by ID")

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// ListIncidents returns the newest incidents matching filter
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]models.Incident, error) {
	if filter.Limit < 1 {
		filter.Limit = defaultIncidentLimit
	}
	if filter.Limit > maxIncidentLimit {
		filter.Limit = maxIncidentLimit
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "ListIncidents",
		"status":   filter.Status,
		"type":     filter.Type,
		"severity": filter.Severity,
		"limit":    filter.Limit,
	})
	log.Info("Listing incidents")

	incidents, err := s.repo.List(ctx, models.StatsQuery{Filter: filter})
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// UpdateIncident applies a partial update. Moving to resolved stamps resolvedAt
// unless the caller supplied one.
func (s *incidentService) UpdateIncident(ctx context.Context, id primitive.ObjectID, upd models.IncidentUpdate) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": id.Hex(),
	})
	log.Info("Attempting to update incident")

	if err := upd.ResponseTeam.Validate(); err != nil {
		log.WithError(err).Warn("Rejected update with inconsistent response timeline")
		return nil, err
	}
	if upd.Status != nil && *upd.Status == models.IncidentStatusResolved && upd.ResolvedAt == nil {
		now := s.now().UTC()
		upd.ResolvedAt = &now
	}

	incident, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	log.Info("Incident updated successfully")
	return incident, nil
}

// DeleteIncident removes the attachments (best effort) and then the document
func (s *incidentService) DeleteIncident(ctx context.Context, id primitive.ObjectID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id.Hex(),
	})
	log.Info("Attempting to delete incident")

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent incident")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}

	s.removeAttachments(ctx, log, incident.Attachments)

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete incident in repository")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}

	log.Info("Incident deleted successfully")
	return nil
}
