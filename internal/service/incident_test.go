package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shenikar/emergency_management_system/internal/config"
	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/shenikar/emergency_management_system/internal/service/mocks"
	"github.com/shenikar/emergency_management_system/internal/webhook"
	webhook_mocks "github.com/shenikar/emergency_management_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *mocks.MockAttachmentStore, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	storeMock := mocks.NewMockAttachmentStore(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	svc := NewIncidentService(repoMock, storeMock, webhookMock, newTestLogger(), &config.Config{}).(*incidentService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repoMock, storeMock, webhookMock
}

func upload(name, contentType, body string) models.AttachmentUpload {
	return models.AttachmentUpload{
		FileName:    name,
		ContentType: contentType,
		Size:        int64(len(body)),
		Content:     strings.NewReader(body),
	}
}

func TestCreateIncident_CriticalWithAttachments(t *testing.T) {
	svc, repoMock, storeMock, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	incident := &models.Incident{Title: "Incendio", Type: models.IncidentTypeFire, Severity: models.SeverityCritical}

	storeMock.EXPECT().
		Upload(ctx, gomock.Any(), gomock.Any(), int64(3), "image/jpeg").
		DoAndReturn(func(_ context.Context, objectName string, _ any, _ int64, _ string) (string, error) {
			assert.True(t, strings.HasPrefix(objectName, "incidents/"))
			assert.True(t, strings.HasSuffix(objectName, ".jpg"))
			return "http://minio/attachments/" + objectName, nil
		}).Times(1)
	storeMock.EXPECT().
		Upload(ctx, gomock.Any(), gomock.Any(), int64(4), "video/mp4").
		Return("http://minio/attachments/incidents/b.mp4", nil).Times(1)
	repoMock.EXPECT().
		Create(ctx, incident).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = primitive.NewObjectID()
			return nil
		}).Times(1)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, ev webhook.WebhookEvent) error {
			assert.Equal(t, webhook.EventCriticalIncident, ev.Type)
			assert.Same(t, incident, ev.Incident)
			return nil
		}).Times(1)

	err := svc.CreateIncident(ctx, incident, []models.AttachmentUpload{
		upload("foto.JPG", "image/jpeg", "abc"),
		upload("clip.mp4", "video/mp4", "abcd"),
	})

	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusReported, incident.Status)
	require.Len(t, incident.Attachments, 2)
	assert.Equal(t, models.AttachmentImage, incident.Attachments[0].Type)
	assert.Equal(t, "foto.JPG", incident.Attachments[0].FileName)
	assert.Equal(t, fixedNow, incident.Attachments[0].UploadedAt)
	assert.Equal(t, models.AttachmentVideo, incident.Attachments[1].Type)
}

func TestCreateIncident_NonCriticalSkipsWebhook(t *testing.T) {
	svc, repoMock, _, webhookMock := newTestIncidentService(t)
	incident := &models.Incident{Title: "Choque", Type: models.IncidentTypeAccident, Severity: models.SeverityLow}

	repoMock.EXPECT().Create(gomock.Any(), incident).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, svc.CreateIncident(context.Background(), incident, nil))
	assert.Empty(t, incident.Attachments)
	assert.NotNil(t, incident.Attachments)
}

func TestCreateIncident_WebhookFailureDoesNotFail(t *testing.T) {
	svc, repoMock, _, webhookMock := newTestIncidentService(t)
	incident := &models.Incident{Severity: models.SeverityCritical}

	repoMock.EXPECT().Create(gomock.Any(), incident).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	assert.NoError(t, svc.CreateIncident(context.Background(), incident, nil))
}

func TestCreateIncident_UploadFailureRollsBack(t *testing.T) {
	svc, repoMock, storeMock, _ := newTestIncidentService(t)
	incident := &models.Incident{Severity: models.SeverityHigh}

	gomock.InOrder(
		storeMock.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("http://minio/attachments/incidents/a.png", nil),
		storeMock.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("minio unavailable")),
		storeMock.EXPECT().Delete(gomock.Any(), "http://minio/attachments/incidents/a.png").Return(nil),
	)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateIncident(context.Background(), incident, []models.AttachmentUpload{
		upload("a.png", "image/png", "1"),
		upload("b.png", "image/png", "2"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "b.png")
}

func TestCreateIncident_RepositoryFailureRemovesUploads(t *testing.T) {
	svc, repoMock, storeMock, _ := newTestIncidentService(t)
	incident := &models.Incident{Severity: models.SeverityMedium}
	dbErr := errors.New("insert failed")

	storeMock.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("http://minio/attachments/incidents/a.png", nil).Times(1)
	repoMock.EXPECT().Create(gomock.Any(), incident).Return(dbErr).Times(1)
	storeMock.EXPECT().Delete(gomock.Any(), "http://minio/attachments/incidents/a.png").Return(nil).Times(1)

	err := svc.CreateIncident(context.Background(), incident, []models.AttachmentUpload{upload("a.png", "image/png", "1")})

	assert.ErrorIs(t, err, dbErr)
}

func TestCreateIncident_InconsistentTimeline(t *testing.T) {
	svc, repoMock, storeMock, _ := newTestIncidentService(t)
	assigned := fixedNow
	arrived := fixedNow.Add(-time.Minute)
	incident := &models.Incident{ResponseTeam: &models.ResponseTeam{AssignedAt: &assigned, ArrivedAt: &arrived}}

	storeMock.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateIncident(context.Background(), incident, nil)
	assert.ErrorIs(t, err, models.ErrBadRequest)
}

func TestListIncidents_LimitBounds(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default", limit: 0, want: 50},
		{name: "negative", limit: -4, want: 50},
		{name: "within range", limit: 120, want: 120},
		{name: "capped", limit: 10_000, want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repoMock, _, _ := newTestIncidentService(t)
			filter := models.IncidentFilter{Status: models.IncidentStatusReported, Limit: tt.limit}
			want := models.StatsQuery{Filter: models.IncidentFilter{Status: models.IncidentStatusReported, Limit: tt.want}}

			repoMock.EXPECT().List(gomock.Any(), want).Return([]models.Incident{}, nil).Times(1)

			incidents, err := svc.ListIncidents(context.Background(), filter)
			require.NoError(t, err)
			assert.Empty(t, incidents)
		})
	}
}

func TestGetIncident_NotFound(t *testing.T) {
	svc, repoMock, _, _ := newTestIncidentService(t)
	id := primitive.NewObjectID()

	repoMock.EXPECT().GetByID(gomock.Any(), id).Return(nil, models.ErrNotFound).Times(1)

	_, err := svc.GetIncident(context.Background(), id)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateIncident_ResolvedStampsResolvedAt(t *testing.T) {
	svc, repoMock, _, _ := newTestIncidentService(t)
	id := primitive.NewObjectID()
	resolved := models.IncidentStatusResolved

	repoMock.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, upd models.IncidentUpdate) (*models.Incident, error) {
			require.NotNil(t, upd.ResolvedAt)
			assert.Equal(t, fixedNow, *upd.ResolvedAt)
			return &models.Incident{ID: id, Status: resolved, ResolvedAt: upd.ResolvedAt}, nil
		}).Times(1)

	incident, err := svc.UpdateIncident(context.Background(), id, models.IncidentUpdate{Status: &resolved})
	require.NoError(t, err)
	assert.Equal(t, resolved, incident.Status)
}

func TestUpdateIncident_KeepsExplicitResolvedAt(t *testing.T) {
	svc, repoMock, _, _ := newTestIncidentService(t)
	id := primitive.NewObjectID()
	resolved := models.IncidentStatusResolved
	explicit := fixedNow.Add(-3 * time.Hour)

	repoMock.EXPECT().
		Update(gomock.Any(), id, models.IncidentUpdate{Status: &resolved, ResolvedAt: &explicit}).
		Return(&models.Incident{ID: id}, nil).Times(1)

	_, err := svc.UpdateIncident(context.Background(), id, models.IncidentUpdate{Status: &resolved, ResolvedAt: &explicit})
	require.NoError(t, err)
}

func TestUpdateIncident_NotFound(t *testing.T) {
	svc, repoMock, _, _ := newTestIncidentService(t)
	id := primitive.NewObjectID()
	title := "x"

	repoMock.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, models.ErrNotFound).Times(1)

	_, err := svc.UpdateIncident(context.Background(), id, models.IncidentUpdate{Title: &title})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteIncident_RemovesAttachmentsBestEffort(t *testing.T) {
	svc, repoMock, storeMock, _ := newTestIncidentService(t)
	id := primitive.NewObjectID()
	existing := &models.Incident{ID: id, Attachments: []models.Attachment{
		{URL: "http://minio/attachments/incidents/a.png"},
		{URL: "http://minio/attachments/incidents/b.mp4"},
	}}

	repoMock.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil).Times(1)
	storeMock.EXPECT().Delete(gomock.Any(), "http://minio/attachments/incidents/a.png").Return(errors.New("gone")).Times(1)
	storeMock.EXPECT().Delete(gomock.Any(), "http://minio/attachments/incidents/b.mp4").Return(nil).Times(1)
	repoMock.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

	assert.NoError(t, svc.DeleteIncident(context.Background(), id))
}

func TestDeleteIncident_NotFound(t *testing.T) {
	svc, repoMock, _, _ := newTestIncidentService(t)
	id := primitive.NewObjectID()

	repoMock.EXPECT().GetByID(gomock.Any(), id).Return(nil, models.ErrNotFound).Times(1)
	repoMock.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	assert.ErrorIs(t, svc.DeleteIncident(context.Background(), id), models.ErrNotFound)
}
