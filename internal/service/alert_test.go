package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/emergency_management_system/internal/config"
	"github.com/shenikar/emergency_management_system/internal/feed"
	feed_mocks "github.com/shenikar/emergency_management_system/internal/feed/mocks"
	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/shenikar/emergency_management_system/internal/service/mocks"
	"github.com/shenikar/emergency_management_system/internal/webhook"
	webhook_mocks "github.com/shenikar/emergency_management_system/internal/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type alertTestDeps struct {
	repo     *mocks.MockAlertRepository
	feed     *feed_mocks.MockPublisher
	webhooks *webhook_mocks.MockWebhookPublisher
}

func newTestAlertService(t *testing.T, cfg *config.Config) (AlertService, alertTestDeps) {
	ctrl := gomock.NewController(t)
	deps := alertTestDeps{
		repo:     mocks.NewMockAlertRepository(ctrl),
		feed:     feed_mocks.NewMockPublisher(ctrl),
		webhooks: webhook_mocks.NewMockWebhookPublisher(ctrl),
	}
	if cfg == nil {
		cfg = &config.Config{AlertFeedLimit: 100}
	}
	return NewAlertService(deps.repo, deps.feed, deps.webhooks, newTestLogger(), cfg), deps
}

func TestCreateAlert_CriticalNotifiesFeedAndWebhook(t *testing.T) {
	svc, deps := newTestAlertService(t, nil)
	ctx := context.Background()
	alert := &models.Alert{Type: "flood", Severity: models.SeverityCritical, Location: "Chapinero", Description: "Rio desbordado"}
	session := models.Session{UserID: "65f000000000000000000001", Role: models.RoleUser}

	deps.repo.EXPECT().Create(ctx, alert).DoAndReturn(func(_ context.Context, a *models.Alert) error {
		assert.Equal(t, models.AlertStatusActive, a.Status)
		assert.Equal(t, session.UserID, a.UserID)
		a.ID = primitive.NewObjectID()
		return nil
	}).Times(1)
	deps.feed.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev feed.Event) error {
		assert.Equal(t, feed.AlertCreated, ev.Type)
		assert.Equal(t, alert.ID.Hex(), ev.AlertID)
		return nil
	}).Times(1)
	deps.webhooks.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev webhook.WebhookEvent) error {
		assert.Equal(t, webhook.EventCriticalAlert, ev.Type)
		assert.Same(t, alert, ev.Alert)
		return nil
	}).Times(1)

	require.NoError(t, svc.CreateAlert(ctx, alert, session))
}

func TestCreateAlert_FeedFailureIsNotFatal(t *testing.T) {
	svc, deps := newTestAlertService(t, nil)
	alert := &models.Alert{Severity: models.SeverityLow}

	deps.repo.EXPECT().Create(gomock.Any(), alert).Return(nil).Times(1)
	deps.feed.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)
	deps.webhooks.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	assert.NoError(t, svc.CreateAlert(context.Background(), alert, models.Session{UserID: "u"}))
}

func TestCreateAlert_RepositoryError(t *testing.T) {
	svc, deps := newTestAlertService(t, nil)
	dbErr := errors.New("insert failed")

	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dbErr).Times(1)
	deps.feed.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateAlert(context.Background(), &models.Alert{Severity: models.SeverityCritical}, models.Session{})
	assert.ErrorIs(t, err, dbErr)
}

func TestListAlerts(t *testing.T) {
	svc, deps := newTestAlertService(t, &config.Config{AlertFeedLimit: 25})
	want := []models.Alert{{Title: "a"}, {Title: "b"}}

	deps.repo.EXPECT().List(gomock.Any(), models.AlertStatusActive, 25).Return(want, nil).Times(1)

	alerts, err := svc.ListAlerts(context.Background(), models.AlertStatusActive)
	require.NoError(t, err)
	assert.Equal(t, want, alerts)
}

func TestListAlerts_UnknownStatus(t *testing.T) {
	svc, deps := newTestAlertService(t, nil)
	deps.repo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.ListAlerts(context.Background(), models.AlertStatus("archived"))
	assert.ErrorIs(t, err, models.ErrBadRequest)
}

func TestUpdateAlertStatus_Permissive(t *testing.T) {
	svc, deps := newTestAlertService(t, nil)
	id := primitive.NewObjectID()
	updated := &models.Alert{ID: id, Status: models.AlertStatusActive}

	deps.repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
	deps.repo.EXPECT().UpdateStatus(gomock.Any(), id, models.AlertStatusActive).Return(updated, nil).Times(1)
	deps.feed.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev feed.Event) error {
		assert.Equal(t, feed.AlertUpdated, ev.Type)
		return nil
	}).Times(1)

	alert, err := svc.UpdateAlertStatus(context.Background(), id, models.AlertStatusActive)
	require.NoError(t, err)
	assert.Equal(t, updated, alert)
}

func TestUpdateAlertStatus_Strict(t *testing.T) {
	tests := []struct {
		name    string
		current models.AlertStatus
		next    models.AlertStatus
		wantErr error
	}{
		{name: "resolve active", current: models.AlertStatusActive, next: models.AlertStatusResolved},
		{name: "dismiss active", current: models.AlertStatusActive, next: models.AlertStatusDismissed},
		{name: "reopen resolved", current: models.AlertStatusResolved, next: models.AlertStatusActive, wantErr: models.ErrInvalidTransition},
		{name: "resolve dismissed", current: models.AlertStatusDismissed, next: models.AlertStatusResolved, wantErr: models.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestAlertService(t, &config.Config{AlertStrictTransitions: true})
			id := primitive.NewObjectID()

			deps.repo.EXPECT().GetByID(gomock.Any(), id).Return(&models.Alert{ID: id, Status: tt.current}, nil).Times(1)
			if tt.wantErr == nil {
				deps.repo.EXPECT().UpdateStatus(gomock.Any(), id, tt.next).Return(&models.Alert{ID: id, Status: tt.next}, nil).Times(1)
				deps.feed.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
			} else {
				deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			alert, err := svc.UpdateAlertStatus(context.Background(), id, tt.next)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.next, alert.Status)
		})
	}
}

func TestUpdateAlertStatus_InvalidStatus(t *testing.T) {
	svc, deps := newTestAlertService(t, nil)
	deps.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateAlertStatus(context.Background(), primitive.NewObjectID(), "closed")
	assert.ErrorIs(t, err, models.ErrBadRequest)
}

func TestUpdateAlertStatus_NotFound(t *testing.T) {
	svc, deps := newTestAlertService(t, nil)
	id := primitive.NewObjectID()

	deps.repo.EXPECT().UpdateStatus(gomock.Any(), id, models.AlertStatusResolved).Return(nil, models.ErrNotFound).Times(1)
	deps.feed.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateAlertStatus(context.Background(), id, models.AlertStatusResolved)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteAlert(t *testing.T) {
	svc, deps := newTestAlertService(t, nil)
	id := primitive.NewObjectID()

	deps.repo.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)
	deps.feed.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev feed.Event) error {
		assert.Equal(t, feed.AlertDeleted, ev.Type)
		assert.Equal(t, id.Hex(), ev.AlertID)
		assert.Nil(t, ev.Alert)
		return nil
	}).Times(1)

	assert.NoError(t, svc.DeleteAlert(context.Background(), id))
}
