package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/shenikar/emergency_management_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newTestCatalogService(t *testing.T) (CatalogService, *mocks.MockCatalogRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockCatalogRepository(ctrl)
	return NewCatalogService(repoMock, newTestLogger()), repoMock
}

func TestCreateRoute_SortsCoordinatesByOrder(t *testing.T) {
	svc, repoMock := newTestCatalogService(t)
	route := &models.EvacuationRoute{
		Name: "Ruta norte",
		Coordinates: []models.RoutePoint{
			{Lat: 3, Order: 2},
			{Lat: 1, Order: 0},
			{Lat: 2, Order: 1},
		},
	}

	repoMock.EXPECT().CreateRoute(gomock.Any(), route).DoAndReturn(func(_ context.Context, r *models.EvacuationRoute) error {
		for i, p := range r.Coordinates {
			assert.Equal(t, i, p.Order)
		}
		return nil
	}).Times(1)

	require.NoError(t, svc.CreateRoute(context.Background(), route))
	assert.EqualValues(t, 1, route.Coordinates[0].Lat)
}

func TestRiskZone_ErrorsAreWrapped(t *testing.T) {
	svc, repoMock := newTestCatalogService(t)
	id := primitive.NewObjectID()

	repoMock.EXPECT().GetRiskZone(gomock.Any(), id).Return(nil, models.ErrNotFound).Times(1)
	repoMock.EXPECT().DeleteRiskZone(gomock.Any(), id).Return(models.ErrNotFound).Times(1)

	_, err := svc.GetRiskZone(context.Background(), id)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Contains(t, err.Error(), "get risk zone")

	assert.ErrorIs(t, svc.DeleteRiskZone(context.Background(), id), models.ErrNotFound)
}

func TestListMeetingPoints(t *testing.T) {
	svc, repoMock := newTestCatalogService(t)
	want := []models.MeetingPoint{{Name: "Parque Simon Bolivar"}}

	repoMock.EXPECT().ListMeetingPoints(gomock.Any(), "active").Return(want, nil).Times(1)

	points, err := svc.ListMeetingPoints(context.Background(), "active")
	require.NoError(t, err)
	assert.Equal(t, want, points)
}

func TestUpdateMeetingPoint_RepositoryError(t *testing.T) {
	svc, repoMock := newTestCatalogService(t)
	dbErr := errors.New("write failed")
	point := &models.MeetingPoint{ID: primitive.NewObjectID()}

	repoMock.EXPECT().UpdateMeetingPoint(gomock.Any(), point).Return(dbErr).Times(1)

	assert.ErrorIs(t, svc.UpdateMeetingPoint(context.Background(), point), dbErr)
}
