package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_management_system/internal/config"
	"github.com/shenikar/emergency_management_system/internal/feed"
	feed_mocks "github.com/shenikar/emergency_management_system/internal/feed/mocks"
	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/shenikar/emergency_management_system/internal/service/mocks"
	"github.com/shenikar/emergency_management_system/pkg/token"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	incidents *mocks.MockIncidentService
	alerts    *mocks.MockAlertService
	stats     *mocks.MockStatsService
	zones     *mocks.MockZoneService
	catalog   *mocks.MockCatalogService
	training  *mocks.MockTrainingService
	auth      *mocks.MockAuthService
	feed      *feed_mocks.MockSubscriber
	tokens    *token.Manager
}

// newTestHandler builds the handler with mocked services and a real token manager
func newTestHandler(t *testing.T, checks map[string]HealthCheck) (*Handler, testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		incidents: mocks.NewMockIncidentService(ctrl),
		alerts:    mocks.NewMockAlertService(ctrl),
		stats:     mocks.NewMockStatsService(ctrl),
		zones:     mocks.NewMockZoneService(ctrl),
		catalog:   mocks.NewMockCatalogService(ctrl),
		training:  mocks.NewMockTrainingService(ctrl),
		auth:      mocks.NewMockAuthService(ctrl),
		feed:      feed_mocks.NewMockSubscriber(ctrl),
		tokens:    token.NewManager("test-secret", time.Hour),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		MaxUploadMB:    1,
		LoginRateLimit: 100,
	}

	services := Services{
		Incidents: m.incidents,
		Alerts:    m.alerts,
		Stats:     m.stats,
		Zones:     m.zones,
		Catalog:   m.catalog,
		Training:  m.training,
		Auth:      m.auth,
	}
	handler := NewHandler(services, m.feed, m.tokens, checks, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest runs one request through the router
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bearer(t *testing.T, tokens *token.Manager, role models.Role) (map[string]string, models.Session) {
	t.Helper()
	session := models.Session{UserID: primitive.NewObjectID().Hex(), Email: "ana@example.com", Name: "Ana", Role: role}
	signed, err := tokens.Generate(session)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + signed}, session
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestCreateIncident_JSON(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	id := primitive.NewObjectID()
	reqBody := CreateIncidentRequest{
		Title:        "Incendio forestal",
		Type:         "fire",
		Severity:     "critical",
		Latitude:     4.6,
		Longitude:    -74.08,
		Neighborhood: "Chapinero",
	}

	m.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any(), gomock.Len(0)).
		DoAndReturn(func(_ context.Context, inc *models.Incident, _ []models.AttachmentUpload) error {
			assert.Equal(t, models.IncidentTypeFire, inc.Type)
			assert.Equal(t, "Chapinero", inc.Location.Neighborhood)
			assert.Equal(t, [2]float64{-74.08, 4.6}, inc.Location.Coordinates)
			inc.ID = id
			inc.Status = models.IncidentStatusReported
			return nil
		}).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.Incident.ID)
	assert.Equal(t, models.IncidentStatusReported, resp.Incident.Status)
}

func TestCreateIncident_Multipart(t *testing.T) {
	_, m, router := newTestHandler(t, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Inundacion"))
	require.NoError(t, mw.WriteField("type", "flood"))
	require.NoError(t, mw.WriteField("severity", "high"))
	require.NoError(t, mw.WriteField("affectedPeople", "12"))
	part, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="files"; filename="calle.jpg"`},
		"Content-Type":        {"image/jpeg"},
	})
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	m.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident, uploads []models.AttachmentUpload) error {
			require.NotNil(t, inc.AffectedPeople)
			assert.Equal(t, 12, *inc.AffectedPeople)
			require.Len(t, uploads, 1)
			assert.Equal(t, "calle.jpg", uploads[0].FileName)
			assert.Equal(t, "image/jpeg", uploads[0].ContentType)
			assert.EqualValues(t, len("jpeg-bytes"), uploads[0].Size)
			content, err := io.ReadAll(uploads[0].Content)
			require.NoError(t, err)
			assert.Equal(t, "jpeg-bytes", string(content))
			return nil
		}).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", &buf, map[string]string{"Content-Type": mw.FormDataContentType()})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateIncident_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, CreateIncidentRequest{Type: "meteor", Severity: "low"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title")
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", bytes.NewBufferString(`{"title": "x"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	m.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("mongo down")).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", jsonBody(t, CreateIncidentRequest{Title: "Choque", Type: "accident", Severity: "low"}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestListIncidents(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	want := models.IncidentFilter{Status: models.IncidentStatusReported, Severity: models.SeverityHigh, Limit: 20}

	m.incidents.EXPECT().ListIncidents(gomock.Any(), want).Return([]models.Incident{{Title: "a"}}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents?status=reported&severity=high&limit=20", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Incidents, 1)
}

func TestListIncidents_InvalidStatus(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	m.incidents.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents?status=archived", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetIncident(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		setup      func(m testMocks, id primitive.ObjectID)
		wantStatus int
	}{
		{
			name:       "invalid id",
			id:         "not-an-id",
			setup:      func(m testMocks, _ primitive.ObjectID) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "not found",
			setup: func(m testMocks, id primitive.ObjectID) {
				m.incidents.EXPECT().GetIncident(gomock.Any(), id).Return(nil, models.ErrNotFound).Times(1)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "found",
			setup: func(m testMocks, id primitive.ObjectID) {
				m.incidents.EXPECT().GetIncident(gomock.Any(), id).Return(&models.Incident{ID: id}, nil).Times(1)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t, nil)
			id := primitive.NewObjectID()
			path := tt.id
			if path == "" {
				path = id.Hex()
			}
			tt.setup(m, id)

			w := makeRequest(router, http.MethodGet, "/api/v1/incidents/"+path, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestUpdateIncident_RequiresSession(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	m.incidents.EXPECT().UpdateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPut, "/api/v1/incidents/"+primitive.NewObjectID().Hex(), jsonBody(t, gin.H{"status": "resolved"}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateIncident(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	headers, _ := bearer(t, m.tokens, models.RoleUser)
	id := primitive.NewObjectID()

	m.incidents.EXPECT().
		UpdateIncident(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, upd models.IncidentUpdate) (*models.Incident, error) {
			require.NotNil(t, upd.Status)
			assert.Equal(t, models.IncidentStatusResolved, *upd.Status)
			assert.Nil(t, upd.Title)
			require.NotNil(t, upd.ResponseTeam)
			assert.Equal(t, "T-7", upd.ResponseTeam.TeamID)
			return &models.Incident{ID: id, Status: *upd.Status}, nil
		}).Times(1)

	body := `{"status":"resolved","responseTeam":{"teamId":"T-7","assignedAt":"2025-06-01T10:00:00Z"}}`
	w := makeRequest(router, http.MethodPatch, "/api/v1/incidents/"+id.Hex(), strings.NewReader(body), headers)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"resolved"`)
}

func TestUpdateIncident_InconsistentTimeline(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	headers, _ := bearer(t, m.tokens, models.RoleUser)

	m.incidents.EXPECT().UpdateIncident(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(models.ErrBadRequest, errors.New("responseTeam.arrivedAt precedes assignedAt"))).Times(1)

	w := makeRequest(router, http.MethodPut, "/api/v1/incidents/"+primitive.NewObjectID().Hex(), jsonBody(t, gin.H{"notes": "x"}), headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteIncident_AdminOnly(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	userHeaders, _ := bearer(t, m.tokens, models.RoleUser)
	adminHeaders, _ := bearer(t, m.tokens, models.RoleAdmin)
	id := primitive.NewObjectID()

	m.incidents.EXPECT().DeleteIncident(gomock.Any(), id).Return(nil).Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/v1/incidents/"+id.Hex(), nil, userHeaders)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = makeRequest(router, http.MethodDelete, "/api/v1/incidents/"+id.Hex(), nil, adminHeaders)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestListAlerts_SessionCookie(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	session := models.Session{UserID: primitive.NewObjectID().Hex(), Role: models.RoleUser}
	signed, err := m.tokens.Generate(session)
	require.NoError(t, err)

	m.alerts.EXPECT().ListAlerts(gomock.Any(), models.AlertStatus("")).Return([]models.Alert{{Title: "a"}}, nil).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: signed})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"alerts"`)
}

func TestListAlerts_Unauthorized(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	m.alerts.EXPECT().ListAlerts(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = makeRequest(router, http.MethodGet, "/api/v1/alerts", nil, map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAlert_UsesSessionUser(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	headers, session := bearer(t, m.tokens, models.RoleUser)
	id := primitive.NewObjectID()

	m.alerts.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any(), session).
		DoAndReturn(func(_ context.Context, a *models.Alert, _ models.Session) error {
			assert.Equal(t, models.SeverityCritical, a.Severity)
			a.ID = id
			return nil
		}).Times(1)

	reqBody := CreateAlertRequest{Type: "flood", Severity: "critical", Location: "Bosa", Description: "Nivel del rio subiendo"}
	w := makeRequest(router, http.MethodPost, "/api/v1/alerts", jsonBody(t, reqBody), headers)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, id.Hex(), resp.ID)
}

func TestUpdateAlertStatus_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid transition", err: models.ErrInvalidTransition, wantStatus: http.StatusBadRequest},
		{name: "not found", err: models.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "store failure", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t, nil)
			headers, _ := bearer(t, m.tokens, models.RoleUser)
			m.alerts.EXPECT().UpdateAlertStatus(gomock.Any(), gomock.Any(), models.AlertStatusResolved).Return(nil, tt.err).Times(1)

			w := makeRequest(router, http.MethodPatch, "/api/v1/alerts/"+primitive.NewObjectID().Hex(), jsonBody(t, gin.H{"status": "resolved"}), headers)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestDeleteAlert_Forbidden(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	headers, _ := bearer(t, m.tokens, models.RoleUser)
	m.alerts.EXPECT().DeleteAlert(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodDelete, "/api/v1/alerts/"+primitive.NewObjectID().Hex(), nil, headers)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStreamAlerts(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	headers, _ := bearer(t, m.tokens, models.RoleUser)
	alert := &models.Alert{ID: primitive.NewObjectID(), Title: "Sismo"}

	events := make(chan feed.Event, 1)
	events <- feed.NewEvent(feed.AlertCreated, alert)
	close(events)
	m.feed.EXPECT().Subscribe(gomock.Any()).Return((<-chan feed.Event)(events), nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts/stream", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "event:alert.created")
	assert.Contains(t, w.Body.String(), alert.ID.Hex())
}

func TestStreamAlerts_FeedUnavailable(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	headers, _ := bearer(t, m.tokens, models.RoleUser)
	m.feed.EXPECT().Subscribe(gomock.Any()).Return(nil, errors.New("redis down")).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/alerts/stream", nil, headers)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDashboardStats(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	headers, _ := bearer(t, m.tokens, models.RoleUser)
	want := models.StatsRequest{
		Window: models.TimeWindow{
			From: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC),
		},
		Filter: models.IncidentFilter{Type: models.IncidentTypeFire},
		Top:    5,
	}

	m.stats.EXPECT().DashboardStats(gomock.Any(), want).Return(&models.DashboardStats{TotalIncidents: 7}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/dashboard/stats?from=2025-05-01&to=2025-05-20T12:00:00Z&type=fire&top=5", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalIncidents":7`)
}

func TestDashboardStats_InvalidDate(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	headers, _ := bearer(t, m.tokens, models.RoleUser)
	m.stats.EXPECT().DashboardStats(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/dashboard/stats?from=yesterday", nil, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid from")
}

func TestCalculateStats_AdminOnly(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	userHeaders, _ := bearer(t, m.tokens, models.RoleUser)
	adminHeaders, _ := bearer(t, m.tokens, models.RoleAdmin)

	m.stats.EXPECT().RecalculateDailyStats(gomock.Any()).Return(&models.DashboardStat{Source: models.StatSourceInternal}, nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/dashboard/calculate-stats", nil, userHeaders)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = makeRequest(router, http.MethodPost, "/api/v1/dashboard/calculate-stats", nil, adminHeaders)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "statistics calculated successfully")
}

func TestZoneStats_MissingZone(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	headers, _ := bearer(t, m.tokens, models.RoleUser)

	m.zones.EXPECT().ZoneStats(gomock.Any(), "").
		Return(nil, errors.Join(models.ErrBadRequest, errors.New("zone parameter is required"))).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/dashboard/zone-stats", nil, headers)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompareZones(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	headers, _ := bearer(t, m.tokens, models.RoleUser)

	m.zones.EXPECT().CompareZones(gomock.Any(), "Usaquen", "Bosa").Return(&models.ZoneComparison{
		ZoneA: models.ZoneStats{Zone: "Usaquen", ResolutionRate: 60},
		ZoneB: models.ZoneStats{Zone: "Bosa"},
	}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/dashboard/zone-compare?zoneA=Usaquen&zoneB=Bosa", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"resolutionRate":60`)
}

func TestCreateRiskZone(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	headers, _ := bearer(t, m.tokens, models.RoleAdmin)
	id := primitive.NewObjectID()

	m.catalog.EXPECT().CreateRiskZone(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, z *models.RiskZone) error {
		z.ID = id
		return nil
	}).Times(1)

	valid := gin.H{"name": "Ladera sur", "level": "high", "type": "landslide", "radius": 500, "coordinates": gin.H{"lat": 4.5, "lng": -74.1}}
	w := makeRequest(router, http.MethodPost, "/api/v1/map/zones", jsonBody(t, valid), headers)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), id.Hex())

	tooSmall := gin.H{"name": "Ladera sur", "level": "high", "type": "landslide", "radius": 50}
	w = makeRequest(router, http.MethodPost, "/api/v1/map/zones", jsonBody(t, tooSmall), headers)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRoute_UsesPathID(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	headers, _ := bearer(t, m.tokens, models.RoleAdmin)
	id := primitive.NewObjectID()

	m.catalog.EXPECT().UpdateRoute(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *models.EvacuationRoute) error {
		assert.Equal(t, id, r.ID)
		return nil
	}).Times(1)

	route := gin.H{
		"name":        "Ruta norte",
		"difficulty":  "easy",
		"status":      "active",
		"coordinates": []gin.H{{"lat": 4.6, "lng": -74.0, "order": 0}, {"lat": 4.7, "lng": -74.0, "order": 1}},
		"startPoint":  gin.H{"name": "Inicio", "lat": 4.6, "lng": -74.0},
		"endPoint":    gin.H{"name": "Fin", "lat": 4.7, "lng": -74.0},
	}
	w := makeRequest(router, http.MethodPut, "/api/v1/map/evacuation-routes/"+id.Hex(), jsonBody(t, route), headers)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteMeetingPoint_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	headers, _ := bearer(t, m.tokens, models.RoleAdmin)
	id := primitive.NewObjectID()

	m.catalog.EXPECT().DeleteMeetingPoint(gomock.Any(), id).Return(models.ErrNotFound).Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/v1/map/meeting-points/"+id.Hex(), nil, headers)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}

func TestListCourses_Filter(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	headers, _ := bearer(t, m.tokens, models.RoleUser)

	m.training.EXPECT().
		ListCourses(gomock.Any(), models.TrainingFilter{Category: "evacuacion"}).
		Return([]models.Course{{Title: "Plan familiar"}}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/training/courses?category=evacuacion", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Plan familiar")
}

func TestRegister_SetsCookie(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	user := &models.User{ID: primitive.NewObjectID(), Name: "Ana", Email: "ana@example.com", Role: models.RoleUser}

	m.auth.EXPECT().
		Register(gomock.Any(), models.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "s3cretpass"}).
		Return(user, "signed-token", nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/auth/register", jsonBody(t, RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "s3cretpass"}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "session=signed-token")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "HttpOnly")
	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, user.ID.Hex(), resp.User.ID)
}

func TestRegister_Errors(t *testing.T) {
	_, m, router := newTestHandler(t, nil)

	m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(nil, "", errors.Join(models.ErrConflict, errors.New("user already exists"))).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/auth/register", jsonBody(t, RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "s3cretpass"}))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = makeRequest(router, http.MethodPost, "/api/v1/auth/register", jsonBody(t, RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "123"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	_, m, router := newTestHandler(t, nil)

	m.auth.EXPECT().Login(gomock.Any(), "ana@example.com", "wrong").
		Return(nil, "", errors.Join(models.ErrUnauthorized, errors.New("invalid credentials"))).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/auth/login", jsonBody(t, LoginRequest{Email: "ana@example.com", Password: "wrong"}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestLogin_RateLimited(t *testing.T) {
	h, m, _ := newTestHandler(t, nil)
	h.cfg.LoginRateLimit = 1
	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1"))

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, "", models.ErrUnauthorized).Times(1)

	body := func() io.Reader { return jsonBody(t, LoginRequest{Email: "ana@example.com", Password: "x"}) }
	w := makeRequest(router, http.MethodPost, "/api/v1/auth/login", body())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = makeRequest(router, http.MethodPost, "/api/v1/auth/login", body())
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestLogin_RateLimitDisabled(t *testing.T) {
	h, m, _ := newTestHandler(t, nil)
	h.cfg.LoginRateLimit = 0
	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1"))

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, "", models.ErrUnauthorized).Times(3)

	for range 3 {
		w := makeRequest(router, http.MethodPost, "/api/v1/auth/login",
			jsonBody(t, LoginRequest{Email: "ana@example.com", Password: "x"}))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestMe(t *testing.T) {
	_, m, router := newTestHandler(t, nil)
	headers, session := bearer(t, m.tokens, models.RoleAdmin)
	id, err := primitive.ObjectIDFromHex(session.UserID)
	require.NoError(t, err)

	m.auth.EXPECT().Me(gomock.Any(), session.UserID).
		Return(&models.User{ID: id, Name: "Ana", Role: models.RoleAdmin}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":null}`, w.Body.String())

	w = makeRequest(router, http.MethodGet, "/api/v1/auth/me", nil, headers)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestLogout_ClearsCookie(t *testing.T) {
	_, _, router := newTestHandler(t, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/auth/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestHealthCheck(t *testing.T) {
	t.Run("all healthy", func(t *testing.T) {
		_, _, router := newTestHandler(t, map[string]HealthCheck{
			"mongo": func(context.Context) error { return nil },
			"redis": func(context.Context) error { return nil },
		})

		w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","checks":{"mongo":"ok","redis":"ok"}}`, w.Body.String())
	})

	t.Run("redis down", func(t *testing.T) {
		_, _, router := newTestHandler(t, map[string]HealthCheck{
			"mongo": func(context.Context) error { return nil },
			"redis": func(context.Context) error { return errors.New("connection refused") },
		})

		w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"degraded","checks":{"mongo":"ok","redis":"unavailable"}}`, w.Body.String())
	})
}

func TestPublicMessage(t *testing.T) {
	err := fmt.Errorf("service: could not get incident: %w", models.ErrNotFound)
	assert.Equal(t, "not found", publicMessage(err, models.ErrNotFound))

	err = fmt.Errorf("%w: invalid from: yesterday", models.ErrBadRequest)
	assert.Equal(t, "bad request: invalid from: yesterday", publicMessage(err, models.ErrBadRequest))
}
