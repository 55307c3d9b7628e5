package v1

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/emergency_management_system/internal/config"
	"github.com/shenikar/emergency_management_system/internal/feed"
	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/shenikar/emergency_management_system/internal/service"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const healthTimeout = 2 * time.Second

// Services bundles the business services the API exposes
type Services struct {
	Incidents service.IncidentService
	Alerts    service.AlertService
	Stats     service.StatsService
	Zones     service.ZoneService
	Catalog   service.CatalogService
	Training  service.TrainingService
	Auth      service.AuthService
}

// SessionVerifier resolves a session token into the caller identity
type SessionVerifier interface {
	Verify(token string) (models.Session, error)
	TTL() time.Duration
}

// HealthCheck reports whether a backing dependency is reachable
type HealthCheck func(ctx context.Context) error

type Handler struct {
	services Services
	feed     feed.Subscriber
	sessions SessionVerifier
	checks   map[string]HealthCheck
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(services Services, subscriber feed.Subscriber, sessions SessionVerifier, checks map[string]HealthCheck, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		feed:     subscriber,
		sessions: sessions,
		checks:   checks,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// bindJSON decodes and validates the request body, answering 400 on failure
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return h.validateInput(c, log, dst)
}

func (h *Handler) bindQuery(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return false
	}
	return h.validateInput(c, log, dst)
}

func (h *Handler) validateInput(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return primitive.NilObjectID, false
	}
	return id, true
}

var errorStatuses = []struct {
	err    error
	status int
}{
	{models.ErrNotFound, http.StatusNotFound},
	{models.ErrBadRequest, http.StatusBadRequest},
	{models.ErrInvalidTransition, http.StatusBadRequest},
	{models.ErrUnauthorized, http.StatusUnauthorized},
	{models.ErrForbidden, http.StatusForbidden},
	{models.ErrConflict, http.StatusConflict},
}

// respondError maps domain errors to HTTP statuses. Anything unknown is a 500
// with a generic body.
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			log.WithError(err).Warn("Request rejected")
			c.JSON(e.status, gin.H{"error": publicMessage(err, e.err)})
			return
		}
	}
	log.WithError(err).Error("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// publicMessage drops the internal wrapping context in front of the sentinel
func publicMessage(err, sentinel error) string {
	msg := err.Error()
	if i := strings.Index(msg, sentinel.Error()); i >= 0 {
		return msg[i:]
	}
	return sentinel.Error()
}

// @Summary Get application health status
// @Description Pings every backing store. Returns 503 when one of them is unreachable.
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.WithField("method", "healthCheck").WithField("dependency", name).
				WithError(err).Warn("Health check failed")
			resp.Status = "degraded"
			resp.Checks[name] = "unavailable"
			continue
		}
		resp.Checks[name] = "ok"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
