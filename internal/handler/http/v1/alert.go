package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_management_system/internal/models"
)

const streamKeepAlive = 25 * time.Second

// @Summary List alerts
// @Description Newest first, bounded by ALERT_FEED_LIMIT.
// @Tags Alerts
// @Produce json
// @Security SessionAuth
// @Param status query string false "active, resolved or dismissed"
// @Success 200 {object} AlertListResponse
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")

	var query AlertQuery
	if !h.bindQuery(c, log, &query) {
		return
	}

	alerts, err := h.services.Alerts.ListAlerts(c.Request.Context(), models.AlertStatus(query.Status))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, AlertListResponse{Alerts: alerts})
}

// @Summary Raise an alert
// @Description Stored as active and owned by the caller. Critical alerts also trigger the webhook.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param alert body CreateAlertRequest true "Alert"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	log := h.logger.WithField("method", "createAlert")

	var input CreateAlertRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	alert := DTOToAlertModel(input)
	if err := h.services.Alerts.CreateAlert(c.Request.Context(), alert, currentSession(c)); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, AlertResponse{Success: true, ID: alert.ID.Hex(), Alert: alert})
}

// @Summary Change the status of an alert
// @Tags Alerts
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Alert ID"
// @Param status body UpdateAlertStatusRequest true "New status"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid status or transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id} [patch]
func (h *Handler) updateAlertStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateAlertStatus").WithField("id", id.Hex())

	var input UpdateAlertStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	alert, err := h.services.Alerts.UpdateAlertStatus(c.Request.Context(), id, models.AlertStatus(input.Status))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, AlertResponse{Success: true, ID: alert.ID.Hex(), Alert: alert})
}

// @Summary Delete an alert
// @Tags Alerts
// @Produce json
// @Security SessionAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id} [delete]
func (h *Handler) deleteAlert(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteAlert").WithField("id", id.Hex())

	if err := h.services.Alerts.DeleteAlert(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// @Summary Stream alert changes
// @Description Server-sent events; the event name is the change type (alert.created, alert.updated, alert.deleted).
// @Tags Alerts
// @Produce text/event-stream
// @Security SessionAuth
// @Success 200 {object} feed.Event
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Feed unavailable"
// @Router /alerts/stream [get]
func (h *Handler) streamAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "streamAlerts").WithField("user_id", currentSession(c).UserID)
	ctx := c.Request.Context()

	events, err := h.feed.Subscribe(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to subscribe to alert feed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "alert feed unavailable"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	keepAlive := time.NewTicker(streamKeepAlive)
	defer keepAlive.Stop()

	log.Info("Alert stream opened")
	for {
		select {
		case <-ctx.Done():
			log.Info("Alert stream closed by client")
			return
		case event, ok := <-events:
			if !ok {
				log.Info("Alert feed ended")
				return
			}
			c.SSEvent(string(event.Type), event)
			c.Writer.Flush()
		case <-keepAlive.C:
			_, _ = c.Writer.WriteString(": keep-alive\n\n")
			c.Writer.Flush()
		}
	}
}
