package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_management_system/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// @Summary List risk zones
// @Tags Map
// @Produce json
// @Success 200 {object} map[string][]models.RiskZone
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /map/zones [get]
func (h *Handler) listRiskZones(c *gin.Context) {
	log := h.logger.WithField("method", "listRiskZones")

	zones, err := h.services.Catalog.ListRiskZones(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"zones": zones})
}

// @Summary Get a risk zone
// @Tags Map
// @Produce json
// @Param id path string true "Risk zone ID"
// @Success 200 {object} map[string]models.RiskZone
// @Failure 404 {object} map[string]string "Risk zone not found"
// @Router /map/zones/{id} [get]
func (h *Handler) getRiskZone(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getRiskZone").WithField("id", id.Hex())

	zone, err := h.services.Catalog.GetRiskZone(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"zone": zone})
}

// @Summary Create a risk zone
// @Tags Map
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param zone body models.RiskZone true "Risk zone"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /map/zones [post]
func (h *Handler) createRiskZone(c *gin.Context) {
	log := h.logger.WithField("method", "createRiskZone")

	var zone models.RiskZone
	if !h.bindJSON(c, log, &zone) {
		return
	}
	if err := h.services.Catalog.CreateRiskZone(c.Request.Context(), &zone); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{Success: true, ID: zone.ID.Hex()})
}

// @Summary Replace a risk zone
// @Tags Map
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Risk zone ID"
// @Param zone body models.RiskZone true "Risk zone"
// @Success 200 {object} map[string]models.RiskZone
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Risk zone not found"
// @Router /map/zones/{id} [put]
func (h *Handler) updateRiskZone(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateRiskZone").WithField("id", id.Hex())

	var zone models.RiskZone
	if !h.bindJSON(c, log, &zone) {
		return
	}
	zone.ID = id
	if err := h.services.Catalog.UpdateRiskZone(c.Request.Context(), &zone); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"zone": zone})
}

// @Summary Delete a risk zone
// @Tags Map
// @Produce json
// @Security SessionAuth
// @Param id path string true "Risk zone ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} map[string]string "Risk zone not found"
// @Router /map/zones/{id} [delete]
func (h *Handler) deleteRiskZone(c *gin.Context) {
	h.deleteByID(c, "deleteRiskZone", h.services.Catalog.DeleteRiskZone)
}

// @Summary List meeting points
// @Tags Map
// @Produce json
// @Security SessionAuth
// @Param status query string false "active, inactive or maintenance"
// @Success 200 {object} map[string][]models.MeetingPoint
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /map/meeting-points [get]
func (h *Handler) listMeetingPoints(c *gin.Context) {
	log := h.logger.WithField("method", "listMeetingPoints")

	var query CatalogQuery
	if !h.bindQuery(c, log, &query) {
		return
	}

	points, err := h.services.Catalog.ListMeetingPoints(c.Request.Context(), query.Status)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}

// @Summary Create a meeting point
// @Tags Map
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param point body models.MeetingPoint true "Meeting point"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Router /map/meeting-points [post]
func (h *Handler) createMeetingPoint(c *gin.Context) {
	log := h.logger.WithField("method", "createMeetingPoint")

	var point models.MeetingPoint
	if !h.bindJSON(c, log, &point) {
		return
	}
	if err := h.services.Catalog.CreateMeetingPoint(c.Request.Context(), &point); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{Success: true, ID: point.ID.Hex()})
}

// @Summary Replace a meeting point
// @Tags Map
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Meeting point ID"
// @Param point body models.MeetingPoint true "Meeting point"
// @Success 200 {object} map[string]models.MeetingPoint
// @Failure 404 {object} map[string]string "Meeting point not found"
// @Router /map/meeting-points/{id} [put]
func (h *Handler) updateMeetingPoint(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateMeetingPoint").WithField("id", id.Hex())

	var point models.MeetingPoint
	if !h.bindJSON(c, log, &point) {
		return
	}
	point.ID = id
	if err := h.services.Catalog.UpdateMeetingPoint(c.Request.Context(), &point); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"point": point})
}

// @Summary Delete a meeting point
// @Tags Map
// @Produce json
// @Security SessionAuth
// @Param id path string true "Meeting point ID"
// @Success 200 {object} SuccessResponse
// @Router /map/meeting-points/{id} [delete]
func (h *Handler) deleteMeetingPoint(c *gin.Context) {
	h.deleteByID(c, "deleteMeetingPoint", h.services.Catalog.DeleteMeetingPoint)
}

// @Summary List evacuation routes
// @Tags Map
// @Produce json
// @Success 200 {object} map[string][]models.EvacuationRoute
// @Router /map/evacuation-routes [get]
func (h *Handler) listRoutes(c *gin.Context) {
	log := h.logger.WithField("method", "listRoutes")

	routes, err := h.services.Catalog.ListRoutes(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

// @Summary Create an evacuation route
// @Tags Map
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param route body models.EvacuationRoute true "Route"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Router /map/evacuation-routes [post]
func (h *Handler) createRoute(c *gin.Context) {
	log := h.logger.WithField("method", "createRoute")

	var route models.EvacuationRoute
	if !h.bindJSON(c, log, &route) {
		return
	}
	if err := h.services.Catalog.CreateRoute(c.Request.Context(), &route); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{Success: true, ID: route.ID.Hex()})
}

// @Summary Replace an evacuation route
// @Tags Map
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Route ID"
// @Param route body models.EvacuationRoute true "Route"
// @Success 200 {object} map[string]models.EvacuationRoute
// @Failure 404 {object} map[string]string "Route not found"
// @Router /map/evacuation-routes/{id} [put]
func (h *Handler) updateRoute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateRoute").WithField("id", id.Hex())

	var route models.EvacuationRoute
	if !h.bindJSON(c, log, &route) {
		return
	}
	route.ID = id
	if err := h.services.Catalog.UpdateRoute(c.Request.Context(), &route); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}

// @Summary Delete an evacuation route
// @Tags Map
// @Produce json
// @Security SessionAuth
// @Param id path string true "Route ID"
// @Success 200 {object} SuccessResponse
// @Router /map/evacuation-routes/{id} [delete]
func (h *Handler) deleteRoute(c *gin.Context) {
	h.deleteByID(c, "deleteRoute", h.services.Catalog.DeleteRoute)
}

func (h *Handler) deleteByID(c *gin.Context, method string, del func(ctx context.Context, id primitive.ObjectID) error) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", method).WithField("id", id.Hex())

	if err := del(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
