package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Dashboard statistics
// @Description Counters, breakdowns and response times for a window (default: current calendar month, UTC).
// @Tags Dashboard
// @Produce json
// @Security SessionAuth
// @Param from query string false "Window start, RFC3339 or YYYY-MM-DD"
// @Param to query string false "Window end (exclusive), RFC3339 or YYYY-MM-DD"
// @Param status query string false "Incident status"
// @Param type query string false "Incident type"
// @Param severity query string false "Severity"
// @Param top query int false "Cap for the department and neighborhood lists"
// @Success 200 {object} models.DashboardStats
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/stats [get]
func (h *Handler) getDashboardStats(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboardStats")

	var query StatsQuery
	if !h.bindQuery(c, log, &query) {
		return
	}
	req, err := DTOToStatsRequest(query)
	if err != nil {
		respondError(c, log, err)
		return
	}

	stats, err := h.services.Stats.DashboardStats(c.Request.Context(), req)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Incident trends
// @Description The 50 newest incidents, the trailing six months and all-time breakdowns.
// @Tags Dashboard
// @Produce json
// @Security SessionAuth
// @Param status query string false "Incident status"
// @Param type query string false "Incident type"
// @Param severity query string false "Severity"
// @Success 200 {object} models.IncidentTrends
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/incidents [get]
func (h *Handler) getIncidentTrends(c *gin.Context) {
	log := h.logger.WithField("method", "getIncidentTrends")

	var query StatsQuery
	if !h.bindQuery(c, log, &query) {
		return
	}

	trends, err := h.services.Stats.IncidentTrends(c.Request.Context(), DTOToIncidentFilter(query.Status, query.Type, query.Severity, 0))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

// @Summary Recalculate today's snapshot
// @Description Computes today's statistics and upserts the dated snapshot. Admin only.
// @Tags Dashboard
// @Produce json
// @Security SessionAuth
// @Success 200 {object} CalculateStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/calculate-stats [post]
func (h *Handler) calculateStats(c *gin.Context) {
	log := h.logger.WithField("method", "calculateStats")

	stat, err := h.services.Stats.RecalculateDailyStats(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CalculateStatsResponse{Message: "statistics calculated successfully", Stat: stat})
}

// @Summary List daily snapshots
// @Tags Dashboard
// @Produce json
// @Security SessionAuth
// @Param days query int false "Number of calendar days to return" default(30)
// @Success 200 {object} SnapshotListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/snapshots [get]
func (h *Handler) listSnapshots(c *gin.Context) {
	log := h.logger.WithField("method", "listSnapshots")

	var query SnapshotQuery
	if !h.bindQuery(c, log, &query) {
		return
	}

	snapshots, err := h.services.Stats.ListSnapshots(c.Request.Context(), query.Days)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SnapshotListResponse{Snapshots: snapshots})
}

// @Summary Zone statistics
// @Description Matches the zone against the neighborhood or the department of each incident.
// @Tags Dashboard
// @Produce json
// @Security SessionAuth
// @Param zone query string true "Neighborhood or department"
// @Success 200 {object} models.ZoneStats
// @Failure 400 {object} map[string]string "Missing zone"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/zone-stats [get]
func (h *Handler) getZoneStats(c *gin.Context) {
	log := h.logger.WithField("method", "getZoneStats")

	var query ZoneQuery
	if !h.bindQuery(c, log, &query) {
		return
	}

	stats, err := h.services.Zones.ZoneStats(c.Request.Context(), query.Zone)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Compare two zones
// @Tags Dashboard
// @Produce json
// @Security SessionAuth
// @Param zoneA query string true "First zone"
// @Param zoneB query string true "Second zone"
// @Success 200 {object} models.ZoneComparison
// @Failure 400 {object} map[string]string "Missing zone"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/zone-compare [get]
func (h *Handler) compareZones(c *gin.Context) {
	log := h.logger.WithField("method", "compareZones")

	var query ZoneCompareQuery
	if !h.bindQuery(c, log, &query) {
		return
	}

	cmp, err := h.services.Zones.CompareZones(c.Request.Context(), query.ZoneA, query.ZoneB)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, cmp)
}
