package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every API v1 route
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	session := h.RequireSession()
	admin := h.RequireAdmin()

	auth := api.Group("/auth")
	{
		limited := RateLimitMiddleware(h.cfg.LoginRateLimit)
		auth.POST("/register", limited, h.register)
		auth.POST("/login", limited, h.login)
		auth.GET("/me", h.me)
		auth.POST("/logout", h.logout)
	}

	// Citizens report incidents without an account
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id", session, h.updateIncident)
		incidents.PATCH("/:id", session, h.updateIncident)
		incidents.DELETE("/:id", admin, h.deleteIncident)
	}

	alerts := api.Group("/alerts")
	{
		alerts.GET("", session, h.listAlerts)
		alerts.POST("", session, h.createAlert)
		alerts.GET("/stream", session, h.streamAlerts)
		alerts.PATCH("/:id", session, h.updateAlertStatus)
		alerts.DELETE("/:id", admin, h.deleteAlert)
	}

	dashboard := api.Group("/dashboard", session)
	{
		dashboard.GET("/stats", h.getDashboardStats)
		dashboard.GET("/incidents", h.getIncidentTrends)
		dashboard.GET("/snapshots", h.listSnapshots)
		dashboard.GET("/zone-stats", h.getZoneStats)
		dashboard.GET("/zone-compare", h.compareZones)
		dashboard.POST("/calculate-stats", admin, h.calculateStats)
	}

	mapGroup := api.Group("/map")
	{
		mapGroup.GET("/zones", h.listRiskZones)
		mapGroup.GET("/zones/:id", h.getRiskZone)
		mapGroup.POST("/zones", admin, h.createRiskZone)
		mapGroup.PUT("/zones/:id", admin, h.updateRiskZone)
		mapGroup.DELETE("/zones/:id", admin, h.deleteRiskZone)

		mapGroup.GET("/meeting-points", session, h.listMeetingPoints)
		mapGroup.POST("/meeting-points", admin, h.createMeetingPoint)
		mapGroup.PUT("/meeting-points/:id", admin, h.updateMeetingPoint)
		mapGroup.DELETE("/meeting-points/:id", admin, h.deleteMeetingPoint)

		mapGroup.GET("/evacuation-routes", h.listRoutes)
		mapGroup.POST("/evacuation-routes", admin, h.createRoute)
		mapGroup.PUT("/evacuation-routes/:id", admin, h.updateRoute)
		mapGroup.DELETE("/evacuation-routes/:id", admin, h.deleteRoute)
	}

	training := api.Group("/training", session)
	{
		training.GET("/courses", h.listCourses)
		training.POST("/courses", admin, h.createCourse)
		training.GET("/videos", h.listVideos)
		training.POST("/videos", admin, h.createVideo)
		training.GET("/resources", h.listResources)
		training.POST("/resources", admin, h.createResource)
	}

	api.GET("/system/health", h.healthCheck)
}
