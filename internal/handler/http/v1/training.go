package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_management_system/internal/models"
)

func trainingFilter(q CatalogQuery) models.TrainingFilter {
	return models.TrainingFilter{Category: q.Category, Status: q.Status}
}

// @Summary List training courses
// @Tags Training
// @Produce json
// @Security SessionAuth
// @Param category query string false "Category"
// @Param status query string false "Status"
// @Success 200 {object} map[string][]models.Course
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /training/courses [get]
func (h *Handler) listCourses(c *gin.Context) {
	log := h.logger.WithField("method", "listCourses")

	var query CatalogQuery
	if !h.bindQuery(c, log, &query) {
		return
	}
	courses, err := h.services.Training.ListCourses(c.Request.Context(), trainingFilter(query))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// @Summary Create a training course
// @Tags Training
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param course body models.Course true "Course"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /training/courses [post]
func (h *Handler) createCourse(c *gin.Context) {
	log := h.logger.WithField("method", "createCourse")

	var course models.Course
	if !h.bindJSON(c, log, &course) {
		return
	}
	if err := h.services.Training.CreateCourse(c.Request.Context(), &course); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{Success: true, ID: course.ID.Hex()})
}

// @Summary List training videos
// @Tags Training
// @Produce json
// @Security SessionAuth
// @Param category query string false "Category"
// @Param status query string false "Status"
// @Success 200 {object} map[string][]models.Video
// @Router /training/videos [get]
func (h *Handler) listVideos(c *gin.Context) {
	log := h.logger.WithField("method", "listVideos")

	var query CatalogQuery
	if !h.bindQuery(c, log, &query) {
		return
	}
	videos, err := h.services.Training.ListVideos(c.Request.Context(), trainingFilter(query))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

// @Summary Create a training video
// @Tags Training
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param video body models.Video true "Video"
// @Success 201 {object} CreatedResponse
// @Router /training/videos [post]
func (h *Handler) createVideo(c *gin.Context) {
	log := h.logger.WithField("method", "createVideo")

	var video models.Video
	if !h.bindJSON(c, log, &video) {
		return
	}
	if err := h.services.Training.CreateVideo(c.Request.Context(), &video); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{Success: true, ID: video.ID.Hex()})
}

// @Summary List training resources
// @Tags Training
// @Produce json
// @Security SessionAuth
// @Param category query string false "Category"
// @Param status query string false "Status"
// @Success 200 {object} map[string][]models.Resource
// @Router /training/resources [get]
func (h *Handler) listResources(c *gin.Context) {
	log := h.logger.WithField("method", "listResources")

	var query CatalogQuery
	if !h.bindQuery(c, log, &query) {
		return
	}
	resources, err := h.services.Training.ListResources(c.Request.Context(), trainingFilter(query))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": resources})
}

// @Summary Create a training resource
// @Tags Training
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param resource body models.Resource true "Resource"
// @Success 201 {object} CreatedResponse
// @Router /training/resources [post]
func (h *Handler) createResource(c *gin.Context) {
	log := h.logger.WithField("method", "createResource")

	var res models.Resource
	if !h.bindJSON(c, log, &res) {
		return
	}
	if err := h.services.Training.CreateResource(c.Request.Context(), &res); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{Success: true, ID: res.ID.Hex()})
}
