package v1

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_management_system/internal/models"
)

const attachmentsField = "files"

// @Summary Report a new incident
// @Description Accepts multipart/form-data with optional "files" parts, or a JSON body without attachments.
// @Tags Incidents
// @Accept multipart/form-data,json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident report"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 413 {object} map[string]string "Upload too large"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	log := h.logger.WithField("method", "createIncident")
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadMB<<20)

	var input CreateIncidentRequest
	if err := c.ShouldBind(&input); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload too large"})
			return
		}
		log.WithError(err).Warn("Failed to bind request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !h.validateInput(c, log, &input) {
		return
	}

	uploads, closeAll, err := attachmentUploads(c)
	defer closeAll()
	if err != nil {
		log.WithError(err).Warn("Failed to read attachments")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attachments"})
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.services.Incidents.CreateIncident(c.Request.Context(), model, uploads); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, IncidentResponse{Incident: model})
}

// attachmentUploads opens the non-empty "files" parts of a multipart request.
// The returned func closes every opened part.
func attachmentUploads(c *gin.Context) ([]models.AttachmentUpload, func(), error) {
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, closeAll, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, closeAll, err
	}

	uploads := make([]models.AttachmentUpload, 0, len(form.File[attachmentsField]))
	for _, fh := range form.File[attachmentsField] {
		if fh.Size == 0 {
			continue
		}
		f, err := fh.Open()
		if err != nil {
			return nil, closeAll, fmt.Errorf("failed to open %s: %w", fh.Filename, err)
		}
		opened = append(opened, f)
		uploads = append(uploads, models.AttachmentUpload{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Content:     f,
		})
	}
	return uploads, closeAll, nil
}

// @Summary List incidents
// @Description Newest first, optionally filtered. limit defaults to 50 and is capped at 500.
// @Tags Incidents
// @Produce json
// @Param status query string false "Incident status"
// @Param type query string false "Incident type"
// @Param severity query string false "Severity"
// @Param limit query int false "Maximum number of incidents" default(50)
// @Success 200 {object} IncidentListResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	var query IncidentQuery
	if !h.bindQuery(c, log, &query) {
		return
	}

	filter := DTOToIncidentFilter(query.Status, query.Type, query.Severity, query.Limit)
	incidents, err := h.services.Incidents.ListIncidents(c.Request.Context(), filter)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, IncidentListResponse{Incidents: incidents})
}

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id.Hex())

	incident, err := h.services.Incidents.GetIncident(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, IncidentResponse{Incident: incident})
}

// @Summary Update an incident
// @Description Partial update. Moving the status to resolved stamps resolvedAt.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path string true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Fields to change"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateIncident").WithField("id", id.Hex())

	var input UpdateIncidentRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	incident, err := h.services.Incidents.UpdateIncident(c.Request.Context(), id, DTOToIncidentUpdate(input))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, IncidentResponse{Incident: incident})
}

// @Summary Delete an incident
// @Description Removes the stored attachments and the incident. Admin only.
// @Tags Incidents
// @Produce json
// @Security SessionAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id.Hex())

	if err := h.services.Incidents.DeleteIncident(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
