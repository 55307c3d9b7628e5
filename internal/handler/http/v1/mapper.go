package v1

import (
	"fmt"
	"time"

	"github.com/shenikar/emergency_management_system/internal/models"
)

// DTOToIncidentModel builds a new incident from a create request
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	location := models.NewPoint(dto.Latitude, dto.Longitude)
	location.Address = dto.Address
	location.City = dto.City
	location.Department = dto.Department
	location.Neighborhood = dto.Neighborhood

	return &models.Incident{
		Title:       dto.Title,
		Description: dto.Description,
		Type:        models.IncidentType(dto.Type),
		Severity:    models.Severity(dto.Severity),
		Location:    location,
		Reporter: models.Reporter{
			Name:  dto.ReporterName,
			Phone: dto.ReporterPhone,
			Email: dto.ReporterEmail,
		},
		AffectedPeople: dto.AffectedPeople,
		Notes:          dto.Notes,
	}
}

// DTOToIncidentUpdate converts the partial request; only present fields are set
func DTOToIncidentUpdate(dto UpdateIncidentRequest) models.IncidentUpdate {
	upd := models.IncidentUpdate{
		Title:          dto.Title,
		Description:    dto.Description,
		AffectedPeople: dto.AffectedPeople,
		ResolvedAt:     dto.ResolvedAt,
		Notes:          dto.Notes,
	}
	if dto.Type != nil {
		t := models.IncidentType(*dto.Type)
		upd.Type = &t
	}
	if dto.Severity != nil {
		s := models.Severity(*dto.Severity)
		upd.Severity = &s
	}
	if dto.Status != nil {
		s := models.IncidentStatus(*dto.Status)
		upd.Status = &s
	}
	if dto.Location != nil {
		loc := models.NewPoint(dto.Location.Latitude, dto.Location.Longitude)
		loc.Address = dto.Location.Address
		loc.City = dto.Location.City
		loc.Department = dto.Location.Department
		loc.Neighborhood = dto.Location.Neighborhood
		upd.Location = &loc
	}
	if dto.ResponseTeam != nil {
		upd.ResponseTeam = &models.ResponseTeam{
			TeamID:     dto.ResponseTeam.TeamID,
			AssignedAt: dto.ResponseTeam.AssignedAt,
			ArrivedAt:  dto.ResponseTeam.ArrivedAt,
			ResolvedAt: dto.ResponseTeam.ResolvedAt,
		}
	}
	return upd
}

func DTOToAlertModel(dto CreateAlertRequest) *models.Alert {
	return &models.Alert{
		Title:       dto.Title,
		Type:        dto.Type,
		Severity:    models.Severity(dto.Severity),
		Location:    dto.Location,
		Description: dto.Description,
	}
}

// DTOToStatsRequest parses the window bounds and filter of a dashboard query
func DTOToStatsRequest(dto StatsQuery) (models.StatsRequest, error) {
	from, err := parseDate(dto.From)
	if err != nil {
		return models.StatsRequest{}, fmt.Errorf("%w: invalid from: %s", models.ErrBadRequest, dto.From)
	}
	to, err := parseDate(dto.To)
	if err != nil {
		return models.StatsRequest{}, fmt.Errorf("%w: invalid to: %s", models.ErrBadRequest, dto.To)
	}
	return models.StatsRequest{
		Window: models.TimeWindow{From: from, To: to},
		Filter: DTOToIncidentFilter(dto.Status, dto.Type, dto.Severity, 0),
		Top:    dto.Top,
	}, nil
}

func DTOToIncidentFilter(status, incidentType, severity string, limit int) models.IncidentFilter {
	return models.IncidentFilter{
		Status:   models.IncidentStatus(status),
		Type:     models.IncidentType(incidentType),
		Severity: models.Severity(severity),
		Limit:    limit,
	}
}

// parseDate accepts RFC3339 or a bare date (UTC midnight); empty means unbounded
func parseDate(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, v)
}

func ModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:    user.ID.Hex(),
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
		Phone: user.Phone,
	}
}
