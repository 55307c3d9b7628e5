package v1

import (
	"time"

	"github.com/shenikar/emergency_management_system/internal/models"
)

// CreateIncidentRequest is accepted both as multipart form fields and as JSON
// @Description Incident report; attachments travel as multipart "files" parts
type CreateIncidentRequest struct {
	Title          string  `json:"title" form:"title" validate:"required,min=3,max=200"`
	Description    string  `json:"description" form:"description" validate:"max=5000"`
	Type           string  `json:"type" form:"type" validate:"required,oneof=medical fire flood earthquake accident other"`
	Severity       string  `json:"severity" form:"severity" validate:"required,oneof=low medium high critical"`
	Latitude       float64 `json:"latitude" form:"latitude" validate:"latitude"`
	Longitude      float64 `json:"longitude" form:"longitude" validate:"longitude"`
	Address        string  `json:"address" form:"address"`
	City           string  `json:"city" form:"city"`
	Department     string  `json:"department" form:"department"`
	Neighborhood   string  `json:"neighborhood" form:"neighborhood"`
	ReporterName   string  `json:"reporterName" form:"reporterName"`
	ReporterPhone  string  `json:"reporterPhone" form:"reporterPhone"`
	ReporterEmail  string  `json:"reporterEmail" form:"reporterEmail" validate:"omitempty,email"`
	AffectedPeople *int    `json:"affectedPeople" form:"affectedPeople" validate:"omitempty,gte=0"`
	Notes          string  `json:"notes" form:"notes"`
}

type LocationRequest struct {
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	Department   string  `json:"department"`
	Neighborhood string  `json:"neighborhood"`
}

type ResponseTeamRequest struct {
	TeamID     string     `json:"teamId"`
	AssignedAt *time.Time `json:"assignedAt"`
	ArrivedAt  *time.Time `json:"arrivedAt"`
	ResolvedAt *time.Time `json:"resolvedAt"`
}

// UpdateIncidentRequest is a partial update; absent fields are left untouched
// @Description Partial incident update
type UpdateIncidentRequest struct {
	Title          *string              `json:"title" validate:"omitempty,min=3,max=200"`
	Description    *string              `json:"description" validate:"omitempty,max=5000"`
	Type           *string              `json:"type" validate:"omitempty,oneof=medical fire flood earthquake accident other"`
	Severity       *string              `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	Status         *string              `json:"status" validate:"omitempty,oneof=reported in-progress resolved closed"`
	Location       *LocationRequest     `json:"location"`
	AffectedPeople *int                 `json:"affectedPeople" validate:"omitempty,gte=0"`
	ResponseTeam   *ResponseTeamRequest `json:"responseTeam"`
	ResolvedAt     *time.Time           `json:"resolvedAt"`
	Notes          *string              `json:"notes"`
}

type IncidentQuery struct {
	Status   string `form:"status" validate:"omitempty,oneof=reported in-progress resolved closed"`
	Type     string `form:"type" validate:"omitempty,oneof=medical fire flood earthquake accident other"`
	Severity string `form:"severity" validate:"omitempty,oneof=low medium high critical"`
	Limit    int    `form:"limit" validate:"gte=0"`
}

type IncidentResponse struct {
	Incident *models.Incident `json:"incident"`
}

type IncidentListResponse struct {
	Incidents []models.Incident `json:"incidents"`
}

// CreateAlertRequest DTO for raising an alert
// @Description Alert creation request
type CreateAlertRequest struct {
	Title       string `json:"title" validate:"max=200"`
	Type        string `json:"type" validate:"required"`
	Severity    string `json:"severity" validate:"required,oneof=low medium high critical"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type UpdateAlertStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AlertQuery struct {
	Status string `form:"status"`
}

type AlertListResponse struct {
	Alerts []models.Alert `json:"alerts"`
}

type AlertResponse struct {
	Success bool          `json:"success"`
	ID      string        `json:"id,omitempty"`
	Alert   *models.Alert `json:"alert,omitempty"`
}

// StatsQuery selects the dashboard window and filter. Dates are RFC3339 or YYYY-MM-DD.
type StatsQuery struct {
	From     string `form:"from"`
	To       string `form:"to"`
	Status   string `form:"status" validate:"omitempty,oneof=reported in-progress resolved closed"`
	Type     string `form:"type" validate:"omitempty,oneof=medical fire flood earthquake accident other"`
	Severity string `form:"severity" validate:"omitempty,oneof=low medium high critical"`
	Top      int    `form:"top" validate:"gte=0"`
}

type SnapshotQuery struct {
	Days int `form:"days" validate:"gte=0"`
}

type ZoneQuery struct {
	Zone string `form:"zone"`
}

type ZoneCompareQuery struct {
	ZoneA string `form:"zoneA"`
	ZoneB string `form:"zoneB"`
}

type CalculateStatsResponse struct {
	Message string                `json:"message"`
	Stat    *models.DashboardStat `json:"stat"`
}

type SnapshotListResponse struct {
	Snapshots []models.DashboardStat `json:"snapshots"`
}

type CatalogQuery struct {
	Category string `form:"category"`
	Status   string `form:"status"`
}

// CreatedResponse answers a successful create
type CreatedResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// RegisterRequest DTO for account creation
// @Description Account registration request
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
	Phone string      `json:"phone,omitempty"`
}

type AuthResponse struct {
	Success bool          `json:"success"`
	User    *UserResponse `json:"user"`
	Token   string        `json:"token,omitempty"`
}

type MeResponse struct {
	User *UserResponse `json:"user"`
}

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
