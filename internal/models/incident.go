package models

import (
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IncidentType string
type Severity string
type IncidentStatus string
type AttachmentType string

const (
	IncidentTypeMedical    IncidentType = "medical"
	IncidentTypeFire       IncidentType = "fire"
	IncidentTypeFlood      IncidentType = "flood"
	IncidentTypeEarthquake IncidentType = "earthquake"
	IncidentTypeAccident   IncidentType = "accident"
	IncidentTypeOther      IncidentType = "other"

	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"

	IncidentStatusReported   IncidentStatus = "reported"
	IncidentStatusInProgress IncidentStatus = "in-progress"
	IncidentStatusResolved   IncidentStatus = "resolved"
	IncidentStatusClosed     IncidentStatus = "closed"

	AttachmentImage AttachmentType = "image"
	AttachmentVideo AttachmentType = "video"
)

// IncidentTypes is the fixed key set of the type breakdown, in display order.
var IncidentTypes = []IncidentType{
	IncidentTypeMedical,
	IncidentTypeFire,
	IncidentTypeFlood,
	IncidentTypeEarthquake,
	IncidentTypeAccident,
	IncidentTypeOther,
}

// Severities is the fixed key set of the severity breakdown.
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

var IncidentStatuses = []IncidentStatus{
	IncidentStatusReported,
	IncidentStatusInProgress,
	IncidentStatusResolved,
	IncidentStatusClosed,
}

// ActiveStatuses are the statuses counted as "active".
var ActiveStatuses = []IncidentStatus{IncidentStatusReported, IncidentStatusInProgress}

func (s IncidentStatus) IsActive() bool {
	return s == IncidentStatusReported || s == IncidentStatusInProgress
}

// Location is a GeoJSON point plus optional administrative labels.
// Coordinates are ordered [longitude, latitude].
type Location struct {
	Type         string     `json:"type" bson:"type"`
	Coordinates  [2]float64 `json:"coordinates" bson:"coordinates"`
	Address      string     `json:"address,omitempty" bson:"address,omitempty"`
	City         string     `json:"city,omitempty" bson:"city,omitempty"`
	Department   string     `json:"department,omitempty" bson:"department,omitempty"`
	Neighborhood string     `json:"neighborhood,omitempty" bson:"neighborhood,omitempty"`
}

func NewPoint(lat, lng float64) Location {
	return Location{Type: "Point", Coordinates: [2]float64{lng, lat}}
}

func (l Location) Latitude() float64  { return l.Coordinates[1] }
func (l Location) Longitude() float64 { return l.Coordinates[0] }

type Reporter struct {
	Name   string              `json:"name" bson:"name"`
	Phone  string              `json:"phone,omitempty" bson:"phone,omitempty"`
	Email  string              `json:"email,omitempty" bson:"email,omitempty"`
	UserID *primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty"`
}

type Attachment struct {
	URL        string         `json:"url" bson:"url"`
	Type       AttachmentType `json:"type" bson:"type"`
	FileName   string         `json:"fileName" bson:"fileName"`
	UploadedAt time.Time      `json:"uploadedAt" bson:"uploadedAt"`
}

// ResponseTeam tracks the response phases. Any subset of the timestamps may be absent.
type ResponseTeam struct {
	TeamID     string     `json:"teamId,omitempty" bson:"teamId,omitempty"`
	AssignedAt *time.Time `json:"assignedAt,omitempty" bson:"assignedAt,omitempty"`
	ArrivedAt  *time.Time `json:"arrivedAt,omitempty" bson:"arrivedAt,omitempty"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty" bson:"resolvedAt,omitempty"`
}

// Validate checks assigned <= arrived <= resolved over the timestamps that are present.
func (rt *ResponseTeam) Validate() error {
	if rt == nil {
		return nil
	}
	var prev *time.Time
	var prevName string
	for _, step := range []struct {
		name string
		at   *time.Time
	}{
		{"assignedAt", rt.AssignedAt},
		{"arrivedAt", rt.ArrivedAt},
		{"resolvedAt", rt.ResolvedAt},
	} {
		if step.at == nil {
			continue
		}
		if prev != nil && step.at.Before(*prev) {
			return fmt.Errorf("%w: responseTeam.%s precedes %s", ErrBadRequest, step.name, prevName)
		}
		prev, prevName = step.at, step.name
	}
	return nil
}

type Incident struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Description    string             `json:"description" bson:"description"`
	Type           IncidentType       `json:"type" bson:"type"`
	Severity       Severity           `json:"severity" bson:"severity"`
	Status         IncidentStatus     `json:"status" bson:"status"`
	Location       Location           `json:"location" bson:"location"`
	Reporter       Reporter           `json:"reporter" bson:"reporter"`
	Attachments    []Attachment       `json:"attachments" bson:"attachments"`
	AffectedPeople *int               `json:"affectedPeople,omitempty" bson:"affectedPeople,omitempty"`
	ResponseTeam   *ResponseTeam      `json:"responseTeam,omitempty" bson:"responseTeam,omitempty"`
	ResolvedAt     *time.Time         `json:"resolvedAt,omitempty" bson:"resolvedAt,omitempty"`
	Notes          string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// IncidentFilter narrows incident listings and aggregations. Zero values mean "any".
type IncidentFilter struct {
	Status   IncidentStatus
	Type     IncidentType
	Severity Severity
	Limit    int
}

// IncidentUpdate holds the fields of a partial update; nil fields are left untouched.
type IncidentUpdate struct {
	Title          *string
	Description    *string
	Type           *IncidentType
	Severity       *Severity
	Status         *IncidentStatus
	Location       *Location
	AffectedPeople *int
	ResponseTeam   *ResponseTeam
	ResolvedAt     *time.Time
	Notes          *string
}

func (i *Incident) Validate() error {
	return i.ResponseTeam.Validate()
}

// AttachmentUpload is one file part of an incident report
type AttachmentUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}
