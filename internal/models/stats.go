package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimeWindow is a half-open [From, To) interval over incident createdAt.
// A zero bound leaves that side open.
type TimeWindow struct {
	From time.Time
	To   time.Time
}

// MonthWindow returns the calendar month containing now.
func MonthWindow(now time.Time) TimeWindow {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return TimeWindow{From: start, To: start.AddDate(0, 1, 0)}
}

// DayWindow returns the calendar day containing now.
func DayWindow(now time.Time) TimeWindow {
	start := StartOfDay(now)
	return TimeWindow{From: start, To: start.AddDate(0, 0, 1)}
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// KeyCount is one row of a $group by key with a count.
type KeyCount struct {
	Key   string `bson:"_id"`
	Count int64  `bson:"count"`
}

// NamedCount is a breakdown row exposed to clients.
type NamedCount struct {
	Name  string `json:"name" bson:"name"`
	Count int64  `json:"count" bson:"count"`
}

// FacetTotals holds the scalar counters of an incident aggregation.
type FacetTotals struct {
	Total            int64 `bson:"total"`
	Critical         int64 `bson:"critical"`
	CriticalActive   int64 `bson:"criticalActive"`
	AffectedPeople   int64 `bson:"affectedPeople"`
	AffectedResolved int64 `bson:"affectedResolved"`
}

// ResponseAverages holds mean durations in minutes. A nil value means no incident
// carried the timestamps that average needs.
type ResponseAverages struct {
	Overall        *float64 `bson:"overall"`
	OverallSamples int64    `bson:"overallSamples"`
	Assignment     *float64 `bson:"assignment"`
	Arrival        *float64 `bson:"arrival"`
	Resolution     *float64 `bson:"resolution"`
	PhaseSamples   int64    `bson:"phaseSamples"`
	SinceCreated   *float64 `bson:"sinceCreated"`
	CreatedSamples int64    `bson:"createdSamples"`
}

// IncidentFacets is the decoded result of the incident statistics $facet stage.
type IncidentFacets struct {
	Totals         []FacetTotals      `bson:"totals"`
	ByStatus       []KeyCount         `bson:"byStatus"`
	ByType         []KeyCount         `bson:"byType"`
	BySeverity     []KeyCount         `bson:"bySeverity"`
	ByDepartment   []KeyCount         `bson:"byDepartment"`
	ByNeighborhood []KeyCount         `bson:"byNeighborhood"`
	Response       []ResponseAverages `bson:"response"`
}

// MonthBucket counts incidents created in one calendar month.
type MonthBucket struct {
	Year     int   `json:"year" bson:"year"`
	Month    int   `json:"month" bson:"month"`
	Total    int64 `json:"total" bson:"total"`
	Resolved int64 `json:"resolved" bson:"resolved"`
}

type ResponseMetrics struct {
	AverageAssignmentTime int64 `json:"averageAssignmentTime" bson:"averageAssignmentTime"`
	AverageArrivalTime    int64 `json:"averageArrivalTime" bson:"averageArrivalTime"`
	AverageResolutionTime int64 `json:"averageResolutionTime" bson:"averageResolutionTime"`
}

// DashboardStats is the computed statistics bundle for a window.
type DashboardStats struct {
	From                    time.Time        `json:"from"`
	To                      time.Time        `json:"to"`
	TotalIncidents          int64            `json:"totalIncidents"`
	ActiveIncidents         int64            `json:"activeIncidents"`
	ResolvedIncidents       int64            `json:"resolvedIncidents"`
	ClosedIncidents         int64            `json:"closedIncidents"`
	CriticalIncidents       int64            `json:"criticalIncidents"`
	AffectedPeople          int64            `json:"affectedPeople"`
	PeopleHelped            int64            `json:"peopleHelped"`
	AverageResponseTime     int64            `json:"averageResponseTime"`
	ResponseMetrics         ResponseMetrics  `json:"responseMetrics"`
	IncidentsByType         map[string]int64 `json:"incidentsByType"`
	IncidentsBySeverity     map[string]int64 `json:"incidentsBySeverity"`
	IncidentsByStatus       map[string]int64 `json:"incidentsByStatus"`
	IncidentsByDepartment   []NamedCount     `json:"incidentsByDepartment"`
	IncidentsByNeighborhood []NamedCount     `json:"incidentsByNeighborhood"`
}

// IncidentTrends backs the dashboard incidents panel.
type IncidentTrends struct {
	RecentIncidents         []Incident       `json:"recentIncidents"`
	IncidentsByMonth        []MonthBucket    `json:"incidentsByMonth"`
	IncidentsByType         map[string]int64 `json:"incidentsByType"`
	IncidentsBySeverity     map[string]int64 `json:"incidentsBySeverity"`
	IncidentsByNeighborhood []NamedCount     `json:"incidentsByNeighborhood"`
}

// ZoneStats is the metrics bundle for a single zone label.
type ZoneStats struct {
	Zone                string           `json:"zone"`
	TotalIncidents      int64            `json:"totalIncidents"`
	ActiveIncidents     int64            `json:"activeIncidents"`
	ResolvedIncidents   int64            `json:"resolvedIncidents"`
	CriticalIncidents   int64            `json:"criticalIncidents"`
	ResolutionRate      int64            `json:"resolutionRate"`
	AverageResponseTime int64            `json:"averageResponseTime"`
	PeopleAffected      int64            `json:"peopleAffected"`
	IncidentsByType     map[string]int64 `json:"incidentsByType"`
	IncidentsBySeverity map[string]int64 `json:"incidentsBySeverity"`
	RecentIncidents     []Incident       `json:"recentIncidents"`
}

type ZoneComparison struct {
	ZoneA ZoneStats `json:"zoneA"`
	ZoneB ZoneStats `json:"zoneB"`
}

type StatSource string

const (
	StatSourceInternal    StatSource = "internal"
	StatSourceExternalAPI StatSource = "external-api"
	StatSourceManual      StatSource = "manual"
)

type SnapshotMetrics struct {
	TotalIncidents      int64 `json:"totalIncidents" bson:"totalIncidents"`
	ActiveIncidents     int64 `json:"activeIncidents" bson:"activeIncidents"`
	ResolvedIncidents   int64 `json:"resolvedIncidents" bson:"resolvedIncidents"`
	CriticalIncidents   int64 `json:"criticalIncidents" bson:"criticalIncidents"`
	AverageResponseTime int64 `json:"averageResponseTime" bson:"averageResponseTime"`
	AffectedPeople      int64 `json:"affectedPeople" bson:"affectedPeople"`
}

// DashboardStat is the daily snapshot document, one per calendar day.
type DashboardStat struct {
	ID                    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Date                  time.Time          `json:"date" bson:"date"`
	Source                StatSource         `json:"source" bson:"source"`
	Metrics               SnapshotMetrics    `json:"metrics" bson:"metrics"`
	IncidentsByType       map[string]int64   `json:"incidentsByType" bson:"incidentsByType"`
	IncidentsBySeverity   map[string]int64   `json:"incidentsBySeverity" bson:"incidentsBySeverity"`
	IncidentsByDepartment []NamedCount       `json:"incidentsByDepartment" bson:"incidentsByDepartment"`
	ResponseMetrics       ResponseMetrics    `json:"responseMetrics" bson:"responseMetrics"`
	CreatedAt             time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt             time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// StatsQuery scopes an incident aggregation. Zone matches either the neighborhood
// or the department label of the incident location.
type StatsQuery struct {
	Window TimeWindow
	Filter IncidentFilter
	Zone   string
}

// StatsRequest scopes a dashboard computation. A zero window means the current
// calendar month; Top caps the department and neighborhood lists when positive.
type StatsRequest struct {
	Window TimeWindow
	Filter IncidentFilter
	Top    int
}
