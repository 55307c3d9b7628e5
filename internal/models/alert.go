package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AlertStatus string

const (
	AlertStatusActive    AlertStatus = "active"
	AlertStatusResolved  AlertStatus = "resolved"
	AlertStatusDismissed AlertStatus = "dismissed"
)

func (s AlertStatus) Valid() bool {
	switch s {
	case AlertStatusActive, AlertStatusResolved, AlertStatusDismissed:
		return true
	}
	return false
}

// CanTransitionTo reports whether the strict alert lifecycle allows moving to next.
// Only active alerts may be resolved or dismissed; reopening is not modelled.
func (s AlertStatus) CanTransitionTo(next AlertStatus) bool {
	return s == AlertStatusActive && (next == AlertStatusResolved || next == AlertStatusDismissed)
}

type Alert struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title,omitempty" bson:"title,omitempty"`
	Type        string             `json:"type" bson:"type"`
	Severity    Severity           `json:"severity" bson:"severity"`
	Location    string             `json:"location" bson:"location"`
	Description string             `json:"description" bson:"description"`
	Status      AlertStatus        `json:"status" bson:"status"`
	UserID      string             `json:"userId" bson:"userId"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
