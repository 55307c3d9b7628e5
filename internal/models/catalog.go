package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" bson:"lng" validate:"gte=-180,lte=180"`
}

// RiskZone is a circular area with a known hazard.
type RiskZone struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required,min=3"`
	Level       Severity           `json:"level" bson:"level" validate:"required,oneof=low medium high critical"`
	Type        string             `json:"type" bson:"type" validate:"required,oneof=flood earthquake fire landslide multiple"`
	Coordinates Coordinates        `json:"coordinates" bson:"coordinates"`
	Radius      int                `json:"radius" bson:"radius" validate:"gte=100"`
	Population  int                `json:"population" bson:"population" validate:"gte=0"`
	Incidents   int                `json:"incidents" bson:"incidents" validate:"gte=0"`
	Description string             `json:"description" bson:"description"`
	LastUpdated time.Time          `json:"lastUpdated" bson:"lastUpdated"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Contact struct {
	Phone string `json:"phone" bson:"phone" validate:"required"`
	Email string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
}

// MeetingPoint is a safe gathering place during an evacuation.
type MeetingPoint struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name" validate:"required,min=3"`
	Type          string             `json:"type" bson:"type" validate:"required,oneof=primary secondary emergency"`
	Address       string             `json:"address" bson:"address" validate:"required"`
	Coordinates   Coordinates        `json:"coordinates" bson:"coordinates"`
	Capacity      int                `json:"capacity" bson:"capacity" validate:"gte=50"`
	Facilities    []string           `json:"facilities" bson:"facilities"`
	Accessibility bool               `json:"accessibility" bson:"accessibility"`
	Contact       Contact            `json:"contact" bson:"contact"`
	Status        string             `json:"status" bson:"status" validate:"required,oneof=active inactive maintenance"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type RoutePoint struct {
	Lat   float64 `json:"lat" bson:"lat" validate:"gte=-90,lte=90"`
	Lng   float64 `json:"lng" bson:"lng" validate:"gte=-180,lte=180"`
	Order int     `json:"order" bson:"order" validate:"gte=0"`
}

type NamedPoint struct {
	Name string  `json:"name" bson:"name" validate:"required"`
	Lat  float64 `json:"lat" bson:"lat" validate:"gte=-90,lte=90"`
	Lng  float64 `json:"lng" bson:"lng" validate:"gte=-180,lte=180"`
}

// EvacuationRoute is an ordered polyline from a start to an end point.
type EvacuationRoute struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name" validate:"required,min=3"`
	Description   string             `json:"description" bson:"description"`
	Coordinates   []RoutePoint       `json:"coordinates" bson:"coordinates" validate:"min=2,dive"`
	StartPoint    NamedPoint         `json:"startPoint" bson:"startPoint"`
	EndPoint      NamedPoint         `json:"endPoint" bson:"endPoint"`
	Distance      float64            `json:"distance" bson:"distance" validate:"gte=0"`
	EstimatedTime int                `json:"estimatedTime" bson:"estimatedTime" validate:"gte=0"`
	Difficulty    string             `json:"difficulty" bson:"difficulty" validate:"required,oneof=easy moderate difficult"`
	Status        string             `json:"status" bson:"status" validate:"required,oneof=active inactive blocked"`
	Accessibility bool               `json:"accessibility" bson:"accessibility"`
	Warnings      []string           `json:"warnings" bson:"warnings"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
