package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CourseModule struct {
	Title       string `json:"title" bson:"title" validate:"required"`
	Description string `json:"description" bson:"description"`
	Duration    int    `json:"duration" bson:"duration" validate:"gte=0"`
}

type CourseContent struct {
	Modules []CourseModule `json:"modules" bson:"modules" validate:"dive"`
}

type Course struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" validate:"required,min=3"`
	Description string             `json:"description" bson:"description"`
	Category    string             `json:"category" bson:"category" validate:"required,oneof=primeros-auxilios evacuacion prevencion respuesta otro"`
	Level       string             `json:"level" bson:"level" validate:"required,oneof=basico intermedio avanzado"`
	Duration    float64            `json:"duration" bson:"duration" validate:"gte=0"`
	Instructor  string             `json:"instructor" bson:"instructor"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Content     CourseContent      `json:"content" bson:"content"`
	Enrollments int                `json:"enrollments" bson:"enrollments" validate:"gte=0"`
	Rating      float64            `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	Status      string             `json:"status" bson:"status" validate:"omitempty,oneof=draft published archived"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Video struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" validate:"required,min=3"`
	Description string             `json:"description" bson:"description"`
	YoutubeID   string             `json:"youtubeId" bson:"youtubeId" validate:"required"`
	Category    string             `json:"category" bson:"category" validate:"required,oneof=primeros-auxilios evacuacion prevencion respuesta otro"`
	Duration    int                `json:"duration" bson:"duration" validate:"gte=0"`
	Views       int                `json:"views" bson:"views" validate:"gte=0"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Tags        []string           `json:"tags" bson:"tags"`
	Status      string             `json:"status" bson:"status" validate:"omitempty,oneof=active inactive"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Resource struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" validate:"required,min=3"`
	Description string             `json:"description" bson:"description"`
	Type        string             `json:"type" bson:"type" validate:"required,oneof=pdf document guide manual infographic"`
	Category    string             `json:"category" bson:"category" validate:"required,oneof=primeros-auxilios evacuacion prevencion respuesta otro"`
	FileURL     string             `json:"fileUrl" bson:"fileUrl" validate:"required,url"`
	FileSize    int64              `json:"fileSize" bson:"fileSize" validate:"gte=0"`
	Downloads   int                `json:"downloads" bson:"downloads" validate:"gte=0"`
	Thumbnail   string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Tags        []string           `json:"tags" bson:"tags"`
	Status      string             `json:"status" bson:"status" validate:"omitempty,oneof=active inactive"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// TrainingFilter narrows training listings. Empty fields match everything.
type TrainingFilter struct {
	Category string
	Status   string
}
