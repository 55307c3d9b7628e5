package mongodb

import (
	"context"
	"fmt"

	"github.com/shenikar/emergency_management_system/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names shared by every repository.
const (
	CollectionIncidents        = "incidents"
	CollectionAlerts           = "alerts"
	CollectionRiskZones        = "riskzones"
	CollectionMeetingPoints    = "meeting_points"
	CollectionEvacuationRoutes = "evacuationroutes"
	CollectionCourses          = "courses"
	CollectionVideos           = "training_videos"
	CollectionResources        = "training_resources"
	CollectionUsers            = "users"
	CollectionDashboardStats   = "dashboardstats"
)

// NewMongoClient connects to MongoDB and verifies the connection with a ping.
// The returned client is owned by the caller, who must Disconnect it on shutdown.
func NewMongoClient(ctx context.Context, appCfg *config.Config) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, appCfg.MongoTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetConnectTimeout(appCfg.MongoTimeout).
		SetServerSelectionTimeout(appCfg.MongoTimeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, nil
}
