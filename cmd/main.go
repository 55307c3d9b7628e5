package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/shenikar/emergency_management_system/internal/config"
	"github.com/shenikar/emergency_management_system/internal/feed"
	v1 "github.com/shenikar/emergency_management_system/internal/handler/http/v1"
	"github.com/shenikar/emergency_management_system/internal/repository"
	"github.com/shenikar/emergency_management_system/internal/service"
	"github.com/shenikar/emergency_management_system/internal/webhook"
	"github.com/shenikar/emergency_management_system/pkg/logger"
	"github.com/shenikar/emergency_management_system/pkg/metrics"
	"github.com/shenikar/emergency_management_system/pkg/mongodb"
	redisclient "github.com/shenikar/emergency_management_system/pkg/redis"
	"github.com/shenikar/emergency_management_system/pkg/storage"
	"github.com/shenikar/emergency_management_system/pkg/token"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/emergency_management_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Emergency Management API
// @version 1.0
// @description Incident reporting, alerts, dashboards and preparedness catalogs for emergency response.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey SessionAuth
// @in header
// @name Authorization
// @description "Bearer <token>"; the session cookie is accepted as well.
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	databaseURL, err := migrationDatabaseURL(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return fmt.Errorf("could not build migration url: %w", err)
	}

	m, err := migrate.New(cfg.MigrationsPath, databaseURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// migrationDatabaseURL puts the database name into the URI path, where the
// migrate mongodb driver expects it.
func migrationDatabaseURL(mongoURI, database string) (string, error) {
	u, err := url.Parse(mongoURI)
	if err != nil {
		return "", err
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = "/" + database
	}
	return u.String(), nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		// Wildcard origins cannot carry the session cookie
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	// Cancelled on shutdown to stop the background workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	mongoClient, err := mongodb.NewMongoClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.WithError(err).Warn("Failed to disconnect from MongoDB")
		}
	}()
	db := mongoClient.Database(cfg.MongoDatabase)
	log.Info("Successfully connected to MongoDB")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	blobStore, err := storage.NewBlobStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize attachment storage: %v", err)
	}
	log.Info("Attachment storage ready")

	m := metrics.New()

	webhookQueue := webhook.NewRedisQueue(redisClient)
	webhookPublisher := webhook.NewQueueWebhookPublisher(webhookQueue)
	webhookWorker := webhook.NewWebhookWorker(webhookQueue, log, cfg, m)
	webhookWorker.Start(ctx)

	alertFeed := feed.NewRedisFeed(redisClient, log)
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	incidentRepo := repository.NewIncidentRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)
	userRepo := repository.NewUserRepository(db)

	services := v1.Services{
		Incidents: service.NewIncidentService(incidentRepo, blobStore, webhookPublisher, log, cfg),
		Alerts:    service.NewAlertService(alertRepo, alertFeed, webhookPublisher, log, cfg),
		Stats:     service.NewStatsService(statsRepo, incidentRepo, m, log, cfg),
		Zones:     service.NewZoneService(statsRepo, incidentRepo, log, cfg),
		Catalog:   service.NewCatalogService(catalogRepo, log),
		Training:  service.NewTrainingService(trainingRepo, log),
		Auth:      service.NewAuthService(userRepo, tokens, log),
	}

	checks := map[string]v1.HealthCheck{
		"mongo":   mongoHealthCheck(mongoClient),
		"redis":   redisHealthCheck(redisClient),
		"storage": blobStore.HealthCheck,
	}
	handler := v1.NewHandler(services, alertFeed, tokens, checks, log, cfg)

	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	router.Use(m.Middleware())

	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := newHTTPServer(ctx, fmt.Sprintf(":%s", cfg.HTTPPort), router)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Stops the webhook worker and, through the request base context, open alert streams
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	select {
	case <-webhookWorker.Done():
	case <-shutdownCtx.Done():
		log.Warn("Webhook worker did not stop in time")
	}

	log.Info("Server gracefully stopped")
}

// newHTTPServer derives every request context from ctx, so cancelling it
// releases long-lived requests before Shutdown waits for idle connections.
func newHTTPServer(ctx context.Context, addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func mongoHealthCheck(client *mongo.Client) v1.HealthCheck {
	return func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	}
}

func redisHealthCheck(client *redis.Client) v1.HealthCheck {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
