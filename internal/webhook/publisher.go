package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_management_system/internal/models"
)

const (
	webhookQueueKey = "webhook_events"
)

type EventType string

const (
	EventCriticalIncident EventType = "incident.critical"
	EventCriticalAlert    EventType = "alert.critical"
)

// WebhookEvent is the JSON body delivered to WEBHOOK_URL
type WebhookEvent struct {
	ID         string           `json:"id"`
	Type       EventType        `json:"type"`
	OccurredAt time.Time        `json:"occurredAt"`
	Incident   *models.Incident `json:"incident,omitempty"`
	Alert      *models.Alert    `json:"alert,omitempty"`
}

func NewIncidentEvent(incident *models.Incident) WebhookEvent {
	return WebhookEvent{
		ID:         uuid.NewString(),
		Type:       EventCriticalIncident,
		OccurredAt: time.Now().UTC(),
		Incident:   incident,
	}
}

func NewAlertEvent(alert *models.Alert) WebhookEvent {
	return WebhookEvent{
		ID:         uuid.NewString(),
		Type:       EventCriticalAlert,
		OccurredAt: time.Now().UTC(),
		Alert:      alert,
	}
}

// WebhookPublisher enqueues events for asynchronous delivery
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// Queue is the transport between publisher and worker
type Queue interface {
	Push(ctx context.Context, payload []byte) error
	// Pop blocks until a payload is available or ctx is done
	Pop(ctx context.Context) (string, error)
}

// RedisQueue is a FIFO list: LPUSH on one end, BRPOP on the other
type RedisQueue struct {
	redisClient *redis.Client
	key         string
}

func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{redisClient: client, key: webhookQueueKey}
}

func (q *RedisQueue) Push(ctx context.Context, payload []byte) error {
	if err := q.redisClient.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("failed to push webhook event to Redis: %w", err)
	}
	return nil
}

func (q *RedisQueue) Pop(ctx context.Context) (string, error) {
	result, err := q.redisClient.BRPop(ctx, 0, q.key).Result()
	if err != nil {
		return "", err
	}
	// result[0] is the key, result[1] the value
	return result[1], nil
}

type QueueWebhookPublisher struct {
	queue Queue
}

func NewQueueWebhookPublisher(queue Queue) *QueueWebhookPublisher {
	return &QueueWebhookPublisher{queue: queue}
}

func (p *QueueWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}
	return p.queue.Push(ctx, payload)
}
