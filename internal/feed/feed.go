// Package feed pushes alert changes to connected clients over Redis pub/sub.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/sirupsen/logrus"
)

const alertChannel = "alerts:feed"

type EventType string

const (
	AlertCreated EventType = "alert.created"
	AlertUpdated EventType = "alert.updated"
	AlertDeleted EventType = "alert.deleted"
)

type Event struct {
	Type    EventType     `json:"type"`
	AlertID string        `json:"alertId"`
	Alert   *models.Alert `json:"alert,omitempty"`
	At      time.Time     `json:"at"`
}

func NewEvent(t EventType, alert *models.Alert) Event {
	return Event{Type: t, AlertID: alert.ID.Hex(), Alert: alert, At: time.Now().UTC()}
}

func NewDeletedEvent(alertID string) Event {
	return Event{Type: AlertDeleted, AlertID: alertID, At: time.Now().UTC()}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type Subscriber interface {
	// Subscribe streams events until ctx is done; the channel is closed afterwards
	Subscribe(ctx context.Context) (<-chan Event, error)
}

type RedisFeed struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	channel     string
}

func NewRedisFeed(client *redis.Client, logger *logrus.Logger) *RedisFeed {
	return &RedisFeed{redisClient: client, logger: logger, channel: alertChannel}
}

func (f *RedisFeed) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal feed event: %w", err)
	}
	if err := f.redisClient.Publish(ctx, f.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish feed event: %w", err)
	}
	return nil
}

func (f *RedisFeed) Subscribe(ctx context.Context) (<-chan Event, error) {
	pubsub := f.redisClient.Subscribe(ctx, f.channel)
	// wait for the subscription confirmation so no event published afterwards is lost
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", f.channel, err)
	}

	out := make(chan Event)
	go func() {
		defer close(out)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					f.logger.WithError(err).Warn("Dropping malformed feed event")
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
