package feed

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/shenikar/emergency_management_system/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// unreachableFeed points at a port nothing listens on
func unreachableFeed(t *testing.T) *RedisFeed {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisFeed(client, logger.NewNop())
}

func TestNewEvent(t *testing.T) {
	alert := &models.Alert{ID: primitive.NewObjectID(), Title: "Sismo"}

	event := NewEvent(AlertUpdated, alert)
	assert.Equal(t, AlertUpdated, event.Type)
	assert.Equal(t, alert.ID.Hex(), event.AlertID)
	assert.Same(t, alert, event.Alert)
	assert.False(t, event.At.IsZero())

	deleted := NewDeletedEvent(alert.ID.Hex())
	assert.Equal(t, AlertDeleted, deleted.Type)
	assert.Nil(t, deleted.Alert)

	raw, err := json.Marshal(deleted)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"alert":`)
	assert.Contains(t, string(raw), `"type":"alert.deleted"`)
}

func TestRedisFeed_Unreachable(t *testing.T) {
	f := unreachableFeed(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := f.Publish(ctx, NewDeletedEvent(primitive.NewObjectID().Hex()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish feed event")

	events, err := f.Subscribe(ctx)
	require.Error(t, err)
	assert.Nil(t, events)
	assert.Contains(t, err.Error(), alertChannel)
}
