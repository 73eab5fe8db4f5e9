// Package broadcast delivers order and report events to live displays.
// Sinks publish synchronously; AsyncBroadcaster moves that work off the
// request path.
package broadcast

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBroadcaster publishes JSON payloads on Redis Pub/Sub. The channel
// name is prefix + topic.
type RedisBroadcaster struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisBroadcaster(client redis.UniversalClient, prefix string) *RedisBroadcaster {
	return &RedisBroadcaster{client: client, prefix: prefix}
}

func (b *RedisBroadcaster) Publish(ctx context.Context, topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", topic, err)
	}

	if err = b.client.Publish(ctx, b.prefix+topic, body).Err(); err != nil {
		return fmt.Errorf("redis publish to %s: %w", b.prefix+topic, err)
	}
	return nil
}
