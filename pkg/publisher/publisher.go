package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/ksuid"
)

// Envelope is what subscribers of a topic receive: the notification's
// to, subject and html at the top level, plus delivery metadata.
type Envelope struct {
	domain.Notification
	ID          string    `json:"id"`
	Topic       string    `json:"topic"`
	PublishedAt time.Time `json:"published_at"`
}

// PubSubClient is the subset of go-redis used to publish.
type PubSubClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher publishes notifications on Redis pub/sub channels named
// after the topic.
type RedisPublisher struct {
	client PubSubClient
	now    func() time.Time
}

func NewRedisPublisher(client PubSubClient) *RedisPublisher {
	return &RedisPublisher{client: client, now: time.Now}
}

func (p *RedisPublisher) Publish(ctx context.Context, topic string, msg domain.Notification) error {
	body, err := json.Marshal(Envelope{
		Notification: msg,
		ID:           ksuid.New().String(),
		Topic:        topic,
		PublishedAt:  p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s message: %w", topic, err)
	}
	if err := p.client.Publish(ctx, topic, body).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// LogPublisher only records what would have been sent.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, topic string, msg domain.Notification) error {
	logger.Log.Info("notification not delivered, no transport configured",
		"topic", topic, "to", msg.To, "subject", msg.Subject)
	return nil
}
