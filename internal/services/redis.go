package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// TrackingChannel carries appended tracking events for external reporting
// consumers.
const TrackingChannel = "tracking:events"

const publishTimeout = 2 * time.Second

// TrackingPublisher fans appended tracking events out over Redis pub/sub.
// A nil publisher is valid and drops every event.
type TrackingPublisher struct {
	client *redis.Client
}

// NewTrackingPublisher connects to Redis when a URL is configured. An empty
// URL disables publishing.
func NewTrackingPublisher(redisURL string) (*TrackingPublisher, error) {
	if redisURL == "" {
		log.Println("Warning: REDIS_URL not set. Tracking events will not be published.")
		return nil, nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &TrackingPublisher{client: client}, nil
}

// Publish sends one event to the tracking channel. Errors are for operator
// logging only; callers never fail the originating request on them.
func (p *TrackingPublisher) Publish(ctx context.Context, event interface{}) error {
	if p == nil || p.client == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	return p.client.Publish(ctx, TrackingChannel, data).Err()
}
