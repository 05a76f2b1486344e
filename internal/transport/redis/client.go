package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gobang-backend/internal/entity"
)

// queueSize - snapshots buffered between the game and the Redis connection.
const queueSize = 64

// Client publishes game snapshots on a Redis pub/sub channel. Nothing is stored.
type Client struct {
	logger  *slog.Logger
	client  *redis.Client
	channel string
	queue   chan entity.Snapshot
}

// New - connects to Redis and checks the connection with PING.
func New(ctx context.Context, logger *slog.Logger, addr, channel string) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewWithClient(logger, rdb, channel), nil
}

func NewWithClient(logger *slog.Logger, rdb *redis.Client, channel string) *Client {
	return &Client{
		logger:  logger.With("component", "redis_publisher"),
		client:  rdb,
		channel: channel,
		queue:   make(chan entity.Snapshot, queueSize),
	}
}

// Notify - queues a snapshot for publishing. When the queue is full the snapshot is dropped.
func (that *Client) Notify(snapshot entity.Snapshot) {
	select {
	case that.queue <- snapshot:
	default:
		that.logger.Warn("snapshot queue is full, snapshot dropped", "game_id", snapshot.ID)
	}
}

// Run - publishes queued snapshots until ctx is canceled. Publish errors are logged and skipped.
func (that *Client) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot := <-that.queue:
			if err := that.Publish(ctx, snapshot); err != nil {
				log.Error("failed to publish snapshot", "game_id", snapshot.ID, "error", err)
			}
		}
	}
}

// Publish - sends one snapshot as JSON to the channel.
func (that *Client) Publish(ctx context.Context, snapshot entity.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish snapshot in Redis: %w", err)
	}

	return nil
}

func (that *Client) Close() error {
	if err := that.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}

	return nil
}
