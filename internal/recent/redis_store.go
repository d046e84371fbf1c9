// Package recent keeps a short per-project list of the latest export
// descriptors in Redis, so the dashboard can show recent activity
// without touching the history table.
package recent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxEntries = 20
	defaultTTL        = 30 * 24 * time.Hour
)

// Entry is one export descriptor as shown in the recent list.
type Entry struct {
	URL       string    `json:"url"`
	FileKey   string    `json:"fileKey"`
	Format    string    `json:"format"`
	FileName  string    `json:"fileName"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store is a Redis-backed capped list of recent exports per project.
type Store struct {
	client *redis.Client
	prefix string
	max    int64
	ttl    time.Duration
}

// NewStore connects to Redis and verifies the connection.
func NewStore(redisURL string) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewStoreWithClient(client), nil
}

// NewStoreWithClient wraps an existing Redis client.
func NewStoreWithClient(client *redis.Client) *Store {
	return &Store{
		client: client,
		prefix: "recent:",
		max:    defaultMaxEntries,
		ttl:    defaultTTL,
	}
}

func (s *Store) key(project string) string {
	return s.prefix + project
}

// Push prepends an entry to the project's list, trims it to the cap,
// and refreshes the list TTL.
func (s *Store) Push(ctx context.Context, project string, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal recent entry: %w", err)
	}

	key := s.key(project)
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, s.max-1)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push recent entry: %w", err)
	}
	return nil
}

// List returns the project's recent entries, newest first. Entries that
// fail to decode are skipped.
func (s *Store) List(ctx context.Context, project string) ([]Entry, error) {
	raw, err := s.client.LRange(ctx, s.key(project), 0, s.max-1).Result()
	if err != nil {
		return nil, fmt.Errorf("list recent entries: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Ping checks if Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}
