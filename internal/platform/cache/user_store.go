package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/redact"
	"github.com/phrazzld/taskboard-api/internal/store"
	"github.com/redis/go-redis/v9"
)

// userGenerationKey counts directory writes. Each generation caches its list
// under its own key, so a List that raced a Create can only populate a
// generation nobody reads any more.
const userGenerationKey = "taskboard:users:gen"

// userListKey holds the JSON encoded user directory for one generation.
func userListKey(gen int64) string {
	return fmt.Sprintf("taskboard:users:list:%d", gen)
}

// CachedUserStore decorates a store.UserStore with a Redis cache for List.
// Redis failures are logged and fall back to the underlying store.
//
// Cached users are encoded with their JSON form, so they carry no password hash.
// Callers that need the hash must use GetByID or GetByEmail, which are never cached.
type CachedUserStore struct {
	store.UserStore
	redis  redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

var _ store.UserStore = (*CachedUserStore)(nil)

// NewCachedUserStore wraps base. A nil logger falls back to slog.Default.
func NewCachedUserStore(
	base store.UserStore,
	client redis.UniversalClient,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedUserStore {
	if base == nil {
		panic("base store cannot be nil")
	}
	if client == nil {
		panic("redis client cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedUserStore{
		UserStore: base,
		redis:     client,
		ttl:       ttl,
		logger:    logger.With(slog.String("component", "user_cache")),
	}
}

// Create stores the user and moves the directory to a new generation.
func (c *CachedUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := c.UserStore.Create(ctx, user); err != nil {
		return err
	}
	if err := c.redis.Incr(ctx, userGenerationKey).Err(); err != nil {
		logger.FromContextOrDefault(ctx, c.logger).Warn("failed to advance user list generation",
			slog.String("error", redact.Error(err)))
	}
	return nil
}

func (c *CachedUserStore) generation(ctx context.Context) (int64, error) {
	gen, err := c.redis.Get(ctx, userGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// List serves the directory from Redis when present, otherwise from the
// underlying store, populating the cache on the way out.
func (c *CachedUserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	gen, err := c.generation(ctx)
	if err != nil {
		log.Warn("redis read failed, falling back to store",
			slog.String("error", redact.Error(err)))
		return c.UserStore.List(ctx)
	}
	key := userListKey(gen)

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var users []*domain.User
		if jsonErr := json.Unmarshal(data, &users); jsonErr == nil {
			log.Debug("user list served from cache", slog.Int("count", len(users)))
			return users, nil
		}
		log.Warn("discarding undecodable cached user list")
		c.evict(ctx, key)
	case !errors.Is(err, redis.Nil):
		log.Warn("redis read failed, falling back to store",
			slog.String("error", redact.Error(err)))
	}

	users, err := c.UserStore.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(users); err == nil {
		if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Warn("failed to cache user list", slog.String("error", redact.Error(err)))
		}
	}
	return users, nil
}

func (c *CachedUserStore) evict(ctx context.Context, key string) {
	if err := c.redis.Del(ctx, key).Err(); err != nil {
		logger.FromContextOrDefault(ctx, c.logger).Warn("failed to evict cached user list",
			slog.String("error", redact.Error(err)))
	}
}
