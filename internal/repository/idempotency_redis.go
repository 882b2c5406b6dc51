package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JonnyWalker81/daybook/backend/internal/models"
)

// IdempotencyTTL is how long a cached response can be replayed
const IdempotencyTTL = 24 * time.Hour

type redisIdempotencyRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisIdempotencyRepository stores idempotency records in redis with a TTL
func NewRedisIdempotencyRepository(client *redis.Client, ttl time.Duration) IdempotencyRepository {
	if ttl <= 0 {
		ttl = IdempotencyTTL
	}
	return &redisIdempotencyRepository{client: client, ttl: ttl}
}

func idempotencyRedisKey(key, route, userID string) string {
	return fmt.Sprintf("idempotency:%s:%s:%s", userID, route, key)
}

func (r *redisIdempotencyRepository) Get(ctx context.Context, key, route, userID string) (*models.IdempotencyKey, error) {
	raw, err := r.client.Get(ctx, idempotencyRedisKey(key, route, userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read idempotency key: %w", err)
	}

	var record models.IdempotencyKey
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal idempotency key: %w", err)
	}
	return &record, nil
}

func (r *redisIdempotencyRepository) Store(ctx context.Context, key, route, userID string, responseBody []byte, statusCode int) error {
	record := models.IdempotencyKey{
		Key:          key,
		Route:        route,
		UserID:       userID,
		ResponseBody: responseBody,
		StatusCode:   statusCode,
		CreatedAt:    models.FormatTimestamp(time.Now()),
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal idempotency key: %w", err)
	}

	// SETNX keeps the first response if two requests race
	if err := r.client.SetNX(ctx, idempotencyRedisKey(key, route, userID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}
	return nil
}
