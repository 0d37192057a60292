// Package referencecache keeps reference names in Redis in front of a
// ports.ReferenceRepository.
//
// Existence checks are never cached: a unit must not be stored against a row
// that was removed after the cache was filled. Names change rarely and are
// served from the cache until the TTL expires.
package referencecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"warehouse/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	modelKeyPrefix = "warehouse:model:"
	userKeyPrefix  = "warehouse:user:short_name:"
)

// Repository decorates a ports.ReferenceRepository. Redis failures are logged
// and the lookup falls through to the wrapped repository.
type Repository struct {
	next   ports.ReferenceRepository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func New(next ports.ReferenceRepository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *Repository {
	return &Repository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "reference_cache"),
	}
}

func (r *Repository) Exists(ctx context.Context, ref ports.Reference, id int64) (bool, error) {
	return r.next.Exists(ctx, ref, id)
}

func (r *Repository) Model(ctx context.Context, id int64) (ports.ModelInfo, error) {
	key := fmt.Sprintf("%s%d", modelKeyPrefix, id)

	var info ports.ModelInfo
	if raw, ok := r.get(ctx, key); ok {
		if err := json.Unmarshal(raw, &info); err == nil {
			return info, nil
		}
		r.logger.WarnContext(ctx, "dropping undecodable cache entry", "key", key)
	}

	info, err := r.next.Model(ctx, id)
	if err != nil {
		return ports.ModelInfo{}, err
	}
	if raw, err := json.Marshal(info); err == nil {
		r.set(ctx, key, raw)
	}
	return info, nil
}

func (r *Repository) UserShortName(ctx context.Context, id int64) (string, error) {
	key := fmt.Sprintf("%s%d", userKeyPrefix, id)
	if raw, ok := r.get(ctx, key); ok {
		return string(raw), nil
	}

	name, err := r.next.UserShortName(ctx, id)
	if err != nil {
		return "", err
	}
	r.set(ctx, key, []byte(name))
	return name, nil
}

func (r *Repository) get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return raw, true
}

func (r *Repository) set(ctx context.Context, key string, value []byte) {
	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		r.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}
