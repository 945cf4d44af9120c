package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vehrenweb/rentals/config"
	"github.com/vehrenweb/rentals/internal/domain"
)

type RedisCache struct {
	client      *redis.Client
	vehiclesTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, vehiclesTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		vehiclesTTL: vehiclesTTL,
	}
}

// GetVehicles returns the cached unfiltered available-vehicle listing, or
// (nil, nil) on a cache miss.
func (c *RedisCache) GetVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	data, err := c.client.Get(ctx, vehiclesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var vehicles []domain.Vehicle
	if err := json.Unmarshal(data, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (c *RedisCache) SetVehicles(ctx context.Context, vehicles []domain.Vehicle) error {
	payload, err := json.Marshal(vehicles)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, vehiclesKey(), payload, c.vehiclesTTL).Err()
}

// SaveDraft stores a booking draft under its server-issued token. Drafts
// expire on their own; nothing deletes them explicitly.
func (c *RedisCache) SaveDraft(ctx context.Context, draft domain.BookingDraft, ttl time.Duration) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, draftKey(draft.Token), payload, ttl).Err()
}

// GetDraft returns (nil, nil) when the token is unknown or expired.
func (c *RedisCache) GetDraft(ctx context.Context, token string) (*domain.BookingDraft, error) {
	data, err := c.client.Get(ctx, draftKey(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var draft domain.BookingDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func vehiclesKey() string {
	return "cache:vehicles"
}

func draftKey(token string) string {
	return "draft:" + token
}
