package reservation

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"andeanscapes/models"
)

// reservationTTL keeps abandoned reservations around long enough for a
// guest to come back, without hoarding them forever.
const reservationTTL = 30 * 24 * time.Hour

// RedisStore persists reservation snapshots in Redis.
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore returns a Store backed by the given Redis client.
func NewRedisStore(client *redis.Client, logger *zap.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func (s *RedisStore) Save(ctx context.Context, experienceID, deviceID string, snap models.ReservationSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, StorageKey(experienceID, deviceID), data, reservationTTL).Err()
}

func (s *RedisStore) Load(ctx context.Context, experienceID, deviceID string) (*models.ReservationSnapshot, error) {
	data, err := s.client.Get(ctx, StorageKey(experienceID, deviceID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap models.ReservationSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		// Corrupt or incompatible data is "no data found", not an error.
		s.logger.Warn("discarding unreadable reservation snapshot",
			zap.String("experienceId", experienceID),
			zap.String("deviceId", deviceID),
			zap.Error(err))
		return nil, nil
	}
	return &snap, nil
}

func (s *RedisStore) Clear(ctx context.Context, experienceID, deviceID string) error {
	return s.client.Del(ctx, StorageKey(experienceID, deviceID)).Err()
}
