package utils

import (
	"context"
	"log"
	"time"

	"andeanscapes/config"

	"github.com/go-redis/redis/v8"
)

// ReservationCacheClient is the Redis client backing the durable
// reservation store.
var ReservationCacheClient *redis.Client

// InitReservationCache initializes the Redis client for reservation
// persistence.
func InitReservationCache() {
	ReservationCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReservationDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ReservationCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Reservations): %v", err)
	}
}

// GetReservationCacheClient returns the reservation persistence client.
func GetReservationCacheClient() *redis.Client {
	if ReservationCacheClient == nil {
		InitReservationCache()
	}
	return ReservationCacheClient
}
