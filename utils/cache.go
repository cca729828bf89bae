// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"vipqueens/config"

	"github.com/go-redis/redis/v8"
)

var (
	// BookingCacheClient holds the persisted booking records.
	BookingCacheClient *redis.Client
	// ChatCacheClient holds per-session conversation context.
	ChatCacheClient *redis.Client
)

// InitBookingCache initializes the Redis client backing the booking store.
func InitBookingCache() {
	BookingCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisBookingDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := BookingCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Bookings): %v", err)
	}
}

// GetBookingCacheClient returns the Redis client for the booking store.
func GetBookingCacheClient() *redis.Client {
	if BookingCacheClient == nil {
		InitBookingCache()
	}
	return BookingCacheClient
}

// InitChatCache initializes the Redis client for conversation context.
func InitChatCache() {
	ChatCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ChatCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Chat): %v", err)
	}
}

// GetChatCacheClient returns the Redis client for conversation context.
func GetChatCacheClient() *redis.Client {
	if ChatCacheClient == nil {
		InitChatCache()
	}
	return ChatCacheClient
}
