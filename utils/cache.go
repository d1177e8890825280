package utils

import (
	"context"
	"log"
	"time"

	"slotcal/config"

	"github.com/go-redis/redis/v8"
)

// QueueClient talks to the Redis instance backing the submission queue.
var QueueClient *redis.Client

// InitQueueRedis connects to the queue Redis. A failed ping is logged but not fatal;
// the health monitor keeps reporting it.
func InitQueueRedis() {
	QueueClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := QueueClient.Ping(ctx).Err(); err != nil {
		log.Printf("Redis (queue) not reachable yet: %v", err)
	}
}

// GetQueueClient returns the queue Redis client.
func GetQueueClient() *redis.Client {
	if QueueClient == nil {
		InitQueueRedis()
	}
	return QueueClient
}
