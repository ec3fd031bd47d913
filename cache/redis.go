package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"hostelms_go/config"
)

var redisClient *redis.Client

// Connect dials Redis if configured. Redis is optional: it backs the JWT
// blacklist and the activity-log queue, and every caller must tolerate a nil
// client.
func Connect() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisHost + ":" + config.AppConfig.RedisPort,
		Password: config.AppConfig.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("Redis not available; token blacklist and log queue disabled")
		return
	}

	redisClient = client
	logrus.Info("Redis connected")
}

// GetRedisClient returns the shared client, or nil when Redis is unavailable.
func GetRedisClient() *redis.Client {
	return redisClient
}
