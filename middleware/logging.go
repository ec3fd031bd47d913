package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"hostelms_go/cache"
	"hostelms_go/config"
)

// LoggerMiddleware logs HTTP requests
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logrus.WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"duration":   duration.String(),
			"ip":         c.IP(),
			"user_agent": c.Get("User-Agent"),
		}).Info("HTTP Request")

		return err
	}
}

// ActivityEntry records one mutating action against a resource.
type ActivityEntry struct {
	RequestID  string      `json:"request_id"`
	UserID     int         `json:"user_id"`
	Action     string      `json:"action"`
	Resource   string      `json:"resource"`
	ResourceID int         `json:"resource_id"`
	Details    interface{} `json:"details,omitempty"`
	IPAddress  string      `json:"ip_address"`
	UserAgent  string      `json:"user_agent"`
	CreatedAt  time.Time   `json:"created_at"`
}

// LogActivity records a user action. Entries always go to the structured
// log; when Redis activity logging is enabled they are also queued for later
// inspection.
func LogActivity(c *fiber.Ctx, action, resource string, resourceID int, details interface{}) {
	userID := 0
	if user, err := GetCurrentUser(c); err == nil {
		userID = user.ID
	}

	entry := ActivityEntry{
		RequestID:  c.Get("X-Request-ID", uuid.New().String()),
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Details:    details,
		IPAddress:  c.IP(),
		UserAgent:  c.Get("User-Agent"),
		CreatedAt:  time.Now().UTC(),
	}

	logrus.WithFields(logrus.Fields{
		"request_id":  entry.RequestID,
		"user_id":     entry.UserID,
		"action":      entry.Action,
		"resource":    entry.Resource,
		"resource_id": entry.ResourceID,
	}).Info("Activity")

	if !config.AppConfig.UseRedisActivityLog {
		return
	}

	go func(e ActivityEntry) {
		defer func() {
			if r := recover(); r != nil {
				logrus.WithField("panic", r).Error("panic recovered in LogActivity goroutine")
			}
		}()
		if err := queueActivityEntry(e); err != nil {
			logrus.WithError(err).Warn("Failed to queue activity entry")
		}
	}(entry)
}

// queueActivityEntry stores the entry in Redis with a 24-hour TTL plus a
// sorted-set index for batch readers.
func queueActivityEntry(entry ActivityEntry) error {
	rc := cache.GetRedisClient()
	if rc == nil {
		return fmt.Errorf("redis client is nil")
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal activity entry: %v", err)
	}

	ctx := context.Background()
	key := fmt.Sprintf("activity:%d:%s:%d", entry.UserID, entry.Action, time.Now().UnixNano())

	if err := rc.Set(ctx, key, data, 24*time.Hour).Err(); err != nil {
		return fmt.Errorf("failed to cache activity entry: %v", err)
	}

	if err := rc.ZAdd(ctx, "activity:queue", &redis.Z{
		Score:  float64(entry.CreatedAt.Unix()),
		Member: key,
	}).Err(); err != nil {
		logrus.WithError(err).Error("Failed to add activity entry to queue")
	}
	return nil
}

// LogActivityMiddleware automatically logs CRUD operations
func LogActivityMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Skip logging for GET requests and auth endpoints
		if c.Method() == "GET" || strings.Contains(c.Path(), "/auth/") {
			return c.Next()
		}

		err := c.Next()

		var action string
		switch c.Method() {
		case "POST":
			action = "CREATE"
		case "PUT", "PATCH":
			action = "UPDATE"
		case "DELETE":
			action = "DELETE"
		default:
			return err
		}

		// Extract resource from path, assuming /api/resource format.
		pathParts := strings.Split(strings.Trim(c.Path(), "/"), "/")
		var resource string
		if len(pathParts) >= 2 {
			resource = pathParts[1]
		}

		var resourceID int
		if id := c.Params("id"); id != "" {
			if parsed, parseErr := strconv.Atoi(id); parseErr == nil {
				resourceID = parsed
			}
		}

		// Log only if request was successful
		if c.Response().StatusCode() < 400 {
			LogActivity(c, action, resource, resourceID, nil)
		}

		return err
	}
}
