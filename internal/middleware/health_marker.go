package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Redis keys for request stats. Exported for the health service and handlers.
const (
	KeyReqTotal  = "matchmaker:stats:req_total"
	KeyReqErrors = "matchmaker:stats:req_errors"
	KeyResTime   = "matchmaker:stats:res_time_total"
	KeyResCount  = "matchmaker:stats:res_count"
	KeyStartTime = "matchmaker:stats:start_time"
	KeyLastReq   = "matchmaker:stats:last_request"
	KeyErrorLog  = "matchmaker:stats:error_log"
)

// ErrorLogSize is how many 5xx entries the error log keeps.
const ErrorLogSize = 50

// StatsKeys lists every key written by HealthMarker.
var StatsKeys = []string{KeyReqTotal, KeyReqErrors, KeyResTime, KeyResCount, KeyStartTime, KeyLastReq, KeyErrorLog}

// ErrorEntry is one element of the 5xx error log.
type ErrorEntry struct {
	Time    time.Time `json:"time"`
	Method  string    `json:"method"`
	Path    string    `json:"path"`
	Status  int       `json:"status"`
	Message string    `json:"message"`
	TraceID string    `json:"trace_id,omitempty"`
}

// HealthMarker records request stats in Redis (skip /, /health*, /metrics, favicon).
// A nil client turns it into a no-op.
func HealthMarker(rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb == nil || skipStats(c.Path()) {
			return c.Next()
		}

		start := time.Now()
		lastReq := map[string]interface{}{
			"time":   start,
			"ip":     c.IP(),
			"path":   c.OriginalURL(),
			"method": c.Method(),
		}
		b, _ := json.Marshal(lastReq)
		ctx := context.Background()
		_, _ = rdb.Set(ctx, KeyLastReq, b, 0).Result()
		_, _ = rdb.Incr(ctx, KeyReqTotal).Result()

		err := c.Next()

		ms := time.Since(start).Milliseconds()
		_, _ = rdb.Incr(ctx, KeyResCount).Result()
		_, _ = rdb.IncrByFloat(ctx, KeyResTime, float64(ms)).Result()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		if status >= fiber.StatusInternalServerError {
			_, _ = rdb.Incr(ctx, KeyReqErrors).Result()
			entry := ErrorEntry{
				Time:    start.UTC(),
				Method:  c.Method(),
				Path:    c.OriginalURL(),
				Status:  status,
				Message: errorMessage(c, err),
				TraceID: GetTraceID(c),
			}
			if eb, mErr := json.Marshal(entry); mErr == nil {
				_, _ = rdb.LPush(ctx, KeyErrorLog, eb).Result()
				_, _ = rdb.LTrim(ctx, KeyErrorLog, 0, ErrorLogSize-1).Result()
			}
		}
		return err
	}
}

func skipStats(path string) bool {
	return path == "/" ||
		strings.HasPrefix(path, "/health") ||
		strings.HasPrefix(path, "/metrics") ||
		strings.HasPrefix(path, "/favicon")
}

// errorMessage prefers the handler error, then the message in the error envelope.
func errorMessage(c *fiber.Ctx, err error) string {
	if err != nil {
		return err.Error()
	}
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(c.Response().Body(), &body) == nil && body.Error.Message != "" {
		return body.Error.Message
	}
	return "Internal Server Error"
}
