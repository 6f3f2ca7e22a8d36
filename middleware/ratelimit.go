package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samudra-tours/samudra-tours-api/cache"
)

// RateLimit enforces a fixed-window per-client limit on an endpoint. The
// store is injected so every instance shares one limiter and tests can bring
// their own clock.
func RateLimit(store *cache.TTLStore, name string, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", name, c.ClientIP())
		if store.Increment(key, window) > limit {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "RATE_LIMITED",
					"message": "Too many requests, please try again later",
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
