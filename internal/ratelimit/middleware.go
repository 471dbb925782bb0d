package ratelimit

import (
	"fmt"
	"net/http"
	"strconv"

	"subgate/internal/observability"

	"github.com/gin-gonic/gin"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
)

// OwnerIDKey is the gin context key the auth middleware stores the owner id under.
const OwnerIDKey = "Owner-ID"

// Middleware creates a Gin middleware for rate limiting. Authenticated requests
// are keyed by owner, anonymous ones by client IP.
func (s *Service) Middleware() gin.HandlerFunc {
	return mgin.NewMiddleware(s.limiter,
		mgin.WithKeyGetter(requestKey),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			s.logger.Error(c.Request.Context(), "rate limit check failed", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "code": "INTERNAL_ERROR"})
		}),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			ctx := observability.WithFields(c.Request.Context(),
				observability.Field{Key: "rate_limit_key", Value: requestKey(c)},
			)
			s.logger.Warn(ctx, "rate limit exceeded")

			reset, _ := strconv.ParseInt(c.Writer.Header().Get("X-RateLimit-Reset"), 10, 64)
			retryAfter := reset - s.now().Unix()
			if retryAfter < 0 {
				retryAfter = 0
			}
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"code":        "RATE_LIMIT_EXCEEDED",
				"retry_after": retryAfter,
				"reset_at":    reset,
			})
		}),
	)
}

func requestKey(c *gin.Context) string {
	if v, ok := c.Get(OwnerIDKey); ok {
		if ownerID, ok := v.(int64); ok {
			return "owner:" + strconv.FormatInt(ownerID, 10)
		}
	}
	return "ip:" + c.ClientIP()
}
