package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"officetools/internal/infrastructure/ratelimit"
	"officetools/internal/shared/constants"
	"officetools/internal/shared/logger"
	"officetools/internal/shared/utils"
)

// RateLimiter limits requests per client IP within one named bucket.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	name    string
	policy  ratelimit.Policy
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, name string, policy ratelimit.Policy, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		name:    name,
		policy:  policy,
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.policy.Limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", rl.name, c.ClientIP())
		result, err := rl.limiter.Allow(c.Request.Context(), key, rl.policy)
		if err != nil {
			// the limiter never blocks traffic on its own failure
			rl.logger.Warnw("rate limiter unavailable", "bucket", rl.name, "error", err)
			c.Next()
			return
		}

		c.Header(constants.HeaderRateLimitLimit, strconv.Itoa(rl.policy.Limit))
		c.Header(constants.HeaderRateLimitRemains, strconv.Itoa(result.Remaining))

		if !result.Allowed {
			rl.logger.Warnw("rate limit exceeded", "bucket", rl.name, "client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
