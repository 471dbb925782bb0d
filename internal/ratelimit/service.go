package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"subgate/internal/clients/redis"
	"subgate/internal/observability"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service is a fixed-window limiter keyed by an arbitrary string. Counters live
// in Redis when a client is available, otherwise in process memory.
type Service struct {
	limiter *limiter.Limiter
	logger  *observability.Logger
	now     func() time.Time
}

// NewService creates a limiter for a ulule formatted rate such as "10-M".
// prefix namespaces the keys so several services can share one Redis.
func NewService(rate, prefix string, rdb *redis.Client, logger *observability.Logger) (*Service, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rate %q: %w", rate, err)
	}

	opts := limiter.StoreOptions{
		Prefix:          prefix,
		CleanUpInterval: limiter.DefaultCleanUpInterval,
	}

	var st limiter.Store
	if rdb.IsEnabled() {
		st, err = sredis.NewStoreWithOptions(rdb.GetClient(), opts)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
		}
	} else {
		st = memory.NewStoreWithOptions(opts)
	}

	return &Service{
		limiter: limiter.New(st, parsed),
		logger:  logger,
		now:     time.Now,
	}, nil
}

// Limiter exposes the underlying limiter for the HTTP middleware.
func (s *Service) Limiter() *limiter.Limiter {
	return s.limiter
}

// CheckRateLimit consumes one unit for key. A store failure fails open: the
// call is allowed and the error is logged.
func (s *Service) CheckRateLimit(ctx context.Context, key string) RateLimitResult {
	lctx, err := s.limiter.Get(ctx, key)
	if err != nil {
		s.logger.WarnWithError(observability.WithFields(ctx,
			observability.Field{Key: "rate_limit_key", Value: key},
		), "rate limit check failed, allowing request", err)
		return RateLimitResult{Allowed: true}
	}
	return s.toResult(lctx)
}

// CheckUser throttles a single chat user.
func (s *Service) CheckUser(ctx context.Context, userID int64) RateLimitResult {
	return s.CheckRateLimit(ctx, "user:"+strconv.FormatInt(userID, 10))
}

func (s *Service) toResult(lctx limiter.Context) RateLimitResult {
	resetAt := time.Unix(lctx.Reset, 0)
	result := RateLimitResult{
		Allowed:   !lctx.Reached,
		Limit:     int(lctx.Limit),
		Remaining: int(lctx.Remaining),
		ResetAt:   resetAt,
	}
	if lctx.Reached {
		retryAfter := resetAt.Sub(s.now())
		if retryAfter < 0 {
			retryAfter = 0
		}
		result.RetryAfterMs = int(retryAfter.Milliseconds())
	}
	return result
}
