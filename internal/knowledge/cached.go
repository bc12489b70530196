package knowledge

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Cached wraps a Helper with per-process memoization, a request rate
// limit, a conservative timeout, and a fallback Helper consulted when the
// primary fails. Lookup results are keyed by the normalized term and held
// for the process lifetime.
type Cached struct {
	primary  Helper
	fallback Helper
	limiter  *rate.Limiter
	timeout  time.Duration

	mu    sync.Mutex
	cache map[string]string
}

// NewCached builds the wrapper. fallback may be nil, in which case a failed
// primary lookup yields an empty label.
func NewCached(primary, fallback Helper, rps float64, timeout time.Duration) *Cached {
	if rps <= 0 {
		rps = 1
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Cached{
		primary:  primary,
		fallback: fallback,
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
		timeout:  timeout,
		cache:    map[string]string{},
	}
}

// InterventionPurpose serves from cache when possible and otherwise asks
// the primary under the rate limit and timeout. Any primary failure is
// absorbed by the fallback; the method itself never returns an error.
func (c *Cached) InterventionPurpose(ctx context.Context, term string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(term))
	if key == "" {
		return "", nil
	}

	c.mu.Lock()
	if purpose, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return purpose, nil
	}
	c.mu.Unlock()

	purpose := c.lookup(ctx, key)

	c.mu.Lock()
	c.cache[key] = purpose
	c.mu.Unlock()
	return purpose, nil
}

func (c *Cached) lookup(ctx context.Context, key string) string {
	lctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(lctx); err == nil {
		if purpose, err := c.primary.InterventionPurpose(lctx, key); err == nil {
			return purpose
		}
	}
	if c.fallback != nil {
		if purpose, err := c.fallback.InterventionPurpose(ctx, key); err == nil {
			return purpose
		}
	}
	return ""
}
