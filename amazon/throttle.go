package amazon

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultThrottle is the minimum spacing between requests when the
// caller does not configure one.
const DefaultThrottle = time.Second

// Gate enforces a per-client minimum spacing between outgoing requests.
// The configured value is the spacing itself, not an inverse rate. The
// gate is waited on before transmission, so a throttled or failed
// response still consumes its slot and keeps subsequent calls spaced.
//
// The first request proceeds without delay. The gate does not bound
// burst size beyond one-at-a-time spacing and does not coordinate
// across client instances.
type Gate struct {
	limiter *rate.Limiter
}

// NewGate creates a gate with the given spacing. A spacing of zero or
// less disables waiting entirely.
func NewGate(spacing time.Duration) *Gate {
	if spacing <= 0 {
		return &Gate{}
	}
	return &Gate{limiter: rate.NewLimiter(rate.Every(spacing), 1)}
}

// Wait blocks until the gate releases or ctx is canceled.
func (g *Gate) Wait(ctx context.Context) error {
	if g.limiter == nil {
		return nil
	}
	return g.limiter.Wait(ctx)
}
