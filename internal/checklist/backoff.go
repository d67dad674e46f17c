package checklist

import (
	"context"
	"math/rand/v2"
	"time"
)

// backoff yields exponentially growing retry delays with up to 25% jitter.
type backoff struct {
	initial    time.Duration
	max        time.Duration
	multiplier float64
	retry      int
}

func newBackoff(initial, max time.Duration) *backoff {
	return &backoff{initial: initial, max: max, multiplier: 2}
}

// next returns the delay before the following retry.
func (b *backoff) next() time.Duration {
	delay := float64(b.initial)
	for i := 0; i < b.retry; i++ {
		delay *= b.multiplier
		if delay >= float64(b.max) {
			break
		}
	}
	d := time.Duration(delay)
	if d > b.max {
		d = b.max
	}
	d += time.Duration(float64(d) * 0.25 * rand.Float64())
	b.retry++
	return d
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
