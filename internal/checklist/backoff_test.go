package checklist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff_GrowsAndCaps(t *testing.T) {
	b := newBackoff(10*time.Millisecond, 35*time.Millisecond)

	bases := []time.Duration{10, 20, 35, 35}
	for i, base := range bases {
		d := b.next()
		base *= time.Millisecond
		assert.GreaterOrEqual(t, d, base, "retry %d", i)
		assert.LessOrEqual(t, d, base+base/4, "retry %d", i)
	}
}

func TestSleep_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := sleep(ctx, time.Second)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}
