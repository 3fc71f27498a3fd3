package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
)

func TestRealTimeProvider(t *testing.T) {
	p := NewRealTimeProvider()

	now := p.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(Precision))

	d, err := p.ParseDuration("150ms")
	require.NoError(t, err)
	assert.Equal(t, 150*core.Millisecond, d)

	ctx, cancel := p.WithTimeout(context.Background(), core.Second)
	defer cancel()
	_, ok := ctx.Deadline()
	assert.True(t, ok)
}

func TestFixedTimeProvider(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	p := NewFixedTimeProvider(start)

	assert.Equal(t, start, p.Now())

	p.Sleep(2 * core.Second)
	assert.Equal(t, start.Add(2*time.Second), p.Now())
	assert.Equal(t, 2*core.Second, p.Since(start))
	assert.Equal(t, -2*core.Second, p.Until(start))
}
