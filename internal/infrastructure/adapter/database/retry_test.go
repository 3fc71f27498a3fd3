package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mockcore "github.com/amirhossein-jamali/dbcoord/mocks/port/core"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		RetryInterval: time.Millisecond,
		MaxInterval:   2 * time.Millisecond,
	}
}

func TestRetryOnTransientError(t *testing.T) {
	mapper := NewErrorMapper()

	t.Run("Transient errors are retried until success", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Warn("Transient database error, retrying operation", mock.Anything).Return().Times(2)

		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetryConfig(), func() error {
			calls++
			if calls < 3 {
				return errors.New("connection reset by peer")
			}
			return nil
		}, mapper, mockLogger)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Permanent errors are returned at once", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		permanent := errors.New("duplicate key value violates unique constraint")

		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetryConfig(), func() error {
			calls++
			return permanent
		}, mapper, mockLogger)

		assert.Same(t, permanent, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("Gives up after the configured attempts", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Return().Times(2)
		mockLogger.EXPECT().Error("All retry attempts failed", mock.Anything).Return().Once()

		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetryConfig(), func() error {
			calls++
			return errors.New("connection refused")
		}, mapper, mockLogger)

		assert.EqualError(t, err, "connection refused")
		assert.Equal(t, 3, calls)
	})

	t.Run("Canceled context stops retrying", func(t *testing.T) {
		mockLogger := mockcore.NewMockLogger(t)
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Return()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		config := fastRetryConfig()
		config.RetryInterval = time.Hour
		config.MaxInterval = time.Hour

		err := RetryOnTransientError(ctx, config, func() error {
			return errors.New("connection refused")
		}, mapper, mockLogger)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	config := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second, JitterFactor: 0.5}

	first := calculateBackoffWithJitter(0, config)
	assert.GreaterOrEqual(t, first, 100*time.Millisecond)
	assert.LessOrEqual(t, first, 150*time.Millisecond)

	capped := calculateBackoffWithJitter(10, config)
	assert.GreaterOrEqual(t, capped, time.Second)
	assert.LessOrEqual(t, capped, 1500*time.Millisecond)
}
