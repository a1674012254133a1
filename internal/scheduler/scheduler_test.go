package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (c *countingRefresher) RefreshAll(ctx context.Context) (int, error) {
	c.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("refresh context has no deadline")
	}
	return 3, c.err
}

// TestNew tests schedule parsing.
//
// WHY: A typo in SNAPSHOT_CRON must stop the server at startup instead of
// silently never refreshing snapshots.
func TestNew(t *testing.T) {
	t.Run("accepts a standard cron expression", func(t *testing.T) {
		s, err := New("0 3 * * *", &countingRefresher{}, time.Minute)
		require.NoError(t, err)
		require.NotNil(t, s)
	})

	t.Run("accepts descriptors", func(t *testing.T) {
		_, err := New("@hourly", &countingRefresher{}, time.Minute)
		require.NoError(t, err)
	})

	t.Run("rejects an invalid expression", func(t *testing.T) {
		_, err := New("every night", &countingRefresher{}, time.Minute)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid snapshot schedule")
	})
}

// TestScheduler_Run tests a single job execution.
//
// WHY: The job must hand the refresher a bounded context and keep going when
// the refresh reports errors.
func TestScheduler_Run(t *testing.T) {
	t.Run("calls the refresher with a deadline", func(t *testing.T) {
		refresher := &countingRefresher{}
		s, err := New("@daily", refresher, time.Minute)
		require.NoError(t, err)

		s.run()

		assert.Equal(t, int32(1), refresher.calls.Load())
	})

	t.Run("survives refresher errors", func(t *testing.T) {
		refresher := &countingRefresher{err: errors.New("owner failed")}
		s, err := New("@daily", refresher, time.Minute)
		require.NoError(t, err)

		assert.NotPanics(t, s.run)
		assert.Equal(t, int32(1), refresher.calls.Load())
	})

	t.Run("start and stop", func(t *testing.T) {
		s, err := New("@daily", &countingRefresher{}, time.Minute)
		require.NoError(t, err)

		s.Start()
		ctx := s.Stop()

		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop")
		}
	})
}
