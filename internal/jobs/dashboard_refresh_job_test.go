package jobs

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingHandler struct {
	calls atomic.Int32
	err   error
}

func (h *countingHandler) Handle(_ context.Context, cmd commands.RefreshDashboardCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	h.calls.Add(1)
	return h.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDashboardRefreshJob(t *testing.T) {
	t.Run("should use the default spec", func(t *testing.T) {
		job := NewDashboardRefreshJob(&countingHandler{}, "", discardLogger())
		assert.Equal(t, DefaultDashboardRefreshSpec, job.spec)
	})

	t.Run("should reject an invalid spec", func(t *testing.T) {
		job := NewDashboardRefreshJob(&countingHandler{}, "every ten seconds", discardLogger())
		require.Error(t, job.Start())
	})

	t.Run("should run the refresh on schedule", func(t *testing.T) {
		if testing.Short() {
			t.Skip("waits for the scheduler")
		}
		handler := &countingHandler{}
		job := NewDashboardRefreshJob(handler, "* * * * * *", discardLogger())

		require.NoError(t, job.Start())
		assert.Eventually(t, func() bool { return handler.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
		job.Stop()
	})

	t.Run("should keep running after a failed refresh", func(t *testing.T) {
		handler := &countingHandler{err: assert.AnError}
		job := NewDashboardRefreshJob(handler, "", discardLogger())

		job.run()
		job.run()

		assert.Equal(t, int32(2), handler.calls.Load())
	})
}

func TestJobManager(t *testing.T) {
	jm := NewJobManager(&countingHandler{}, "bad spec", discardLogger())
	require.ErrorContains(t, jm.StartAll(), "dashboard refresh job")

	jm = NewJobManager(&countingHandler{}, "", discardLogger())
	require.NoError(t, jm.StartAll())
	jm.StopAll()
}
