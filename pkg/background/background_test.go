package background

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunnerExecutesSubmittedTask(t *testing.T) {
	runner := NewRunner(0)

	var ran atomic.Bool
	runner.Submit("test-task", func(ctx context.Context) error {
		ran.Store(true)
		return nil
	})

	runner.Wait()
	assert.True(t, ran.Load())
}

func TestRunnerSwallowsTaskError(t *testing.T) {
	runner := NewRunner(0)

	runner.Submit("failing-task", func(ctx context.Context) error {
		return errors.New("boom")
	})

	// Must not panic or propagate anything to the caller.
	runner.Wait()
}

func TestRunnerRecoversFromPanic(t *testing.T) {
	runner := NewRunner(0)

	runner.Submit("panicking-task", func(ctx context.Context) error {
		panic("boom")
	})

	runner.Wait()
}

func TestRunnerAppliesTimeout(t *testing.T) {
	runner := NewRunner(10 * time.Millisecond)

	var sawDeadline atomic.Bool
	runner.Submit("slow-task", func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			sawDeadline.Store(true)
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return nil
		}
	})

	runner.Wait()
	assert.True(t, sawDeadline.Load())
}
