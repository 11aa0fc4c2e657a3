// Package background runs best-effort side-channel tasks. Work submitted
// here is never awaited by the caller's critical path and its failure is
// only an observability event.
package background

import (
	"context"
	"sync"
	"time"

	"github.com/safarind/umrah-marketplace-api/pkg/log"
)

// Runner executes named tasks in their own goroutines. Task errors and
// panics are logged and swallowed; they never reach the submitter.
type Runner struct {
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewRunner creates a Runner whose tasks are bounded by timeout. A zero
// timeout leaves tasks unbounded.
func NewRunner(timeout time.Duration) *Runner {
	return &Runner{timeout: timeout}
}

// Submit schedules fn to run asynchronously. The passed context is detached
// from the caller's request context so an early HTTP response does not
// cancel the write.
func (r *Runner) Submit(name string, fn func(ctx context.Context) error) {
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				log.L.WithFields(log.Fields{
					"task":  name,
					"panic": rec,
				}).Error("panic in background task")
			}
		}()

		ctx := context.Background()
		if r.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, r.timeout)
			defer cancel()
		}

		if err := fn(ctx); err != nil {
			log.L.WithError(err).WithField("task", name).Warn("background task failed")
		}
	}()
}

// Wait blocks until every submitted task has finished. Used on shutdown
// and in tests; regular request handling never calls it.
func (r *Runner) Wait() {
	r.wg.Wait()
}
