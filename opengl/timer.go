package opengl

import (
	"time"

	"github.com/vrxkit/gfxbridge"
)

// GPUTimer measures GPU execution time with glQueryCounter timestamp
// pairs. It satisfies the gfxbridge.Timer contract.
//
// Every driver call is scoped by a ContextGuard when the timer was
// created with a valid secondary context, so the timer can be driven
// from the submission thread without disturbing whichever context that
// thread has bound. The query pair must be queried before the next
// Start/Stop pair is recorded.
//
// On drivers without timer queries the timer is inert: Start and Stop
// do nothing and Query reports 0.
type GPUTimer struct {
	d   *Dispatch
	ctx Context

	queries [2]uint32

	total time.Duration
	armed bool
	inert bool
}

// NewGPUTimer creates a GPU timer whose driver calls run against ctx.
// Pass an invalid Context when the calls should run on the caller's
// current context.
//
// A dispatch table without timer query entry points yields an inert
// timer (logged once at warn level). A guard failure during query
// creation is returned unchanged.
func NewGPUTimer(d *Dispatch, ctx Context) (*GPUTimer, error) {
	t := &GPUTimer{d: d, ctx: ctx}

	if d == nil || !d.SupportsTimerQueries() {
		gfxbridge.Logger().Warn("opengl: timer queries unavailable, GPU timer is inert")
		t.inert = true
		return t, nil
	}

	err := t.guarded(func() {
		d.GenQueries(int32(len(t.queries)), t.queries[:])
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// guarded runs fn with the timer's context bound, restoring the
// caller's context before propagating any pending driver error.
func (t *GPUTimer) guarded(fn func()) error {
	guard, err := NewContextGuard(t.d, t.ctx)
	if err != nil {
		return err
	}
	fn()
	return guard.Restore()
}

// Start records the start timestamp.
func (t *GPUTimer) Start() {
	if t.inert {
		return
	}
	if err := t.guarded(func() {
		t.d.QueryCounter(t.queries[0], TIMESTAMP)
	}); err != nil {
		gfxbridge.Logger().Warn("opengl: GPU timer start failed", "error", err)
	}
}

// Stop records the stop timestamp.
func (t *GPUTimer) Stop() {
	if t.inert {
		return
	}
	if err := t.guarded(func() {
		t.d.QueryCounter(t.queries[1], TIMESTAMP)
	}); err != nil {
		gfxbridge.Logger().Warn("opengl: GPU timer stop failed", "error", err)
		return
	}
	t.armed = true
}

// Query reads back the recorded pair once its results are available,
// accumulates the GPU interval, and returns the total at microsecond
// resolution. When reset is true the accumulator is zeroed as an
// explicit side effect of the read.
func (t *GPUTimer) Query(reset bool) time.Duration {
	if t.inert {
		return 0
	}
	if t.armed {
		err := t.guarded(func() {
			var available [1]int32
			if t.d.GetQueryObjectiv != nil {
				t.d.GetQueryObjectiv(t.queries[1], QUERY_RESULT_AVAILABLE, available[:])
				if available[0] == 0 {
					return
				}
			}
			var start, stop [1]uint64
			t.d.GetQueryObjectui64(t.queries[0], QUERY_RESULT, start[:])
			t.d.GetQueryObjectui64(t.queries[1], QUERY_RESULT, stop[:])
			if stop[0] > start[0] {
				t.total += time.Duration(stop[0] - start[0])
			}
			t.armed = false
		})
		if err != nil {
			gfxbridge.Logger().Warn("opengl: GPU timer query failed", "error", err)
		}
	}

	d := t.total.Truncate(time.Microsecond)
	if reset {
		t.total = 0
	}
	return d
}

// Destroy releases the query objects. The timer must not be used after
// Destroy.
func (t *GPUTimer) Destroy() {
	if t.inert {
		return
	}
	if err := t.guarded(func() {
		t.d.DeleteQueries(int32(len(t.queries)), t.queries[:])
	}); err != nil {
		gfxbridge.Logger().Warn("opengl: GPU timer destroy failed", "error", err)
	}
}

var _ gfxbridge.Timer = (*GPUTimer)(nil)
