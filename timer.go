package gfxbridge

import "time"

// Timer measures elapsed time across one or more start/stop intervals.
//
// Start marks a beginning instant. Stop accumulates the time elapsed
// since the most recent Start into a running total, so multiple
// start/stop pairs measure non-contiguous work. Query returns the
// accumulated total at microsecond resolution; when reset is true the
// accumulator is zeroed as an explicit side effect of the read.
//
// CPUTimer implements Timer on the monotonic CPU clock. GPU-clock
// implementations (vulkan.GPUTimer, opengl.GPUTimer) satisfy the same
// contract against a command stream, letting the submission pipeline
// treat CPU and GPU timing uniformly.
//
// Timers are single-owner: callers sharing one instance across
// goroutines must serialize Start/Stop/Query externally.
type Timer interface {
	Start()
	Stop()
	Query(reset bool) time.Duration
}

// CPUTimer is a synchronous Timer backed by the monotonic clock.
type CPUTimer struct {
	now     func() time.Time
	started time.Time
	total   time.Duration
}

// CPUTimerOption configures a CPUTimer during creation.
type CPUTimerOption func(*CPUTimer)

// WithClock sets a custom clock source. Use this to inject a fake clock
// in tests; the default is time.Now.
func WithClock(now func() time.Time) CPUTimerOption {
	return func(t *CPUTimer) {
		t.now = now
	}
}

// NewCPUTimer creates a CPU timer with a zeroed accumulator.
func NewCPUTimer(opts ...CPUTimerOption) *CPUTimer {
	t := &CPUTimer{now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start marks the beginning of an interval.
func (t *CPUTimer) Start() {
	t.started = t.now()
}

// Stop accumulates the time elapsed since the most recent Start.
func (t *CPUTimer) Stop() {
	t.total += t.now().Sub(t.started)
}

// Query returns the accumulated duration truncated to microsecond
// resolution. When reset is true the accumulator is zeroed, so a
// subsequent Query reports 0 until the next Stop.
func (t *CPUTimer) Query(reset bool) time.Duration {
	d := t.total.Truncate(time.Microsecond)
	if reset {
		t.total = 0
	}
	return d
}

var _ Timer = (*CPUTimer)(nil)
