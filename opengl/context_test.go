package opengl

import (
	"errors"
	"fmt"
	"testing"
)

// contextRecorder is a dispatch double that records every driver call
// in order and simulates the current-context state and error flag.
type contextRecorder struct {
	calls []string

	curDC, curRC uintptr

	// staleErrors is drained by successive GetError calls before the
	// pending code is reported.
	staleErrors []Enum
	pending     Enum

	rejectBind bool
}

func (r *contextRecorder) dispatch() *Dispatch {
	return &Dispatch{
		GetCurrentDC: func() uintptr {
			r.calls = append(r.calls, "getCurrentDC")
			return r.curDC
		},
		GetCurrentContext: func() uintptr {
			r.calls = append(r.calls, "getCurrentContext")
			return r.curRC
		},
		MakeCurrent: func(dc, rc uintptr) bool {
			r.calls = append(r.calls, fmt.Sprintf("makeCurrent(%#x,%#x)", dc, rc))
			if r.rejectBind {
				return false
			}
			r.curDC, r.curRC = dc, rc
			return true
		},
		GetError: func() Enum {
			r.calls = append(r.calls, "getError")
			if len(r.staleErrors) > 0 {
				code := r.staleErrors[0]
				r.staleErrors = r.staleErrors[1:]
				return code
			}
			code := r.pending
			r.pending = NO_ERROR
			return code
		},
	}
}

// TestContextGuardSwitchAndRestore verifies the full guard cycle:
// capture, bind, stale error drain, then restore to the previous
// context.
func TestContextGuardSwitchAndRestore(t *testing.T) {
	rec := &contextRecorder{curDC: 0x100, curRC: 0x200, staleErrors: []Enum{0x0502}}
	d := rec.dispatch()

	guard, err := NewContextGuard(d, Context{DC: 0xA00, RC: 0xB00, Valid: true})
	if err != nil {
		t.Fatalf("NewContextGuard() error = %v", err)
	}
	if rec.curDC != 0xA00 || rec.curRC != 0xB00 {
		t.Errorf("bound context = (%#x, %#x), want (0xa00, 0xb00)", rec.curDC, rec.curRC)
	}

	if err := guard.Restore(); err != nil {
		t.Errorf("Restore() = %v, want nil", err)
	}
	if rec.curDC != 0x100 || rec.curRC != 0x200 {
		t.Errorf("restored context = (%#x, %#x), want (0x100, 0x200)", rec.curDC, rec.curRC)
	}

	// Capture precedes bind; the stale flag is drained before the guard
	// returns; restore reads the flag before rebinding.
	want := []string{
		"getCurrentDC",
		"getCurrentContext",
		"makeCurrent(0xa00,0xb00)",
		"getError", // stale 0x0502
		"getError", // clean
		"getError", // restore reads the guarded operation's flag
		"makeCurrent(0x100,0x200)",
	}
	if len(rec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", rec.calls, want)
		}
	}
}

// TestContextGuardReportsPendingError verifies that a driver error left
// by the guarded operation is reported only after the caller's context
// is back.
func TestContextGuardReportsPendingError(t *testing.T) {
	rec := &contextRecorder{curDC: 0x100, curRC: 0x200}
	d := rec.dispatch()

	guard, err := NewContextGuard(d, Context{DC: 0xA00, RC: 0xB00, Valid: true})
	if err != nil {
		t.Fatalf("NewContextGuard() error = %v", err)
	}

	rec.pending = 0x0505 // out of memory

	err = guard.Restore()
	var driverErr *DriverError
	if !errors.As(err, &driverErr) {
		t.Fatalf("Restore() = %v, want *DriverError", err)
	}
	if driverErr.Code != 0x0505 {
		t.Errorf("Code = %#x, want 0x505", uint32(driverErr.Code))
	}
	if rec.curDC != 0x100 || rec.curRC != 0x200 {
		t.Errorf("context after failing Restore = (%#x, %#x), want the caller's (0x100, 0x200)",
			rec.curDC, rec.curRC)
	}

	// The error read must have preceded the restoring bind.
	last, prev := rec.calls[len(rec.calls)-1], rec.calls[len(rec.calls)-2]
	if prev != "getError" || last != "makeCurrent(0x100,0x200)" {
		t.Errorf("final calls = [%s %s], want the flag read before the rebind", prev, last)
	}
}

// TestContextGuardIdempotentRestore verifies that only the first
// Restore performs work.
func TestContextGuardIdempotentRestore(t *testing.T) {
	rec := &contextRecorder{curDC: 0x100, curRC: 0x200}
	d := rec.dispatch()

	guard, err := NewContextGuard(d, Context{DC: 0xA00, RC: 0xB00, Valid: true})
	if err != nil {
		t.Fatalf("NewContextGuard() error = %v", err)
	}
	if err := guard.Restore(); err != nil {
		t.Fatalf("Restore() = %v, want nil", err)
	}

	n := len(rec.calls)
	if err := guard.Restore(); err != nil {
		t.Errorf("second Restore() = %v, want nil", err)
	}
	if len(rec.calls) != n {
		t.Errorf("second Restore made driver calls: %v", rec.calls[n:])
	}
}

// TestContextGuardInert verifies that an invalid context yields a guard
// that makes zero driver calls.
func TestContextGuardInert(t *testing.T) {
	rec := &contextRecorder{}
	d := rec.dispatch()

	guard, err := NewContextGuard(d, Context{})
	if err != nil {
		t.Fatalf("NewContextGuard() error = %v", err)
	}
	if err := guard.Restore(); err != nil {
		t.Errorf("Restore() = %v, want nil", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("inert guard made driver calls: %v", rec.calls)
	}
}

// TestContextGuardBindRejected verifies that a rejected bind fails
// construction without disturbing the caller's context.
func TestContextGuardBindRejected(t *testing.T) {
	rec := &contextRecorder{curDC: 0x100, curRC: 0x200, rejectBind: true}
	d := rec.dispatch()

	_, err := NewContextGuard(d, Context{DC: 0xA00, RC: 0xB00, Valid: true})
	if !errors.Is(err, ErrMakeCurrentFailed) {
		t.Fatalf("NewContextGuard() error = %v, want ErrMakeCurrentFailed", err)
	}
	if rec.curDC != 0x100 || rec.curRC != 0x200 {
		t.Errorf("context after failed construction = (%#x, %#x), want untouched (0x100, 0x200)",
			rec.curDC, rec.curRC)
	}
}

// TestContextGuardMissingSlots verifies that a valid context cannot be
// guarded when the binding entry points are unresolved.
func TestContextGuardMissingSlots(t *testing.T) {
	_, err := NewContextGuard(&Dispatch{}, Context{DC: 1, RC: 2, Valid: true})
	if !errors.Is(err, ErrContextSwitchUnavailable) {
		t.Errorf("NewContextGuard() error = %v, want ErrContextSwitchUnavailable", err)
	}

	_, err = NewContextGuard(nil, Context{DC: 1, RC: 2, Valid: true})
	if !errors.Is(err, ErrContextSwitchUnavailable) {
		t.Errorf("NewContextGuard(nil) error = %v, want ErrContextSwitchUnavailable", err)
	}
}
