package d3d

import (
	"errors"
	"testing"
)

// namerRecorder records SetDebugName calls and optionally fails them.
type namerRecorder struct {
	names []string
	err   error
}

func (r *namerRecorder) SetDebugName(name string) error {
	r.names = append(r.names, name)
	return r.err
}

// TestSetDebugName verifies that names reach the resource and that nil
// resources and empty names are skipped.
func TestSetDebugName(t *testing.T) {
	rec := &namerRecorder{}
	SetDebugName(rec, "swapchain image 0")
	if len(rec.names) != 1 || rec.names[0] != "swapchain image 0" {
		t.Errorf("recorded names = %v, want [swapchain image 0]", rec.names)
	}

	SetDebugName(rec, "")
	if len(rec.names) != 1 {
		t.Errorf("empty name reached the resource: %v", rec.names)
	}

	// Must not panic.
	SetDebugName(nil, "orphan")
}

// TestSetDebugNameSwallowsError verifies that an annotation failure
// never propagates to the caller.
func TestSetDebugNameSwallowsError(t *testing.T) {
	rec := &namerRecorder{err: errors.New("device removed")}
	SetDebugName(rec, "depth buffer")
	if len(rec.names) != 1 {
		t.Errorf("recorded names = %v, want one attempt", rec.names)
	}
}
