package opengl

// Context is a borrowed legacy rendering context: a device context and
// a rendering context handle pair owned by the external windowing
// component. The zero value is invalid; an invalid Context makes every
// guard constructed from it a no-op, so call sites can guard
// unconditionally even when no secondary context exists.
type Context struct {
	DC uintptr
	RC uintptr

	Valid bool
}

// ContextGuard makes a secondary context current for the duration of
// one operation and deterministically restores the caller's previous
// context.
//
// The guard moves through three states: constructed inert (invalid
// context, no driver calls ever), active (context bound, stale error
// flags drained), and restored. Restore always rebinds the caller's
// context before evaluating whether the guarded operation left a
// driver error pending, so a reported failure never strands the caller
// on the wrong context.
//
//	guard, err := opengl.NewContextGuard(d, appContext)
//	if err != nil {
//	    return err
//	}
//	d.TextureStorageMem2D(...)
//	if err := guard.Restore(); err != nil {
//	    return err // driver error, context already restored
//	}
type ContextGuard struct {
	d *Dispatch

	prevDC uintptr
	prevRC uintptr

	active   bool
	restored bool
}

// NewContextGuard captures the caller's currently bound context, makes
// ctx current, and drains any stale driver error flags so that errors
// observed at Restore time are attributable to the guarded operation.
//
// An invalid ctx yields an inert guard that performs no binding work at
// construction or restore. A valid ctx requires the dispatch table's
// context binding slots; a driver that rejects the bind fails
// construction with ErrMakeCurrentFailed and leaves the caller's
// context untouched.
func NewContextGuard(d *Dispatch, ctx Context) (*ContextGuard, error) {
	g := &ContextGuard{d: d}
	if !ctx.Valid {
		return g, nil
	}
	if d == nil || !d.supportsContextSwitch() {
		return nil, ErrContextSwitchUnavailable
	}

	g.prevDC = d.GetCurrentDC()
	g.prevRC = d.GetCurrentContext()

	if !d.MakeCurrent(ctx.DC, ctx.RC) {
		return nil, ErrMakeCurrentFailed
	}

	// Drain stale error flags.
	for d.GetError() != NO_ERROR {
	}

	g.active = true
	return g, nil
}

// Restore rebinds the caller's previously captured context and then,
// only then, reports any driver error the guarded operation left
// pending as a *DriverError.
//
// Restore is idempotent: the first call performs the restoration,
// subsequent calls return nil. An inert guard restores nothing and
// reports nothing.
func (g *ContextGuard) Restore() error {
	if !g.active || g.restored {
		g.restored = true
		return nil
	}
	g.restored = true

	// Read the flag first: rebinding the previous context would give
	// glGetError the wrong context's flag.
	code := g.d.GetError()

	g.d.MakeCurrent(g.prevDC, g.prevRC)

	if code != NO_ERROR {
		return &DriverError{Code: code}
	}
	return nil
}
