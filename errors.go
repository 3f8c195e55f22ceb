package vatticlip

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrDegeneratePath is logged (never returned) when AddPath skips a
// malformed input: a path with fewer than two distinct points after
// deduplication. An open Clip path, or a closed path whose points all
// share one Y, is skipped with its own log line that does not carry
// this error. Skipping is silent to the caller by design (spec.md §7);
// this error exists so the skip reason is inspectable in logs and in
// tests.
var ErrDegeneratePath = errors.New("vatticlip: degenerate path skipped")

// ErrInvariant reports an internal invariant violation. The sweep
// raises it when doMaxima cannot reach the pair of a maxima edge in
// the AEL. Front/back edge agreement is not checked, and an
// intersection node that fixupIntersectionOrder cannot bring into
// AEL-adjacency is skipped rather than reported. Execute recovers any
// panic carrying this error, logs it, and returns false with empty
// solutions (spec.md §7).
type ErrInvariant struct {
	Op  string
	Err error
}

func (e *ErrInvariant) Error() string {
	return fmt.Sprintf("vatticlip: invariant violated in %s: %v", e.Op, e.Err)
}

func (e *ErrInvariant) Unwrap() error { return e.Err }

func newInvariantError(op string, err error) *ErrInvariant {
	return &ErrInvariant{Op: op, Err: err}
}

// panicInvariant raises an *ErrInvariant as a panic; the only place
// that recovers it is Execute's top-level defer, so every other
// caller in the package may call this freely without checking a
// return value, exactly the way the teacher's engine calls
// panic("DoMaxima error") etc. — except the panic is now typed and
// caught, not fatal.
func panicInvariant(op string, format string, args ...any) {
	panic(newInvariantError(op, fmt.Errorf(format, args...)))
}

// ErrConfig reports an out-of-range configuration value supplied to
// an adaptor-level API (currently only the float<->int64 path scaler
// in scale.go). Unlike ErrInvariant this is returned directly, never
// logged-and-swallowed, since it is a caller mistake rather than a
// sweep-internal failure.
type ErrConfig struct {
	Param string
	Value any
}

func (e *ErrConfig) Error() string {
	return fmt.Sprintf("vatticlip: invalid configuration %s=%v", e.Param, e.Value)
}

// recoverInvariant is deferred by Execute. If the sweep panicked with
// an *ErrInvariant (or anything else — a defensive catch-all matching
// spec.md §7's "any exception escaping execute"), it logs the failure
// and sets *ok to false so Execute can return empty solutions instead
// of propagating the panic.
func recoverInvariant(ok *bool) {
	if r := recover(); r != nil {
		*ok = false
		if ie, isInvariant := r.(*ErrInvariant); isInvariant {
			slog.Error("vatticlip: execute failed", "error", ie)
			return
		}
		slog.Error("vatticlip: execute recovered unexpected panic", "panic", r)
	}
}
