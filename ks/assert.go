package ks

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/tawesoft/uninorm/internal/test"
)

// Assert panics if q is false. Used for invariants that should be impossible
// to violate (e.g. table-packing bit-width checks in the offline generators)
// rather than for validating caller input.
func Assert(q bool) {
	if !q {
		panic(fmt.Errorf("ks.Assert: assertion failed"))
	}
}

// Never panics unconditionally. Marks a switch/type-switch arm that every
// known value should already have matched.
func Never() {
	panic(fmt.Errorf("ks.Never: unreachable code reached"))
}

// Must accepts a (value, err) tuple and panics if err != nil, otherwise
// returns value.
func Must[T any](t T, err error) T {
	if err != nil {
		panic(fmt.Errorf("ks.Must[%T]: %w", t, err))
	}
	return t
}

// In returns true if x equals any of xs.
func In[X comparable](x X, xs ...X) bool {
	for _, i := range xs {
		if x == i {
			return true
		}
	}
	return false
}

// TestCompletes fails the test unless f returns within duration. Used to
// guard against algorithmic denial-of-service on malicious input (e.g. a
// combining-class reorder pass given pathologically many non-starters).
func TestCompletes(t *testing.T, duration time.Duration, f func(), args ...interface{}) {
	test.Completes(t, duration, f, args...)
}

// Check panics if the error is not nil. Otherwise, it returns a nil error so
// that it is convenient to chain, e.g. ks.Check(f()).
func Check(err error) error {
	if err != nil {
		panic(fmt.Errorf("ks.Check: unexpected error: %w", err))
	}
	return nil
}

// WithCloser opens a resource with opener, passes it to do, then closes it
// regardless of whether do panics or returns an error. Used by the offline
// table generators to safely read from zip archive entries.
func WithCloser[T io.Closer](opener func() (T, error), do func(v T) error) error {
	var zero T
	f, err := opener()
	if err != nil {
		return fmt.Errorf("ks.WithCloser[%T] open error: %w", zero, err)
	}

	doErr, panicErr := Catch(func() error { return do(f) })

	closeErr := f.Close()
	if doErr != nil {
		return fmt.Errorf("ks.WithCloser[%T] error: %w", zero, doErr)
	}
	if panicErr != nil {
		return fmt.Errorf("ks.WithCloser[%T] error: panic: %w", zero, panicErr)
	}
	if closeErr != nil {
		return fmt.Errorf("ks.WithCloser[%T] close error: %w", zero, closeErr)
	}
	return nil
}
