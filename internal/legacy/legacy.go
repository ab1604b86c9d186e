// Package legacy implements small helpers kept around from an earlier
// iteration of the table generators, where generic `any`-typed reflection
// helpers used to live before `text/proptab` grew its own types.
package legacy

import (
	"fmt"
	"io"

	"github.com/tawesoft/uninorm/must"
)

// WithCloser opens a value with opener, runs do against it, and closes it
// regardless of whether do panics or returns an error. Used by the offline
// table generators in internal/unicode/gen-13.0.0 to read UCD archive
// members without leaking open zip readers on error.
func WithCloser[T io.Closer](opener func() (T, error), do func(v T) error) error {
	var zero T

	f, err := opener()
	if err != nil {
		return fmt.Errorf("WithCloser[%T] open error: %w", zero, err)
	}

	doer := must.CatchFunc(func() error { return do(f) })
	err, panicErr := doer()
	if err != nil {
		err = fmt.Errorf("WithCloser[%T] error: %w", zero, err)
	} else if panicErr != nil {
		err = fmt.Errorf("WithCloser[%T] error: panic: %w", zero, panicErr)
	}

	errClose := f.Close()
	if errClose != nil {
		err = fmt.Errorf("WithCloser[%T] close error: %v; %w", zero, errClose, err)
	}

	return err
}
