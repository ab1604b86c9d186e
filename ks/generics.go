package ks

import (
	"fmt"
	"reflect"
)

// Zero returns the zero value for any type.
func Zero[T any]() T {
	var t T
	return t
}

// IfThenElse returns a if q is true, or b if q is false. Both branches are
// evaluated eagerly since this is a function, not a language construct — use
// a plain if statement instead when either branch has a side effect you only
// want on one path.
func IfThenElse[X any](q bool, a X, b X) X {
	if q {
		return a
	}
	return b
}

// Catch calls f and, if f panics, recovers and returns the zero value of X
// together with an error wrapping the panic value. Otherwise returns f's
// result and a nil error.
func Catch[X any](f func() X) (x X, err error) {
	defer func() {
		if r := recover(); r != nil {
			x = Zero[X]()
			if rErr, ok := r.(error); ok {
				err = fmt.Errorf("ks.Catch: caught panic: %w", rErr)
			} else {
				err = fmt.Errorf("ks.Catch: caught panic: %v", r)
			}
		}
	}()
	return f(), nil
}

// MustFunc takes a function f(x) => (y, error) and returns a function
// f(x) => y that panics on error.
func MustFunc[A any, X any](f func(A) (X, error)) func(A) X {
	return func(a A) X {
		return Must(f(a))
	}
}

func intish[T any](i int) T {
	var t T
	ref := reflect.ValueOf(&t).Elem()
	ref.SetInt(int64(i))
	return t
}

// Rangeable defines any type of value x where it is possible to range over
// using "for k, v := range x" (or "for v := range x" in the case of a
// channel). For every Rangeable other than a map, K must be int.
type Rangeable[K comparable, V any] interface {
	~string | ~map[K]V | ~[]V | chan V
}

// Range calls f(k, v) over any [Rangeable] of (K, V)s, in order, stopping
// and returning (k, err) as soon as f returns a non-nil error. Otherwise
// returns the zero K and a nil error once exhausted.
//
// Strings are ranged over rune-by-rune (K is the rune index, not the byte
// offset), matching the "for range" builtin over a string.
func Range[K comparable, V any, R Rangeable[K, V]](f func(K, V) error, r R) (K, error) {
	k, _, err := CheckedRange[K, V](f, r)
	return k, err
}

// CheckedRange is like [Range], but also returns the V the failing call to f
// was given (or the zero V if f never returned an error).
func CheckedRange[K comparable, V any, R any](f func(K, V) error, r R) (K, V, error) {
	switch ref := reflect.ValueOf(r); ref.Kind() {
	case reflect.Array, reflect.Slice:
		for i := 0; i < ref.Len(); i++ {
			k := intish[K](i)
			v := ref.Index(i).Interface().(V)
			if err := f(k, v); err != nil {
				return k, v, err
			}
		}
	case reflect.Chan:
		for {
			x, ok := ref.Recv()
			if !ok {
				break
			}
			k := intish[K](0)
			v := x.Interface().(V)
			if err := f(k, v); err != nil {
				return k, v, err
			}
		}
	case reflect.Map:
		iter := ref.MapRange()
		for iter.Next() {
			k, v := iter.Key().Interface().(K), iter.Value().Interface().(V)
			if err := f(k, v); err != nil {
				return k, v, err
			}
		}
	case reflect.String:
		s := ref.String()
		runeIndex := 0
		for _, v := range s {
			k := intish[K](runeIndex)
			runeIndex++
			if err := f(k, any(v).(V)); err != nil {
				return k, any(v).(V), err
			}
		}
	}
	return Zero[K](), Zero[V](), nil
}
