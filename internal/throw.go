package internal

import "github.com/pkg/errors"

// None of the engine's normal failure modes are errors; they are absent
// results. The only thing that panics is a broken internal invariant, and the
// public API recovers those into an error rather than threading errors
// through every geometric helper.

// The panic value raised by fatalf. Being a distinct type, it can't be
// mistaken for a runtime error or anyone else's panic.
type GeometryError struct {
	error
}

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(GeometryError{errors.Errorf(format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError.error
		}
		panic(r)
	}
	return nil
}
