// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package invariant reports broken topological invariants.
//
// Threading errors through every mutation of the triangle graph would bury
// the algorithms, so the engines panic with an *Error and each public entry
// point converts it back with Recover.
package invariant

import "github.com/pkg/errors"

// Error is a violated invariant. Construction cannot continue after one.
type Error struct {
	err error
}

func (e *Error) Error() string {
	return "invariant violated: " + e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// Fatalf panics with an *Error built from the format.
func Fatalf(format string, args ...any) {
	panic(&Error{err: errors.Errorf(format, args...)})
}

// Recover converts the value of recover() into an error. Panics that are not
// invariant violations are re-raised.
func Recover(r any) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(*Error); ok {
		return err
	}
	panic(r)
}
