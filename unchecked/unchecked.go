// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package unchecked carries a domain error through code that can only fail
// by panicking. An *Error always holds a non-nil cause; it is raised with
// Throw and turned back into the original error with Catch.
package unchecked

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrDataIntegrity     = errors.New("invalid persisted unchecked error")
	ErrUnregisteredCause = errors.New("unregistered cause kind")
)

// Error wraps a domain error so it can cross a boundary that does not allow
// returning it. The cause is set at construction and never changes.
type Error struct {
	msg   string
	cause error
}

// New returns an Error holding cause. It panics if cause is nil, including an
// interface holding a nil pointer.
func New(cause error, opt ...Option) *Error {
	if isNil(cause) {
		panic(fmt.Errorf("%w: nil cause", ErrInvalidParameter))
	}
	opts, err := getOpts(opt...)
	if err != nil {
		panic(err)
	}
	return &Error{
		msg:   opts.withMessage,
		cause: cause,
	}
}

// Error implements error.
func (e *Error) Error() string {
	if e.cause == nil {
		if e.msg == "" {
			return "unchecked error without cause"
		}
		return e.msg
	}
	if e.msg == "" {
		return e.cause.Error()
	}
	return fmt.Sprintf("%s: %s", e.msg, e.cause.Error())
}

// Message returns the descriptive message, which may be empty.
func (e *Error) Message() string {
	return e.msg
}

// Cause returns the wrapped domain error.
func (e *Error) Cause() error {
	return e.cause
}

func (e *Error) Unwrap() error {
	return e.cause
}

func isNil(err error) bool {
	if err == nil {
		return true
	}
	switch v := reflect.ValueOf(err); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Throw panics with an Error wrapping err. A nil err is a no-op; a typed nil
// err panics with ErrInvalidParameter like New.
func Throw(err error) {
	if err == nil {
		return
	}
	panic(New(err))
}

// Catch must be deferred directly. A panic carrying an *Error is recovered
// and its cause stored in errp; any other panic value is raised again as is.
//
//	func f() (err error) {
//		defer unchecked.Catch(&err)
//		...
//	}
func Catch(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	ue, ok := r.(*Error)
	if !ok || ue == nil {
		panic(r)
	}
	*errp = ue.cause
}

// As reports whether err is an *Error itself, returning it when so. Errors
// that merely wrap an *Error do not match.
func As(err error) (*Error, bool) {
	ue, ok := err.(*Error)
	if !ok || ue == nil {
		return nil, false
	}
	return ue, true
}

// Is reports whether err is an *Error.
func Is(err error) bool {
	_, ok := As(err)
	return ok
}
