// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package unchecked

import (
	"fmt"
	"reflect"
	"sync"
)

const DataAccessKind = "data-access"

// DataAccessError is the database access failure most callers carry in an
// Error. It is registered under DataAccessKind.
type DataAccessError struct {
	Message  string `mapstructure:"message"`
	SQLState string `mapstructure:"sql_state"`
	Code     int    `mapstructure:"code"`
}

func (e *DataAccessError) Error() string {
	if e.SQLState == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (sqlstate %s, code %d)", e.Message, e.SQLState, e.Code)
}

var causeLock sync.RWMutex

var (
	causeTypes = map[string]reflect.Type{}
	causeKinds = map[reflect.Type]string{}
)

func init() {
	RegisterCause[*DataAccessError](DataAccessKind)
}

// RegisterCause allows causes of type E to be persisted and restored under
// kind. E must be a struct or a pointer to a struct whose exported fields
// describe the error. Registering the same pair twice is a no-op; reusing a
// kind or a type for a different pairing panics.
func RegisterCause[E error](kind string) {
	t := reflect.TypeFor[E]()
	if kind == "" {
		panic(fmt.Errorf("%w: empty cause kind", ErrInvalidParameter))
	}
	st := t
	if st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct {
		panic(fmt.Errorf("%w: cause type %s is not a struct", ErrInvalidParameter, t))
	}

	causeLock.Lock()
	defer causeLock.Unlock()
	if existing, ok := causeTypes[kind]; ok {
		if existing == t {
			return
		}
		panic(fmt.Errorf("%w: cause kind %q already registered for %s", ErrInvalidParameter, kind, existing))
	}
	if existing, ok := causeKinds[t]; ok {
		panic(fmt.Errorf("%w: cause type %s already registered as %q", ErrInvalidParameter, t, existing))
	}
	causeTypes[kind] = t
	causeKinds[t] = kind
}

func kindOf(cause error) (string, bool) {
	causeLock.RLock()
	defer causeLock.RUnlock()
	kind, ok := causeKinds[reflect.TypeOf(cause)]
	return kind, ok
}

func typeOf(kind string) (reflect.Type, bool) {
	causeLock.RLock()
	defer causeLock.RUnlock()
	t, ok := causeTypes[kind]
	return t, ok
}
