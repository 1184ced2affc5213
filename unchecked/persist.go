// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package unchecked

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hashicorp/errwrap"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// persisted is the stored representation of an Error, shared by the JSON and
// YAML encodings.
type persisted struct {
	Message string          `json:"message,omitempty" yaml:"message,omitempty"`
	Cause   *persistedCause `json:"cause" yaml:"cause"`
}

type persistedCause struct {
	Kind       string         `json:"kind" yaml:"kind"`
	Attributes map[string]any `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

func (e *Error) persist() (*persisted, error) {
	kind, ok := kindOf(e.cause)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnregisteredCause, e.cause)
	}
	attrs := map[string]any{}
	if err := mapstructure.Decode(e.cause, &attrs); err != nil {
		return nil, errwrap.Wrapf("error encoding cause attributes: {{err}}", err)
	}
	return &persisted{
		Message: e.msg,
		Cause: &persistedCause{
			Kind:       kind,
			Attributes: attrs,
		},
	}, nil
}

// stored is what the decoders fill before restore. The message is left
// untyped so a bad one is reported together with any problem in the cause.
type stored struct {
	Message any             `json:"message" yaml:"message"`
	Cause   *persistedCause `json:"cause" yaml:"cause"`
}

// restore validates p and builds the Error it describes. Every problem found
// is reported, wrapped in ErrDataIntegrity.
func restore(p *stored) (*Error, error) {
	var result *multierror.Error

	var msg string
	switch m := p.Message.(type) {
	case nil:
	case string:
		msg = m
	default:
		result = multierror.Append(result, fmt.Errorf("message must be a string, got %T", p.Message))
	}

	var cause error
	switch {
	case p.Cause == nil:
		result = multierror.Append(result, errors.New("missing cause"))
	case p.Cause.Kind == "":
		result = multierror.Append(result, errors.New("missing cause kind"))
	default:
		t, ok := typeOf(p.Cause.Kind)
		if !ok {
			result = multierror.Append(result, fmt.Errorf("unexpected cause kind %q", p.Cause.Kind))
			break
		}
		c, err := decodeCause(t, p.Cause.Attributes)
		for _, e := range flatten(err) {
			result = multierror.Append(result, errwrap.Wrapf("error decoding cause attributes: {{err}}", e))
		}
		cause = c
	}

	if result != nil {
		result.ErrorFormat = listFormat
		return nil, fmt.Errorf("%w: %w", ErrDataIntegrity, result)
	}
	return &Error{
		msg:   msg,
		cause: cause,
	}, nil
}

// flatten expands joined errors, as returned by the attribute decoder, into
// their leaves. Any prefix wrapped around a join is dropped.
func flatten(err error) []error {
	if err == nil {
		return nil
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return []error{err}
	}
	var out []error
	for _, e := range joined.Unwrap() {
		out = append(out, flatten(e)...)
	}
	return out
}

func decodeCause(t reflect.Type, attrs map[string]any) (error, error) {
	ptr := t.Kind() == reflect.Pointer
	var target reflect.Value
	if ptr {
		target = reflect.New(t.Elem())
	} else {
		target = reflect.New(t)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.DecodeHookFuncType(exactNumberHook),
		ErrorUnused: true,
		Result:      target.Interface(),
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attrs); err != nil {
		return nil, err
	}

	if !ptr {
		target = target.Elem()
	}
	cause, ok := target.Interface().(error)
	if !ok {
		return nil, fmt.Errorf("%s does not implement error", t)
	}
	return cause, nil
}

var jsonNumberType = reflect.TypeFor[json.Number]()

// exactNumberHook only lets a number into an integer field when it is whole
// and in range for that field. JSON numbers are refused for string fields.
func exactNumberHook(from, to reflect.Type, data any) (any, error) {
	var signed bool
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		signed = true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
	case reflect.String:
		if from == jsonNumberType {
			return nil, fmt.Errorf("expected a string, got number %s", data)
		}
		return data, nil
	default:
		return data, nil
	}

	f, ok, err := numberOf(data)
	if err != nil {
		return nil, err
	}
	if !ok {
		return data, nil
	}
	if !f.IsInt() {
		return nil, fmt.Errorf("%v is not a whole number", data)
	}
	i, _ := f.Int(nil)

	bits := uint(to.Bits())
	lo, hi := new(big.Int), new(big.Int)
	if signed {
		hi.Lsh(big.NewInt(1), bits-1)
		lo.Neg(hi)
		hi.Sub(hi, big.NewInt(1))
	} else {
		hi.Lsh(big.NewInt(1), bits)
		hi.Sub(hi, big.NewInt(1))
	}
	if i.Cmp(lo) < 0 || i.Cmp(hi) > 0 {
		return nil, fmt.Errorf("%v overflows %s", data, to)
	}
	// A long decimal may have rounded to a whole number.
	if f.Acc() != big.Exact {
		return nil, fmt.Errorf("%v is not a whole number", data)
	}
	if signed {
		return i.Int64(), nil
	}
	return i.Uint64(), nil
}

// numberOf returns data as a big.Float. ok is false when data is not
// numeric.
func numberOf(data any) (*big.Float, bool, error) {
	if n, isNumber := data.(json.Number); isNumber {
		f, _, err := big.ParseFloat(n.String(), 10, 256, big.ToZero)
		if err != nil {
			return nil, false, fmt.Errorf("invalid number %q: %w", n.String(), err)
		}
		return f, true, nil
	}
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return new(big.Float).SetInt64(v.Int()), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Float).SetUint64(v.Uint()), true, nil
	case reflect.Float32, reflect.Float64:
		x := v.Float()
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, false, fmt.Errorf("%v is not a whole number", data)
		}
		return new(big.Float).SetFloat64(x), true, nil
	}
	return nil, false, nil
}

func listFormat(es []error) string {
	points := make([]string, len(es))
	for i, err := range es {
		points[i] = err.Error()
	}
	return strings.Join(points, "; ")
}

// MarshalJSON implements json.Marshaler. It fails with ErrUnregisteredCause
// when the cause kind was never registered.
func (e *Error) MarshalJSON() ([]byte, error) {
	p, err := e.persist()
	if err != nil {
		return nil, err
	}
	return json.Marshal(p)
}

// UnmarshalJSON implements json.Unmarshaler. On failure the receiver is left
// unchanged and the returned error wraps ErrDataIntegrity.
func (e *Error) UnmarshalJSON(data []byte) error {
	var p stored
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&p); err != nil {
		return fmt.Errorf("%w: %w", ErrDataIntegrity, err)
	}
	restored, err := restore(&p)
	if err != nil {
		return err
	}
	*e = *restored
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (e *Error) MarshalYAML() (any, error) {
	return e.persist()
}

// UnmarshalYAML implements yaml.Unmarshaler with the same validation as
// UnmarshalJSON.
func (e *Error) UnmarshalYAML(value *yaml.Node) error {
	var p stored
	if err := value.Decode(&p); err != nil {
		return fmt.Errorf("%w: %w", ErrDataIntegrity, err)
	}
	restored, err := restore(&p)
	if err != nil {
		return err
	}
	*e = *restored
	return nil
}
