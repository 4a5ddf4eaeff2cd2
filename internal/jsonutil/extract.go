// Package jsonutil extracts typed values from parsed JSON objects.
//
// Every accessor comes in two forms. The optional form (Int, String, ...)
// returns None when the field is missing, null, an object or an array. The
// mandatory form (MandatoryInt, MandatoryString, ...) turns that None into
// ErrMissingValue. Both fail with ErrInvalidArgument for a nil object or an
// empty field name, and with a *ParseError (matching ErrParse) when a
// primitive cannot be coerced.
//
// The package holds no mutable state and is safe for concurrent use. A
// *fastjson.Object is not: give each goroutine its own parsed object.
package jsonutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/valyala/fastjson"
)

const (
	kindInt      = "int32"
	kindLong     = "int64"
	kindBool     = "bool"
	kindDecimal  = "decimal"
	kindDateTime = "datetime"
)

// Int returns field as a 32-bit integer. Numeric strings such as "42" are
// accepted; fractional or exponent forms are not.
func Int(o *fastjson.Object, field string) (Optional[int32], error) {
	return extract(o, field, kindInt, func(s string) (int32, error) {
		n, err := strconv.ParseInt(s, 10, 32)
		return int32(n), err
	})
}

// Long returns field as a 64-bit integer, with the same rules as Int.
func Long(o *fastjson.Object, field string) (Optional[int64], error) {
	return extract(o, field, kindLong, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

// Bool returns field as a boolean. JSON true/false and strings accepted by
// strconv.ParseBool are valid; numbers are not.
func Bool(o *fastjson.Object, field string) (Optional[bool], error) {
	v, err := primitive(o, field)
	if err != nil || v == nil {
		return None[bool](), err
	}
	switch v.Type() {
	case fastjson.TypeTrue:
		return Some(true), nil
	case fastjson.TypeFalse:
		return Some(false), nil
	case fastjson.TypeString:
		s := text(v)
		b, err := strconv.ParseBool(s)
		if err != nil {
			return None[bool](), parseError(field, kindBool, s, err)
		}
		return Some(b), nil
	default:
		return None[bool](), parseError(field, kindBool, text(v), errors.New("not a boolean"))
	}
}

// String returns the textual form of field. Numbers keep their exact JSON
// text; booleans become "true" or "false".
func String(o *fastjson.Object, field string) (Optional[string], error) {
	v, err := primitive(o, field)
	if err != nil || v == nil {
		return None[string](), err
	}
	return Some(text(v)), nil
}

// Decimal returns field as an exact decimal parsed from its JSON text, so no
// float rounding takes place.
func Decimal(o *fastjson.Object, field string) (Optional[decimal.Decimal], error) {
	return extract(o, field, kindDecimal, decimal.NewFromString)
}

// DateTime returns field parsed as an ISO-8601 date-time. The offset found
// in the text is kept on the returned time.
func DateTime(o *fastjson.Object, field string) (Optional[time.Time], error) {
	return extract(o, field, kindDateTime, parseISODateTime)
}

// MandatoryInt is Int for a field that must be present.
func MandatoryInt(o *fastjson.Object, field string) (int32, error) {
	v, err := Int(o, field)
	return unwrap(v, err, field)
}

// MandatoryLong is Long for a field that must be present.
func MandatoryLong(o *fastjson.Object, field string) (int64, error) {
	v, err := Long(o, field)
	return unwrap(v, err, field)
}

// MandatoryBool is Bool for a field that must be present.
func MandatoryBool(o *fastjson.Object, field string) (bool, error) {
	v, err := Bool(o, field)
	return unwrap(v, err, field)
}

// MandatoryString is String for a field that must be present.
func MandatoryString(o *fastjson.Object, field string) (string, error) {
	v, err := String(o, field)
	return unwrap(v, err, field)
}

// MandatoryDecimal is Decimal for a field that must be present.
func MandatoryDecimal(o *fastjson.Object, field string) (decimal.Decimal, error) {
	v, err := Decimal(o, field)
	return unwrap(v, err, field)
}

// MandatoryDateTime is DateTime for a field that must be present.
func MandatoryDateTime(o *fastjson.Object, field string) (time.Time, error) {
	v, err := DateTime(o, field)
	return unwrap(v, err, field)
}

// StringMap flattens o into its keys' textual values. Every key of o is
// present in the result; non-primitive values map to None.
func StringMap(o *fastjson.Object) (map[string]Optional[string], error) {
	if err := checkObject(o); err != nil {
		return nil, err
	}
	result := make(map[string]Optional[string], o.Len())
	o.Visit(func(key []byte, v *fastjson.Value) {
		if isPrimitive(v) {
			result[string(key)] = Some(text(v))
		} else {
			result[string(key)] = None[string]()
		}
	})
	return result, nil
}

func extract[T any](o *fastjson.Object, field, kind string, conv func(string) (T, error)) (Optional[T], error) {
	v, err := primitive(o, field)
	if err != nil || v == nil {
		return None[T](), err
	}
	if kind != kindDateTime {
		if t := v.Type(); t == fastjson.TypeTrue || t == fastjson.TypeFalse {
			return None[T](), parseError(field, kind, text(v), fmt.Errorf("cannot convert %s", t))
		}
	}
	s := text(v)
	out, err := conv(s)
	if err != nil {
		return None[T](), parseError(field, kind, s, err)
	}
	return Some(out), nil
}

// unwrap turns an optional accessor's result into a required value.
func unwrap[T any](opt Optional[T], err error, field string) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	v, ok := opt.Get()
	if !ok {
		return zero, missingValue(field)
	}
	return v, nil
}

// primitive validates the arguments and returns the field's value, or nil
// when the field is missing or not a primitive.
func primitive(o *fastjson.Object, field string) (*fastjson.Value, error) {
	if err := checkObject(o); err != nil {
		return nil, err
	}
	if field == "" {
		return nil, fmt.Errorf("%w: field name is empty", ErrInvalidArgument)
	}
	v := o.Get(field)
	if v == nil || !isPrimitive(v) {
		return nil, nil
	}
	return v, nil
}

func checkObject(o *fastjson.Object) error {
	if o == nil {
		return fmt.Errorf("%w: JSON object is nil", ErrInvalidArgument)
	}
	return nil
}

func isPrimitive(v *fastjson.Value) bool {
	switch v.Type() {
	case fastjson.TypeString, fastjson.TypeNumber, fastjson.TypeTrue, fastjson.TypeFalse:
		return true
	default:
		return false
	}
}

// text returns the textual form of a primitive: the unescaped string, the
// raw number literal, or "true"/"false".
func text(v *fastjson.Value) string {
	switch v.Type() {
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeTrue:
		return "true"
	case fastjson.TypeFalse:
		return "false"
	default:
		return string(v.MarshalTo(nil))
	}
}

func parseError(field, kind, value string, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
		if errors.Is(err, strconv.ErrRange) && kind == kindInt {
			err = fmt.Errorf("%w: outside [%d, %d]", strconv.ErrRange, math.MinInt32, math.MaxInt32)
		}
	}
	return &ParseError{Field: field, Kind: kind, Value: value, Err: err}
}
