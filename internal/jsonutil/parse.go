package jsonutil

import (
	"fmt"

	"github.com/valyala/fastjson"
)

// ParseObject parses data and returns its top-level object. Each call uses
// its own parser, so the result is not invalidated by later calls.
func ParseObject(data []byte) (*fastjson.Object, error) {
	v, err := fastjson.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	o, err := v.Object()
	if err != nil {
		return nil, fmt.Errorf("%w: top-level value is %s, not an object", ErrInvalidArgument, v.Type())
	}
	return o, nil
}
