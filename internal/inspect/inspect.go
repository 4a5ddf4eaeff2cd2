package inspect

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/valyala/fastjson"

	"github.com/paykit-dev/paykit/internal/config"
	"github.com/paykit-dev/paykit/internal/jsonutil"
	"github.com/paykit-dev/paykit/internal/model"
)

// Result is one extracted field rendered as text.
type Result struct {
	Field   string
	Kind    config.Kind
	Value   string
	Present bool
}

// Absent is printed in place of a missing optional value.
const Absent = "<absent>"

// Text returns the rendered value, or Absent.
func (r Result) Text() string {
	if !r.Present {
		return Absent
	}
	return r.Value
}

// Extract reads every schema field from o, in schema order. The first
// failing field aborts extraction.
func Extract(o *fastjson.Object, s *config.Schema) ([]Result, error) {
	results := make([]Result, 0, len(s.Fields))
	for _, f := range s.Fields {
		r, err := extractField(o, f)
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", f.Name, err)
		}
		results = append(results, r)
	}
	return results, nil
}

// Flatten returns the object's string map as results sorted by key.
func Flatten(o *fastjson.Object) ([]Result, error) {
	m, err := jsonutil.StringMap(o)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(m))
	for k, v := range m {
		s, ok := v.Get()
		results = append(results, Result{Field: k, Kind: config.KindString, Value: s, Present: ok})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Field < results[j].Field })
	return results, nil
}

func extractField(o *fastjson.Object, f config.Field) (Result, error) {
	r := Result{Field: f.Name, Kind: f.Kind}
	var err error
	switch f.Kind {
	case config.KindInt:
		r.Value, r.Present, err = read(o, f, jsonutil.Int, jsonutil.MandatoryInt, func(n int32) string {
			return strconv.FormatInt(int64(n), 10)
		})
	case config.KindLong:
		r.Value, r.Present, err = read(o, f, jsonutil.Long, jsonutil.MandatoryLong, func(n int64) string {
			return strconv.FormatInt(n, 10)
		})
	case config.KindBool:
		r.Value, r.Present, err = read(o, f, jsonutil.Bool, jsonutil.MandatoryBool, strconv.FormatBool)
	case config.KindString:
		r.Value, r.Present, err = read(o, f, jsonutil.String, jsonutil.MandatoryString, func(s string) string { return s })
	case config.KindDecimal:
		r.Value, r.Present, err = read(o, f, jsonutil.Decimal, jsonutil.MandatoryDecimal, decimal.Decimal.String)
	case config.KindDateTime:
		r.Value, r.Present, err = read(o, f, jsonutil.DateTime, jsonutil.MandatoryDateTime, func(t time.Time) string {
			return t.Format(time.RFC3339Nano)
		})
	case config.KindAccountType:
		r.Value, err = readAccountType(o, f)
		r.Present = err == nil
	default:
		err = fmt.Errorf("unknown kind %q", f.Kind)
	}
	return r, err
}

func read[T any](
	o *fastjson.Object,
	f config.Field,
	optional func(*fastjson.Object, string) (jsonutil.Optional[T], error),
	mandatory func(*fastjson.Object, string) (T, error),
	format func(T) string,
) (string, bool, error) {
	if f.Mandatory {
		v, err := mandatory(o, f.Name)
		if err != nil {
			return "", false, err
		}
		return format(v), true, nil
	}
	opt, err := optional(o, f.Name)
	if err != nil {
		return "", false, err
	}
	v, ok := opt.Get()
	if !ok {
		return "", false, nil
	}
	return format(v), true, nil
}

// readAccountType never reports an optional account type as absent: a
// missing code parses as unknown.
func readAccountType(o *fastjson.Object, f config.Field) (string, error) {
	if f.Mandatory {
		code, err := jsonutil.MandatoryString(o, f.Name)
		if err != nil {
			return "", err
		}
		return model.ParseAccountType(code).Code(), nil
	}
	opt, err := jsonutil.String(o, f.Name)
	if err != nil {
		return "", err
	}
	var code *string
	if s, ok := opt.Get(); ok {
		code = &s
	}
	return model.ParseAccountTypePtr(code).Code(), nil
}
