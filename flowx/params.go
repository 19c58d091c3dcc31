package flowx

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Params gives typed access to the parameters of one item. Values arrive as
// decoded JSON or as strings from the command line; accessors accept both.
type Params interface {
	Has(name string) bool
	Raw(name string) any

	String(name string) (string, error)
	StringOr(name, def string) string
	Bool(name string) (bool, error)
	BoolOr(name string, def bool) bool
	Int(name string) (int, error)
	IntOr(name string, def int) int
	Float(name string) (float64, error)
	Object(name string) (map[string]any, error)
	StringList(name string) ([]string, error)
}

// MapParams is a Params backed by a map
type MapParams map[string]any

var _ Params = MapParams(nil)

func (p MapParams) Has(name string) bool {
	v, ok := p[name]
	return ok && v != nil
}

func (p MapParams) Raw(name string) any {
	return p[name]
}

// String returns a required, non-empty string
func (p MapParams) String(name string) (string, error) {
	v, ok := p[name]
	if !ok || v == nil {
		return "", MissingParameter(name)
	}
	s, err := toString(v)
	if err != nil {
		return "", InvalidParameter(name, err.Error())
	}
	if s == "" {
		return "", MissingParameter(name)
	}
	return s, nil
}

func (p MapParams) StringOr(name, def string) string {
	if !p.Has(name) {
		return def
	}
	s, err := toString(p[name])
	if err != nil {
		return def
	}
	return s
}

func (p MapParams) Bool(name string) (bool, error) {
	if !p.Has(name) {
		return false, MissingParameter(name)
	}
	switch v := p[name].(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, InvalidParameter(name, "expected a boolean")
		}
		return b, nil
	default:
		return false, InvalidParameter(name, "expected a boolean")
	}
}

func (p MapParams) BoolOr(name string, def bool) bool {
	if !p.Has(name) {
		return def
	}
	b, err := p.Bool(name)
	if err != nil {
		return def
	}
	return b
}

func (p MapParams) Int(name string) (int, error) {
	f, err := p.Float(name)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, InvalidParameter(name, "expected an integer")
	}
	return int(f), nil
}

func (p MapParams) IntOr(name string, def int) int {
	if !p.Has(name) {
		return def
	}
	i, err := p.Int(name)
	if err != nil {
		return def
	}
	return i
}

func (p MapParams) Float(name string) (float64, error) {
	if !p.Has(name) {
		return 0, MissingParameter(name)
	}
	switch v := p[name].(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, InvalidParameter(name, "expected a number")
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, InvalidParameter(name, "expected a number")
		}
		return f, nil
	default:
		return 0, InvalidParameter(name, "expected a number")
	}
}

// Object returns a nested object. An absent value is an empty object and a
// string is parsed as JSON.
func (p MapParams) Object(name string) (map[string]any, error) {
	if !p.Has(name) {
		return map[string]any{}, nil
	}
	switch v := p[name].(type) {
	case map[string]any:
		return v, nil
	case MapParams:
		return map[string]any(v), nil
	case string:
		if strings.TrimSpace(v) == "" {
			return map[string]any{}, nil
		}
		var out map[string]any
		if err := json.Unmarshal([]byte(v), &out); err != nil {
			return nil, InvalidParameter(name, "expected a JSON object")
		}
		if out == nil {
			out = map[string]any{}
		}
		return out, nil
	default:
		return nil, InvalidParameter(name, "expected an object")
	}
}

// StringList accepts a JSON array or a comma separated string. Blank
// entries are dropped; an absent value is an empty list.
func (p MapParams) StringList(name string) ([]string, error) {
	if !p.Has(name) {
		return nil, nil
	}
	switch v := p[name].(type) {
	case []string:
		return trimList(v), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, err := toString(item)
			if err != nil {
				return nil, InvalidParameter(name, "expected a list of strings")
			}
			out = append(out, s)
		}
		return trimList(out), nil
	case string:
		return trimList(strings.Split(v, ",")), nil
	default:
		return nil, InvalidParameter(name, "expected a list")
	}
}

func trimList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toString(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case bool:
		return strconv.FormatBool(val), nil
	case json.Number:
		return val.String(), nil
	default:
		return "", fmt.Errorf("expected a string, got %T", v)
	}
}
