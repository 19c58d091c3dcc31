package configx

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Value wraps a configuration value and provides type conversion methods
type Value interface {
	IsSet() bool
	AsString() string
	AsStringDefault(def string) string
	AsInt() int
	AsIntDefault(def int) int
	AsBool() bool
	AsBoolDefault(def bool) bool
	AsDuration() time.Duration
	AsDurationDefault(def time.Duration) time.Duration
	AsStringSlice() []string
	AsStruct(target any) error
}

type value struct {
	key string
	raw any
}

func (v *value) IsSet() bool {
	return v.raw != nil
}

func (v *value) AsString() string {
	return v.AsStringDefault("")
}

func (v *value) AsStringDefault(def string) string {
	if v.raw == nil {
		return def
	}
	return scalarString(v.raw)
}

func (v *value) AsInt() int {
	return v.AsIntDefault(0)
}

func (v *value) AsIntDefault(def int) int {
	switch val := v.raw.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return i
		}
	}
	return def
}

func (v *value) AsBool() bool {
	return v.AsBoolDefault(false)
}

func (v *value) AsBoolDefault(def bool) bool {
	switch val := v.raw.(type) {
	case bool:
		return val
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(val)); err == nil {
			return b
		}
	}
	return def
}

func (v *value) AsDuration() time.Duration {
	return v.AsDurationDefault(0)
}

// AsDurationDefault accepts Go duration strings ("30s") or plain seconds
func (v *value) AsDurationDefault(def time.Duration) time.Duration {
	switch val := v.raw.(type) {
	case int:
		return time.Duration(val) * time.Second
	case float64:
		return time.Duration(val * float64(time.Second))
	case string:
		if d, err := time.ParseDuration(strings.TrimSpace(val)); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return def
}

// AsStringSlice accepts a list or a comma separated string
func (v *value) AsStringSlice() []string {
	switch val := v.raw.(type) {
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, scalarString(item))
		}
		return out
	case []string:
		return append([]string(nil), val...)
	case string:
		return splitList(val)
	}
	return nil
}

func (v *value) AsStruct(target any) error {
	if v.raw == nil {
		return configErrors.New(ErrDecodeFailed).WithDetail("key", v.key).WithDetail("reason", "not set")
	}
	if err := toNode(v.raw).Decode(target); err != nil {
		return configErrors.NewWithCause(ErrDecodeFailed, err).WithDetail("key", v.key)
	}
	return nil
}

// List is a []string that decodes from a YAML sequence or a comma separated
// scalar, which is how lists arrive from environment variables
type List []string

// UnmarshalYAML implements yaml.Unmarshaler
func (l *List) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = splitList(node.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("line %d: expected a list or a comma separated string", node.Line)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
