package configx

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Abraxas-365/wsapix/errx"
)

var (
	configErrors = errx.NewRegistry("CONFIG")

	ErrSourceFailed  = configErrors.Register("SOURCE_FAILED", errx.TypeSystem, http.StatusInternalServerError, "Failed to load configuration source")
	ErrDecodeFailed  = configErrors.Register("DECODE_FAILED", errx.TypeValidation, http.StatusBadRequest, "Failed to decode configuration")
	ErrInvalidConfig = configErrors.Register("INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid configuration")
)

// Config is a merged, read-only view over all configuration sources.
// Keys are case-insensitive and nested with dots: "gateway.apiKey".
type Config interface {
	// Get retrieves a configuration value by key
	Get(key string) Value

	// Has checks if a configuration key exists
	Has(key string) bool

	// AllSettings returns a copy of the merged tree
	AllSettings() map[string]any

	// Decode fills target from the whole tree
	Decode(target any) error
}

// Source represents a configuration source
type Source interface {
	// Load loads configuration values from the source
	Load() (map[string]any, error)

	// Name returns the name of the source
	Name() string

	// Priority returns the priority of the source (higher values override lower)
	Priority() int
}

// Builder provides a fluent API for building configuration
type Builder interface {
	FromFile(path string) Builder
	FromDotEnv(path, prefix string) Builder
	FromEnv(prefix string) Builder
	FromMap(values map[string]any, name string) Builder
	WithDefaults(defaults map[string]any) Builder
	WithValidation(validator func(config Config) error) Builder
	Build() (Config, error)
}

const (
	PriorityDefaults = 0
	PriorityFile     = 10
	PriorityMap      = 15
	PriorityDotEnv   = 20
	PriorityEnv      = 30
)

type configuration struct {
	values map[string]any
}

// New merges the sources in priority order
func New(sources ...Source) (Config, error) {
	ordered := make([]Source, len(sources))
	copy(ordered, sources)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority() < ordered[j].Priority()
	})

	cfg := &configuration{values: make(map[string]any)}
	for _, src := range ordered {
		data, err := src.Load()
		if err != nil {
			return nil, configErrors.NewWithCause(ErrSourceFailed, err).WithDetail("source", src.Name())
		}
		mergeMap(cfg.values, normalizeKeys(data))
	}
	return cfg, nil
}

func (c *configuration) Get(key string) Value {
	return &value{key: key, raw: c.find(key)}
}

func (c *configuration) Has(key string) bool {
	return c.find(key) != nil
}

func (c *configuration) AllSettings() map[string]any {
	return deepCopy(c.values)
}

func (c *configuration) Decode(target any) error {
	node := toNode(c.values)
	if err := node.Decode(target); err != nil {
		return configErrors.NewWithCause(ErrDecodeFailed, err)
	}
	return nil
}

func (c *configuration) find(key string) any {
	var current any = c.values
	for _, part := range strings.Split(strings.ToLower(key), ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = m[part]
		if !ok {
			return nil
		}
	}
	return current
}

// mergeMap merges nested maps and replaces any other value
func mergeMap(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeMap(dstMap, srcMap)
			continue
		}
		dst[k] = v
	}
}

func normalizeKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case map[string]any:
			out[strings.ToLower(k)] = normalizeKeys(val)
		case map[any]any:
			converted := make(map[string]any, len(val))
			for ik, iv := range val {
				converted[fmt.Sprint(ik)] = iv
			}
			out[strings.ToLower(k)] = normalizeKeys(converted)
		default:
			out[strings.ToLower(k)] = v
		}
	}
	return out
}

func deepCopy(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case map[string]any:
			out[k] = deepCopy(val)
		case []any:
			cp := make([]any, len(val))
			copy(cp, val)
			out[k] = cp
		default:
			out[k] = v
		}
	}
	return out
}

// toNode turns the merged tree into untagged YAML nodes, so the yaml decoder
// resolves scalars against the target field types: "8080" from an env var
// decodes into an int field and "30s" into a time.Duration.
func toNode(v any) *yaml.Node {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range keys {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: k},
				toNode(val[k]),
			)
		}
		return node
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range val {
			node.Content = append(node.Content, toNode(item))
		}
		return node
	case []string:
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range val {
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: item})
		}
		return node
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: ""}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: scalarString(val)}
	}
}

func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Duration:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

//-----------------------------------------------------------------------------
// Builder
//-----------------------------------------------------------------------------

type builder struct {
	sources    []Source
	validators []func(Config) error
}

// NewBuilder creates a new configuration builder
func NewBuilder() Builder {
	return &builder{}
}

// FromFile adds a YAML file. An empty path is ignored.
func (b *builder) FromFile(path string) Builder {
	if path != "" {
		b.sources = append(b.sources, NewFileSource(path, PriorityFile))
	}
	return b
}

// FromDotEnv adds a .env file. An empty path is ignored and a missing file
// contributes nothing.
func (b *builder) FromDotEnv(path, prefix string) Builder {
	if path != "" {
		b.sources = append(b.sources, NewDotEnvSource(path, prefix, PriorityDotEnv))
	}
	return b
}

func (b *builder) FromEnv(prefix string) Builder {
	b.sources = append(b.sources, NewEnvSource(prefix, PriorityEnv))
	return b
}

func (b *builder) FromMap(values map[string]any, name string) Builder {
	b.sources = append(b.sources, NewMapSource(values, name, PriorityMap))
	return b
}

func (b *builder) WithDefaults(defaults map[string]any) Builder {
	b.sources = append(b.sources, NewMapSource(defaults, "defaults", PriorityDefaults))
	return b
}

func (b *builder) WithValidation(validator func(config Config) error) Builder {
	b.validators = append(b.validators, validator)
	return b
}

// Build builds the configuration
func (b *builder) Build() (Config, error) {
	cfg, err := New(b.sources...)
	if err != nil {
		return nil, err
	}
	for _, validate := range b.validators {
		if err := validate(cfg); err != nil {
			return nil, configErrors.NewWithCause(ErrInvalidConfig, err)
		}
	}
	return cfg, nil
}
