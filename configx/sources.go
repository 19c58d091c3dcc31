package configx

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// YAML file source
// ===========================

// FileSource loads configuration from a YAML file
type FileSource struct {
	path     string
	priority int
}

// NewFileSource creates a new YAML file source
func NewFileSource(path string, priority int) Source {
	return &FileSource{path: path, priority: priority}
}

// Load reads and parses the file. A missing file is an error: it was asked for.
func (s *FileSource) Load() (map[string]any, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	result := make(map[string]any)
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return result, nil
}

func (s *FileSource) Name() string  { return fmt.Sprintf("file(%s)", s.path) }
func (s *FileSource) Priority() int { return s.priority }

// Environment variables source
// ===========================

// EnvSource loads configuration from environment variables. With prefix
// "WSAPIX_", WSAPIX_GATEWAY_APIKEY becomes gateway.apikey.
type EnvSource struct {
	prefix   string
	priority int
	environ  func() []string
}

// NewEnvSource creates a new environment variable source
func NewEnvSource(prefix string, priority int) Source {
	return &EnvSource{prefix: prefix, priority: priority, environ: os.Environ}
}

// Load loads configuration values from environment variables
func (s *EnvSource) Load() (map[string]any, error) {
	vars := make(map[string]string)
	for _, env := range s.environ() {
		key, val, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		vars[key] = val
	}
	return nestVars(vars, s.prefix), nil
}

func (s *EnvSource) Name() string  { return fmt.Sprintf("env(%s)", s.prefix) }
func (s *EnvSource) Priority() int { return s.priority }

// DotEnv file source
// ===========================

// DotEnvSource loads configuration from a .env file using the same key
// rules as EnvSource
type DotEnvSource struct {
	path     string
	prefix   string
	priority int
}

// NewDotEnvSource creates a new .env file source
func NewDotEnvSource(path, prefix string, priority int) Source {
	return &DotEnvSource{path: path, prefix: prefix, priority: priority}
}

// Load parses the file with godotenv. A missing file yields no values.
func (s *DotEnvSource) Load() (map[string]any, error) {
	vars, err := godotenv.Read(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return nestVars(vars, s.prefix), nil
}

func (s *DotEnvSource) Name() string  { return fmt.Sprintf("dotenv(%s)", s.path) }
func (s *DotEnvSource) Priority() int { return s.priority }

// Map source
// ===========================

// MapSource loads configuration from a map
type MapSource struct {
	values   map[string]any
	name     string
	priority int
}

// NewMapSource creates a new map source
func NewMapSource(values map[string]any, name string, priority int) Source {
	return &MapSource{values: deepCopy(values), name: name, priority: priority}
}

func (s *MapSource) Load() (map[string]any, error) { return deepCopy(s.values), nil }
func (s *MapSource) Name() string                   { return s.name }
func (s *MapSource) Priority() int                  { return s.priority }

// nestVars keeps the variables carrying prefix, strips it, lowercases the
// rest and nests on "_". Values stay strings; decoding converts them.
func nestVars(vars map[string]string, prefix string) map[string]any {
	result := make(map[string]any)
	for key, val := range vars {
		if prefix != "" {
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			key = strings.TrimPrefix(key, prefix)
		}
		if key == "" {
			continue
		}

		parts := strings.Split(strings.ToLower(key), "_")
		current := result
		for _, part := range parts[:len(parts)-1] {
			next, ok := current[part].(map[string]any)
			if !ok {
				next = make(map[string]any)
				current[part] = next
			}
			current = next
		}
		current[parts[len(parts)-1]] = val
	}
	return result
}
