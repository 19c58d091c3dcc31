package appx

import (
	"time"

	"github.com/Abraxas-365/wsapix/configx"
	"github.com/Abraxas-365/wsapix/triggerx"
	"github.com/Abraxas-365/wsapix/validatex"
)

// EnvPrefix prefixes every environment variable: WSAPIX_GATEWAY_APIKEY
const EnvPrefix = "WSAPIX_"

// Settings is the whole configuration. Configuration keys are matched
// case-insensitively, so the yaml names here are lowercase.
type Settings struct {
	Gateway GatewaySettings `yaml:"gateway" json:"gateway"`
	Cache   CacheSettings   `yaml:"cache" json:"cache"`
	Server  ServerSettings  `yaml:"server" json:"server"`
	Trigger TriggerSettings `yaml:"trigger" json:"trigger"`
	Log     LogSettings     `yaml:"log" json:"log"`
}

type GatewaySettings struct {
	BaseURL    string        `yaml:"baseurl" json:"baseUrl" validate:"required,url"`
	APIKey     string        `yaml:"apikey" json:"apiKey" validate:"required"`
	InstanceID string        `yaml:"instanceid" json:"instanceId" validate:"required"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" validate:"gte=0"`
}

type CacheSettings struct {
	Driver     string `yaml:"driver" json:"driver" validate:"oneof=memory redis"`
	RedisURL   string `yaml:"redisurl" json:"redisUrl" validate:"required_if=Driver redis"`
	KeyPrefix  string `yaml:"keyprefix" json:"keyPrefix"`
	DefaultTTL int    `yaml:"defaultttl" json:"defaultTtl" validate:"gte=1"`
}

type ServerSettings struct {
	Addr        string `yaml:"addr" json:"addr" validate:"required"`
	WebhookPath string `yaml:"webhookpath" json:"webhookPath" validate:"required,startswith=/"`
}

type AuthSettings struct {
	Enabled     bool   `yaml:"enabled" json:"enabled"`
	HeaderName  string `yaml:"headername" json:"headerName"`
	HeaderValue string `yaml:"headervalue" json:"headerValue" validate:"required_if=Enabled true"`
}

type TriggerSettings struct {
	Operation         string       `yaml:"operation" json:"operation" validate:"oneof=all call chat contact message session user"`
	Events            configx.List `yaml:"events" json:"events"`
	AutoDownloadMedia bool         `yaml:"autodownloadmedia" json:"autoDownloadMedia"`
	ParseEventData    bool         `yaml:"parseeventdata" json:"parseEventData"`
	IncludeRawEvent   bool         `yaml:"includerawevent" json:"includeRawEvent"`
	Auth              AuthSettings `yaml:"auth" json:"auth"`
}

type LogSettings struct {
	Level  string `yaml:"level" json:"level" validate:"oneof=trace debug info warn warning error fatal off"`
	Format string `yaml:"format" json:"format" validate:"oneof=console json cloudwatch"`
}

// Options converts the trigger section
func (t TriggerSettings) Options() triggerx.Options {
	return triggerx.Options{
		Operation:         t.Operation,
		Events:            []string(t.Events),
		AutoDownloadMedia: t.AutoDownloadMedia,
		ParseEventData:    t.ParseEventData,
		IncludeRawEvent:   t.IncludeRawEvent,
		Auth: triggerx.Auth{
			Enabled:     t.Auth.Enabled,
			HeaderName:  t.Auth.HeaderName,
			HeaderValue: t.Auth.HeaderValue,
		},
	}
}

// Validate checks that the subscribed events belong to the trigger group
func (s *Settings) Validate() error {
	opts := s.Trigger.Options()
	if len(opts.Events) == 0 {
		return nil
	}
	return opts.Validate()
}

func defaults() map[string]any {
	return map[string]any{
		"gateway": map[string]any{
			"baseurl": "https://api.wsapi.chat",
			"timeout": "30s",
		},
		"cache": map[string]any{
			"driver":     "memory",
			"keyprefix":  "wsapix:",
			"defaultttl": 300,
		},
		"server": map[string]any{
			"addr":        ":8080",
			"webhookpath": "/webhook/wsapi",
		},
		"trigger": map[string]any{
			"operation":      triggerx.GroupMessage,
			"parseeventdata": true,
			"auth":           map[string]any{"headername": triggerx.DefaultAuthHeader},
		},
		"log": map[string]any{
			"level":  "info",
			"format": "console",
		},
	}
}

// LoadOptions name the optional files. Empty paths are skipped.
type LoadOptions struct {
	ConfigFile string
	EnvFile    string
}

// Load merges defaults, the YAML file, the .env file and WSAPIX_ variables,
// in increasing priority, then decodes and validates the result
func Load(opts LoadOptions) (*Settings, error) {
	cfg, err := configx.NewBuilder().
		WithDefaults(defaults()).
		FromFile(opts.ConfigFile).
		FromDotEnv(opts.EnvFile, EnvPrefix).
		FromEnv(EnvPrefix).
		Build()
	if err != nil {
		return nil, err
	}

	var s Settings
	if err := cfg.Decode(&s); err != nil {
		return nil, err
	}
	if err := validatex.Struct(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
