package actionx

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/Abraxas-365/wsapix/clients/wsapi"
	"github.com/Abraxas-365/wsapix/flowx"
)

//go:generate mockgen -source=operation.go -destination=mocks/gateway_mock.go -package=mocks

// Gateway is the part of the WSAPI client the router needs
type Gateway interface {
	Do(ctx context.Context, r wsapi.Request) (json.RawMessage, error)
	Download(ctx context.Context, path string, query url.Values) (*wsapi.Download, error)
	DownloadMedia(ctx context.Context, mediaID string) (*flowx.Binary, error)
	InstanceID() string
	BaseURL() string
}

// Param types as shown in the catalog
const (
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeNumber  = "number"
	TypeObject  = "object"
	TypeList    = "list"
)

// Param documents one operation parameter
type Param struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Description string   `json:"description,omitempty"`
	Default     any      `json:"default,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// Call is a built request. When Echo is set the output is
// {"success": true, ...Echo} instead of the response body.
type Call struct {
	Request wsapi.Request
	Echo    map[string]any
}

// Operation maps one resource/operation pair to a gateway call
type Operation struct {
	Name    string
	Summary string
	Method  string
	Path    string
	Params  []Param

	// Cacheable operations honor cacheResults/cacheTtl. CacheKey names the
	// parameter identifying the subject; empty for collection reads.
	Cacheable bool
	CacheKey  string

	Build func(p flowx.Params) (Call, error)

	// Run replaces Build for operations returning binary data
	Run func(ctx context.Context, gw Gateway, p flowx.Params) ([]flowx.Record, error)
}

func required(name, typ, desc string) Param {
	return Param{Name: name, Type: typ, Required: true, Description: desc}
}

func optional(name, typ, desc string, def any) Param {
	return Param{Name: name, Type: typ, Description: desc, Default: def}
}

func enum(name string, def string, desc string, options ...string) Param {
	return Param{Name: name, Type: TypeString, Required: def == "", Description: desc, Default: def, Options: options}
}

var cacheParams = []Param{
	optional(paramCacheResults, TypeBoolean, "Cache the result for repeated requests", false),
	optional(paramCacheTTL, TypeNumber, "Cache time-to-live in seconds", DefaultCacheTTLSeconds),
}

func ok(fields ...any) map[string]any {
	out := make(map[string]any, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		out[fields[i].(string)] = fields[i+1]
	}
	return out
}
