package actionx

import (
	"net/url"
	"strings"

	"github.com/Abraxas-365/wsapix/flowx"
	"github.com/Abraxas-365/wsapix/validatex"
)

const (
	paramCacheResults = "cacheResults"
	paramCacheTTL     = "cacheTtl"
	paramCacheTTLAlt  = "cacheTtlSeconds"

	DefaultCacheTTLSeconds = 300
)

// escape percent-encodes an identifier for use as one path segment.
// url.PathEscape keeps '@', which chat ids are full of, so query escaping
// is used with spaces as %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// id reads a required identifier and returns it escaped
func id(p flowx.Params, name string) (string, error) {
	v, err := p.String(name)
	if err != nil {
		return "", err
	}
	return escape(v), nil
}

// oneOf reads an enum parameter. An empty def makes it required.
func oneOf(p flowx.Params, name, def string, options ...string) (string, error) {
	var v string
	if def == "" {
		s, err := p.String(name)
		if err != nil {
			return "", err
		}
		v = s
	} else {
		v = p.StringOr(name, def)
		if v == "" {
			v = def
		}
	}
	if err := validatex.Var(name, v, "oneof="+strings.Join(options, " ")); err != nil {
		return "", flowx.InvalidParameter(name, "must be one of "+strings.Join(options, ", "))
	}
	return v, nil
}

// phoneList reads participants given as a list, a comma separated string
// or an object with a phoneNumbers field
func phoneList(p flowx.Params, name string) ([]string, error) {
	if obj, isObj := p.Raw(name).(map[string]any); isObj {
		return flowx.MapParams(obj).StringList("phoneNumbers")
	}
	list, err := p.StringList(name)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

// cacheTTLSeconds reads cacheTtl, then its older name cacheTtlSeconds
func cacheTTLSeconds(p flowx.Params, def int) int {
	if p.Has(paramCacheTTL) {
		return p.IntOr(paramCacheTTL, def)
	}
	return p.IntOr(paramCacheTTLAlt, def)
}
