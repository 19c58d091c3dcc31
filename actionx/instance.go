package actionx

import (
	"net/http"
	"sort"
	"strings"

	"github.com/Abraxas-365/wsapix/clients/wsapi"
	"github.com/Abraxas-365/wsapix/flowx"
)

// settingKinds lists the keys updateSettings accepts
var settingKinds = map[string]string{
	"description":       TypeString,
	"name":              TypeString,
	"pullMode":          TypeBoolean,
	"webhookUrl":        TypeString,
	"webhookAuthHeader": TypeString,
	"webhookAuthValue":  TypeString,
	"eventFilters":      TypeList,
}

func instanceOperations() []Operation {
	return []Operation{
		{
			Name:      "getSettings",
			Summary:   "Get instance settings",
			Method:    http.MethodGet,
			Path:      "/instance/settings",
			Params:    cacheParams,
			Cacheable: true,
			Build: func(p flowx.Params) (Call, error) {
				return Call{Request: wsapi.Request{Method: http.MethodGet, Path: "/instance/settings"}}, nil
			},
		},
		{
			Name:    "updateSettings",
			Summary: "Update instance settings",
			Method:  http.MethodPut,
			Path:    "/instance/settings",
			Params: []Param{required("settings", TypeObject,
				"Any of description, name, pullMode, webhookUrl, webhookAuthHeader, webhookAuthValue, eventFilters")},
			Build: func(p flowx.Params) (Call, error) {
				body, err := instanceSettings(p)
				if err != nil {
					return Call{}, err
				}
				return Call{Request: wsapi.Request{Method: http.MethodPut, Path: "/instance/settings", Body: body}}, nil
			},
		},
		{
			Name:    "updateApiKey",
			Summary: "Rotate the instance API key",
			Method:  http.MethodPut,
			Path:    "/instance/apikey",
			Build: func(p flowx.Params) (Call, error) {
				return Call{Request: wsapi.Request{Method: http.MethodPut, Path: "/instance/apikey"}}, nil
			},
		},
		{
			Name:    "restart",
			Summary: "Restart the instance",
			Method:  http.MethodPut,
			Path:    "/instance/restart",
			Build: func(p flowx.Params) (Call, error) {
				return Call{
					Request: wsapi.Request{Method: http.MethodPut, Path: "/instance/restart"},
					Echo:    ok("message", "Instance restarted successfully"),
				}, nil
			},
		},
	}
}

// instanceSettings validates the settings object. An empty eventFilters
// list is sent as null, which clears the filter.
func instanceSettings(p flowx.Params) (map[string]any, error) {
	raw, err := p.Object("settings")
	if err != nil {
		return nil, err
	}
	settings := flowx.MapParams(raw)

	var unknown []string
	body := make(map[string]any, len(raw))
	for key := range raw {
		kind, known := settingKinds[key]
		if !known {
			unknown = append(unknown, key)
			continue
		}
		switch kind {
		case TypeBoolean:
			v, err := settings.Bool(key)
			if err != nil {
				return nil, flowx.InvalidParameter("settings."+key, "expected a boolean")
			}
			body[key] = v
		case TypeList:
			filters, err := settings.StringList(key)
			if err != nil {
				return nil, flowx.InvalidParameter("settings."+key, "expected a list")
			}
			if len(filters) == 0 {
				body[key] = nil
			} else {
				body[key] = filters
			}
		default:
			body[key] = settings.StringOr(key, "")
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, flowx.InvalidParameter("settings", "unknown keys: "+strings.Join(unknown, ", "))
	}
	return body, nil
}
