package actionx

import (
	"net/http"

	"github.com/Abraxas-365/wsapix/clients/wsapi"
	"github.com/Abraxas-365/wsapix/flowx"
)

func accountOperations() []Operation {
	return []Operation{
		{
			Name:      "getInfo",
			Summary:   "Get account information",
			Method:    http.MethodGet,
			Path:      "/account/info",
			Params:    cacheParams,
			Cacheable: true,
			Build: func(p flowx.Params) (Call, error) {
				return Call{Request: wsapi.Request{Method: http.MethodGet, Path: "/account/info"}}, nil
			},
		},
		{
			Name:    "setName",
			Summary: "Set the account display name",
			Method:  http.MethodPut,
			Path:    "/account/name",
			Params:  []Param{required("name", TypeString, "New display name")},
			Build: func(p flowx.Params) (Call, error) {
				name, err := p.String("name")
				if err != nil {
					return Call{}, err
				}
				return Call{
					Request: wsapi.Request{Method: http.MethodPut, Path: "/account/name", Body: map[string]any{"name": name}},
					Echo:    ok("name", name),
				}, nil
			},
		},
		{
			Name:    "setPicture",
			Summary: "Set the account picture",
			Method:  http.MethodPost,
			Path:    "/account/picture",
			Params:  []Param{required("pictureBase64", TypeString, "Base64 encoded image")},
			Build: func(p flowx.Params) (Call, error) {
				picture, err := p.String("pictureBase64")
				if err != nil {
					return Call{}, err
				}
				return Call{Request: wsapi.Request{Method: http.MethodPost, Path: "/account/picture", Body: map[string]any{"pictureBase64": picture}}}, nil
			},
		},
		{
			Name:    "setPresence",
			Summary: "Set the account presence",
			Method:  http.MethodPut,
			Path:    "/account/presence",
			Params:  []Param{enum("status", "", "Presence status", "available", "unavailable")},
			Build: func(p flowx.Params) (Call, error) {
				status, err := oneOf(p, "status", "", "available", "unavailable")
				if err != nil {
					return Call{}, err
				}
				return Call{
					Request: wsapi.Request{Method: http.MethodPut, Path: "/account/presence", Body: map[string]any{"status": status}},
					Echo:    ok("status", status),
				}, nil
			},
		},
		{
			Name:    "setStatus",
			Summary: "Set the account status message",
			Method:  http.MethodPut,
			Path:    "/account/status",
			Params:  []Param{required("statusMessage", TypeString, "Status message")},
			Build: func(p flowx.Params) (Call, error) {
				msg, err := p.String("statusMessage")
				if err != nil {
					return Call{}, err
				}
				return Call{
					Request: wsapi.Request{Method: http.MethodPut, Path: "/account/status", Body: map[string]any{"status": msg}},
					Echo:    ok("statusMessage", msg),
				}, nil
			},
		},
	}
}
