package actionx

import (
	"context"
	"net/http"
	"strings"

	"github.com/Abraxas-365/wsapix/clients/wsapi"
	"github.com/Abraxas-365/wsapix/flowx"
)

func sessionOperations() []Operation {
	get := func(name, path, summary string) Operation {
		return Operation{
			Name:    name,
			Summary: summary,
			Method:  http.MethodGet,
			Path:    path,
			Build: func(p flowx.Params) (Call, error) {
				return Call{Request: wsapi.Request{Method: http.MethodGet, Path: path}}, nil
			},
		}
	}

	return []Operation{
		{
			Name:    "getQrImage",
			Summary: "Get the login QR code as a PNG image",
			Method:  http.MethodGet,
			Path:    "/session/login/qr/image",
			Run: func(ctx context.Context, gw Gateway, p flowx.Params) ([]flowx.Record, error) {
				dl, err := gw.Download(ctx, "/session/login/qr/image", nil)
				if err != nil {
					return nil, err
				}
				mimeType := "image/png"
				if ct := dl.Headers.Get("Content-Type"); strings.HasPrefix(ct, "image/") {
					mimeType = ct
				}
				return []flowx.Record{{
					JSON:   map[string]any{"success": true, "message": "QR code image generated successfully"},
					Binary: flowx.NewBinary(dl.Data, "qr.png", mimeType),
				}}, nil
			},
		},
		get("getQrCode", "/session/login/qr/code", "Get the login QR code as a string"),
		{
			Name:    "getLoginCode",
			Summary: "Get a pairing code for phone number login",
			Method:  http.MethodGet,
			Path:    "/session/login/code/{phone}",
			Params:  []Param{required("phone", TypeString, "Phone number with country code")},
			Build: func(p flowx.Params) (Call, error) {
				phone, err := id(p, "phone")
				if err != nil {
					return Call{}, err
				}
				return Call{Request: wsapi.Request{Method: http.MethodGet, Path: "/session/login/code/" + phone}}, nil
			},
		},
		get("getStatus", "/session/status", "Get the session status"),
		{
			Name:    "logout",
			Summary: "Log the instance out",
			Method:  http.MethodPost,
			Path:    "/session/logout",
			Build: func(p flowx.Params) (Call, error) {
				return Call{
					Request: wsapi.Request{Method: http.MethodPost, Path: "/session/logout"},
					Echo:    ok("message", "Logged out successfully"),
				}, nil
			},
		},
	}
}
