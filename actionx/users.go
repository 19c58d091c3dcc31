package actionx

import (
	"net/http"

	"github.com/Abraxas-365/wsapix/clients/wsapi"
	"github.com/Abraxas-365/wsapix/flowx"
)

func usersOperations() []Operation {
	return []Operation{
		{
			Name:      "get",
			Summary:   "Get a WhatsApp user by phone number",
			Method:    http.MethodGet,
			Path:      "/users/{phone}",
			Params:    append([]Param{required("phone", TypeString, "Phone number with country code")}, cacheParams...),
			Cacheable: true,
			CacheKey:  "phone",
			Build: func(p flowx.Params) (Call, error) {
				phone, err := id(p, "phone")
				if err != nil {
					return Call{}, err
				}
				return Call{Request: wsapi.Request{Method: http.MethodGet, Path: "/users/" + phone}}, nil
			},
		},
	}
}
