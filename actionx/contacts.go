package actionx

import (
	"net/http"

	"github.com/Abraxas-365/wsapix/clients/wsapi"
	"github.com/Abraxas-365/wsapix/flowx"
)

func contactsOperations() []Operation {
	return []Operation{
		{
			Name:      "getAll",
			Summary:   "List contacts",
			Method:    http.MethodGet,
			Path:      "/contacts",
			Params:    cacheParams,
			Cacheable: true,
			Build: func(p flowx.Params) (Call, error) {
				return Call{Request: wsapi.Request{Method: http.MethodGet, Path: "/contacts"}}, nil
			},
		},
		{
			Name:      "get",
			Summary:   "Get a contact",
			Method:    http.MethodGet,
			Path:      "/contacts/{contactId}",
			Params:    append([]Param{required("contactId", TypeString, "Contact identifier")}, cacheParams...),
			Cacheable: true,
			CacheKey:  "contactId",
			Build: func(p flowx.Params) (Call, error) {
				contactID, err := id(p, "contactId")
				if err != nil {
					return Call{}, err
				}
				return Call{Request: wsapi.Request{Method: http.MethodGet, Path: "/contacts/" + contactID}}, nil
			},
		},
		{
			Name:    "create",
			Summary: "Create a contact",
			Method:  http.MethodPost,
			Path:    "/contacts",
			Params: []Param{
				required("newContactId", TypeString, "Identifier of the new contact"),
				required("fullName", TypeString, "Full name"),
				required("firstName", TypeString, "First name"),
			},
			Build: func(p flowx.Params) (Call, error) {
				contactID, err := p.String("newContactId")
				if err != nil {
					return Call{}, err
				}
				body, err := contactNames(p)
				if err != nil {
					return Call{}, err
				}
				body["id"] = contactID
				return Call{
					Request: wsapi.Request{Method: http.MethodPost, Path: "/contacts", Body: body},
					Echo:    ok("contactId", contactID, "message", "Contact created successfully"),
				}, nil
			},
		},
		{
			Name:    "update",
			Summary: "Update a contact",
			Method:  http.MethodPut,
			Path:    "/contacts/{contactId}",
			Params: []Param{
				required("contactId", TypeString, "Contact identifier"),
				required("fullName", TypeString, "Full name"),
				required("firstName", TypeString, "First name"),
			},
			Build: func(p flowx.Params) (Call, error) {
				contactID, err := id(p, "contactId")
				if err != nil {
					return Call{}, err
				}
				body, err := contactNames(p)
				if err != nil {
					return Call{}, err
				}
				return Call{
					Request: wsapi.Request{Method: http.MethodPut, Path: "/contacts/" + contactID, Body: body},
					Echo:    ok("contactId", p.StringOr("contactId", ""), "message", "Contact updated successfully"),
				}, nil
			},
		},
	}
}

func contactNames(p flowx.Params) (map[string]any, error) {
	fullName, err := p.String("fullName")
	if err != nil {
		return nil, err
	}
	firstName, err := p.String("firstName")
	if err != nil {
		return nil, err
	}
	return map[string]any{"fullName": fullName, "firstName": firstName}, nil
}
