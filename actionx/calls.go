package actionx

import (
	"net/http"

	"github.com/Abraxas-365/wsapix/clients/wsapi"
	"github.com/Abraxas-365/wsapix/flowx"
)

func callsOperations() []Operation {
	return []Operation{
		{
			Name:    "reject",
			Summary: "Reject an incoming call",
			Method:  http.MethodPut,
			Path:    "/calls/{callId}/reject",
			Params: []Param{
				required("callId", TypeString, "Call identifier"),
				required("callerId", TypeString, "Caller identifier"),
			},
			Build: func(p flowx.Params) (Call, error) {
				callID, err := id(p, "callId")
				if err != nil {
					return Call{}, err
				}
				callerID, err := p.String("callerId")
				if err != nil {
					return Call{}, err
				}
				return Call{
					Request: wsapi.Request{Method: http.MethodPut, Path: "/calls/" + callID + "/reject", Body: map[string]any{"callerId": callerID}},
					Echo:    ok("callId", p.StringOr("callId", ""), "callerId", callerID),
				}, nil
			},
		},
	}
}
