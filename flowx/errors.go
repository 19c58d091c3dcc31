package flowx

import (
	"fmt"
	"net/http"

	"github.com/Abraxas-365/wsapix/errx"
)

var (
	flowErrors = errx.NewRegistry("FLOW")

	ErrMissingParameter = flowErrors.Register("MISSING_PARAMETER", errx.TypeValidation, http.StatusBadRequest, "Required parameter is missing")
	ErrInvalidParameter = flowErrors.Register("INVALID_PARAMETER", errx.TypeValidation, http.StatusBadRequest, "Parameter has an invalid value")
)

// MissingParameter reports a required parameter that was absent or empty
func MissingParameter(name string) *errx.Error {
	return flowErrors.NewWithMessage(ErrMissingParameter, fmt.Sprintf("The parameter %q is required", name)).
		WithDetail("parameter", name)
}

// InvalidParameter reports a parameter whose value cannot be used
func InvalidParameter(name, reason string) *errx.Error {
	return flowErrors.NewWithMessage(ErrInvalidParameter, fmt.Sprintf("The parameter %q is invalid: %s", name, reason)).
		WithDetail("parameter", name)
}
