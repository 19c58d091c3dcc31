package actionx

import (
	"fmt"
	"net/http"

	"github.com/Abraxas-365/wsapix/errx"
)

var (
	actionErrors = errx.NewRegistry("ACTION")

	ErrUnknownResource  = actionErrors.Register("UNKNOWN_RESOURCE", errx.TypeBadRequest, http.StatusBadRequest, "Unknown resource")
	ErrUnknownOperation = actionErrors.Register("UNKNOWN_OPERATION", errx.TypeBadRequest, http.StatusBadRequest, "Unknown operation")
	ErrDuplicate        = actionErrors.Register("DUPLICATE_OPERATION", errx.TypeInternal, http.StatusInternalServerError, "Operation already registered")
	ErrNotBuildable     = actionErrors.Register("NOT_BUILDABLE", errx.TypeBadRequest, http.StatusBadRequest, "Operation has no plain request")
)

func unknownResource(resource string) *errx.Error {
	return actionErrors.NewWithMessage(ErrUnknownResource, fmt.Sprintf("The resource %q is not known!", resource)).
		WithDetail("resource", resource)
}

func unknownOperation(resource, operation string) *errx.Error {
	return actionErrors.NewWithMessage(ErrUnknownOperation, fmt.Sprintf("The operation %q is not implemented yet!", operation)).
		WithDetail("resource", resource).
		WithDetail("operation", operation)
}
