package eventx

import (
	"net/http"

	"github.com/Abraxas-365/wsapix/errx"
)

var (
	ErrorRegistry = errx.NewRegistry("EVENT")

	ErrHandlerFailed       = ErrorRegistry.Register("HANDLER_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Event handler failed")
	ErrInvalidEventType    = ErrorRegistry.Register("INVALID_EVENT_TYPE", errx.TypeValidation, http.StatusBadRequest, "Event payload has an unexpected type")
	ErrSerializationFailed = ErrorRegistry.Register("SERIALIZATION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to serialize event")
)
