package triggerx

import (
	"net/http"

	"github.com/Abraxas-365/wsapix/errx"
)

var (
	triggerErrors = errx.NewRegistry("TRIGGER")

	ErrUnauthorized   = triggerErrors.Register("UNAUTHORIZED", errx.TypeAuthorization, http.StatusUnauthorized, "Invalid or missing authentication header")
	ErrInvalidPayload = triggerErrors.Register("INVALID_PAYLOAD", errx.TypeBadRequest, http.StatusBadRequest, "Invalid webhook payload. Expected format: { eventType: string, eventData: object }")
	ErrInvalidOptions = triggerErrors.Register("INVALID_OPTIONS", errx.TypeValidation, http.StatusBadRequest, "Invalid trigger options")
)
