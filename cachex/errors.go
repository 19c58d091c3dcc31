package cachex

import (
	"net/http"

	"github.com/Abraxas-365/wsapix/errx"
)

var (
	cacheErrors = errx.NewRegistry("CACHE")

	ErrStoreFailed   = cacheErrors.Register("STORE_FAILED", errx.TypeSystem, http.StatusInternalServerError, "Cache store operation failed")
	ErrEncodeFailed  = cacheErrors.Register("ENCODE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Value could not be encoded for caching")
	ErrInvalidTTL    = cacheErrors.Register("INVALID_TTL", errx.TypeValidation, http.StatusBadRequest, "Cache TTL must be positive")
	ErrUnknownDriver = cacheErrors.Register("UNKNOWN_DRIVER", errx.TypeValidation, http.StatusBadRequest, "Unknown cache driver")
	ErrConnectFailed = cacheErrors.Register("CONNECT_FAILED", errx.TypeUnavailable, http.StatusServiceUnavailable, "Could not connect to cache store")
)
