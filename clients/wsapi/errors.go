package wsapi

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/Abraxas-365/wsapix/errx"
)

var (
	Registry = errx.NewRegistry("WSAPI")

	ErrUnauthorized        = Registry.Register("UNAUTHORIZED", errx.TypeExternal, http.StatusUnauthorized, "Gateway rejected the credentials")
	ErrNotFound            = Registry.Register("NOT_FOUND", errx.TypeExternal, http.StatusNotFound, "Gateway resource not found")
	ErrRateLimited         = Registry.Register("RATE_LIMITED", errx.TypeExternal, http.StatusTooManyRequests, "Gateway rate limit exceeded")
	ErrTimeout             = Registry.Register("TIMEOUT", errx.TypeExternal, http.StatusGatewayTimeout, "Gateway request timed out")
	ErrUnavailable         = Registry.Register("UNAVAILABLE", errx.TypeExternal, http.StatusServiceUnavailable, "Gateway unavailable")
	ErrRemote              = Registry.Register("REMOTE_ERROR", errx.TypeExternal, http.StatusBadGateway, "Gateway request failed")
	ErrMediaDownloadFailed = Registry.Register("MEDIA_DOWNLOAD_FAILED", errx.TypeExternal, http.StatusBadGateway, "Failed to download media")
	ErrInvalidRequest      = Registry.Register("INVALID_REQUEST", errx.TypeInternal, http.StatusInternalServerError, "Request could not be built")
)

var remoteCodes = map[errx.Code]bool{
	ErrUnauthorized: true,
	ErrNotFound:     true,
	ErrRateLimited:  true,
	ErrTimeout:      true,
	ErrUnavailable:  true,
	ErrRemote:       true,
}

// IsRemoteError reports whether err is a gateway response or transport failure
func IsRemoteError(err error) bool {
	e, ok := errx.As(err)
	return ok && remoteCodes[e.Code]
}

// StatusCode returns the gateway status carried by a remote error, or 0
func StatusCode(err error) int {
	e, ok := errx.As(err)
	if !ok {
		return 0
	}
	if sc, ok := e.Details["statusCode"].(int); ok {
		return sc
	}
	return 0
}

func codeForStatus(status int) errx.Code {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return ErrTimeout
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return ErrUnavailable
	default:
		return ErrRemote
	}
}

// remoteError builds the error for a non-2xx response. The message is the
// gateway's message or error field when the body is JSON, else the raw body.
func remoteError(status int, method, path string, body []byte, headers http.Header) *errx.Error {
	message := strings.TrimSpace(string(body))
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		switch {
		case payload.Message != "":
			message = payload.Message
		case payload.Error != "":
			message = payload.Error
		}
	}
	if message == "" {
		message = http.StatusText(status)
	}

	err := Registry.NewWithMessage(codeForStatus(status), message).
		WithDetail("statusCode", status).
		WithDetail("method", method).
		WithDetail("path", path).
		WithDetail("response", string(body))
	err.HTTPStatus = status
	if retryAfter := headers.Get("Retry-After"); retryAfter != "" {
		err.WithDetail("retryAfter", retryAfter)
	}
	return err
}

func transportError(method, path string, cause error) *errx.Error {
	code := ErrRemote
	var netErr net.Error
	if errors.Is(cause, context.DeadlineExceeded) || (errors.As(cause, &netErr) && netErr.Timeout()) {
		code = ErrTimeout
	}
	return Registry.NewWithCause(code, cause).
		WithDetail("statusCode", 0).
		WithDetail("method", method).
		WithDetail("path", path)
}
