package http

import (
	"context"
	"errors"
	"net/http"

	"personal-assistant/internal/assistant"
	pkgErrors "personal-assistant/pkg/errors"
	"personal-assistant/pkg/llmprovider"
)

var errLLMRateLimited = pkgErrors.NewHTTPError(http.StatusTooManyRequests, "language model is rate limited, retry later")

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, llmprovider.ErrProviderRateLimited):
		return errLLMRateLimited
	case errors.Is(err, llmprovider.ErrProviderTimeout),
		errors.Is(err, context.DeadlineExceeded):
		return pkgErrors.ErrGatewayTimeout
	case errors.Is(err, assistant.ErrGeneration):
		return pkgErrors.ErrBadGateway
	default:
		return pkgErrors.ErrInternalServerError
	}
}
