package http

import (
	"errors"

	"personal-assistant/internal/intent"
	pkgErrors "personal-assistant/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, intent.ErrEntityExtraction):
		return pkgErrors.NewHTTPError(500, "failed to analyse input")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
