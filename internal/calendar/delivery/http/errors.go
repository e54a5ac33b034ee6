package http

import (
	"context"
	"errors"

	"personal-assistant/internal/calendar"
	pkgErrors "personal-assistant/pkg/errors"
)

var errMaxResultsRange = pkgErrors.NewHTTPError(pkgErrors.ErrBadRequest.StatusCode, "max_results must be between 1 and 250")

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrInvalidTime),
		errors.Is(err, calendar.ErrInvalidTimeRange),
		errors.Is(err, calendar.ErrInvalidOffset):
		return pkgErrors.NewHTTPError(pkgErrors.ErrBadRequest.StatusCode, err.Error())
	case errors.Is(err, calendar.ErrInvalidMaxResults):
		return errMaxResultsRange
	case errors.Is(err, context.DeadlineExceeded):
		return pkgErrors.ErrGatewayTimeout
	case errors.Is(err, calendar.ErrCalendarAPI):
		return pkgErrors.ErrBadGateway
	default:
		return pkgErrors.ErrInternalServerError
	}
}
