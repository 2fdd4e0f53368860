package http

import (
	"errors"
	"net/http"

	"dealership/internal/pkg/errs"
	"dealership/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrPreconditionFailed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Error{Code: status, Message: message})
}

// badRequest reports input that could not be turned into a command or query.
func badRequest(ctx echo.Context, err error) error {
	return writeError(ctx, http.StatusBadRequest, err.Error())
}

// fail reports an error returned by a use case. Server errors are logged and
// their details hidden from the caller.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.Error(ctx.Request().Context(), "request failed", err)
		return writeError(ctx, status, http.StatusText(status))
	}
	return writeError(ctx, status, err.Error())
}

// ErrorHandler renders errors that escape handlers, such as unknown routes,
// in the same JSON shape as use case errors.
func ErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := http.StatusText(status)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		} else {
			log.Error(ctx.Request().Context(), "unhandled error", err)
		}

		if ctx.Request().Method == http.MethodHead {
			_ = ctx.NoContent(status)
			return
		}
		_ = writeError(ctx, status, message)
	}
}
