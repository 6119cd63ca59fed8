package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"sales/internal/core/domain/model/order"
	"sales/internal/generated/servers"
	"sales/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps error categories to HTTP status codes. Lifecycle violations are
// checked first because they also carry a validation category.
func statusOf(err error) int {
	switch {
	case errors.Is(err, order.ErrInvalidStateTransition), errors.Is(err, order.ErrInvalidOrderState):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"route", c.Path(),
			"error", err,
		)
		message = http.StatusText(status)
	}
	return c.JSON(status, servers.Error{Code: status, Message: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// errorHandler renders errors that never reached a Server method, such as
// routing misses, contract violations and malformed path parameters, in the
// same body as handler errors.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := http.StatusText(status)
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		} else {
			logger.ErrorContext(c.Request().Context(), "unhandled error", "route", c.Path(), "error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, servers.Error{Code: status, Message: message})
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", err)
		}
	}
}

// contractViolation is the request validator's error hook.
func contractViolation(c echo.Context, err *echo.HTTPError) error {
	return c.JSON(err.Code, servers.Error{Code: err.Code, Message: fmt.Sprint(err.Message)})
}
