package http

import (
	"errors"
	"log/slog"
	"net/http"

	"ootdverse/internal/adapters/in/http/servers"
	"ootdverse/internal/core/application/usecases/commands"
	"ootdverse/internal/core/domain/model/listing"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/core/domain/model/shipping"
	"ootdverse/internal/pkg/errs"
	"ootdverse/internal/pkg/session"

	"github.com/labstack/echo/v4"
)

// statusFor maps use case errors to HTTP status codes. The missing tracking
// number check comes first because it is the one validation failure of an
// otherwise available action.
func statusFor(err error) int {
	switch {
	case errors.Is(err, order.ErrMissingTrackingNumber):
		return http.StatusUnprocessableEntity
	case errors.Is(err, session.ErrNoSession):
		return http.StatusUnauthorized
	case errors.Is(err, order.ErrNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrActionNotAvailable),
		errors.Is(err, order.ErrPaymentIsExternal),
		errors.Is(err, order.ErrPaymentNotPending),
		errors.Is(err, order.ErrOrderNotCompleted),
		errors.Is(err, order.ErrAlreadyRated),
		errors.Is(err, listing.ErrListingIsNotAvailable),
		errors.Is(err, commands.ErrCannotShipToAddress),
		errors.Is(err, commands.ErrShippingMethodNotOffered),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, shipping.ErrInvalidShippingParameters),
		errors.Is(err, order.ErrBuyerIsSeller):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Unexpected errors are logged and hidden
// from the client.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorHandler renders errors that escape handlers, such as echo's own 404
// and 405, in the same shape as use case errors.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
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
			logger.Error("unhandled error", "path", ctx.Path(), "error", err)
		}

		if writeErr := ctx.JSON(status, servers.Error{Code: status, Message: message}); writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}
