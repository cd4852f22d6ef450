package http

import (
	"errors"
	"net/http"

	"github.com/spantra1997/SecondServe/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the wire shape of every error the API returns.
// Code is a stable machine-readable identifier; Message is for humans.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps a domain or application error onto an HTTP status and
// a stable error code. Unrecognized errors become opaque 500 responses so
// internals never leak to clients.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errUnauthenticated):
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    "unauthenticated",
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrPermissionDenied):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    "permission_denied",
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    "invalid_transition",
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrStatusConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    "conflict",
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "validation_error",
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    "internal_error",
			Message: "internal server error",
		})
	}
}
