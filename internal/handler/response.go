package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campuslib/library-service/internal/errs"
)

// Result is the uniform response envelope: {code, message, data}.
type Result struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, Result{Code: http.StatusOK, Message: message, Data: data})
}

// respondErr maps domain errors onto the envelope: absent entities to 404,
// broken business rules to 400, credential failures to 401, the rest to 500.
func respondErr(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrNotFound),
		errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrBookNotFound):
		code = http.StatusNotFound
	case errs.IsPolicy(err),
		errors.Is(err, errs.ErrBookUnavailable),
		errors.Is(err, errs.ErrBookNotBorrowed),
		errors.Is(err, errs.ErrAccountExists),
		errors.Is(err, errs.ErrCardExists),
		errors.Is(err, errs.ErrConfigRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrBadCredentials),
		errors.Is(err, errs.ErrAccountLocked):
		code = http.StatusUnauthorized
	}
	return c.JSON(code, Result{Code: code, Message: err.Error()})
}
