package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campuslib/library-service/internal/model"
)

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.authSvc.Login(c.Request().Context(), req.AccountNumber, req.Password)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, "login success", resp)
}
