package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/campuslib/library-service/internal/model"
	"github.com/campuslib/library-service/pkg/auth"
)

func (h *Handler) AddUser(c echo.Context) error {
	if !auth.IsAdmin(c.Request().Context()) {
		return echo.NewHTTPError(http.StatusForbidden, "admin only")
	}

	var req model.UserAddRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.userSvc.AddUser(c.Request().Context(), req)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, "user created", resp)
}

func (h *Handler) ResetPassword(c echo.Context) error {
	var req model.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.userSvc.ResetPassword(c.Request().Context(), req.AccountNumber, req.CardNumber)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, "password reset", resp)
}

func (h *Handler) PageUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	resp, err := h.userSvc.PageUsers(c.Request().Context(), page, size)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, "ok", resp)
}
