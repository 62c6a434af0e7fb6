package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campuslib/library-service/internal/model"
	"github.com/campuslib/library-service/pkg/auth"
)

func (h *Handler) GetConfig(c echo.Context) error {
	resp, err := h.configSvc.GetConfig(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, "ok", resp)
}

func (h *Handler) UpdateConfig(c echo.Context) error {
	if !auth.IsAdmin(c.Request().Context()) {
		return echo.NewHTTPError(http.StatusForbidden, "admin only")
	}

	var req model.SystemConfigUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.configSvc.UpdateConfig(c.Request().Context(), req)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, "config updated", resp)
}

func (h *Handler) ResetConfig(c echo.Context) error {
	if !auth.IsAdmin(c.Request().Context()) {
		return echo.NewHTTPError(http.StatusForbidden, "admin only")
	}

	resp, err := h.configSvc.ResetConfig(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, "config reset", resp)
}
