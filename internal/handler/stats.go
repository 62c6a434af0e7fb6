package handler

import (
	"github.com/labstack/echo/v4"
)

func (h *Handler) TopBooks(c echo.Context) error {
	resp, err := h.statsSvc.TopBooks(c.Request().Context(), c.QueryParam("dimension"))
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, "ok", resp)
}

func (h *Handler) BookStatusStatistics(c echo.Context) error {
	resp, err := h.statsSvc.BookStatusStatistics(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, "ok", resp)
}

func (h *Handler) Dashboard(c echo.Context) error {
	resp, err := h.statsSvc.Dashboard(c.Request().Context(), c.QueryParam("dimension"))
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, "ok", resp)
}
