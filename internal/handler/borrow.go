package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/campuslib/library-service/internal/model"
)

func (h *Handler) ValidateBorrow(c echo.Context) error {
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.borrowSvc.ValidateBorrow(c.Request().Context(), req.CardNumber, req.CollectionNumbers)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, "validation passed", resp)
}

func (h *Handler) BorrowBooks(c echo.Context) error {
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Operator == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "operator is required")
	}

	resp, err := h.borrowSvc.BorrowBooks(c.Request().Context(), req)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, "borrow success", resp)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	var req model.ReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.borrowSvc.ReturnBook(c.Request().Context(), req.CollectionNumber, req.Operator)
	if err != nil {
		return respondErr(c, err)
	}

	message := "return success"
	if resp.Record.OverdueDays > 0 {
		message = fmt.Sprintf("book overdue %d days", resp.Record.OverdueDays)
	}
	return respond(c, message, resp)
}

func (h *Handler) MyRecords(c echo.Context) error {
	accountNumber := c.QueryParam("accountNumber")
	if accountNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty accountNumber")
	}

	resp, err := h.borrowSvc.MyRecords(c.Request().Context(), accountNumber)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, "ok", resp)
}

func (h *Handler) PageRecords(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	resp, err := h.borrowSvc.PageRecords(c.Request().Context(),
		c.QueryParam("accountNumber"), c.QueryParam("keyword"), page, size)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, "ok", resp)
}
