package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/campuslib/library-service/internal/model"
)

func (h *Handler) AddBook(c echo.Context) error {
	var req model.BookAddRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.bookSvc.AddBook(c.Request().Context(), req)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, "book created", book)
}

func (h *Handler) GetBook(c echo.Context) error {
	collectionNumber := c.Param("collectionNumber")
	if collectionNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty collectionNumber")
	}

	detail, err := h.bookSvc.GetBook(c.Request().Context(), collectionNumber)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, "ok", detail)
}

func (h *Handler) UpdateBookStatus(c echo.Context) error {
	collectionNumber := c.Param("collectionNumber")
	if collectionNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty collectionNumber")
	}
	var req model.BookStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.bookSvc.UpdateStatus(c.Request().Context(), collectionNumber, req.Status, req.Operator)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, "status updated", book)
}

func (h *Handler) PageBooks(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	resp, err := h.bookSvc.PageBooks(c.Request().Context(), c.QueryParam("isbn"), c.QueryParam("title"), page, size)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, "ok", resp)
}
