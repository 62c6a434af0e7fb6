package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	md "github.com/campuslib/library-service/pkg/middleware"
	"github.com/campuslib/library-service/pkg/validate"
)

type Handler struct {
	authSvc   AuthService
	userSvc   UserService
	bookSvc   BookService
	borrowSvc BorrowService
	statsSvc  StatsService
	configSvc ConfigService
	log       *zap.Logger
}

func New(
	authSvc AuthService,
	userSvc UserService,
	bookSvc BookService,
	borrowSvc BorrowService,
	statsSvc StatsService,
	configSvc ConfigService,
	log *zap.Logger,
) *Handler {
	return &Handler{
		authSvc:   authSvc,
		userSvc:   userSvc,
		bookSvc:   bookSvc,
		borrowSvc: borrowSvc,
		statsSvc:  statsSvc,
		configSvc: configSvc,
		log:       log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/auth/login", h.Login)

	protected := api.Group("", md.JwtAuthentication)

	protected.POST("/users", h.AddUser)
	protected.GET("/users", h.PageUsers)
	protected.POST("/users/reset-password", h.ResetPassword)

	protected.POST("/books", h.AddBook)
	protected.GET("/books", h.PageBooks)
	protected.GET("/books/:collectionNumber", h.GetBook)
	protected.PUT("/books/:collectionNumber/status", h.UpdateBookStatus)

	protected.POST("/borrow/validate", h.ValidateBorrow)
	protected.POST("/borrow", h.BorrowBooks)
	protected.POST("/borrow/return", h.ReturnBook)
	protected.GET("/borrow/my-records", h.MyRecords)
	protected.GET("/borrow/all-records", h.PageRecords)

	protected.GET("/statistics/top-books", h.TopBooks)
	protected.GET("/statistics/book-status", h.BookStatusStatistics)
	protected.GET("/statistics/dashboard", h.Dashboard)

	protected.GET("/config", h.GetConfig)
	protected.PUT("/config", h.UpdateConfig)
	protected.POST("/config/reset", h.ResetConfig)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
