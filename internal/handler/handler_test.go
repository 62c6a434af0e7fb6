package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/internal/handler"
	"github.com/campuslib/library-service/internal/model"
	pkgauth "github.com/campuslib/library-service/pkg/auth"
	"github.com/campuslib/library-service/pkg/validate"

	service_mocks "github.com/campuslib/library-service/internal/handler/mocks"
)

type serviceMocks struct {
	auth   *service_mocks.MockAuthService
	user   *service_mocks.MockUserService
	book   *service_mocks.MockBookService
	borrow *service_mocks.MockBorrowService
	stats  *service_mocks.MockStatsService
	config *service_mocks.MockConfigService
}

func newTestHandler(t *testing.T) (*handler.Handler, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := serviceMocks{
		auth:   service_mocks.NewMockAuthService(ctrl),
		user:   service_mocks.NewMockUserService(ctrl),
		book:   service_mocks.NewMockBookService(ctrl),
		borrow: service_mocks.NewMockBorrowService(ctrl),
		stats:  service_mocks.NewMockStatsService(ctrl),
		config: service_mocks.NewMockConfigService(ctrl),
	}
	log := zap.NewExample().Named("test")
	h := handler.New(m.auth, m.user, m.book, m.borrow, m.stats, m.config, log)
	return h, m
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockAuthService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"accountNumber":"admin001","password":"min001"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				resp := model.LoginResponse{Token: "tok123"}
				resp.UserInfo.Account = "admin001"
				resp.UserInfo.Name = "Administrator"
				resp.UserInfo.Role = "admin"
				r.EXPECT().
					Login(context.Background(), "admin001", "min001").
					Return(resp, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"code":200,"message":"login success","data":{"token":"tok123","userInfo":{"account":"admin001","name":"Administrator","role":"admin"}}}`,
			},
		},
		{
			name: "err. wrong password",
			body: `{"accountNumber":"admin001","password":"nope"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Login(context.Background(), "admin001", "nope").
					Return(model.LoginResponse{}, errs.ErrBadCredentials)
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"code":401,"message":"wrong password"}`,
			},
		},
		{
			name: "err. account locked",
			body: `{"accountNumber":"admin001","password":"min001"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Login(context.Background(), "admin001", "min001").
					Return(model.LoginResponse{}, errs.Policy("account locked, 20 minutes remaining"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"code":400,"message":"account locked, 20 minutes remaining"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/auth/login", h.Login)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(m.auth)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ValidateBorrow(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBorrowService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"cardNumber":"CARD-001","collectionNumbers":["TS20260101120000001"]}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					ValidateBorrow(context.Background(), "CARD-001", []string{"TS20260101120000001"}).
					Return(model.BorrowValidation{
						User: model.UserSnapshot{
							AccountNumber: "S2024001",
							Name:          "Alice Chen",
							Identity:      model.IdentityStudent,
							CardNumber:    "CARD-001",
						},
						Books: []model.BookSnapshot{
							{
								CollectionNumber: "TS20260101120000001",
								Title:            "The Go Programming Language",
								Author:           "Alan Donovan",
								Status:           model.BookAvailable,
							},
						},
						DueDate: time.Date(2026, 5, 13, 9, 30, 0, 0, time.UTC),
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"code":200,"message":"validation passed","data":{"user":{"accountNumber":"S2024001","name":"Alice Chen","identity":"student","cardNumber":"CARD-001"},"books":[{"collectionNumber":"TS20260101120000001","title":"The Go Programming Language","author":"Alan Donovan","status":"AVAILABLE"}],"dueDate":"2026-05-13T09:30:00Z"}}`,
			},
		},
		{
			name: "err. unknown card",
			body: `{"cardNumber":"CARD-404","collectionNumbers":["TS1"]}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					ValidateBorrow(context.Background(), "CARD-404", []string{"TS1"}).
					Return(model.BorrowValidation{}, errs.ErrUserNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"code":404,"message":"user not found"}`,
			},
		},
		{
			name: "err. overdue gate",
			body: `{"cardNumber":"CARD-001","collectionNumbers":["TS1"]}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					ValidateBorrow(context.Background(), "CARD-001", []string{"TS1"}).
					Return(model.BorrowValidation{}, errs.Policy("user has 2 overdue books"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"code":400,"message":"user has 2 overdue books"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/borrow/validate", h.ValidateBorrow)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/borrow/validate", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(m.borrow)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_BorrowBooks(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBorrowService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"cardNumber":"CARD-001","collectionNumbers":["TS20260101120000001"],"operator":"admin001"}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					BorrowBooks(context.Background(), model.BorrowRequest{
						CardNumber:        "CARD-001",
						CollectionNumbers: []string{"TS20260101120000001"},
						Operator:          "admin001",
					}).
					Return(model.BorrowResponse{
						Records: []model.BorrowRecord{
							{
								RecordID:         "BR20260314093000",
								CardNumber:       "CARD-001",
								UserName:         "Alice Chen",
								UserIdentity:     model.IdentityStudent,
								AccountNumber:    "S2024001",
								CollectionNumber: "TS20260101120000001",
								BookTitle:        "The Go Programming Language",
								BookAuthor:       "Alan Donovan",
								BorrowDate:       time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
								DueDate:          time.Date(2026, 5, 13, 9, 30, 0, 0, time.UTC),
								Status:           model.RecordActive,
								Operator:         "admin001",
							},
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"code":200,"message":"borrow success","data":{"records":[{"id":"BR20260314093000","cardNumber":"CARD-001","userName":"Alice Chen","userIdentity":"student","accountNumber":"S2024001","collectionNumber":"TS20260101120000001","bookTitle":"The Go Programming Language","bookAuthor":"Alan Donovan","borrowDate":"2026-03-14T09:30:00Z","dueDate":"2026-05-13T09:30:00Z","overdueDays":0,"status":"BORROWED","operator":"admin001"}]}}`,
			},
		},
		{
			name:         "err. operator required",
			body:         `{"cardNumber":"CARD-001","collectionNumbers":["TS1"]}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"operator is required"}`,
			},
		},
		{
			name: "err. copy grabbed concurrently",
			body: `{"cardNumber":"CARD-001","collectionNumbers":["TS1"],"operator":"admin001"}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					BorrowBooks(context.Background(), gomock.Any()).
					Return(model.BorrowResponse{}, errs.Policy("book is not available: TS1"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"code":400,"message":"book is not available: TS1"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/borrow", h.BorrowBooks)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/borrow", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(m.borrow)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ReturnBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBorrowService)

	returnDate := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	overdueRecord := model.BorrowRecord{
		RecordID:         "BR20260110090000",
		CardNumber:       "CARD-001",
		UserName:         "Alice Chen",
		UserIdentity:     model.IdentityStudent,
		AccountNumber:    "S2024001",
		CollectionNumber: "TS20260101120000001",
		BookTitle:        "The Go Programming Language",
		BookAuthor:       "Alan Donovan",
		BorrowDate:       time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
		DueDate:          time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC),
		ReturnDate:       &returnDate,
		OverdueDays:      3,
		Status:           model.RecordReturned,
		Operator:         "admin001",
	}

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok overdue",
			body: `{"collectionNumber":"TS20260101120000001","operator":"admin001"}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					ReturnBook(context.Background(), "TS20260101120000001", "admin001").
					Return(model.ReturnResponse{Record: overdueRecord}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"code":200,"message":"book overdue 3 days","data":{"record":{"id":"BR20260110090000","cardNumber":"CARD-001","userName":"Alice Chen","userIdentity":"student","accountNumber":"S2024001","collectionNumber":"TS20260101120000001","bookTitle":"The Go Programming Language","bookAuthor":"Alan Donovan","borrowDate":"2026-01-10T09:00:00Z","dueDate":"2026-03-11T09:00:00Z","returnDate":"2026-03-14T09:00:00Z","overdueDays":3,"status":"RETURNED","operator":"admin001"}}}`,
			},
		},
		{
			name: "ok on time",
			body: `{"collectionNumber":"TS20260101120000001","operator":"admin001"}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				rec := overdueRecord
				rec.DueDate = time.Date(2026, 4, 11, 9, 0, 0, 0, time.UTC)
				rec.OverdueDays = 0
				r.EXPECT().
					ReturnBook(context.Background(), "TS20260101120000001", "admin001").
					Return(model.ReturnResponse{Record: rec}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"code":200,"message":"return success","data":{"record":{"id":"BR20260110090000","cardNumber":"CARD-001","userName":"Alice Chen","userIdentity":"student","accountNumber":"S2024001","collectionNumber":"TS20260101120000001","bookTitle":"The Go Programming Language","bookAuthor":"Alan Donovan","borrowDate":"2026-01-10T09:00:00Z","dueDate":"2026-04-11T09:00:00Z","returnDate":"2026-03-14T09:00:00Z","overdueDays":0,"status":"RETURNED","operator":"admin001"}}}`,
			},
		},
		{
			name: "err. not borrowed",
			body: `{"collectionNumber":"TS404","operator":"admin001"}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					ReturnBook(context.Background(), "TS404", "admin001").
					Return(model.ReturnResponse{}, errs.ErrBookNotBorrowed)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"code":400,"message":"book not borrowed"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/borrow/return", h.ReturnBook)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/borrow/return", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(m.borrow)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_UpdateConfig(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockConfigService)

	asAdmin := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := pkgauth.SetAuthContext(c.Request().Context(), "admin001", pkgauth.RoleAdmin)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}

	var tests = []struct {
		name         string
		body         string
		admin        bool
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "ok",
			body:  `{"teacherBorrowDays":120,"studentBorrowDays":45,"maxBorrowCount":8}`,
			admin: true,
			mockBehavior: func(r *service_mocks.MockConfigService) {
				r.EXPECT().
					UpdateConfig(gomock.Any(), model.SystemConfigUpdateRequest{
						TeacherBorrowDays: 120,
						StudentBorrowDays: 45,
						MaxBorrowCount:    8,
					}).
					Return(model.SystemConfigView{
						TeacherBorrowDays: 120,
						StudentBorrowDays: 45,
						MaxBorrowCount:    8,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"code":200,"message":"config updated","data":{"teacherBorrowDays":120,"studentBorrowDays":45,"maxBorrowCount":8}}`,
			},
		},
		{
			name:  "err. out of range",
			body:  `{"teacherBorrowDays":20,"studentBorrowDays":60,"maxBorrowCount":5}`,
			admin: true,
			mockBehavior: func(r *service_mocks.MockConfigService) {
				r.EXPECT().
					UpdateConfig(gomock.Any(), gomock.Any()).
					Return(model.SystemConfigView{}, errors.Wrap(errs.ErrConfigRange, "teacher borrow days must be between 30 and 365"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"code":400,"message":"teacher borrow days must be between 30 and 365: config value out of range"}`,
			},
		},
		{
			name:         "err. admin only",
			body:         `{"teacherBorrowDays":120,"studentBorrowDays":45,"maxBorrowCount":8}`,
			admin:        false,
			mockBehavior: func(r *service_mocks.MockConfigService) {},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"admin only"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, m := newTestHandler(t)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			if tt.admin {
				e.PUT("/api/v1/config", h.UpdateConfig, asAdmin)
			} else {
				e.PUT("/api/v1/config", h.UpdateConfig)
			}

			r := httptest.NewRequest(http.MethodPut, "/api/v1/config", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(m.config)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
