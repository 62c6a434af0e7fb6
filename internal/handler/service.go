package handler

import (
	"context"

	"github.com/campuslib/library-service/internal/model"
	authService "github.com/campuslib/library-service/internal/service/auth"
	bookService "github.com/campuslib/library-service/internal/service/book"
	borrowService "github.com/campuslib/library-service/internal/service/borrow"
	statsService "github.com/campuslib/library-service/internal/service/stats"
	sysconfigService "github.com/campuslib/library-service/internal/service/sysconfig"
	userService "github.com/campuslib/library-service/internal/service/user"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=service_mocks

type AuthService interface {
	Login(ctx context.Context, accountNumber, password string) (model.LoginResponse, error)
}

type UserService interface {
	AddUser(ctx context.Context, req model.UserAddRequest) (model.UserAddResponse, error)
	ResetPassword(ctx context.Context, accountNumber, cardNumber string) (model.ResetPasswordResponse, error)
	PageUsers(ctx context.Context, page, size int) (model.UserPage, error)
}

type BookService interface {
	AddBook(ctx context.Context, req model.BookAddRequest) (model.Book, error)
	GetBook(ctx context.Context, collectionNumber string) (model.BookDetail, error)
	UpdateStatus(ctx context.Context, collectionNumber string, status model.BookStatus, operator string) (model.Book, error)
	PageBooks(ctx context.Context, isbn, title string, page, size int) (model.BookPage, error)
}

type BorrowService interface {
	ValidateBorrow(ctx context.Context, cardNumber string, collectionNumbers []string) (model.BorrowValidation, error)
	BorrowBooks(ctx context.Context, req model.BorrowRequest) (model.BorrowResponse, error)
	ReturnBook(ctx context.Context, collectionNumber, operator string) (model.ReturnResponse, error)
	MyRecords(ctx context.Context, accountNumber string) (model.MyRecords, error)
	PageRecords(ctx context.Context, accountNumber, keyword string, page, size int) (model.RecordPage, error)
}

type StatsService interface {
	TopBooks(ctx context.Context, dimension string) (model.TopBooks, error)
	BookStatusStatistics(ctx context.Context) ([]model.BookStatusCount, error)
	Dashboard(ctx context.Context, dimension string) (statsService.Dashboard, error)
}

type ConfigService interface {
	GetConfig(ctx context.Context) (model.SystemConfigView, error)
	UpdateConfig(ctx context.Context, req model.SystemConfigUpdateRequest) (model.SystemConfigView, error)
	ResetConfig(ctx context.Context) (model.SystemConfigView, error)
}

var (
	_ AuthService   = (*authService.Service)(nil)
	_ UserService   = (*userService.Service)(nil)
	_ BookService   = (*bookService.Service)(nil)
	_ BorrowService = (*borrowService.Service)(nil)
	_ StatsService  = (*statsService.Service)(nil)
	_ ConfigService = (*sysconfigService.Service)(nil)
)
