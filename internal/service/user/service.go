package user

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/internal/model"
	"github.com/campuslib/library-service/internal/repository"
	"github.com/campuslib/library-service/internal/service/auth"
	pkgauth "github.com/campuslib/library-service/pkg/auth"
)

type Service struct {
	log   *zap.Logger
	users repository.UserRepository
}

func NewService(users repository.UserRepository, log *zap.Logger) *Service {
	return &Service{
		log:   log,
		users: users,
	}
}

// AddUser enrolls a user. The initial password is derived from the account
// number (last six characters, or the whole thing when shorter) and kept in
// plaintext so a reset can reproduce the same credential.
func (s *Service) AddUser(ctx context.Context, req model.UserAddRequest) (model.UserAddResponse, error) {
	initialPassword := initialPassword(req.AccountNumber)

	user := model.User{
		AccountNumber:   req.AccountNumber,
		Name:            req.Name,
		Identity:        req.Identity,
		CardNumber:      req.CardNumber,
		Password:        auth.HashPassword(initialPassword),
		InitialPassword: initialPassword,
		Role:            pkgauth.RoleUser,
		Status:          model.UserNormal,
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return model.UserAddResponse{}, err
	}

	return model.UserAddResponse{
		AccountNumber:   created.AccountNumber,
		Name:            created.Name,
		Identity:        created.Identity,
		CardNumber:      created.CardNumber,
		InitialPassword: created.InitialPassword,
		Role:            created.Role,
		Status:          created.Status,
		CreateTime:      created.CreateTime,
	}, nil
}

func (s *Service) ResetPassword(ctx context.Context, accountNumber, cardNumber string) (model.ResetPasswordResponse, error) {
	user, err := s.users.GetUserByAccountAndCard(ctx, accountNumber, cardNumber)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.ResetPasswordResponse{}, errs.ErrUserNotFound
		}
		return model.ResetPasswordResponse{}, err
	}

	if err := s.users.UpdatePassword(ctx, accountNumber, auth.HashPassword(user.InitialPassword)); err != nil {
		return model.ResetPasswordResponse{}, err
	}

	return model.ResetPasswordResponse{
		UserName:        user.Name,
		UserIdentity:    user.Identity,
		InitialPassword: user.InitialPassword,
	}, nil
}

func (s *Service) PageUsers(ctx context.Context, page, size int) (model.UserPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	return s.users.PageUsers(ctx, page, size)
}

func initialPassword(accountNumber string) string {
	if len(accountNumber) >= 6 {
		return accountNumber[len(accountNumber)-6:]
	}
	return accountNumber
}
