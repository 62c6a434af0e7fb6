package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/internal/model"
	"github.com/campuslib/library-service/internal/repository"
	pkgauth "github.com/campuslib/library-service/pkg/auth"
)

const (
	maxLoginFailures = 3
	lockWindow       = 30 * time.Minute
	tokenTTL         = 24 * time.Hour
)

type Service struct {
	log   *zap.Logger
	users repository.UserRepository
	now   func() time.Time
}

func NewService(users repository.UserRepository, log *zap.Logger) *Service {
	return &Service{
		log:   log,
		users: users,
		now:   time.Now,
	}
}

// Login drives the account lock state machine: three consecutive failures
// lock the account for 30 minutes, a later attempt auto-unlocks it, and any
// successful match resets the failure counter.
func (s *Service) Login(ctx context.Context, accountNumber, password string) (model.LoginResponse, error) {
	user, err := s.users.GetUserByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.LoginResponse{}, errs.ErrUserNotFound
		}
		return model.LoginResponse{}, err
	}

	now := s.now()
	if user.Status == model.UserLocked {
		if user.LockTime != nil {
			elapsed := now.Sub(*user.LockTime)
			if elapsed < lockWindow {
				remaining := int(lockWindow.Minutes()) - int(elapsed.Minutes())
				return model.LoginResponse{}, errs.Policy(fmt.Sprintf("account locked, %d minutes remaining", remaining))
			}
		}
		// Window elapsed (or lock timestamp lost): unlock and proceed.
		user.Status = model.UserNormal
		user.LoginFailCount = 0
		user.LockTime = nil
		if err := s.users.UpdateLoginState(ctx, accountNumber, 0, model.UserNormal, nil); err != nil {
			return model.LoginResponse{}, err
		}
	}

	if HashPassword(password) != user.Password {
		failCount := user.LoginFailCount + 1
		if failCount >= maxLoginFailures {
			lockTime := now
			if err := s.users.UpdateLoginState(ctx, accountNumber, failCount, model.UserLocked, &lockTime); err != nil {
				return model.LoginResponse{}, err
			}
			return model.LoginResponse{}, errs.ErrAccountLocked
		}
		if err := s.users.UpdateLoginState(ctx, accountNumber, failCount, user.Status, user.LockTime); err != nil {
			return model.LoginResponse{}, err
		}
		return model.LoginResponse{}, errs.ErrBadCredentials
	}

	if err := s.users.UpdateLoginState(ctx, accountNumber, 0, model.UserNormal, nil); err != nil {
		return model.LoginResponse{}, err
	}

	token, err := s.issueToken(user, now)
	if err != nil {
		return model.LoginResponse{}, err
	}

	resp := model.LoginResponse{Token: token}
	resp.UserInfo.Account = user.AccountNumber
	resp.UserInfo.Name = user.Name
	resp.UserInfo.Role = user.Role
	return resp, nil
}

func (s *Service) issueToken(user model.User, now time.Time) (string, error) {
	claims := &pkgauth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	claims.Profile.Account = user.AccountNumber
	claims.Profile.Name = user.Name
	claims.Profile.Role = user.Role

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(pkgauth.JWTKey)
}

// HashPassword must stay symmetric between the set and compare paths; the
// stored initial password reproduces this digest on reset.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
