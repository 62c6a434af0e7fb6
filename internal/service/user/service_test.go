package user

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/internal/model"
	repo_mocks "github.com/campuslib/library-service/internal/repository/mocks"
	"github.com/campuslib/library-service/internal/service/auth"
)

func newTestService(t *testing.T) (*Service, *repo_mocks.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := repo_mocks.NewMockUserRepository(ctrl)
	return NewService(users, zap.NewNop()), users
}

func TestService_AddUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("initial password is the account tail", func(t *testing.T) {
		t.Parallel()
		s, users := newTestService(t)

		want := model.User{
			AccountNumber:   "S2024001",
			Name:            "Alice Chen",
			Identity:        model.IdentityStudent,
			CardNumber:      "CARD-001",
			Password:        auth.HashPassword("024001"),
			InitialPassword: "024001",
			Role:            "user",
			Status:          model.UserNormal,
		}
		users.EXPECT().CreateUser(ctx, want).Return(want, nil)

		resp, err := s.AddUser(ctx, model.UserAddRequest{
			AccountNumber: "S2024001",
			Name:          "Alice Chen",
			Identity:      model.IdentityStudent,
			CardNumber:    "CARD-001",
		})
		require.NoError(t, err)
		require.Equal(t, "024001", resp.InitialPassword)
		require.Equal(t, model.UserNormal, resp.Status)
		require.Equal(t, "user", resp.Role)
	})

	t.Run("short account number used whole", func(t *testing.T) {
		t.Parallel()
		s, users := newTestService(t)
		users.EXPECT().CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u model.User) (model.User, error) {
				require.Equal(t, "T01", u.InitialPassword)
				require.Equal(t, auth.HashPassword("T01"), u.Password)
				return u, nil
			})

		resp, err := s.AddUser(ctx, model.UserAddRequest{
			AccountNumber: "T01",
			Name:          "Prof. Lin",
			Identity:      model.IdentityTeacher,
			CardNumber:    "CARD-100",
		})
		require.NoError(t, err)
		require.Equal(t, "T01", resp.InitialPassword)
	})

	t.Run("duplicate card surfaces conflict", func(t *testing.T) {
		t.Parallel()
		s, users := newTestService(t)
		users.EXPECT().CreateUser(ctx, gomock.Any()).Return(model.User{}, errs.ErrCardExists)

		_, err := s.AddUser(ctx, model.UserAddRequest{
			AccountNumber: "S2024002",
			Name:          "Bob Wu",
			Identity:      model.IdentityStudent,
			CardNumber:    "CARD-001",
		})
		require.ErrorIs(t, err, errs.ErrCardExists)
	})
}

func TestService_ResetPassword(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		s, users := newTestService(t)
		users.EXPECT().GetUserByAccountAndCard(ctx, "S2024001", "CARD-001").Return(model.User{
			AccountNumber:   "S2024001",
			Name:            "Alice Chen",
			Identity:        model.IdentityStudent,
			InitialPassword: "024001",
		}, nil)
		users.EXPECT().UpdatePassword(ctx, "S2024001", auth.HashPassword("024001")).Return(nil)

		resp, err := s.ResetPassword(ctx, "S2024001", "CARD-001")
		require.NoError(t, err)
		require.Equal(t, "Alice Chen", resp.UserName)
		require.Equal(t, "024001", resp.InitialPassword)
	})

	t.Run("account and card must match together", func(t *testing.T) {
		t.Parallel()
		s, users := newTestService(t)
		users.EXPECT().GetUserByAccountAndCard(ctx, "S2024001", "CARD-999").Return(model.User{}, errs.ErrNotFound)

		_, err := s.ResetPassword(ctx, "S2024001", "CARD-999")
		require.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
