package sysconfig

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/internal/model"
	repo_mocks "github.com/campuslib/library-service/internal/repository/mocks"
)

func newTestService(t *testing.T) (*Service, *repo_mocks.MockConfigRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	configs := repo_mocks.NewMockConfigRepository(ctrl)
	return NewService(configs, zap.NewNop()), configs
}

func TestService_GetConfig(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("stored values", func(t *testing.T) {
		t.Parallel()
		s, configs := newTestService(t)
		configs.EXPECT().GetValue(ctx, model.ConfigKeyTeacherBorrowDays).Return("120", nil)
		configs.EXPECT().GetValue(ctx, model.ConfigKeyStudentBorrowDays).Return("45", nil)
		configs.EXPECT().GetValue(ctx, model.ConfigKeyMaxBorrowCount).Return("8", nil)

		view, err := s.GetConfig(ctx)
		require.NoError(t, err)
		require.Equal(t, model.SystemConfigView{
			TeacherBorrowDays: 120,
			StudentBorrowDays: 45,
			MaxBorrowCount:    8,
		}, view)
	})

	t.Run("missing and garbled keys fall back to defaults", func(t *testing.T) {
		t.Parallel()
		s, configs := newTestService(t)
		configs.EXPECT().GetValue(ctx, model.ConfigKeyTeacherBorrowDays).Return("", errs.ErrNotFound)
		configs.EXPECT().GetValue(ctx, model.ConfigKeyStudentBorrowDays).Return("sixty", nil)
		configs.EXPECT().GetValue(ctx, model.ConfigKeyMaxBorrowCount).Return("", errs.ErrNotFound)

		view, err := s.GetConfig(ctx)
		require.NoError(t, err)
		require.Equal(t, model.SystemConfigView{
			TeacherBorrowDays: model.DefaultTeacherBorrowDays,
			StudentBorrowDays: model.DefaultStudentBorrowDays,
			MaxBorrowCount:    model.DefaultMaxBorrowCount,
		}, view)
	})
}

func TestService_UpdateConfig(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	valid := model.SystemConfigUpdateRequest{
		TeacherBorrowDays: 90,
		StudentBorrowDays: 60,
		MaxBorrowCount:    5,
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		s, configs := newTestService(t)
		configs.EXPECT().SetValue(ctx, model.ConfigKeyTeacherBorrowDays, "90").Return(nil)
		configs.EXPECT().SetValue(ctx, model.ConfigKeyStudentBorrowDays, "60").Return(nil)
		configs.EXPECT().SetValue(ctx, model.ConfigKeyMaxBorrowCount, "5").Return(nil)

		view, err := s.UpdateConfig(ctx, valid)
		require.NoError(t, err)
		require.Equal(t, model.SystemConfigView{
			TeacherBorrowDays: 90,
			StudentBorrowDays: 60,
			MaxBorrowCount:    5,
		}, view)
	})

	rangeTests := []struct {
		name   string
		mutate func(*model.SystemConfigUpdateRequest)
	}{
		{"teacher days below 30", func(r *model.SystemConfigUpdateRequest) { r.TeacherBorrowDays = 20 }},
		{"teacher days above 365", func(r *model.SystemConfigUpdateRequest) { r.TeacherBorrowDays = 400 }},
		{"student days below 30", func(r *model.SystemConfigUpdateRequest) { r.StudentBorrowDays = 29 }},
		{"student days above 365", func(r *model.SystemConfigUpdateRequest) { r.StudentBorrowDays = 366 }},
		{"max count below 1", func(r *model.SystemConfigUpdateRequest) { r.MaxBorrowCount = 0 }},
		{"max count above 20", func(r *model.SystemConfigUpdateRequest) { r.MaxBorrowCount = 21 }},
	}
	for _, tt := range rangeTests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, _ := newTestService(t)
			req := valid
			tt.mutate(&req)

			_, err := s.UpdateConfig(ctx, req)
			require.ErrorIs(t, err, errs.ErrConfigRange)
		})
	}
}

func TestService_ResetConfig(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, configs := newTestService(t)
	configs.EXPECT().SetValue(ctx, model.ConfigKeyTeacherBorrowDays, "90").Return(nil)
	configs.EXPECT().SetValue(ctx, model.ConfigKeyStudentBorrowDays, "60").Return(nil)
	configs.EXPECT().SetValue(ctx, model.ConfigKeyMaxBorrowCount, "5").Return(nil)

	view, err := s.ResetConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, model.SystemConfigView{
		TeacherBorrowDays: model.DefaultTeacherBorrowDays,
		StudentBorrowDays: model.DefaultStudentBorrowDays,
		MaxBorrowCount:    model.DefaultMaxBorrowCount,
	}, view)
}
