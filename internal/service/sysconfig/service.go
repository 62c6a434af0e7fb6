package sysconfig

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/internal/model"
	"github.com/campuslib/library-service/internal/repository"
)

const (
	minBorrowDays = 30
	maxBorrowDays = 365
	minBorrowMax  = 1
	maxBorrowMax  = 20
)

type Service struct {
	log     *zap.Logger
	configs repository.ConfigRepository
}

func NewService(configs repository.ConfigRepository, log *zap.Logger) *Service {
	return &Service{
		log:     log,
		configs: configs,
	}
}

// GetConfig reads all keys, applying the 90/60/5 defaults for any that is
// missing or unparseable.
func (s *Service) GetConfig(ctx context.Context) (model.SystemConfigView, error) {
	teacher, err := s.intValue(ctx, model.ConfigKeyTeacherBorrowDays, model.DefaultTeacherBorrowDays)
	if err != nil {
		return model.SystemConfigView{}, err
	}
	student, err := s.intValue(ctx, model.ConfigKeyStudentBorrowDays, model.DefaultStudentBorrowDays)
	if err != nil {
		return model.SystemConfigView{}, err
	}
	maxCount, err := s.intValue(ctx, model.ConfigKeyMaxBorrowCount, model.DefaultMaxBorrowCount)
	if err != nil {
		return model.SystemConfigView{}, err
	}

	return model.SystemConfigView{
		TeacherBorrowDays: teacher,
		StudentBorrowDays: student,
		MaxBorrowCount:    maxCount,
	}, nil
}

func (s *Service) UpdateConfig(ctx context.Context, req model.SystemConfigUpdateRequest) (model.SystemConfigView, error) {
	if req.TeacherBorrowDays < minBorrowDays || req.TeacherBorrowDays > maxBorrowDays {
		return model.SystemConfigView{}, errors.Wrap(errs.ErrConfigRange,
			fmt.Sprintf("teacher borrow days must be between %d and %d", minBorrowDays, maxBorrowDays))
	}
	if req.StudentBorrowDays < minBorrowDays || req.StudentBorrowDays > maxBorrowDays {
		return model.SystemConfigView{}, errors.Wrap(errs.ErrConfigRange,
			fmt.Sprintf("student borrow days must be between %d and %d", minBorrowDays, maxBorrowDays))
	}
	if req.MaxBorrowCount < minBorrowMax || req.MaxBorrowCount > maxBorrowMax {
		return model.SystemConfigView{}, errors.Wrap(errs.ErrConfigRange,
			fmt.Sprintf("max borrow count must be between %d and %d", minBorrowMax, maxBorrowMax))
	}

	return s.write(ctx, req.TeacherBorrowDays, req.StudentBorrowDays, req.MaxBorrowCount)
}

func (s *Service) ResetConfig(ctx context.Context) (model.SystemConfigView, error) {
	return s.write(ctx, model.DefaultTeacherBorrowDays, model.DefaultStudentBorrowDays, model.DefaultMaxBorrowCount)
}

func (s *Service) write(ctx context.Context, teacher, student, maxCount int) (model.SystemConfigView, error) {
	for key, value := range map[string]int{
		model.ConfigKeyTeacherBorrowDays: teacher,
		model.ConfigKeyStudentBorrowDays: student,
		model.ConfigKeyMaxBorrowCount:    maxCount,
	} {
		if err := s.configs.SetValue(ctx, key, strconv.Itoa(value)); err != nil {
			return model.SystemConfigView{}, err
		}
	}
	return model.SystemConfigView{
		TeacherBorrowDays: teacher,
		StudentBorrowDays: student,
		MaxBorrowCount:    maxCount,
	}, nil
}

func (s *Service) intValue(ctx context.Context, key string, fallback int) (int, error) {
	value, err := s.configs.GetValue(ctx, key)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return fallback, nil
		}
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback, nil
	}
	return n, nil
}
