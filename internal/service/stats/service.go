package stats

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/campuslib/library-service/internal/model"
	"github.com/campuslib/library-service/internal/repository"
)

const (
	DimensionWeek  = "week"
	DimensionMonth = "month"
)

type Service struct {
	log     *zap.Logger
	borrows repository.BorrowRepository
	books   repository.BookRepository
	now     func() time.Time
}

func NewService(borrows repository.BorrowRepository, books repository.BookRepository, log *zap.Logger) *Service {
	return &Service{
		log:     log,
		borrows: borrows,
		books:   books,
		now:     time.Now,
	}
}

// TopBooks ranks the five most borrowed copies within the trailing window
// and derives each share of the summed top-5 counts (integer division,
// zero when the total is zero).
func (s *Service) TopBooks(ctx context.Context, dimension string) (model.TopBooks, error) {
	days := 7
	if dimension == DimensionMonth {
		days = 30
	} else {
		dimension = DimensionWeek
	}

	top, err := s.borrows.TopBooks(ctx, s.now().AddDate(0, 0, -days))
	if err != nil {
		return model.TopBooks{}, err
	}

	var total int
	for _, b := range top {
		total += b.BorrowCount
	}
	for i := range top {
		if total > 0 {
			top[i].Percentage = top[i].BorrowCount * 100 / total
		}
	}

	return model.TopBooks{Dimension: dimension, TopBooks: top}, nil
}

func (s *Service) BookStatusStatistics(ctx context.Context) ([]model.BookStatusCount, error) {
	return s.books.StatusStatistics(ctx)
}

type Dashboard struct {
	TopBooks   model.TopBooks          `json:"topBooks"`
	BookStatus []model.BookStatusCount `json:"bookStatus"`
}

// Dashboard fetches both aggregates concurrently.
func (s *Service) Dashboard(ctx context.Context, dimension string) (Dashboard, error) {
	var d Dashboard
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		top, err := s.TopBooks(ctx, dimension)
		d.TopBooks = top
		return err
	})
	g.Go(func() error {
		statuses, err := s.books.StatusStatistics(ctx)
		d.BookStatus = statuses
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}
