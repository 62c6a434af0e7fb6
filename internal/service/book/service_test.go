package book

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/internal/model"
	repo_mocks "github.com/campuslib/library-service/internal/repository/mocks"
)

func newTestService(t *testing.T, now time.Time) (*Service, *repo_mocks.MockBookRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	books := repo_mocks.NewMockBookRepository(ctrl)
	s := NewService(books, nil, zap.NewNop())
	s.now = func() time.Time { return now }
	return s, books
}

func TestService_AddBook(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	ctx := context.Background()

	s, books := newTestService(t, now)
	books.EXPECT().CreateBook(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, b model.Book) (model.Book, error) {
			require.Regexp(t, regexp.MustCompile(`^TS20260314093000\d{3}$`), b.CollectionNumber)
			require.Equal(t, model.BookAvailable, b.Status)
			return b, nil
		})

	created, err := s.AddBook(ctx, model.BookAddRequest{
		ISBN:      "978-0134190440",
		Title:     "The Go Programming Language",
		Author:    "Alan Donovan",
		Publisher: "Addison-Wesley",
		Location:  "A-3-12",
	})
	require.NoError(t, err)
	require.Equal(t, "The Go Programming Language", created.Title)
}

func TestService_GetBook(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("ok with history", func(t *testing.T) {
		t.Parallel()
		s, books := newTestService(t, now)
		books.EXPECT().GetBookByCollectionNumber(ctx, "TS1").Return(model.Book{
			CollectionNumber: "TS1",
			Title:            "A",
			Status:           model.BookBorrowed,
		}, nil)
		books.EXPECT().GetStatusHistory(ctx, "TS1").Return([]model.BookStatusHistory{
			{CollectionNumber: "TS1", Status: model.BookBorrowed, Operator: "admin001"},
			{CollectionNumber: "TS1", Status: model.BookAvailable, Operator: "admin001"},
		}, nil)

		detail, err := s.GetBook(ctx, "TS1")
		require.NoError(t, err)
		require.Equal(t, model.BookBorrowed, detail.Status)
		require.Len(t, detail.StatusHistory, 2)
	})

	t.Run("unknown collection number", func(t *testing.T) {
		t.Parallel()
		s, books := newTestService(t, now)
		books.EXPECT().GetBookByCollectionNumber(ctx, "TS404").Return(model.Book{}, errs.ErrNotFound)

		_, err := s.GetBook(ctx, "TS404")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	ctx := context.Background()

	s, books := newTestService(t, now)
	books.EXPECT().UpdateStatus(ctx, "TS1", model.BookLost, "admin001").Return(model.Book{
		CollectionNumber: "TS1",
		Status:           model.BookLost,
	}, nil)

	updated, err := s.UpdateStatus(ctx, "TS1", model.BookLost, "admin001")
	require.NoError(t, err)
	require.Equal(t, model.BookLost, updated.Status)
}

func TestService_PageBooks_Defaults(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	ctx := context.Background()

	s, books := newTestService(t, now)
	books.EXPECT().PageBooks(ctx, "", "go", 1, 10).Return(model.BookPage{Page: 1, Size: 10}, nil)

	page, err := s.PageBooks(ctx, "", "go", -1, 0)
	require.NoError(t, err)
	require.Equal(t, 1, page.Page)
}
