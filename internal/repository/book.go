package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/internal/model"
)

type BookRepository interface {
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBookByCollectionNumber(ctx context.Context, collectionNumber string) (model.Book, error)
	GetStatusHistory(ctx context.Context, collectionNumber string) ([]model.BookStatusHistory, error)
	UpdateStatus(ctx context.Context, collectionNumber string, status model.BookStatus, operator string) (model.Book, error)
	PageBooks(ctx context.Context, isbn, title string, page, size int) (model.BookPage, error)
	StatusStatistics(ctx context.Context) ([]model.BookStatusCount, error)
}

type bookRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewBookRepository(db *sqlx.DB, log *zap.Logger) (*bookRepository, error) {
	return &bookRepository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName   = `books`
	historyTableName = `book_status_history`
)

const bookColumns = `id, collection_number, isbn, title, author, publisher, location, status, create_time, update_time`

func (r *bookRepository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	now := time.Now().UTC()
	q, args, err := qb.Insert(booksTableName).
		Columns("collection_number", "isbn", "title", "author", "publisher", "location", "status", "create_time", "update_time").
		Values(book.CollectionNumber, book.ISBN, book.Title, book.Author, book.Publisher, book.Location, book.Status, now, now).
		Suffix("returning " + bookColumns).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var created model.Book
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Error(err))
		return model.Book{}, err
	}
	return created, nil
}

func (r *bookRepository) GetBookByCollectionNumber(ctx context.Context, collectionNumber string) (model.Book, error) {
	q, args, err := qb.Select(bookColumns).
		From(booksTableName).
		Where(sq.Eq{"collection_number": collectionNumber, "deleted": false}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *bookRepository) GetStatusHistory(ctx context.Context, collectionNumber string) ([]model.BookStatusHistory, error) {
	q, args, err := qb.Select("id", "collection_number", "status", "operator", "operate_time").
		From(historyTableName).
		Where(sq.Eq{"collection_number": collectionNumber}).
		OrderBy("operate_time desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	history := make([]model.BookStatusHistory, 0)
	if err := r.db.SelectContext(ctx, &history, q, args...); err != nil {
		return nil, err
	}
	return history, nil
}

// UpdateStatus overwrites the status unconditionally and appends a history
// row. Transition legality is the caller's responsibility; administrative
// changes (LOST/DAMAGED/MAINTENANCE) ride this path directly.
func (r *bookRepository) UpdateStatus(ctx context.Context, collectionNumber string, status model.BookStatus, operator string) (model.Book, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Book{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	book, err := updateStatusTx(ctx, tx, collectionNumber, status, operator, nil)
	if err != nil {
		return model.Book{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// updateStatusTx flips a book status inside tx and appends the history row.
// When prev is non-nil the update is conditional on the current status, and
// errs.ErrBookUnavailable is returned if no row matched: this is the guard
// that keeps two concurrent borrows of one copy from both committing.
func updateStatusTx(ctx context.Context, tx *sqlx.Tx, collectionNumber string, status model.BookStatus, operator string, prev *model.BookStatus) (model.Book, error) {
	now := time.Now().UTC()
	upd := qb.Update(booksTableName).
		Set("status", status).
		Set("update_time", now).
		Where(sq.Eq{"collection_number": collectionNumber, "deleted": false}).
		Suffix("returning " + bookColumns)
	if prev != nil {
		upd = upd.Where(sq.Eq{"status": *prev})
	}
	q, args, err := upd.ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := tx.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if prev == nil {
				return model.Book{}, errs.ErrNotFound
			}
			return model.Book{}, errors.Wrap(errs.ErrBookUnavailable, collectionNumber)
		}
		return model.Book{}, err
	}

	hq, hargs, err := qb.Insert(historyTableName).
		Columns("collection_number", "status", "operator", "operate_time").
		Values(collectionNumber, status, operator, now).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	if _, err := tx.ExecContext(ctx, hq, hargs...); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (r *bookRepository) PageBooks(ctx context.Context, isbn, title string, page, size int) (model.BookPage, error) {
	base := qb.Select(bookColumns).From(booksTableName).Where(sq.Eq{"deleted": false})
	countQ := qb.Select("count(*)").From(booksTableName).Where(sq.Eq{"deleted": false})

	if isbn != "" {
		like := sq.Like{"isbn": "%" + isbn + "%"}
		base, countQ = base.Where(like), countQ.Where(like)
	}
	if title != "" {
		like := sq.Like{"title": "%" + title + "%"}
		base, countQ = base.Where(like), countQ.Where(like)
	}

	q, args, err := base.
		OrderBy("create_time desc").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size)).
		ToSql()
	if err != nil {
		return model.BookPage{}, err
	}

	books := make([]model.Book, 0, size)
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return model.BookPage{}, err
	}

	cq, cargs, err := countQ.ToSql()
	if err != nil {
		return model.BookPage{}, err
	}
	var total int
	if err := r.db.GetContext(ctx, &total, cq, cargs...); err != nil {
		return model.BookPage{}, err
	}

	return model.BookPage{Total: total, Page: page, Size: size, List: books}, nil
}

func (r *bookRepository) StatusStatistics(ctx context.Context) ([]model.BookStatusCount, error) {
	q, args, err := qb.Select("status", "count(*) as count").
		From(booksTableName).
		Where(sq.Eq{"deleted": false}).
		GroupBy("status").
		OrderBy("count desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	stats := make([]model.BookStatusCount, 0)
	if err := r.db.SelectContext(ctx, &stats, q, args...); err != nil {
		return nil, err
	}
	return stats, nil
}
