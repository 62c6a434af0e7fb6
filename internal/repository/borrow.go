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

type BorrowRepository interface {
	CountOverdue(ctx context.Context, cardNumber string, now time.Time) (int, error)
	CreateBorrow(ctx context.Context, records []model.BorrowRecord) ([]model.BorrowRecord, error)
	GetActiveRecord(ctx context.Context, collectionNumber string) (model.BorrowRecord, error)
	CompleteReturn(ctx context.Context, recordID int, returnDate time.Time, overdueDays int, operator string) (model.BorrowRecord, error)
	RecordsByAccountNumber(ctx context.Context, accountNumber string) ([]model.BorrowRecord, error)
	PageRecords(ctx context.Context, accountNumber, keyword string, page, size int) (model.RecordPage, error)
	TopBooks(ctx context.Context, since time.Time) ([]model.TopBook, error)
}

type borrowRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewBorrowRepository(db *sqlx.DB, log *zap.Logger) (*borrowRepository, error) {
	return &borrowRepository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const recordsTableName = `borrow_records`

const recordColumns = `id, record_id, card_number, user_name, user_identity, account_number,
	collection_number, book_title, book_author, borrow_date, due_date, return_date, overdue_days, status, operator`

func (r *borrowRepository) CountOverdue(ctx context.Context, cardNumber string, now time.Time) (int, error) {
	q, args, err := qb.Select("count(*)").
		From(recordsTableName).
		Where(sq.Eq{"card_number": cardNumber, "status": model.RecordActive}).
		Where(sq.Lt{"due_date": now}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := r.db.GetContext(ctx, &count, q, args...); err != nil {
		return 0, err
	}
	return count, nil
}

// CreateBorrow persists the whole batch in one transaction. Per book the
// record insert happens before the status flip, and the flip is conditional
// on status=AVAILABLE; a zero-row flip aborts the batch, so every book and
// record commit together or not at all.
func (r *borrowRepository) CreateBorrow(ctx context.Context, records []model.BorrowRecord) ([]model.BorrowRecord, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback() //nolint:errcheck

	created := make([]model.BorrowRecord, 0, len(records))
	available := model.BookAvailable
	for _, rec := range records {
		q, args, err := qb.Insert(recordsTableName).
			Columns("record_id", "card_number", "user_name", "user_identity", "account_number",
				"collection_number", "book_title", "book_author", "borrow_date", "due_date", "overdue_days", "status", "operator").
			Values(rec.RecordID, rec.CardNumber, rec.UserName, rec.UserIdentity, rec.AccountNumber,
				rec.CollectionNumber, rec.BookTitle, rec.BookAuthor, rec.BorrowDate, rec.DueDate, 0, model.RecordActive, rec.Operator).
			Suffix("returning " + recordColumns).
			ToSql()
		if err != nil {
			return nil, err
		}
		var inserted model.BorrowRecord
		if err := tx.GetContext(ctx, &inserted, q, args...); err != nil {
			r.log.Error("CreateBorrow", zap.String("q", q), zap.Error(err))
			return nil, err
		}

		if _, err := updateStatusTx(ctx, tx, rec.CollectionNumber, model.BookBorrowed, rec.Operator, &available); err != nil {
			return nil, err
		}
		created = append(created, inserted)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *borrowRepository) GetActiveRecord(ctx context.Context, collectionNumber string) (model.BorrowRecord, error) {
	q, args, err := qb.Select(recordColumns).
		From(recordsTableName).
		Where(sq.Eq{"collection_number": collectionNumber, "status": model.RecordActive}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}

	var rec model.BorrowRecord
	if err := r.db.GetContext(ctx, &rec, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRecord{}, errs.ErrBookNotBorrowed
		}
		return model.BorrowRecord{}, err
	}
	return rec, nil
}

// CompleteReturn closes the record and flips the book back to AVAILABLE in
// one transaction. The record update is conditional on status=BORROWED so a
// racing second return fails instead of rewriting a closed record.
func (r *borrowRepository) CompleteReturn(ctx context.Context, recordID int, returnDate time.Time, overdueDays int, operator string) (model.BorrowRecord, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.BorrowRecord{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q, args, err := qb.Update(recordsTableName).
		Set("return_date", returnDate).
		Set("overdue_days", overdueDays).
		Set("status", model.RecordReturned).
		Where(sq.Eq{"id": recordID, "status": model.RecordActive}).
		Suffix("returning " + recordColumns).
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}

	var rec model.BorrowRecord
	if err := tx.GetContext(ctx, &rec, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRecord{}, errs.ErrBookNotBorrowed
		}
		return model.BorrowRecord{}, err
	}

	if _, err := updateStatusTx(ctx, tx, rec.CollectionNumber, model.BookAvailable, operator, nil); err != nil {
		return model.BorrowRecord{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.BorrowRecord{}, err
	}
	return rec, nil
}

func (r *borrowRepository) RecordsByAccountNumber(ctx context.Context, accountNumber string) ([]model.BorrowRecord, error) {
	q, args, err := qb.Select(recordColumns).
		From(recordsTableName).
		Where(sq.Eq{"account_number": accountNumber}).
		OrderBy("borrow_date desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	records := make([]model.BorrowRecord, 0)
	if err := r.db.SelectContext(ctx, &records, q, args...); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *borrowRepository) PageRecords(ctx context.Context, accountNumber, keyword string, page, size int) (model.RecordPage, error) {
	base := qb.Select(recordColumns).From(recordsTableName)
	countQ := qb.Select("count(*)").From(recordsTableName)

	if accountNumber != "" {
		like := sq.Like{"account_number": "%" + accountNumber + "%"}
		base, countQ = base.Where(like), countQ.Where(like)
	}
	if keyword != "" {
		like := sq.Or{
			sq.Like{"collection_number": "%" + keyword + "%"},
			sq.Like{"book_title": "%" + keyword + "%"},
		}
		base, countQ = base.Where(like), countQ.Where(like)
	}

	q, args, err := base.
		OrderBy("borrow_date desc").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size)).
		ToSql()
	if err != nil {
		return model.RecordPage{}, err
	}

	records := make([]model.BorrowRecord, 0, size)
	if err := r.db.SelectContext(ctx, &records, q, args...); err != nil {
		return model.RecordPage{}, err
	}

	cq, cargs, err := countQ.ToSql()
	if err != nil {
		return model.RecordPage{}, err
	}
	var total int
	if err := r.db.GetContext(ctx, &total, cq, cargs...); err != nil {
		return model.RecordPage{}, err
	}

	return model.RecordPage{Total: total, Page: page, Size: size, List: records}, nil
}

func (r *borrowRepository) TopBooks(ctx context.Context, since time.Time) ([]model.TopBook, error) {
	q, args, err := qb.Select("collection_number", "book_title", "book_author as author", "count(*) as borrow_count").
		From(recordsTableName).
		Where(sq.GtOrEq{"borrow_date": since}).
		GroupBy("collection_number", "book_title", "book_author").
		OrderBy("borrow_count desc").
		Limit(5).
		ToSql()
	if err != nil {
		return nil, err
	}

	top := make([]model.TopBook, 0, 5)
	if err := r.db.SelectContext(ctx, &top, q, args...); err != nil {
		return nil, err
	}
	return top, nil
}
