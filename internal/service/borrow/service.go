package borrow

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/internal/model"
	"github.com/campuslib/library-service/internal/repository"
	"github.com/campuslib/library-service/pkg/kafka"
)

const recordIDLayout = "20060102150405"

type Service struct {
	log      *zap.Logger
	borrows  repository.BorrowRepository
	users    repository.UserRepository
	books    repository.BookRepository
	configs  repository.ConfigRepository
	producer sarama.SyncProducer
	now      func() time.Time
}

func NewService(
	borrows repository.BorrowRepository,
	users repository.UserRepository,
	books repository.BookRepository,
	configs repository.ConfigRepository,
	producer sarama.SyncProducer,
	log *zap.Logger,
) *Service {
	return &Service{
		log:      log,
		borrows:  borrows,
		users:    users,
		books:    books,
		configs:  configs,
		producer: producer,
		now:      time.Now,
	}
}

// ValidateBorrow runs every borrow precondition without mutating state:
// the user must exist, must hold no overdue book (any overdue item blocks
// all new borrowing), and every requested copy must exist and be AVAILABLE.
// The returned due date is shared by the whole batch.
func (s *Service) ValidateBorrow(ctx context.Context, cardNumber string, collectionNumbers []string) (model.BorrowValidation, error) {
	user, err := s.users.GetUserByCardNumber(ctx, cardNumber)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.BorrowValidation{}, errs.ErrUserNotFound
		}
		return model.BorrowValidation{}, err
	}

	now := s.now()
	overdue, err := s.borrows.CountOverdue(ctx, cardNumber, now)
	if err != nil {
		return model.BorrowValidation{}, err
	}
	if overdue > 0 {
		return model.BorrowValidation{}, errs.Policy(fmt.Sprintf("user has %d overdue books", overdue))
	}

	books := make([]model.BookSnapshot, 0, len(collectionNumbers))
	for _, cn := range collectionNumbers {
		book, err := s.books.GetBookByCollectionNumber(ctx, cn)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return model.BorrowValidation{}, errors.Wrap(errs.ErrBookNotFound, cn)
			}
			return model.BorrowValidation{}, err
		}
		if book.Status != model.BookAvailable {
			return model.BorrowValidation{}, errs.Policy(fmt.Sprintf("book %q is not available", book.Title))
		}
		books = append(books, model.BookSnapshot{
			CollectionNumber: book.CollectionNumber,
			Title:            book.Title,
			Author:           book.Author,
			Status:           book.Status,
		})
	}

	days, err := s.borrowDays(ctx, user.Identity)
	if err != nil {
		return model.BorrowValidation{}, err
	}

	return model.BorrowValidation{
		User: model.UserSnapshot{
			AccountNumber: user.AccountNumber,
			Name:          user.Name,
			Identity:      user.Identity,
			CardNumber:    user.CardNumber,
		},
		Books:   books,
		DueDate: now.AddDate(0, 0, days),
	}, nil
}

// BorrowBooks re-validates and persists the batch. Atomicity and the
// available->borrowed guard live in the repository transaction, so a copy
// grabbed by a concurrent request fails the whole call cleanly.
func (s *Service) BorrowBooks(ctx context.Context, req model.BorrowRequest) (model.BorrowResponse, error) {
	v, err := s.ValidateBorrow(ctx, req.CardNumber, req.CollectionNumbers)
	if err != nil {
		return model.BorrowResponse{}, err
	}

	now := s.now()
	recordID := "BR" + now.Format(recordIDLayout)

	records := make([]model.BorrowRecord, 0, len(v.Books))
	for _, book := range v.Books {
		records = append(records, model.BorrowRecord{
			RecordID:         recordID,
			CardNumber:       v.User.CardNumber,
			UserName:         v.User.Name,
			UserIdentity:     v.User.Identity,
			AccountNumber:    v.User.AccountNumber,
			CollectionNumber: book.CollectionNumber,
			BookTitle:        book.Title,
			BookAuthor:       book.Author,
			BorrowDate:       now,
			DueDate:          v.DueDate,
			Status:           model.RecordActive,
			Operator:         req.Operator,
		})
	}

	created, err := s.borrows.CreateBorrow(ctx, records)
	if err != nil {
		if errors.Is(err, errs.ErrBookUnavailable) {
			return model.BorrowResponse{}, errs.Policy(err.Error())
		}
		return model.BorrowResponse{}, err
	}

	for _, rec := range created {
		s.publish(kafka.Event{
			Timestamp:        now,
			EventType:        kafka.EventBorrowed,
			CollectionNumber: rec.CollectionNumber,
			CardNumber:       rec.CardNumber,
			RecordID:         rec.RecordID,
			Status:           string(model.BookBorrowed),
			Operator:         rec.Operator,
		})
	}

	return model.BorrowResponse{Records: created}, nil
}

// ReturnBook closes the single active record for the copy. Overdue days are
// whole days past due, truncated toward zero and clamped at zero; an early
// return is never negative overdue.
func (s *Service) ReturnBook(ctx context.Context, collectionNumber, operator string) (model.ReturnResponse, error) {
	rec, err := s.borrows.GetActiveRecord(ctx, collectionNumber)
	if err != nil {
		return model.ReturnResponse{}, err
	}

	now := s.now()
	overdueDays := int(now.Sub(rec.DueDate).Hours() / 24)
	if overdueDays < 0 {
		overdueDays = 0
	}

	returned, err := s.borrows.CompleteReturn(ctx, rec.ID, now, overdueDays, operator)
	if err != nil {
		return model.ReturnResponse{}, err
	}

	s.publish(kafka.Event{
		Timestamp:        now,
		EventType:        kafka.EventReturned,
		CollectionNumber: returned.CollectionNumber,
		CardNumber:       returned.CardNumber,
		RecordID:         returned.RecordID,
		Status:           string(model.BookAvailable),
		Operator:         operator,
	})

	return model.ReturnResponse{Record: returned}, nil
}

func (s *Service) MyRecords(ctx context.Context, accountNumber string) (model.MyRecords, error) {
	records, err := s.borrows.RecordsByAccountNumber(ctx, accountNumber)
	if err != nil {
		return model.MyRecords{}, err
	}

	now := s.now()
	stats := model.MyRecordsStatistics{TotalBorrowed: len(records)}
	for _, rec := range records {
		if rec.Status != model.RecordActive {
			continue
		}
		stats.CurrentBorrowing++
		if rec.DueDate.Before(now) {
			stats.OverdueCount++
		}
	}

	return model.MyRecords{Statistics: stats, Records: records}, nil
}

func (s *Service) PageRecords(ctx context.Context, accountNumber, keyword string, page, size int) (model.RecordPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	return s.borrows.PageRecords(ctx, accountNumber, keyword, page, size)
}

func (s *Service) borrowDays(ctx context.Context, identity model.Identity) (int, error) {
	key := model.ConfigKeyStudentBorrowDays
	if identity == model.IdentityTeacher {
		key = model.ConfigKeyTeacherBorrowDays
	}

	value, err := s.configs.GetValue(ctx, key)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.DefaultStudentBorrowDays, nil
		}
		return 0, err
	}
	days, err := strconv.Atoi(value)
	if err != nil {
		return model.DefaultStudentBorrowDays, nil
	}
	return days, nil
}

// publish is fire-and-forget: analytics must never fail a borrow.
func (s *Service) publish(event kafka.Event) {
	if s.producer == nil {
		return
	}
	if err := kafka.Publish(s.producer, event); err != nil {
		s.log.Error("kafka publish", zap.String("type", string(event.EventType)), zap.Error(err))
	}
}
