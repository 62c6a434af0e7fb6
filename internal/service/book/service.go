package book

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/campuslib/library-service/internal/model"
	"github.com/campuslib/library-service/internal/repository"
	"github.com/campuslib/library-service/pkg/kafka"
)

const collectionNumberLayout = "20060102150405"

type Service struct {
	log      *zap.Logger
	books    repository.BookRepository
	producer sarama.SyncProducer
	now      func() time.Time
}

func NewService(books repository.BookRepository, producer sarama.SyncProducer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		books:    books,
		producer: producer,
		now:      time.Now,
	}
}

func (s *Service) AddBook(ctx context.Context, req model.BookAddRequest) (model.Book, error) {
	book := model.Book{
		CollectionNumber: s.generateCollectionNumber(),
		ISBN:             req.ISBN,
		Title:            req.Title,
		Author:           req.Author,
		Publisher:        req.Publisher,
		Location:         req.Location,
		Status:           model.BookAvailable,
	}
	return s.books.CreateBook(ctx, book)
}

func (s *Service) GetBook(ctx context.Context, collectionNumber string) (model.BookDetail, error) {
	book, err := s.books.GetBookByCollectionNumber(ctx, collectionNumber)
	if err != nil {
		return model.BookDetail{}, err
	}
	history, err := s.books.GetStatusHistory(ctx, collectionNumber)
	if err != nil {
		return model.BookDetail{}, err
	}
	return model.BookDetail{Book: book, StatusHistory: history}, nil
}

// UpdateStatus is the administrative status primitive: no legality check on
// the transition, every change lands in the history trail.
func (s *Service) UpdateStatus(ctx context.Context, collectionNumber string, status model.BookStatus, operator string) (model.Book, error) {
	book, err := s.books.UpdateStatus(ctx, collectionNumber, status, operator)
	if err != nil {
		return model.Book{}, err
	}

	if s.producer != nil {
		event := kafka.Event{
			Timestamp:        s.now(),
			EventType:        kafka.EventStatusChanged,
			CollectionNumber: collectionNumber,
			Status:           string(status),
			Operator:         operator,
		}
		if err := kafka.Publish(s.producer, event); err != nil {
			s.log.Error("kafka publish", zap.Error(err))
		}
	}

	return book, nil
}

func (s *Service) PageBooks(ctx context.Context, isbn, title string, page, size int) (model.BookPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	return s.books.PageBooks(ctx, isbn, title, page, size)
}

// generateCollectionNumber yields "TS" + yyyyMMddHHmmss + 3 random digits.
func (s *Service) generateCollectionNumber() string {
	return fmt.Sprintf("TS%s%03d", s.now().Format(collectionNumberLayout), rand.Intn(1000))
}
