package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/campuslib/library-service/config"
	"github.com/campuslib/library-service/internal/handler"
	"github.com/campuslib/library-service/internal/repository"
	"github.com/campuslib/library-service/internal/server"
	authService "github.com/campuslib/library-service/internal/service/auth"
	bookService "github.com/campuslib/library-service/internal/service/book"
	borrowService "github.com/campuslib/library-service/internal/service/borrow"
	statsService "github.com/campuslib/library-service/internal/service/stats"
	sysconfigService "github.com/campuslib/library-service/internal/service/sysconfig"
	userService "github.com/campuslib/library-service/internal/service/user"
	"github.com/campuslib/library-service/migrations"
	"github.com/campuslib/library-service/pkg/kafka"
	"github.com/campuslib/library-service/pkg/logger"
	"github.com/campuslib/library-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "library")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}

	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled {
		producer, err = kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka producer %v", err)
		}
	}

	userRepo, err := repository.NewUserRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo users %v", err)
	}
	bookRepo, err := repository.NewBookRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo books %v", err)
	}
	borrowRepo, err := repository.NewBorrowRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo borrow %v", err)
	}
	configRepo, err := repository.NewConfigRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo config %v", err)
	}

	h := handler.New(
		authService.NewService(userRepo, log),
		userService.NewService(userRepo, log),
		bookService.NewService(bookRepo, producer, log),
		borrowService.NewService(borrowRepo, userRepo, bookRepo, configRepo, producer, log),
		statsService.NewService(borrowRepo, bookRepo, log),
		sysconfigService.NewService(configRepo, log),
		log,
	)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
