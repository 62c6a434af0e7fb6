package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUserByAccountNumber(ctx context.Context, accountNumber string) (model.User, error)
	GetUserByCardNumber(ctx context.Context, cardNumber string) (model.User, error)
	GetUserByAccountAndCard(ctx context.Context, accountNumber, cardNumber string) (model.User, error)
	UpdateLoginState(ctx context.Context, accountNumber string, failCount int, status model.UserStatus, lockTime *time.Time) error
	UpdatePassword(ctx context.Context, accountNumber, password string) error
	PageUsers(ctx context.Context, page, size int) (model.UserPage, error)
}

type userRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewUserRepository(db *sqlx.DB, log *zap.Logger) (*userRepository, error) {
	return &userRepository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const usersTableName = `users`

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `id, account_number, name, identity, card_number, password, initial_password,
	role, status, lock_time, login_fail_count, create_time, update_time`

func (r *userRepository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	now := time.Now().UTC()
	q, args, err := qb.Insert(usersTableName).
		Columns("account_number", "name", "identity", "card_number", "password",
			"initial_password", "role", "status", "login_fail_count", "create_time", "update_time").
		Values(user.AccountNumber, user.Name, user.Identity, user.CardNumber, user.Password,
			user.InitialPassword, user.Role, user.Status, user.LoginFailCount, now, now).
		Suffix("returning " + userColumns).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var created model.User
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			switch pgErr.ConstraintName {
			case "users_card_number_key":
				return model.User{}, errs.ErrCardExists
			default:
				return model.User{}, errs.ErrAccountExists
			}
		}
		r.log.Error("CreateUser", zap.String("q", q), zap.Error(err))
		return model.User{}, err
	}
	return created, nil
}

func (r *userRepository) getUser(ctx context.Context, pred sq.Eq) (model.User, error) {
	q, args, err := qb.Select(userColumns).
		From(usersTableName).
		Where(pred).
		Where(sq.Eq{"deleted": false}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *userRepository) GetUserByAccountNumber(ctx context.Context, accountNumber string) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"account_number": accountNumber})
}

func (r *userRepository) GetUserByCardNumber(ctx context.Context, cardNumber string) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"card_number": cardNumber})
}

func (r *userRepository) GetUserByAccountAndCard(ctx context.Context, accountNumber, cardNumber string) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"account_number": accountNumber, "card_number": cardNumber})
}

func (r *userRepository) UpdateLoginState(ctx context.Context, accountNumber string, failCount int, status model.UserStatus, lockTime *time.Time) error {
	q, args, err := qb.Update(usersTableName).
		Set("login_fail_count", failCount).
		Set("status", status).
		Set("lock_time", lockTime).
		Set("update_time", time.Now().UTC()).
		Where(sq.Eq{"account_number": accountNumber}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *userRepository) UpdatePassword(ctx context.Context, accountNumber, password string) error {
	q, args, err := qb.Update(usersTableName).
		Set("password", password).
		Set("update_time", time.Now().UTC()).
		Where(sq.Eq{"account_number": accountNumber}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *userRepository) PageUsers(ctx context.Context, page, size int) (model.UserPage, error) {
	q, args, err := qb.Select(userColumns).
		From(usersTableName).
		Where(sq.Eq{"deleted": false}).
		OrderBy("create_time desc").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size)).
		ToSql()
	if err != nil {
		return model.UserPage{}, err
	}

	users := make([]model.User, 0, size)
	if err := r.db.SelectContext(ctx, &users, q, args...); err != nil {
		return model.UserPage{}, err
	}

	var total int
	cq, cargs, err := qb.Select("count(*)").From(usersTableName).Where(sq.Eq{"deleted": false}).ToSql()
	if err != nil {
		return model.UserPage{}, err
	}
	if err := r.db.GetContext(ctx, &total, cq, cargs...); err != nil {
		return model.UserPage{}, err
	}

	return model.UserPage{Total: total, Page: page, Size: size, List: users}, nil
}
