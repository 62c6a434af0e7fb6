package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campuslib/library-service/internal/errs"
)

type ConfigRepository interface {
	GetValue(ctx context.Context, key string) (string, error)
	SetValue(ctx context.Context, key, value string) error
}

type configRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewConfigRepository(db *sqlx.DB, log *zap.Logger) (*configRepository, error) {
	return &configRepository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const configTableName = `system_config`

func (r *configRepository) GetValue(ctx context.Context, key string) (string, error) {
	q, args, err := qb.Select("config_value").
		From(configTableName).
		Where(sq.Eq{"config_key": key}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", err
	}

	var value string
	if err := r.db.GetContext(ctx, &value, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errs.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (r *configRepository) SetValue(ctx context.Context, key, value string) error {
	q, args, err := qb.Insert(configTableName).
		Columns("config_key", "config_value").
		Values(key, value).
		Suffix("on conflict (config_key) do update set config_value = excluded.config_value").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("SetValue", zap.String("q", q), zap.Error(err))
		return err
	}
	return nil
}
