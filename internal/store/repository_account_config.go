package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-token-agent/internal/logger"
	"github.com/MKhiriev/go-token-agent/models"
)

const accountConfigsTable = "account_configs"

var accountConfigColumns = []string{"short_name", "issuer_url", "envelope", "created_at", "updated_at"}

type accountConfigRepository struct {
	*DB
	logger *logger.Logger
	sb     sq.StatementBuilderType
}

// NewAccountConfigRepository returns an [AccountConfigRepository] over db.
func NewAccountConfigRepository(db *DB, logger *logger.Logger) AccountConfigRepository {
	return &accountConfigRepository{
		DB:     db,
		logger: logger,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func (r *accountConfigRepository) Save(ctx context.Context, cfg models.AccountConfig) error {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Insert(accountConfigsTable).
		Columns(accountConfigColumns...).
		Values(cfg.ShortName, cfg.IssuerURL, cfg.Envelope, cfg.CreatedAt, cfg.UpdatedAt).
		Suffix("ON CONFLICT (short_name) DO UPDATE SET " +
			"issuer_url = excluded.issuer_url, " +
			"envelope = excluded.envelope, " +
			"updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "accountConfigRepository.Save").
			Str("short_name", cfg.ShortName).
			Msg("failed to execute upsert for account config")
		return fmt.Errorf("%w: save account config %q: %w", ErrExecutingStatement, cfg.ShortName, err)
	}

	return nil
}

func (r *accountConfigRepository) Get(ctx context.Context, shortName string) (models.AccountConfig, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Select(accountConfigColumns...).
		From(accountConfigsTable).
		Where(sq.Eq{"short_name": shortName}).
		ToSql()
	if err != nil {
		return models.AccountConfig{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var cfg models.AccountConfig
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ShortName,
		&cfg.IssuerURL,
		&cfg.Envelope,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AccountConfig{}, fmt.Errorf("%w: %s", ErrAccountConfigNotFound, shortName)
	}
	if err != nil {
		log.Err(err).
			Str("func", "accountConfigRepository.Get").
			Str("short_name", shortName).
			Msg("failed to scan account config row")
		return models.AccountConfig{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return cfg, nil
}

func (r *accountConfigRepository) List(ctx context.Context) ([]models.AccountConfig, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Select(accountConfigColumns...).
		From(accountConfigsTable).
		OrderBy("short_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "accountConfigRepository.List").
			Msg("failed to execute query for listing account configs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var configs []models.AccountConfig
	for rows.Next() {
		var cfg models.AccountConfig
		if err = rows.Scan(
			&cfg.ShortName,
			&cfg.IssuerURL,
			&cfg.Envelope,
			&cfg.CreatedAt,
			&cfg.UpdatedAt,
		); err != nil {
			log.Err(err).
				Str("func", "accountConfigRepository.List").
				Msg("failed to scan account config row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		configs = append(configs, cfg)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return configs, nil
}

func (r *accountConfigRepository) Delete(ctx context.Context, shortName string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Delete(accountConfigsTable).
		Where(sq.Eq{"short_name": shortName}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "accountConfigRepository.Delete").
			Str("short_name", shortName).
			Msg("failed to delete account config")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrAccountConfigNotFound, shortName)
	}

	return nil
}
