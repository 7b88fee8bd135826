package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// RunConfigRepositoryImpl は RunConfigRepository の PostgreSQL 実装。
type RunConfigRepositoryImpl struct {
	db *DB
}

// NewRunConfigRepository は新しい RunConfigRepositoryImpl を作成する。
func NewRunConfigRepository(db *DB) *RunConfigRepositoryImpl {
	return &RunConfigRepositoryImpl{db: db}
}

const runConfigColumns = "id, run_hour, run_minute, default_multiplier, dry_run, updated_at"

func scanRunConfig(row *sql.Row) (*model.RunConfig, error) {
	var cfg model.RunConfig
	err := row.Scan(&cfg.ID, &cfg.RunHour, &cfg.RunMinute, &cfg.DefaultMultiplier, &cfg.DryRun, &cfg.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Get はシングルトン行を取得する。
func (r *RunConfigRepositoryImpl) Get(ctx context.Context) (*model.RunConfig, error) {
	query := fmt.Sprintf("SELECT %s FROM system_config WHERE id = $1", runConfigColumns)

	cfg, err := scanRunConfig(r.db.conn.QueryRowContext(ctx, query, model.RunConfigID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("run config: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get run config: %w", err)
	}

	return cfg, nil
}

// Replace は全フィールドを単一ステートメントで置き換え、新しい状態を返す。
// 値域の強制はスキーマの CHECK 制約に委ねる。
func (r *RunConfigRepositoryImpl) Replace(ctx context.Context, cfg *model.RunConfig) (*model.RunConfig, error) {
	query := fmt.Sprintf(`UPDATE system_config
	           SET run_hour = $1, run_minute = $2, default_multiplier = $3, dry_run = $4, updated_at = NOW()
	           WHERE id = $5
	           RETURNING %s`, runConfigColumns)

	updated, err := scanRunConfig(r.db.conn.QueryRowContext(ctx, query,
		cfg.RunHour, cfg.RunMinute, cfg.DefaultMultiplier, cfg.DryRun, model.RunConfigID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("run config: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to replace run config: %w", err)
	}

	return updated, nil
}
