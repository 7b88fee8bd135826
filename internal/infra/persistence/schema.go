package persistence

import (
	"context"
	"fmt"
)

// スキーマは起動時に冪等に適用する。シングルトン設定行は CHECK (id = 1) で
// スキーマレベルに強制し、初期行の投入は ON CONFLICT DO NOTHING で二重実行を防ぐ。
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id         VARCHAR(50) PRIMARY KEY,
		name       VARCHAR(255) NOT NULL,
		email      VARCHAR(255),
		multiplier DOUBLE PRECISION NOT NULL DEFAULT 1.5 CHECK (multiplier >= 0),
		active     BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS system_config (
		id                 INTEGER PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		run_hour           INTEGER NOT NULL DEFAULT 1 CHECK (run_hour BETWEEN 0 AND 23),
		run_minute         INTEGER NOT NULL DEFAULT 0 CHECK (run_minute BETWEEN 0 AND 59),
		default_multiplier DOUBLE PRECISION NOT NULL DEFAULT 1.5,
		dry_run            BOOLEAN NOT NULL DEFAULT TRUE,
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS operation_logs (
		id                BIGSERIAL PRIMARY KEY,
		employee_id       VARCHAR(50) NOT NULL,
		employee_name     VARCHAR(255) NOT NULL,
		date              DATE NOT NULL,
		original_hours    DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (original_hours >= 0),
		updated_hours     DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (updated_hours >= 0),
		status            VARCHAR(50) NOT NULL,
		date_parse_failed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS backups (
		id         VARCHAR(36) PRIMARY KEY,
		user_id    VARCHAR(50) NOT NULL,
		date       DATE NOT NULL,
		filename   TEXT NOT NULL,
		data       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`INSERT INTO system_config (id, run_hour, run_minute, default_multiplier, dry_run)
	 VALUES (1, 1, 0, 1.5, TRUE)
	 ON CONFLICT (id) DO NOTHING`,
}

// Migrate はテーブル作成とシングルトン設定行の初期投入を単一トランザクションで行う。
func (db *DB) Migrate(ctx context.Context) error {
	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}

	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema transaction: %w", err)
	}

	return nil
}
