package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// BackupRepositoryImpl は BackupRepository の PostgreSQL 実装。
type BackupRepositoryImpl struct {
	db *DB
}

// NewBackupRepository は新しい BackupRepositoryImpl を作成する。
func NewBackupRepository(db *DB) *BackupRepositoryImpl {
	return &BackupRepositoryImpl{db: db}
}

// Create はバックアップを追記し、サーバー採番の created_at を含む行を返す。
func (r *BackupRepositoryImpl) Create(ctx context.Context, b *model.Backup) (*model.Backup, error) {
	query := `INSERT INTO backups (id, user_id, date, filename, data)
	           VALUES ($1, $2, $3, $4, $5)
	           RETURNING id, user_id, date, filename, data, created_at`

	var created model.Backup
	err := r.db.conn.QueryRowContext(ctx, query,
		b.ID, b.UserID, b.Date, b.Filename, b.Data,
	).Scan(&created.ID, &created.UserID, &created.Date, &created.Filename, &created.Data, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert backup: %w", err)
	}

	return &created, nil
}

// List はメタデータのみを created_at 降順で取得する。
// data 列は行サイズが大きいため一覧には含めない。
func (r *BackupRepositoryImpl) List(ctx context.Context, params repository.BackupListParams) ([]*model.Backup, error) {
	var conditions []string
	var args []interface{}
	bindIdx := 1

	if params.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", bindIdx))
		args = append(args, params.UserID)
		bindIdx++
	}
	if params.Date != nil {
		conditions = append(conditions, fmt.Sprintf("date = $%d", bindIdx))
		args = append(args, *params.Date)
		bindIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE "
		for i, c := range conditions {
			if i > 0 {
				whereClause += " AND "
			}
			whereClause += c
		}
	}

	limit := params.Limit
	if limit < 1 {
		limit = 50
	}

	query := fmt.Sprintf(
		"SELECT id, user_id, date, filename, created_at FROM backups%s ORDER BY created_at DESC LIMIT $%d",
		whereClause, bindIdx,
	)
	args = append(args, limit)

	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query backups: %w", err)
	}
	defer rows.Close()

	var backups []*model.Backup
	for rows.Next() {
		var b model.Backup
		if err := rows.Scan(&b.ID, &b.UserID, &b.Date, &b.Filename, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan backup row: %w", err)
		}
		backups = append(backups, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating backup rows: %w", err)
	}

	return backups, nil
}

// GetByID は data を含む単一バックアップを取得する。
func (r *BackupRepositoryImpl) GetByID(ctx context.Context, id string) (*model.Backup, error) {
	query := `SELECT id, user_id, date, filename, data, created_at FROM backups WHERE id = $1`

	var b model.Backup
	err := r.db.conn.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.UserID, &b.Date, &b.Filename, &b.Data, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("backup %s: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get backup: %w", err)
	}

	return &b, nil
}
