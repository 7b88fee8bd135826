package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// OperationLogRepositoryImpl は OperationLogRepository の PostgreSQL 実装。
// ログは追記専用で、このリポジトリは UPDATE / DELETE を一切発行しない。
type OperationLogRepositoryImpl struct {
	db *DB
}

// NewOperationLogRepository は新しい OperationLogRepositoryImpl を作成する。
func NewOperationLogRepository(db *DB) *OperationLogRepositoryImpl {
	return &OperationLogRepositoryImpl{db: db}
}

const operationLogColumns = "id, employee_id, employee_name, date, original_hours, updated_hours, status, date_parse_failed, created_at"

// Create はログエントリを追記し、採番された id と created_at を含む行を返す。
func (r *OperationLogRepositoryImpl) Create(ctx context.Context, entry *model.OperationLog) (*model.OperationLog, error) {
	query := fmt.Sprintf(`INSERT INTO operation_logs
	           (employee_id, employee_name, date, original_hours, updated_hours, status, date_parse_failed)
	           VALUES ($1, $2, $3, $4, $5, $6, $7)
	           RETURNING %s`, operationLogColumns)

	var created model.OperationLog
	err := r.db.conn.QueryRowContext(ctx, query,
		entry.EmployeeID, entry.EmployeeName, entry.Date,
		entry.OriginalHours, entry.UpdatedHours, entry.Status, entry.DateParseFailed,
	).Scan(
		&created.ID, &created.EmployeeID, &created.EmployeeName, &created.Date,
		&created.OriginalHours, &created.UpdatedHours, &created.Status,
		&created.DateParseFailed, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert operation log: %w", err)
	}

	return &created, nil
}

// List は created_at 降順でログを取得する。
func (r *OperationLogRepositoryImpl) List(ctx context.Context, params repository.OperationLogListParams) ([]*model.OperationLog, error) {
	whereClause := ""
	var args []interface{}
	bindIdx := 1

	if params.EmployeeID != "" {
		whereClause = fmt.Sprintf(" WHERE employee_id = $%d", bindIdx)
		args = append(args, params.EmployeeID)
		bindIdx++
	}

	limit := params.Limit
	if limit < 1 {
		limit = 100
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(
		"SELECT %s FROM operation_logs%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		operationLogColumns, whereClause, bindIdx, bindIdx+1,
	)
	args = append(args, limit, offset)

	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query operation logs: %w", err)
	}
	defer rows.Close()

	var logs []*model.OperationLog
	for rows.Next() {
		var entry model.OperationLog
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.EmployeeName, &entry.Date,
			&entry.OriginalHours, &entry.UpdatedHours, &entry.Status,
			&entry.DateParseFailed, &entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation log row: %w", err)
		}
		logs = append(logs, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating operation log rows: %w", err)
	}

	return logs, nil
}

// LastSuccessAt は status = success の最新 created_at を返す。
func (r *OperationLogRepositoryImpl) LastSuccessAt(ctx context.Context) (*time.Time, error) {
	query := `SELECT MAX(created_at) FROM operation_logs WHERE status = $1`

	var last sql.NullTime
	if err := r.db.conn.QueryRowContext(ctx, query, model.StatusSuccess).Scan(&last); err != nil {
		return nil, fmt.Errorf("failed to query last success: %w", err)
	}
	if !last.Valid {
		return nil, nil
	}

	t := last.Time
	return &t, nil
}

// SumHoursDeltaSince は since 以降の success 行の時間差分合計を返す。
func (r *OperationLogRepositoryImpl) SumHoursDeltaSince(ctx context.Context, since time.Time) (float64, error) {
	query := `SELECT COALESCE(SUM(updated_hours - original_hours), 0)
	           FROM operation_logs
	           WHERE status = $1 AND created_at >= $2`

	var sum float64
	if err := r.db.conn.QueryRowContext(ctx, query, model.StatusSuccess, since).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum hours delta: %w", err)
	}

	return sum, nil
}
