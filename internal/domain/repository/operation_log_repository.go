package repository

import (
	"context"
	"time"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
)

// OperationLogRepository は追記専用オペレーションログの永続化インターフェース。
type OperationLogRepository interface {
	// Create はログエントリを追記する。既存行の更新・削除は行わない。
	Create(ctx context.Context, entry *model.OperationLog) (*model.OperationLog, error)

	// List は created_at 降順でログを取得する。
	List(ctx context.Context, params OperationLogListParams) ([]*model.OperationLog, error)

	// LastSuccessAt は status = success の最新 created_at を返す。
	// 該当行が無い場合は nil を返す。
	LastSuccessAt(ctx context.Context) (*time.Time, error)

	// SumHoursDeltaSince は since 以降（境界を含む）の success 行について
	// (updated_hours - original_hours) の合計を返す。該当行が無ければ 0。
	SumHoursDeltaSince(ctx context.Context, since time.Time) (float64, error)
}

// OperationLogListParams はログ一覧の取得パラメータ。
type OperationLogListParams struct {
	EmployeeID string
	Limit      int
	Offset     int
}
