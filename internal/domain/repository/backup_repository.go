package repository

import (
	"context"
	"time"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
)

// BackupRepository はバックアップスナップショットの永続化インターフェース。
type BackupRepository interface {
	// Create はバックアップを追記する。
	Create(ctx context.Context, b *model.Backup) (*model.Backup, error)

	// List はメタデータのみ（data を除く）を created_at 降順で取得する。
	List(ctx context.Context, params BackupListParams) ([]*model.Backup, error)

	// GetByID は data を含む単一バックアップを取得する。
	// 存在しない場合は ErrNotFound。
	GetByID(ctx context.Context, id string) (*model.Backup, error)
}

// BackupListParams はバックアップ一覧の取得パラメータ。
type BackupListParams struct {
	UserID string
	Date   *time.Time
	Limit  int
}
