package repository

import (
	"context"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
)

// RunConfigRepository は実行設定シングルトンの永続化インターフェース。
type RunConfigRepository interface {
	// Get はシングルトン行を取得する。起動後は常に存在する前提。
	Get(ctx context.Context) (*model.RunConfig, error)

	// Replace は全フィールドを単一ステートメントで置き換え、新しい状態を返す。
	Replace(ctx context.Context, cfg *model.RunConfig) (*model.RunConfig, error)
}
