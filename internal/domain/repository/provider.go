package repository

import (
	"context"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
)

// TimeTrackingProvider は外部タイムトラッキングサービスのユーザー参照インターフェース。
// 従業員登録時の単発ルックアップにのみ使用する。
type TimeTrackingProvider interface {
	// GetUser はプロバイダー側のユーザー情報を取得する。
	// ユーザーが存在しない場合は ErrNotFound、プロバイダーに到達できない
	// 場合は ErrUnavailable を返す。
	GetUser(ctx context.Context, userID string) (*model.ProviderUser, error)
}
