package usecase

import (
	"context"
	"time"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// ListBackupsUseCase はバックアップ一覧取得ユースケース。
// 一覧はメタデータのみを返し、スナップショット本体は個別取得に委ねる。
type ListBackupsUseCase struct {
	backupRepo repository.BackupRepository
}

// NewListBackupsUseCase は新しい ListBackupsUseCase を作成する。
func NewListBackupsUseCase(backupRepo repository.BackupRepository) *ListBackupsUseCase {
	return &ListBackupsUseCase{backupRepo: backupRepo}
}

// ListBackupsInput はバックアップ一覧の取得パラメータ。Date は空なら無条件。
type ListBackupsInput struct {
	UserID string
	Date   string
	Limit  int
}

// Execute は created_at 降順でバックアップのメタデータを返す。
func (uc *ListBackupsUseCase) Execute(ctx context.Context, input ListBackupsInput) ([]*model.Backup, error) {
	params := repository.BackupListParams{
		UserID: input.UserID,
		Limit:  input.Limit,
	}

	if input.Date != "" {
		d, err := time.Parse(entryDateLayout, input.Date)
		if err != nil {
			return nil, ErrInvalidRequest
		}
		params.Date = &d
	}

	return uc.backupRepo.List(ctx, params)
}
