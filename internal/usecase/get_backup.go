package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// GetBackupUseCase はバックアップ詳細取得ユースケース。
type GetBackupUseCase struct {
	backupRepo repository.BackupRepository
}

// NewGetBackupUseCase は新しい GetBackupUseCase を作成する。
func NewGetBackupUseCase(backupRepo repository.BackupRepository) *GetBackupUseCase {
	return &GetBackupUseCase{backupRepo: backupRepo}
}

// GetBackupOutput はバックアップ詳細。Data はデコード済みのスナップショット。
type GetBackupOutput struct {
	Backup *model.Backup
	Data   json.RawMessage
}

// Execute は ID 指定でスナップショット本体を含む詳細を返す。
// 保存済みデータが JSON として壊れている場合は ErrCorruptBackupData を返す。
func (uc *GetBackupUseCase) Execute(ctx context.Context, id string) (*GetBackupOutput, error) {
	backup, err := uc.backupRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBackupNotFound
		}
		return nil, err
	}

	var data json.RawMessage
	if err := json.Unmarshal([]byte(backup.Data), &data); err != nil {
		return nil, ErrCorruptBackupData
	}

	return &GetBackupOutput{Backup: backup, Data: data}, nil
}
