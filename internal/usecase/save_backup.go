package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// SaveBackupUseCase はバックアップスナップショット保存ユースケース。
type SaveBackupUseCase struct {
	backupRepo repository.BackupRepository
}

// NewSaveBackupUseCase は新しい SaveBackupUseCase を作成する。
func NewSaveBackupUseCase(backupRepo repository.BackupRepository) *SaveBackupUseCase {
	return &SaveBackupUseCase{backupRepo: backupRepo}
}

// SaveBackupInput はバックアップ保存の入力。Data は更新前のタイムレコード列。
type SaveBackupInput struct {
	UserID   string          `json:"user_id"`
	Date     string          `json:"date"`
	Filename string          `json:"filename"`
	Data     json.RawMessage `json:"data"`
}

// Execute はスナップショットを保存し、採番された ID を含む行を返す。
// オペレーションログと異なり、バックアップの日付は復元時の照合キーになるため
// パース失敗はフォールバックせず拒否する。
func (uc *SaveBackupUseCase) Execute(ctx context.Context, input SaveBackupInput) (*model.Backup, error) {
	date, err := time.Parse(entryDateLayout, input.Date)
	if err != nil {
		return nil, ErrInvalidRequest
	}

	backup := &model.Backup{
		ID:       uuid.New().String(),
		UserID:   input.UserID,
		Date:     date,
		Filename: input.Filename,
		Data:     string(input.Data),
	}

	return uc.backupRepo.Create(ctx, backup)
}
