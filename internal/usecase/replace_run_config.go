package usecase

import (
	"context"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// ReplaceRunConfigUseCase は実行設定の全置換ユースケース。
type ReplaceRunConfigUseCase struct {
	configRepo repository.RunConfigRepository
}

// NewReplaceRunConfigUseCase は新しい ReplaceRunConfigUseCase を作成する。
func NewReplaceRunConfigUseCase(configRepo repository.RunConfigRepository) *ReplaceRunConfigUseCase {
	return &ReplaceRunConfigUseCase{configRepo: configRepo}
}

// ReplaceRunConfigInput は設定置換の入力。全フィールドを常にまとめて置き換える。
type ReplaceRunConfigInput struct {
	RunHour           int     `json:"run_hour"`
	RunMinute         int     `json:"run_minute"`
	DefaultMultiplier float64 `json:"default_multiplier"`
	DryRun            bool    `json:"dry_run"`
}

// Execute は設定を置き換えて新しい状態を返す。
// 値域（run_hour 0-23、run_minute 0-59）の強制はスキーマの CHECK 制約が行い、
// 違反時はストレージエラーとして伝播する。
func (uc *ReplaceRunConfigUseCase) Execute(ctx context.Context, input ReplaceRunConfigInput) (*model.RunConfig, error) {
	cfg := &model.RunConfig{
		ID:                model.RunConfigID,
		RunHour:           input.RunHour,
		RunMinute:         input.RunMinute,
		DefaultMultiplier: input.DefaultMultiplier,
		DryRun:            input.DryRun,
	}
	return uc.configRepo.Replace(ctx, cfg)
}
