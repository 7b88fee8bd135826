package usecase

import (
	"context"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// GetRunConfigUseCase は実行設定取得ユースケース。
type GetRunConfigUseCase struct {
	configRepo repository.RunConfigRepository
}

// NewGetRunConfigUseCase は新しい GetRunConfigUseCase を作成する。
func NewGetRunConfigUseCase(configRepo repository.RunConfigRepository) *GetRunConfigUseCase {
	return &GetRunConfigUseCase{configRepo: configRepo}
}

// Execute はシングルトン設定を返す。起動時に初期行が投入されるため常に存在する。
func (uc *GetRunConfigUseCase) Execute(ctx context.Context) (*model.RunConfig, error) {
	return uc.configRepo.Get(ctx)
}
