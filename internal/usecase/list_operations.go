package usecase

import (
	"context"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// ListOperationsUseCase はオペレーションログ一覧取得ユースケース。
type ListOperationsUseCase struct {
	logRepo repository.OperationLogRepository
}

// NewListOperationsUseCase は新しい ListOperationsUseCase を作成する。
func NewListOperationsUseCase(logRepo repository.OperationLogRepository) *ListOperationsUseCase {
	return &ListOperationsUseCase{logRepo: logRepo}
}

// ListOperationsInput はログ一覧の取得パラメータ。
type ListOperationsInput struct {
	Limit      int
	Offset     int
	EmployeeID string
}

// Execute は created_at 降順でログを返す。
func (uc *ListOperationsUseCase) Execute(ctx context.Context, input ListOperationsInput) ([]*model.OperationLog, error) {
	return uc.logRepo.List(ctx, repository.OperationLogListParams{
		EmployeeID: input.EmployeeID,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
}
