package usecase

import (
	"context"
	"errors"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// DeleteEmployeeUseCase は従業員削除ユースケース。
// 削除しても過去のオペレーションログは保持される。
type DeleteEmployeeUseCase struct {
	employeeRepo repository.EmployeeRepository
}

// NewDeleteEmployeeUseCase は新しい DeleteEmployeeUseCase を作成する。
func NewDeleteEmployeeUseCase(employeeRepo repository.EmployeeRepository) *DeleteEmployeeUseCase {
	return &DeleteEmployeeUseCase{employeeRepo: employeeRepo}
}

// Execute は従業員を削除する。
func (uc *DeleteEmployeeUseCase) Execute(ctx context.Context, employeeID string) error {
	if err := uc.employeeRepo.Delete(ctx, employeeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEmployeeNotFound
		}
		return err
	}
	return nil
}
