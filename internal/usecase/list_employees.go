package usecase

import (
	"context"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// ListEmployeesUseCase は従業員一覧取得ユースケース。
type ListEmployeesUseCase struct {
	employeeRepo repository.EmployeeRepository
}

// NewListEmployeesUseCase は新しい ListEmployeesUseCase を作成する。
func NewListEmployeesUseCase(employeeRepo repository.EmployeeRepository) *ListEmployeesUseCase {
	return &ListEmployeesUseCase{employeeRepo: employeeRepo}
}

// Execute は全従業員を名前順で返す。
func (uc *ListEmployeesUseCase) Execute(ctx context.Context) ([]*model.Employee, error) {
	return uc.employeeRepo.List(ctx)
}
