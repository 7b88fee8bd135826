package usecase

import (
	"context"
	"errors"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// UpdateEmployeeUseCase は従業員の部分更新ユースケース。
type UpdateEmployeeUseCase struct {
	employeeRepo repository.EmployeeRepository
}

// NewUpdateEmployeeUseCase は新しい UpdateEmployeeUseCase を作成する。
func NewUpdateEmployeeUseCase(employeeRepo repository.EmployeeRepository) *UpdateEmployeeUseCase {
	return &UpdateEmployeeUseCase{employeeRepo: employeeRepo}
}

// UpdateEmployeeInput は部分更新の入力。nil のフィールドは変更しない。
type UpdateEmployeeInput struct {
	Multiplier *float64 `json:"multiplier"`
	Active     *bool    `json:"active"`
}

// Execute は指定されたフィールドのみを更新し、更新後の従業員を返す。
// どのフィールドも指定されていない場合は ErrInvalidRequest。
func (uc *UpdateEmployeeUseCase) Execute(ctx context.Context, employeeID string, input UpdateEmployeeInput) (*model.Employee, error) {
	params := repository.EmployeeUpdateParams{
		Multiplier: input.Multiplier,
		Active:     input.Active,
	}
	if params.IsEmpty() {
		return nil, ErrInvalidRequest
	}

	emp, err := uc.employeeRepo.Update(ctx, employeeID, params)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	return emp, nil
}
