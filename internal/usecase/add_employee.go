package usecase

import (
	"context"
	"errors"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// AddEmployeeUseCase は従業員登録ユースケース。
// 登録時に一度だけ外部プロバイダーへ問い合わせ、名前とメールを取り込む。
type AddEmployeeUseCase struct {
	employeeRepo repository.EmployeeRepository
	provider     repository.TimeTrackingProvider
}

// NewAddEmployeeUseCase は新しい AddEmployeeUseCase を作成する。
func NewAddEmployeeUseCase(
	employeeRepo repository.EmployeeRepository,
	provider repository.TimeTrackingProvider,
) *AddEmployeeUseCase {
	return &AddEmployeeUseCase{
		employeeRepo: employeeRepo,
		provider:     provider,
	}
}

// Execute は employeeID をプロバイダーで照合し、従業員として登録する。
func (uc *AddEmployeeUseCase) Execute(ctx context.Context, employeeID string) (*model.Employee, error) {
	if employeeID == "" {
		return nil, ErrInvalidRequest
	}

	user, err := uc.provider.GetUser(ctx, employeeID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUnavailable):
			return nil, ErrUpstreamUnavailable
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrEmployeeNotFound
		default:
			return nil, err
		}
	}

	name := user.Name
	if name == "" {
		name = "Unknown"
	}

	emp := &model.Employee{
		ID:         employeeID,
		Name:       name,
		Email:      user.Email,
		Multiplier: model.DefaultMultiplier,
		Active:     true,
	}

	created, err := uc.employeeRepo.Create(ctx, emp)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmployeeExists
		}
		return nil, err
	}

	return created, nil
}
