package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// MockEmployeeRepository は EmployeeRepository のモック実装。
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) List(ctx context.Context) ([]*model.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Create(ctx context.Context, emp *model.Employee) (*model.Employee, error) {
	args := m.Called(ctx, emp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, id string, params repository.EmployeeUpdateParams) (*model.Employee, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Count(ctx context.Context) (int, int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1), args.Error(2)
}

// MockRunConfigRepository は RunConfigRepository のモック実装。
type MockRunConfigRepository struct {
	mock.Mock
}

func (m *MockRunConfigRepository) Get(ctx context.Context) (*model.RunConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RunConfig), args.Error(1)
}

func (m *MockRunConfigRepository) Replace(ctx context.Context, cfg *model.RunConfig) (*model.RunConfig, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RunConfig), args.Error(1)
}

// MockOperationLogRepository は OperationLogRepository のモック実装。
type MockOperationLogRepository struct {
	mock.Mock
}

func (m *MockOperationLogRepository) Create(ctx context.Context, entry *model.OperationLog) (*model.OperationLog, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OperationLog), args.Error(1)
}

func (m *MockOperationLogRepository) List(ctx context.Context, params repository.OperationLogListParams) ([]*model.OperationLog, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.OperationLog), args.Error(1)
}

func (m *MockOperationLogRepository) LastSuccessAt(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockOperationLogRepository) SumHoursDeltaSince(ctx context.Context, since time.Time) (float64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(float64), args.Error(1)
}

// MockBackupRepository は BackupRepository のモック実装。
type MockBackupRepository struct {
	mock.Mock
}

func (m *MockBackupRepository) Create(ctx context.Context, b *model.Backup) (*model.Backup, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Backup), args.Error(1)
}

func (m *MockBackupRepository) List(ctx context.Context, params repository.BackupListParams) ([]*model.Backup, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Backup), args.Error(1)
}

func (m *MockBackupRepository) GetByID(ctx context.Context, id string) (*model.Backup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Backup), args.Error(1)
}

// MockTimeTrackingProvider は TimeTrackingProvider のモック実装。
type MockTimeTrackingProvider struct {
	mock.Mock
}

func (m *MockTimeTrackingProvider) GetUser(ctx context.Context, userID string) (*model.ProviderUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProviderUser), args.Error(1)
}

// MockOperationEventPublisher は OperationEventPublisher のモック実装。
type MockOperationEventPublisher struct {
	mock.Mock
}

func (m *MockOperationEventPublisher) Publish(ctx context.Context, entry *model.OperationLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
