package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// --- Mock implementations ---

type mockEmployeeRepo struct {
	mock.Mock
}

func (m *mockEmployeeRepo) List(ctx context.Context) ([]*model.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) Create(ctx context.Context, emp *model.Employee) (*model.Employee, error) {
	args := m.Called(ctx, emp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) Update(ctx context.Context, id string, params repository.EmployeeUpdateParams) (*model.Employee, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockEmployeeRepo) Count(ctx context.Context) (int, int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1), args.Error(2)
}

type mockRunConfigRepo struct {
	mock.Mock
}

func (m *mockRunConfigRepo) Get(ctx context.Context) (*model.RunConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RunConfig), args.Error(1)
}

func (m *mockRunConfigRepo) Replace(ctx context.Context, cfg *model.RunConfig) (*model.RunConfig, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RunConfig), args.Error(1)
}

type mockOperationLogRepo struct {
	mock.Mock
}

func (m *mockOperationLogRepo) Create(ctx context.Context, entry *model.OperationLog) (*model.OperationLog, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OperationLog), args.Error(1)
}

func (m *mockOperationLogRepo) List(ctx context.Context, params repository.OperationLogListParams) ([]*model.OperationLog, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.OperationLog), args.Error(1)
}

func (m *mockOperationLogRepo) LastSuccessAt(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *mockOperationLogRepo) SumHoursDeltaSince(ctx context.Context, since time.Time) (float64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(float64), args.Error(1)
}

type mockBackupRepo struct {
	mock.Mock
}

func (m *mockBackupRepo) Create(ctx context.Context, b *model.Backup) (*model.Backup, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Backup), args.Error(1)
}

func (m *mockBackupRepo) List(ctx context.Context, params repository.BackupListParams) ([]*model.Backup, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Backup), args.Error(1)
}

func (m *mockBackupRepo) GetByID(ctx context.Context, id string) (*model.Backup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Backup), args.Error(1)
}

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) GetUser(ctx context.Context, userID string) (*model.ProviderUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProviderUser), args.Error(1)
}

// --- Helper ---

func newTestRouter() (*gin.Engine, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	return r, api
}
