package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// TriggerUpdateUseCase は手動トリガー記録ユースケース。
// ワーカーの起動は行わない。オペレーターの要求を台帳に残すだけであり、
// 実際の時間更新はワーカー自身のスケジュールでのみ実行される。
type TriggerUpdateUseCase struct {
	logRepo      repository.OperationLogRepository
	employeeRepo repository.EmployeeRepository
	now          func() time.Time
}

// NewTriggerUpdateUseCase は新しい TriggerUpdateUseCase を作成する。
func NewTriggerUpdateUseCase(
	logRepo repository.OperationLogRepository,
	employeeRepo repository.EmployeeRepository,
) *TriggerUpdateUseCase {
	return &TriggerUpdateUseCase{
		logRepo:      logRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// Execute は status = manual_trigger のゼロ差分エントリを追記する。
// employeeID が登録済みであれば名前のスナップショットを残す。
func (uc *TriggerUpdateUseCase) Execute(ctx context.Context, employeeID, dateStr string) (*model.OperationLog, error) {
	date, parseFailed := parseEntryDate(dateStr, uc.now())

	name := employeeID
	if employeeID != "" {
		emp, err := uc.employeeRepo.GetByID(ctx, employeeID)
		switch {
		case err == nil:
			name = emp.Name
		case errors.Is(err, repository.ErrNotFound):
			// 未登録でも記録は残す
		default:
			return nil, err
		}
	}

	entry := &model.OperationLog{
		EmployeeID:      employeeID,
		EmployeeName:    name,
		Date:            date,
		Status:          model.StatusManualTrigger,
		DateParseFailed: parseFailed,
	}

	return uc.logRepo.Create(ctx, entry)
}
