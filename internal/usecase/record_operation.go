package usecase

import (
	"context"
	"time"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// entryDateLayout はワーカーが送る日付の形式。
const entryDateLayout = "2006-01-02"

// OperationEventPublisher はオペレーション記録イベントの非同期配信インターフェース。
type OperationEventPublisher interface {
	Publish(ctx context.Context, entry *model.OperationLog) error
}

// RecordOperationUseCase はオペレーションログ追記ユースケース。
// ログの記録はワーカーをブロックしてはならないため、日付のパース失敗では
// 拒否せず当日日付で記録し、date_parse_failed フラグで観測可能にする。
type RecordOperationUseCase struct {
	logRepo   repository.OperationLogRepository
	publisher OperationEventPublisher
	now       func() time.Time
}

// NewRecordOperationUseCase は新しい RecordOperationUseCase を作成する。
func NewRecordOperationUseCase(
	logRepo repository.OperationLogRepository,
	publisher OperationEventPublisher,
) *RecordOperationUseCase {
	return &RecordOperationUseCase{
		logRepo:   logRepo,
		publisher: publisher,
		now:       time.Now,
	}
}

// RecordOperationInput はログ追記の入力パラメータ。
type RecordOperationInput struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	Date          string  `json:"date"`
	OriginalHours float64 `json:"original_hours"`
	UpdatedHours  float64 `json:"updated_hours"`
	Status        string  `json:"status"`
}

// Execute はログエントリを追記する。
// 追記後のイベント配信に失敗しても記録自体は成功として扱う。
func (uc *RecordOperationUseCase) Execute(ctx context.Context, input RecordOperationInput) (*model.OperationLog, error) {
	date, parseFailed := parseEntryDate(input.Date, uc.now())

	entry := &model.OperationLog{
		EmployeeID:      input.EmployeeID,
		EmployeeName:    input.EmployeeName,
		Date:            date,
		OriginalHours:   input.OriginalHours,
		UpdatedHours:    input.UpdatedHours,
		Status:          input.Status,
		DateParseFailed: parseFailed,
	}

	created, err := uc.logRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}

	if uc.publisher != nil {
		_ = uc.publisher.Publish(ctx, created)
	}

	return created, nil
}

// parseEntryDate は YYYY-MM-DD をパースし、失敗時は now の日付へフォールバックする。
func parseEntryDate(s string, now time.Time) (time.Time, bool) {
	d, err := time.Parse(entryDateLayout, s)
	if err != nil {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return d, false
}
