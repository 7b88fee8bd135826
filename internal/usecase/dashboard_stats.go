package usecase

import (
	"context"
	"time"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// DashboardStatsUseCase はダッシュボード統計集計ユースケース。
type DashboardStatsUseCase struct {
	employeeRepo repository.EmployeeRepository
	configRepo   repository.RunConfigRepository
	logRepo      repository.OperationLogRepository
	now          func() time.Time
}

// NewDashboardStatsUseCase は新しい DashboardStatsUseCase を作成する。
func NewDashboardStatsUseCase(
	employeeRepo repository.EmployeeRepository,
	configRepo repository.RunConfigRepository,
	logRepo repository.OperationLogRepository,
) *DashboardStatsUseCase {
	return &DashboardStatsUseCase{
		employeeRepo: employeeRepo,
		configRepo:   configRepo,
		logRepo:      logRepo,
		now:          time.Now,
	}
}

// DashboardStats は管理画面トップに表示する集計値。
type DashboardStats struct {
	TotalEmployees          int        `json:"total_employees"`
	ActiveEmployees         int        `json:"active_employees"`
	LastRun                 *time.Time `json:"last_run"`
	NextRun                 time.Time  `json:"next_run"`
	TotalHoursAddedThisWeek float64    `json:"total_hours_added_this_week"`
	TotalHoursAddedMonth    float64    `json:"total_hours_added_this_month"`
}

// Execute は従業員数、直近/次回の実行時刻、期間別の加算時間を集計する。
func (uc *DashboardStatsUseCase) Execute(ctx context.Context) (*DashboardStats, error) {
	total, active, err := uc.employeeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	lastRun, err := uc.logRepo.LastSuccessAt(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()

	weekHours, err := uc.logRepo.SumHoursDeltaSince(ctx, weekStart(now))
	if err != nil {
		return nil, err
	}

	monthHours, err := uc.logRepo.SumHoursDeltaSince(ctx, monthStart(now))
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalEmployees:          total,
		ActiveEmployees:         active,
		LastRun:                 lastRun,
		NextRun:                 NextRunAt(now, cfg.RunHour, cfg.RunMinute),
		TotalHoursAddedThisWeek: weekHours,
		TotalHoursAddedMonth:    monthHours,
	}, nil
}

// NextRunAt は now より厳密に未来となる直近の実行予定時刻を返す。
// 当日の実行時刻を過ぎている（または丁度の）場合は翌日になる。
func NextRunAt(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// weekStart は now を含む週の月曜 00:00 を返す。
func weekStart(now time.Time) time.Time {
	offset := (int(now.Weekday()) + 6) % 7
	day := now.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
}

// monthStart は now を含む月の 1 日 00:00 を返す。
func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
