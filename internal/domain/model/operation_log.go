package model

import "time"

// オペレーションログの status 値。ワーカーが独自の値を書くこともあるため
// 閉じた列挙としては扱わない。
const (
	StatusSuccess       = "success"
	StatusFailure       = "failure"
	StatusManualTrigger = "manual_trigger"
)

// OperationLog は従業員×日付ごとの時間更新試行を表す追記専用レコード。
// EmployeeName は記録時点のスナップショットであり、従業員削除後も保持される。
type OperationLog struct {
	ID              int64     `json:"id" db:"id"`
	EmployeeID      string    `json:"employee_id" db:"employee_id"`
	EmployeeName    string    `json:"employee_name" db:"employee_name"`
	Date            time.Time `json:"-" db:"date"`
	OriginalHours   float64   `json:"original_hours" db:"original_hours"`
	UpdatedHours    float64   `json:"updated_hours" db:"updated_hours"`
	Status          string    `json:"status" db:"status"`
	DateParseFailed bool      `json:"date_parse_failed" db:"date_parse_failed"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// HoursDelta は追加された時間数を返す。
func (l *OperationLog) HoursDelta() float64 {
	return l.UpdatedHours - l.OriginalHours
}
