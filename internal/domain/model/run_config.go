package model

import "time"

// RunConfigID は単一行設定の固定 ID。スキーマ側の CHECK (id = 1) と対になる。
const RunConfigID = 1

// RunConfig はスケジュールワーカーの実行設定を表すシングルトンレコード。
// 起動時にデフォルト値（1:00、dry_run=true）で一度だけ作成され、
// 以後は全フィールドをまとめて置き換える。
type RunConfig struct {
	ID                int       `json:"-" db:"id"`
	RunHour           int       `json:"run_hour" db:"run_hour"`
	RunMinute         int       `json:"run_minute" db:"run_minute"`
	DefaultMultiplier float64   `json:"default_multiplier" db:"default_multiplier"`
	DryRun            bool      `json:"dry_run" db:"dry_run"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}
