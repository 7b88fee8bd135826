package grpc

import "encoding/json"

// proto 生成コードが未生成のため、worker_service.proto に対応する Go 構造体を
// 手動定義する。buf generate 後にこのファイルは生成コードに置き換える。

// Timestamp は protobuf Timestamp 互換型。
type Timestamp struct {
	Seconds int64 `json:"seconds"`
	Nanos   int32 `json:"nanos"`
}

// --- OperationLog ---

// PbOperationLogEntry は proto の OperationLogEntry に対応する構造体。
type PbOperationLogEntry struct {
	Id              int64      `json:"id"`
	EmployeeId      string     `json:"employee_id"`
	EmployeeName    string     `json:"employee_name"`
	Date            string     `json:"date"`
	OriginalHours   float64    `json:"original_hours"`
	UpdatedHours    float64    `json:"updated_hours"`
	Status          string     `json:"status"`
	DateParseFailed bool       `json:"date_parse_failed"`
	CreatedAt       *Timestamp `json:"created_at,omitempty"`
}

// --- RecordOperation ---

// RecordOperationRequest はオペレーション記録リクエスト。
type RecordOperationRequest struct {
	EmployeeId    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	Date          string  `json:"date"`
	OriginalHours float64 `json:"original_hours"`
	UpdatedHours  float64 `json:"updated_hours"`
	Status        string  `json:"status"`
}

// RecordOperationResponse はオペレーション記録レスポンス。
type RecordOperationResponse struct {
	Entry *PbOperationLogEntry `json:"entry"`
}

// --- SaveBackup ---

// SaveBackupRequest はバックアップ保存リクエスト。
type SaveBackupRequest struct {
	UserId   string          `json:"user_id"`
	Date     string          `json:"date"`
	Filename string          `json:"filename"`
	Data     json.RawMessage `json:"data"`
}

// SaveBackupResponse はバックアップ保存レスポンス。
type SaveBackupResponse struct {
	Id        string     `json:"id"`
	UserId    string     `json:"user_id"`
	Date      string     `json:"date"`
	Filename  string     `json:"filename"`
	CreatedAt *Timestamp `json:"created_at,omitempty"`
}

// --- GetRunConfig ---

// GetRunConfigRequest は実行設定取得リクエスト。
type GetRunConfigRequest struct{}

// GetRunConfigResponse は実行設定取得レスポンス。
type GetRunConfigResponse struct {
	RunHour           int32   `json:"run_hour"`
	RunMinute         int32   `json:"run_minute"`
	DefaultMultiplier float64 `json:"default_multiplier"`
	DryRun            bool    `json:"dry_run"`
}
