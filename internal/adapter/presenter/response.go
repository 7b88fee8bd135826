package presenter

import (
	"encoding/json"
	"time"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
)

// dateLayout はレスポンス中の日付表現。
const dateLayout = "2006-01-02"

// OperationLogResponse はオペレーションログの API レスポンス。
type OperationLogResponse struct {
	ID              int64     `json:"id"`
	EmployeeID      string    `json:"employee_id"`
	EmployeeName    string    `json:"employee_name"`
	Date            string    `json:"date"`
	OriginalHours   float64   `json:"original_hours"`
	UpdatedHours    float64   `json:"updated_hours"`
	Status          string    `json:"status"`
	DateParseFailed bool      `json:"date_parse_failed"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewOperationLogResponse は単一ログをレスポンス形式へ変換する。
func NewOperationLogResponse(entry *model.OperationLog) OperationLogResponse {
	return OperationLogResponse{
		ID:              entry.ID,
		EmployeeID:      entry.EmployeeID,
		EmployeeName:    entry.EmployeeName,
		Date:            entry.Date.Format(dateLayout),
		OriginalHours:   entry.OriginalHours,
		UpdatedHours:    entry.UpdatedHours,
		Status:          entry.Status,
		DateParseFailed: entry.DateParseFailed,
		CreatedAt:       entry.CreatedAt,
	}
}

// NewOperationLogListResponse はログのスライスをレスポンス形式へ変換する。
func NewOperationLogListResponse(entries []*model.OperationLog) []OperationLogResponse {
	responses := make([]OperationLogResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, NewOperationLogResponse(entry))
	}
	return responses
}

// BackupMetadataResponse はバックアップ一覧（data を含まない）の API レスポンス。
type BackupMetadataResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBackupMetadataResponse は単一バックアップのメタデータをレスポンス形式へ変換する。
func NewBackupMetadataResponse(b *model.Backup) BackupMetadataResponse {
	return BackupMetadataResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		Date:      b.Date.Format(dateLayout),
		Filename:  b.Filename,
		CreatedAt: b.CreatedAt,
	}
}

// NewBackupListResponse はバックアップのスライスをレスポンス形式へ変換する。
func NewBackupListResponse(backups []*model.Backup) []BackupMetadataResponse {
	responses := make([]BackupMetadataResponse, 0, len(backups))
	for _, b := range backups {
		responses = append(responses, NewBackupMetadataResponse(b))
	}
	return responses
}

// BackupDetailResponse はパース済みスナップショットを含む単体取得のレスポンス。
type BackupDetailResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Date      string          `json:"date"`
	Filename  string          `json:"filename"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewBackupDetailResponse はバックアップ詳細をレスポンス形式へ変換する。
func NewBackupDetailResponse(b *model.Backup, data json.RawMessage) BackupDetailResponse {
	return BackupDetailResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		Date:      b.Date.Format(dateLayout),
		Filename:  b.Filename,
		Data:      data,
		CreatedAt: b.CreatedAt,
	}
}
