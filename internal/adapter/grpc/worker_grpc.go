package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/usecase"
)

const dateLayout = "2006-01-02"

// RecordOperationExecutor は RecordOperationUseCase の実行インターフェース。
type RecordOperationExecutor interface {
	Execute(ctx context.Context, input usecase.RecordOperationInput) (*model.OperationLog, error)
}

// SaveBackupExecutor は SaveBackupUseCase の実行インターフェース。
type SaveBackupExecutor interface {
	Execute(ctx context.Context, input usecase.SaveBackupInput) (*model.Backup, error)
}

// GetRunConfigExecutor は GetRunConfigUseCase の実行インターフェース。
type GetRunConfigExecutor interface {
	Execute(ctx context.Context) (*model.RunConfig, error)
}

// WorkerGRPCService は gRPC WorkerService の実装。
// REST と同じユースケースを共有し、ワーカーからのコールバック専用の入口になる。
type WorkerGRPCService struct {
	recordOperationUC RecordOperationExecutor
	saveBackupUC      SaveBackupExecutor
	getRunConfigUC    GetRunConfigExecutor
}

// NewWorkerGRPCService は WorkerGRPCService のコンストラクタ。
func NewWorkerGRPCService(
	recordOperationUC RecordOperationExecutor,
	saveBackupUC SaveBackupExecutor,
	getRunConfigUC GetRunConfigExecutor,
) *WorkerGRPCService {
	return &WorkerGRPCService{
		recordOperationUC: recordOperationUC,
		saveBackupUC:      saveBackupUC,
		getRunConfigUC:    getRunConfigUC,
	}
}

// RecordOperation はオペレーションログを追記する。
func (s *WorkerGRPCService) RecordOperation(ctx context.Context, req *RecordOperationRequest) (*RecordOperationResponse, error) {
	if req.EmployeeId == "" {
		return nil, fmt.Errorf("rpc error: code = InvalidArgument desc = employee_id is required")
	}

	entry, err := s.recordOperationUC.Execute(ctx, usecase.RecordOperationInput{
		EmployeeID:    req.EmployeeId,
		EmployeeName:  req.EmployeeName,
		Date:          req.Date,
		OriginalHours: req.OriginalHours,
		UpdatedHours:  req.UpdatedHours,
		Status:        req.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("rpc error: code = Internal desc = %v", err)
	}

	return &RecordOperationResponse{Entry: entryToPb(entry)}, nil
}

// SaveBackup は更新前スナップショットを保存する。
func (s *WorkerGRPCService) SaveBackup(ctx context.Context, req *SaveBackupRequest) (*SaveBackupResponse, error) {
	if req.UserId == "" {
		return nil, fmt.Errorf("rpc error: code = InvalidArgument desc = user_id is required")
	}

	backup, err := s.saveBackupUC.Execute(ctx, usecase.SaveBackupInput{
		UserID:   req.UserId,
		Date:     req.Date,
		Filename: req.Filename,
		Data:     req.Data,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRequest) {
			return nil, fmt.Errorf("rpc error: code = InvalidArgument desc = date must be YYYY-MM-DD")
		}
		return nil, fmt.Errorf("rpc error: code = Internal desc = %v", err)
	}

	return &SaveBackupResponse{
		Id:        backup.ID,
		UserId:    backup.UserID,
		Date:      backup.Date.Format(dateLayout),
		Filename:  backup.Filename,
		CreatedAt: timeToTimestamp(backup.CreatedAt),
	}, nil
}

// GetRunConfig は実行設定を返す。ワーカーが自身のスケジュールで再読込する。
func (s *WorkerGRPCService) GetRunConfig(ctx context.Context, req *GetRunConfigRequest) (*GetRunConfigResponse, error) {
	cfg, err := s.getRunConfigUC.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("rpc error: code = Internal desc = %v", err)
	}

	return &GetRunConfigResponse{
		RunHour:           int32(cfg.RunHour),
		RunMinute:         int32(cfg.RunMinute),
		DefaultMultiplier: cfg.DefaultMultiplier,
		DryRun:            cfg.DryRun,
	}, nil
}

// --- ヘルパー関数 ---

func entryToPb(entry *model.OperationLog) *PbOperationLogEntry {
	return &PbOperationLogEntry{
		Id:              entry.ID,
		EmployeeId:      entry.EmployeeID,
		EmployeeName:    entry.EmployeeName,
		Date:            entry.Date.Format(dateLayout),
		OriginalHours:   entry.OriginalHours,
		UpdatedHours:    entry.UpdatedHours,
		Status:          entry.Status,
		DateParseFailed: entry.DateParseFailed,
		CreatedAt:       timeToTimestamp(entry.CreatedAt),
	}
}

func timeToTimestamp(t time.Time) *Timestamp {
	return &Timestamp{
		Seconds: t.Unix(),
		Nanos:   int32(t.Nanosecond()),
	}
}
