package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
)

func TestSaveBackupUseCase_Execute_Success(t *testing.T) {
	mockRepo := new(MockBackupRepository)
	uc := NewSaveBackupUseCase(mockRepo)

	snapshot := json.RawMessage(`[{"id":"rec-1","time":28800}]`)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *model.Backup) bool {
		_, err := uuid.Parse(b.ID)
		return err == nil &&
			b.UserID == "ev-1234" &&
			b.Date.Equal(time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)) &&
			b.Filename == "backup_ev-1234_2026-08-20.json" &&
			b.Data == `[{"id":"rec-1","time":28800}]`
	})).Return(&model.Backup{
		ID:        "0b9f3c6e-9a5d-4a6f-8f6f-2f4a1c7d9e10",
		UserID:    "ev-1234",
		Date:      time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		Filename:  "backup_ev-1234_2026-08-20.json",
		Data:      string(snapshot),
		CreatedAt: time.Now().UTC(),
	}, nil)

	backup, err := uc.Execute(context.Background(), SaveBackupInput{
		UserID:   "ev-1234",
		Date:     "2026-08-20",
		Filename: "backup_ev-1234_2026-08-20.json",
		Data:     snapshot,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, backup.ID)
	mockRepo.AssertExpectations(t)
}

func TestSaveBackupUseCase_Execute_InvalidDate(t *testing.T) {
	mockRepo := new(MockBackupRepository)
	uc := NewSaveBackupUseCase(mockRepo)

	// バックアップの日付は復元時の照合キーなのでフォールバックせず拒否する
	backup, err := uc.Execute(context.Background(), SaveBackupInput{
		UserID: "ev-1234",
		Date:   "20/08/2026",
		Data:   json.RawMessage(`[]`),
	})

	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Nil(t, backup)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestSaveBackupUseCase_Execute_UniqueIDs(t *testing.T) {
	mockRepo := new(MockBackupRepository)
	uc := NewSaveBackupUseCase(mockRepo)

	seen := map[string]bool{}
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *model.Backup) bool {
		if seen[b.ID] {
			return false
		}
		seen[b.ID] = true
		return true
	})).Return(&model.Backup{ID: "x"}, nil).Twice()

	_, err1 := uc.Execute(context.Background(), SaveBackupInput{UserID: "u", Date: "2026-08-20", Data: json.RawMessage(`[]`)})
	_, err2 := uc.Execute(context.Background(), SaveBackupInput{UserID: "u", Date: "2026-08-20", Data: json.RawMessage(`[]`)})

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	mockRepo.AssertExpectations(t)
}
