package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

func backupRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "date", "filename", "data", "created_at"})
}

func backupMetaRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "date", "filename", "created_at"})
}

func TestBackupCreate_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBackupRepository(db)

	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 8, 23, 1, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO backups`).
		WithArgs("backup-1", "ev-1234", date, "backup_ev-1234_2026-08-20.json", `[{"a":1}]`).
		WillReturnRows(backupRows().
			AddRow("backup-1", "ev-1234", date, "backup_ev-1234_2026-08-20.json", `[{"a":1}]`, createdAt))

	created, err := repo.Create(context.Background(), &model.Backup{
		ID:       "backup-1",
		UserID:   "ev-1234",
		Date:     date,
		Filename: "backup_ev-1234_2026-08-20.json",
		Data:     `[{"a":1}]`,
	})
	require.NoError(t, err)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBackupList_NoFilter(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBackupRepository(db)

	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 8, 23, 1, 0, 0, 0, time.UTC)

	// 一覧は data 列を含まない
	mock.ExpectQuery(`SELECT id, user_id, date, filename, created_at FROM backups ORDER BY created_at DESC LIMIT \$1`).
		WithArgs(50).
		WillReturnRows(backupMetaRows().
			AddRow("backup-1", "ev-1234", date, "backup_ev-1234_2026-08-20.json", createdAt))

	backups, err := repo.List(context.Background(), repository.BackupListParams{})
	require.NoError(t, err)
	assert.Len(t, backups, 1)
	assert.Empty(t, backups[0].Data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBackupList_UserAndDateFilter(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBackupRepository(db)

	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, user_id, date, filename, created_at FROM backups WHERE user_id = \$1 AND date = \$2 ORDER BY created_at DESC LIMIT \$3`).
		WithArgs("ev-1234", date, 20).
		WillReturnRows(backupMetaRows())

	backups, err := repo.List(context.Background(), repository.BackupListParams{
		UserID: "ev-1234",
		Date:   &date,
		Limit:  20,
	})
	require.NoError(t, err)
	assert.Empty(t, backups)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBackupGetByID_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBackupRepository(db)

	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 8, 23, 1, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, user_id, date, filename, data, created_at FROM backups WHERE id = \$1`).
		WithArgs("backup-1").
		WillReturnRows(backupRows().
			AddRow("backup-1", "ev-1234", date, "backup_ev-1234_2026-08-20.json", `{"a":1}`, createdAt))

	b, err := repo.GetByID(context.Background(), "backup-1")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, b.Data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBackupGetByID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBackupRepository(db)

	mock.ExpectQuery(`SELECT id, user_id, date, filename, data, created_at FROM backups WHERE id = \$1`).
		WithArgs("nonexistent").
		WillReturnRows(backupRows())

	b, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, b)
}
