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

func operationLogRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "employee_id", "employee_name", "date",
		"original_hours", "updated_hours", "status", "date_parse_failed", "created_at",
	})
}

func TestOperationLogCreate_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOperationLogRepository(db)

	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 8, 23, 1, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO operation_logs`).
		WithArgs("ev-1234", "佐藤 花子", date, 8.0, 12.0, "success", false).
		WillReturnRows(operationLogRows().
			AddRow(int64(1), "ev-1234", "佐藤 花子", date, 8.0, 12.0, "success", false, createdAt))

	created, err := repo.Create(context.Background(), &model.OperationLog{
		EmployeeID:    "ev-1234",
		EmployeeName:  "佐藤 花子",
		Date:          date,
		OriginalHours: 8.0,
		UpdatedHours:  12.0,
		Status:        model.StatusSuccess,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOperationLogList_WithEmployeeFilter(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOperationLogRepository(db)

	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 8, 23, 1, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM operation_logs WHERE employee_id = \$1 ORDER BY created_at DESC LIMIT \$2 OFFSET \$3`).
		WithArgs("ev-1234", 50, 10).
		WillReturnRows(operationLogRows().
			AddRow(int64(2), "ev-1234", "佐藤 花子", date, 8.0, 12.0, "success", false, createdAt))

	logs, err := repo.List(context.Background(), repository.OperationLogListParams{
		EmployeeID: "ev-1234",
		Limit:      50,
		Offset:     10,
	})
	require.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, "ev-1234", logs[0].EmployeeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOperationLogList_DefaultLimit(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOperationLogRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM operation_logs ORDER BY created_at DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(100, 0).
		WillReturnRows(operationLogRows())

	logs, err := repo.List(context.Background(), repository.OperationLogListParams{})
	require.NoError(t, err)
	assert.Empty(t, logs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLastSuccessAt_Found(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOperationLogRepository(db)

	last := time.Date(2026, 8, 23, 1, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT MAX\(created_at\) FROM operation_logs WHERE status = \$1`).
		WithArgs(model.StatusSuccess).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(last))

	got, err := repo.LastSuccessAt(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, last, *got)
}

func TestLastSuccessAt_NoRows(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOperationLogRepository(db)

	// success 行が無いと MAX は NULL を返す
	mock.ExpectQuery(`SELECT MAX\(created_at\) FROM operation_logs WHERE status = \$1`).
		WithArgs(model.StatusSuccess).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))

	got, err := repo.LastSuccessAt(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSumHoursDeltaSince(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOperationLogRepository(db)

	since := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(updated_hours - original_hours\), 0\)`).
		WithArgs(model.StatusSuccess, since).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(12.5))

	sum, err := repo.SumHoursDeltaSince(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, 12.5, sum)
}
