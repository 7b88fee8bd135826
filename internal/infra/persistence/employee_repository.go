package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
)

// uniqueViolation は PostgreSQL の一意制約違反エラーコード。
const uniqueViolation = "23505"

// EmployeeRepositoryImpl は EmployeeRepository の PostgreSQL 実装。
type EmployeeRepositoryImpl struct {
	db *DB
}

// NewEmployeeRepository は新しい EmployeeRepositoryImpl を作成する。
func NewEmployeeRepository(db *DB) *EmployeeRepositoryImpl {
	return &EmployeeRepositoryImpl{db: db}
}

const employeeColumns = "id, name, email, multiplier, active, created_at"

func scanEmployee(row interface {
	Scan(dest ...interface{}) error
}) (*model.Employee, error) {
	var emp model.Employee
	err := row.Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Multiplier, &emp.Active, &emp.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// List は全従業員を名前順で取得する。
func (r *EmployeeRepositoryImpl) List(ctx context.Context) ([]*model.Employee, error) {
	query := fmt.Sprintf("SELECT %s FROM employees ORDER BY name", employeeColumns)

	rows, err := r.db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []*model.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}

	return employees, nil
}

// GetByID は ID で従業員を取得する。
func (r *EmployeeRepositoryImpl) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	query := fmt.Sprintf("SELECT %s FROM employees WHERE id = $1", employeeColumns)

	emp, err := scanEmployee(r.db.conn.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("employee %s: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// Create は従業員を作成し、サーバー採番の created_at を含む行を返す。
func (r *EmployeeRepositoryImpl) Create(ctx context.Context, emp *model.Employee) (*model.Employee, error) {
	query := fmt.Sprintf(`INSERT INTO employees (id, name, email, multiplier, active)
	           VALUES ($1, $2, $3, $4, $5)
	           RETURNING %s`, employeeColumns)

	created, err := scanEmployee(r.db.conn.QueryRowContext(ctx, query,
		emp.ID, emp.Name, emp.Email, emp.Multiplier, emp.Active,
	))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, fmt.Errorf("employee %s: %w", emp.ID, repository.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to insert employee: %w", err)
	}

	return created, nil
}

// Update は指定されたフィールドのみを更新し、更新後の行を返す。
// 動的な SQL 組み立てはせず、COALESCE で未指定フィールドを現在値のまま保つ。
func (r *EmployeeRepositoryImpl) Update(ctx context.Context, id string, params repository.EmployeeUpdateParams) (*model.Employee, error) {
	query := fmt.Sprintf(`UPDATE employees
	           SET multiplier = COALESCE($1, multiplier),
	               active     = COALESCE($2, active)
	           WHERE id = $3
	           RETURNING %s`, employeeColumns)

	var multiplier sql.NullFloat64
	if params.Multiplier != nil {
		multiplier = sql.NullFloat64{Float64: *params.Multiplier, Valid: true}
	}
	var active sql.NullBool
	if params.Active != nil {
		active = sql.NullBool{Bool: *params.Active, Valid: true}
	}

	emp, err := scanEmployee(r.db.conn.QueryRowContext(ctx, query, multiplier, active, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("employee %s: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return emp, nil
}

// Delete は従業員を削除する。
func (r *EmployeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	result, err := r.db.conn.ExecContext(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("employee %s: %w", id, repository.ErrNotFound)
	}

	return nil
}

// Count は総数と active な従業員数を返す。
func (r *EmployeeRepositoryImpl) Count(ctx context.Context) (int, int, error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE active) FROM employees`

	var total, active int
	if err := r.db.conn.QueryRowContext(ctx, query).Scan(&total, &active); err != nil {
		return 0, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return total, active, nil
}
