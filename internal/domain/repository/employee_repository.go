package repository

import (
	"context"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
)

// EmployeeRepository は従業員レコードの永続化インターフェース。
type EmployeeRepository interface {
	// List は全従業員を名前順で取得する。
	List(ctx context.Context) ([]*model.Employee, error)

	// GetByID は ID で従業員を取得する。存在しない場合は ErrNotFound。
	GetByID(ctx context.Context, id string) (*model.Employee, error)

	// Create は従業員を作成し、サーバー採番の created_at を含む行を返す。
	// ID が重複している場合は ErrDuplicate。
	Create(ctx context.Context, emp *model.Employee) (*model.Employee, error)

	// Update は指定されたフィールドのみを更新し、更新後の行を返す。
	// 対象行が無い場合は ErrNotFound。
	Update(ctx context.Context, id string, params EmployeeUpdateParams) (*model.Employee, error)

	// Delete は従業員を削除する。対象行が無い場合は ErrNotFound。
	// 過去のオペレーションログには波及しない。
	Delete(ctx context.Context, id string) error

	// Count は総数と active な従業員数を返す。
	Count(ctx context.Context) (total int, active int, err error)
}

// EmployeeUpdateParams は部分更新の対象フィールド。nil のフィールドは変更しない。
type EmployeeUpdateParams struct {
	Multiplier *float64
	Active     *bool
}

// IsEmpty はどのフィールドも指定されていない場合に true を返す。
func (p EmployeeUpdateParams) IsEmpty() bool {
	return p.Multiplier == nil && p.Active == nil
}
