package repository

import "errors"

var (
	// ErrNotFound は対象レコードが存在しない場合のエラー。
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate は一意制約に違反した場合のエラー。
	ErrDuplicate = errors.New("duplicate record")

	// ErrUnavailable は外部依存先に到達できない場合のエラー。
	ErrUnavailable = errors.New("upstream unavailable")
)
