package usecase

import "errors"

var (
	// ErrEmployeeNotFound は従業員が見つからない場合のエラー。
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrEmployeeExists は従業員 ID がすでに登録済みの場合のエラー。
	ErrEmployeeExists = errors.New("employee already exists")

	// ErrInvalidRequest は必須フィールドの欠落や不正な日付のエラー。
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstreamUnavailable はタイムトラッキングプロバイダーに到達できない場合のエラー。
	// プロバイダー側の「存在しない」とは区別する。
	ErrUpstreamUnavailable = errors.New("time tracking provider unavailable")

	// ErrBackupNotFound はバックアップが見つからない場合のエラー。
	ErrBackupNotFound = errors.New("backup not found")

	// ErrCorruptBackupData は保存済みバックアップが JSON としてパースできない場合のエラー。
	ErrCorruptBackupData = errors.New("backup data is not valid JSON")
)
