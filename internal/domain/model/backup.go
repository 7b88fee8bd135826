package model

import "time"

// Backup はワーカーが更新前に保存するタイムエントリのスナップショット。
// Data は不透明な JSON テキストとして保存し、単体取得時のみパースする。
type Backup struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Date      time.Time `json:"-" db:"date"`
	Filename  string    `json:"filename" db:"filename"`
	Data      string    `json:"-" db:"data"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
