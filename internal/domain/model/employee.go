package model

import "time"

// Employee は時間倍率ジョブの対象となる従業員を表す。
// ID は Everhour 側の識別子をそのまま主キーとして使用する（ローカル採番はしない）。
type Employee struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      *string   `json:"email" db:"email"`
	Multiplier float64   `json:"multiplier" db:"multiplier"`
	Active     bool      `json:"active" db:"active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// DefaultMultiplier は従業員登録時に設定される倍率の初期値。
const DefaultMultiplier = 1.5
