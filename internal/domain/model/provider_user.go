package model

// ProviderUser はタイムトラッキングプロバイダーが返すユーザー情報のうち
// 従業員登録に利用する部分。
type ProviderUser struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
}
