package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/model"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/domain/repository"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/infra/config"
)

var (
	// ErrUserNotFound は Everhour にユーザーが存在しない場合のエラー。
	ErrUserNotFound = fmt.Errorf("user not found in everhour: %w", repository.ErrNotFound)

	// ErrUpstreamUnavailable は Everhour API に到達できない、
	// またはサーバーエラーを返した場合のエラー。単なる不在とは区別する。
	ErrUpstreamUnavailable = fmt.Errorf("everhour unavailable: %w", repository.ErrUnavailable)
)

// EverhourClient は Everhour API と通信するゲートウェイ。
// TimeTrackingProvider インターフェースを実装する。
type EverhourClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewEverhourClient は新しい EverhourClient を作成する。
func NewEverhourClient(cfg config.EverhourConfig) *EverhourClient {
	return &EverhourClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetUser は Everhour API からユーザー情報を取得する。
// 4xx は ErrUserNotFound、5xx と通信エラーは ErrUpstreamUnavailable に対応付ける。
func (c *EverhourClient) GetUser(ctx context.Context, userID string) (*model.ProviderUser, error) {
	reqURL := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build everhour request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("everhour request failed: %w", ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// 以降でデコード
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, fmt.Errorf("everhour user %s: %w", userID, ErrUserNotFound)
	default:
		return nil, fmt.Errorf("everhour returned %d: %w", resp.StatusCode, ErrUpstreamUnavailable)
	}

	var user model.ProviderUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode everhour response: %w", err)
	}
	if user.ID == "" {
		user.ID = userID
	}

	return &user, nil
}

// Healthy は Everhour API への接続を確認する。
// 認証エラーでも到達できていれば healthy とみなす。
func (c *EverhourClient) Healthy(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/me", nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("everhour unreachable: %w", err)
	}
	resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("everhour returned %d", resp.StatusCode)
	}
	return nil
}
