package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/usecase"
)

// ConfigHandler は実行設定関連の REST ハンドラー。
type ConfigHandler struct {
	getRunConfigUC     *usecase.GetRunConfigUseCase
	replaceRunConfigUC *usecase.ReplaceRunConfigUseCase
}

// NewConfigHandler は新しい ConfigHandler を作成する。
func NewConfigHandler(
	getRunConfigUC *usecase.GetRunConfigUseCase,
	replaceRunConfigUC *usecase.ReplaceRunConfigUseCase,
) *ConfigHandler {
	return &ConfigHandler{
		getRunConfigUC:     getRunConfigUC,
		replaceRunConfigUC: replaceRunConfigUC,
	}
}

// GetConfig は GET /api/config のハンドラー。
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	cfg, err := h.getRunConfigUC.Execute(c.Request.Context())
	if err != nil {
		WriteError(c, http.StatusInternalServerError, "OPS_DASH_INTERNAL_ERROR",
			"実行設定の取得に失敗しました")
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// ReplaceConfig は PUT /api/config のハンドラー。
func (h *ConfigHandler) ReplaceConfig(c *gin.Context) {
	var input usecase.ReplaceRunConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		WriteError(c, http.StatusBadRequest, "OPS_DASH_VALIDATION_FAILED",
			"リクエストのバリデーションに失敗しました")
		return
	}

	cfg, err := h.replaceRunConfigUC.Execute(c.Request.Context(), input)
	if err != nil {
		WriteError(c, http.StatusInternalServerError, "OPS_DASH_INTERNAL_ERROR",
			"実行設定の更新に失敗しました")
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// RegisterRoutes はルートを登録する。
func (h *ConfigHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/config", h.GetConfig)
	api.PUT("/config", h.ReplaceConfig)
}
