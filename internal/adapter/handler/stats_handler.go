package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/usecase"
)

// StatsHandler はダッシュボード統計の REST ハンドラー。
type StatsHandler struct {
	dashboardStatsUC *usecase.DashboardStatsUseCase
}

// NewStatsHandler は新しい StatsHandler を作成する。
func NewStatsHandler(dashboardStatsUC *usecase.DashboardStatsUseCase) *StatsHandler {
	return &StatsHandler{dashboardStatsUC: dashboardStatsUC}
}

// GetStats は GET /api/stats のハンドラー。
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardStatsUC.Execute(c.Request.Context())
	if err != nil {
		WriteError(c, http.StatusInternalServerError, "OPS_DASH_INTERNAL_ERROR",
			"統計情報の集計に失敗しました")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// RegisterRoutes はルートを登録する。
func (h *StatsHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/stats", h.GetStats)
}
