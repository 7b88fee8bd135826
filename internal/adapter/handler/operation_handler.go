package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/adapter/presenter"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/usecase"
)

// OperationHandler はオペレーションログ関連の REST ハンドラー。
type OperationHandler struct {
	listOperationsUC  *usecase.ListOperationsUseCase
	recordOperationUC *usecase.RecordOperationUseCase
	triggerUpdateUC   *usecase.TriggerUpdateUseCase
}

// NewOperationHandler は新しい OperationHandler を作成する。
func NewOperationHandler(
	listOperationsUC *usecase.ListOperationsUseCase,
	recordOperationUC *usecase.RecordOperationUseCase,
	triggerUpdateUC *usecase.TriggerUpdateUseCase,
) *OperationHandler {
	return &OperationHandler{
		listOperationsUC:  listOperationsUC,
		recordOperationUC: recordOperationUC,
		triggerUpdateUC:   triggerUpdateUC,
	}
}

// ListOperations は GET /api/logs のハンドラー。
func (h *OperationHandler) ListOperations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	employeeID := c.Query("employee_id")

	logs, err := h.listOperationsUC.Execute(c.Request.Context(), usecase.ListOperationsInput{
		Limit:      limit,
		Offset:     offset,
		EmployeeID: employeeID,
	})
	if err != nil {
		WriteError(c, http.StatusInternalServerError, "OPS_DASH_INTERNAL_ERROR",
			"オペレーションログの取得に失敗しました")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs": presenter.NewOperationLogListResponse(logs),
	})
}

// RecordOperation は POST /api/logs/record のハンドラー。
// ワーカーからのコールバックで、更新結果を台帳に追記する。
func (h *OperationHandler) RecordOperation(c *gin.Context) {
	var input usecase.RecordOperationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		WriteError(c, http.StatusBadRequest, "OPS_DASH_VALIDATION_FAILED",
			"リクエストのバリデーションに失敗しました")
		return
	}

	entry, err := h.recordOperationUC.Execute(c.Request.Context(), input)
	if err != nil {
		WriteError(c, http.StatusInternalServerError, "OPS_DASH_INTERNAL_ERROR",
			"オペレーションログの記録に失敗しました")
		return
	}

	c.JSON(http.StatusCreated, presenter.NewOperationLogResponse(entry))
}

// TriggerUpdate は POST /api/trigger-update のハンドラー。
// ワーカーを起動するわけではなく、オペレーターの要求を台帳に記録するだけ。
func (h *OperationHandler) TriggerUpdate(c *gin.Context) {
	employeeID := c.Query("employee_id")
	date := c.Query("date")

	entry, err := h.triggerUpdateUC.Execute(c.Request.Context(), employeeID, date)
	if err != nil {
		WriteError(c, http.StatusInternalServerError, "OPS_DASH_INTERNAL_ERROR",
			"手動トリガーの記録に失敗しました")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "手動トリガーを記録しました。次回のワーカー実行時に処理されます",
		"entry":   presenter.NewOperationLogResponse(entry),
	})
}

// RegisterRoutes はルートを登録する。
func (h *OperationHandler) RegisterRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.ListOperations)
		logs.POST("/record", h.RecordOperation)
	}
	api.POST("/trigger-update", h.TriggerUpdate)
}
