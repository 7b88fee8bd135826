package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/adapter/presenter"
	"github.com/timemult-platform/ops-server-go-dashboard/internal/usecase"
)

// BackupHandler はバックアップアーカイブ関連の REST ハンドラー。
type BackupHandler struct {
	saveBackupUC  *usecase.SaveBackupUseCase
	listBackupsUC *usecase.ListBackupsUseCase
	getBackupUC   *usecase.GetBackupUseCase
}

// NewBackupHandler は新しい BackupHandler を作成する。
func NewBackupHandler(
	saveBackupUC *usecase.SaveBackupUseCase,
	listBackupsUC *usecase.ListBackupsUseCase,
	getBackupUC *usecase.GetBackupUseCase,
) *BackupHandler {
	return &BackupHandler{
		saveBackupUC:  saveBackupUC,
		listBackupsUC: listBackupsUC,
		getBackupUC:   getBackupUC,
	}
}

// SaveBackup は POST /api/backups のハンドラー。
// ワーカーからのコールバックで、更新前スナップショットを保存する。
func (h *BackupHandler) SaveBackup(c *gin.Context) {
	var input usecase.SaveBackupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		WriteError(c, http.StatusBadRequest, "OPS_DASH_VALIDATION_FAILED",
			"リクエストのバリデーションに失敗しました")
		return
	}

	backup, err := h.saveBackupUC.Execute(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRequest) {
			WriteError(c, http.StatusBadRequest, "OPS_DASH_VALIDATION_FAILED",
				"date は YYYY-MM-DD 形式で指定してください")
			return
		}
		WriteError(c, http.StatusInternalServerError, "OPS_DASH_INTERNAL_ERROR",
			"バックアップの保存に失敗しました")
		return
	}

	c.JSON(http.StatusCreated, presenter.NewBackupMetadataResponse(backup))
}

// ListBackups は GET /api/backups のハンドラー。
func (h *BackupHandler) ListBackups(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	backups, err := h.listBackupsUC.Execute(c.Request.Context(), usecase.ListBackupsInput{
		UserID: c.Query("user_id"),
		Date:   c.Query("date"),
		Limit:  limit,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRequest) {
			WriteError(c, http.StatusBadRequest, "OPS_DASH_VALIDATION_FAILED",
				"date は YYYY-MM-DD 形式で指定してください")
			return
		}
		WriteError(c, http.StatusInternalServerError, "OPS_DASH_INTERNAL_ERROR",
			"バックアップ一覧の取得に失敗しました")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"backups": presenter.NewBackupListResponse(backups),
	})
}

// GetBackup は GET /api/backups/:id のハンドラー。
func (h *BackupHandler) GetBackup(c *gin.Context) {
	id := c.Param("id")

	out, err := h.getBackupUC.Execute(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBackupNotFound):
			WriteError(c, http.StatusNotFound, "OPS_DASH_BACKUP_NOT_FOUND",
				"指定されたバックアップが見つかりません")
		case errors.Is(err, usecase.ErrCorruptBackupData):
			WriteError(c, http.StatusInternalServerError, "OPS_DASH_BACKUP_CORRUPT",
				"バックアップデータのパースに失敗しました")
		default:
			WriteError(c, http.StatusInternalServerError, "OPS_DASH_INTERNAL_ERROR",
				"バックアップの取得に失敗しました")
		}
		return
	}

	c.JSON(http.StatusOK, presenter.NewBackupDetailResponse(out.Backup, out.Data))
}

// RegisterRoutes はルートを登録する。
func (h *BackupHandler) RegisterRoutes(api *gin.RouterGroup) {
	backups := api.Group("/backups")
	{
		backups.POST("", h.SaveBackup)
		backups.GET("", h.ListBackups)
		backups.GET("/:id", h.GetBackup)
	}
}
