package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/timemult-platform/ops-server-go-dashboard/internal/usecase"
)

// EmployeeHandler は従業員管理関連の REST ハンドラー。
type EmployeeHandler struct {
	listEmployeesUC  *usecase.ListEmployeesUseCase
	addEmployeeUC    *usecase.AddEmployeeUseCase
	updateEmployeeUC *usecase.UpdateEmployeeUseCase
	deleteEmployeeUC *usecase.DeleteEmployeeUseCase
}

// NewEmployeeHandler は新しい EmployeeHandler を作成する。
func NewEmployeeHandler(
	listEmployeesUC *usecase.ListEmployeesUseCase,
	addEmployeeUC *usecase.AddEmployeeUseCase,
	updateEmployeeUC *usecase.UpdateEmployeeUseCase,
	deleteEmployeeUC *usecase.DeleteEmployeeUseCase,
) *EmployeeHandler {
	return &EmployeeHandler{
		listEmployeesUC:  listEmployeesUC,
		addEmployeeUC:    addEmployeeUC,
		updateEmployeeUC: updateEmployeeUC,
		deleteEmployeeUC: deleteEmployeeUC,
	}
}

// ListEmployees は GET /api/employees のハンドラー。
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.listEmployeesUC.Execute(c.Request.Context())
	if err != nil {
		WriteError(c, http.StatusInternalServerError, "OPS_DASH_INTERNAL_ERROR",
			"従業員一覧の取得に失敗しました")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employees": employees,
	})
}

// AddEmployee は POST /api/employees のハンドラー。
func (h *EmployeeHandler) AddEmployee(c *gin.Context) {
	var req struct {
		EmployeeID string `json:"employee_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		WriteError(c, http.StatusBadRequest, "OPS_DASH_VALIDATION_FAILED",
			"employee_id は必須です")
		return
	}

	emp, err := h.addEmployeeUC.Execute(c.Request.Context(), req.EmployeeID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmployeeExists):
			WriteError(c, http.StatusBadRequest, "OPS_DASH_EMPLOYEE_EXISTS",
				"指定された従業員はすでに登録されています")
		case errors.Is(err, usecase.ErrEmployeeNotFound):
			WriteError(c, http.StatusNotFound, "OPS_DASH_EMPLOYEE_NOT_FOUND",
				"指定された従業員が Everhour に見つかりません")
		case errors.Is(err, usecase.ErrUpstreamUnavailable):
			WriteError(c, http.StatusBadGateway, "OPS_DASH_UPSTREAM_UNAVAILABLE",
				"Everhour への接続に失敗しました")
		case errors.Is(err, usecase.ErrInvalidRequest):
			WriteError(c, http.StatusBadRequest, "OPS_DASH_VALIDATION_FAILED",
				"employee_id は必須です")
		default:
			WriteError(c, http.StatusInternalServerError, "OPS_DASH_INTERNAL_ERROR",
				"従業員の登録に失敗しました")
		}
		return
	}

	c.JSON(http.StatusCreated, emp)
}

// UpdateEmployee は PATCH /api/employees/:id のハンドラー。
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id := c.Param("id")

	var input usecase.UpdateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		WriteError(c, http.StatusBadRequest, "OPS_DASH_VALIDATION_FAILED",
			"リクエストのバリデーションに失敗しました")
		return
	}

	emp, err := h.updateEmployeeUC.Execute(c.Request.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRequest):
			WriteError(c, http.StatusBadRequest, "OPS_DASH_VALIDATION_FAILED",
				"multiplier または active の少なくとも一方を指定してください")
		case errors.Is(err, usecase.ErrEmployeeNotFound):
			WriteError(c, http.StatusNotFound, "OPS_DASH_EMPLOYEE_NOT_FOUND",
				"指定された従業員が見つかりません")
		default:
			WriteError(c, http.StatusInternalServerError, "OPS_DASH_INTERNAL_ERROR",
				"従業員の更新に失敗しました")
		}
		return
	}

	c.JSON(http.StatusOK, emp)
}

// DeleteEmployee は DELETE /api/employees/:id のハンドラー。
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")

	if err := h.deleteEmployeeUC.Execute(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrEmployeeNotFound) {
			WriteError(c, http.StatusNotFound, "OPS_DASH_EMPLOYEE_NOT_FOUND",
				"指定された従業員が見つかりません")
			return
		}
		WriteError(c, http.StatusInternalServerError, "OPS_DASH_INTERNAL_ERROR",
			"従業員の削除に失敗しました")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deleted": id,
	})
}

// RegisterRoutes はルートを登録する。
func (h *EmployeeHandler) RegisterRoutes(api *gin.RouterGroup) {
	employees := api.Group("/employees")
	{
		employees.GET("", h.ListEmployees)
		employees.POST("", h.AddEmployee)
		employees.PATCH("/:id", h.UpdateEmployee)
		employees.DELETE("/:id", h.DeleteEmployee)
	}
}
