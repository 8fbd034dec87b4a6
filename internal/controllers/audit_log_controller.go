package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"ysphere-server/internal/logics"
	"ysphere-server/internal/utils"
)

// AuditLogController 異動紀錄查詢路由。紀錄唯讀，沒有任何寫入端點。
type AuditLogController struct {
	auditService *logics.AuditService
}

func NewAuditLogController(auditService *logics.AuditService) *AuditLogController {
	return &AuditLogController{auditService: auditService}
}

// List handles GET /audit-logs
func (ac *AuditLogController) List(c echo.Context) error {
	filter := logics.AuditLogFilter{
		Operator:    c.QueryParam("operator"),
		Target:      c.QueryParam("target"),
		Action:      c.QueryParam("action"),
		TargetModel: c.QueryParam("targetModel"),
	}
	if startStr := c.QueryParam("startDate"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return utils.Fail(c, http.StatusBadRequest, "開始日期格式錯誤")
		}
		filter.StartDate = &start
	}
	if endStr := c.QueryParam("endDate"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return utils.Fail(c, http.StatusBadRequest, "結束日期格式錯誤")
		}
		// 含當天整天
		end = end.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &end
	}

	result, err := ac.auditService.List(c.Request().Context(), filter, utils.ExtractPageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", result)
}
