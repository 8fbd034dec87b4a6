package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ysphere-server/configs"
	"ysphere-server/internal/logics"
	"ysphere-server/internal/middlewares"
	"ysphere-server/internal/models"
	"ysphere-server/internal/utils"
)

// operator 取出 Auth middleware 放進 context 的登入使用者
func operator(c echo.Context) *models.User {
	user, _ := c.Get(middlewares.OperatorKey).(*models.User)
	return user
}

// respondError 把 service 層錯誤對應到 HTTP 狀態碼。
// 未分類的錯誤記 log 後回 500，不把內部訊息露給前端。
func respondError(c echo.Context, err error) error {
	var validationErr *logics.ValidationError
	if errors.As(err, &validationErr) {
		return utils.Fail(c, http.StatusBadRequest, validationErr.Message)
	}
	var conflictErr *logics.ConflictError
	if errors.As(err, &conflictErr) {
		return utils.Fail(c, http.StatusConflict, conflictErr.Message)
	}
	if errors.Is(err, logics.ErrNotFound) {
		return utils.Fail(c, http.StatusNotFound, "查無資料")
	}
	configs.Logger.Error("Unhandled service error",
		zap.String("path", c.Path()),
		zap.Error(err))
	return utils.Fail(c, http.StatusInternalServerError, "伺服器內部錯誤")
}
