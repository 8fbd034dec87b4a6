package middlewares

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ysphere-server/internal/logics"
	"ysphere-server/internal/models"
	"ysphere-server/internal/utils"
)

const (
	// OperatorKey 放在 echo context 裡的登入使用者
	OperatorKey = "operator"
	// TokenKey 目前請求所帶的 bearer token，登出時要用
	TokenKey = "token"
)

// Auth 驗證 Authorization 標頭裡的 bearer token，載入使用者後放進 context。
// 已登出的 token（不在使用者的 tokens 清單）與非在職帳號一律擋下。
func Auth(users *logics.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.Fail(c, http.StatusUnauthorized, "請先登入")
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return utils.Fail(c, http.StatusUnauthorized, "驗證格式不正確")
			}
			tokenStr := parts[1]

			userID, err := utils.ParseUserToken(tokenStr)
			if err != nil {
				return utils.Fail(c, http.StatusUnauthorized, "登入已過期，請重新登入")
			}
			user, err := users.ByToken(c.Request().Context(), userID, tokenStr)
			if err != nil {
				return utils.Fail(c, http.StatusUnauthorized, "登入已過期，請重新登入")
			}
			if user.EmploymentStatus != models.EmploymentActive {
				return utils.Fail(c, http.StatusForbidden, "此帳號已停用")
			}

			c.Set(OperatorKey, user)
			c.Set(TokenKey, tokenStr)
			return next(c)
		}
	}
}
