package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ysphere-server/internal/models"
	"ysphere-server/internal/utils"
)

// RequireRoles 只放行指定身分別，必須掛在 Auth 之後。
func RequireRoles(roles ...int) echo.MiddlewareFunc {
	allowed := map[int]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(OperatorKey).(*models.User)
			if !ok {
				return utils.Fail(c, http.StatusUnauthorized, "請先登入")
			}
			if _, ok := allowed[user.Role]; !ok {
				return utils.Fail(c, http.StatusForbidden, "沒有權限執行此操作")
			}
			return next(c)
		}
	}
}
