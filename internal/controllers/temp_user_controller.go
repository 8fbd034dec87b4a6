package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ysphere-server/internal/logics"
	"ysphere-server/internal/models"
	"ysphere-server/internal/utils"
)

// TempUserController 臨時員工管理路由
type TempUserController struct {
	tempUserService *logics.TempUserService
}

func NewTempUserController(tempUserService *logics.TempUserService) *TempUserController {
	return &TempUserController{tempUserService: tempUserService}
}

// Create handles POST /temp-users
func (tc *TempUserController) Create(c echo.Context) error {
	var input models.TempUser
	if err := c.Bind(&input); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	tempUser, err := tc.tempUserService.Create(c.Request().Context(), operator(c), &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "臨時員工建立成功", tempUser)
}

// Update handles PUT /temp-users/:id
func (tc *TempUserController) Update(c echo.Context) error {
	var input models.TempUser
	if err := c.Bind(&input); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	tempUser, err := tc.tempUserService.Update(c.Request().Context(), operator(c), c.Param("id"), &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "臨時員工更新成功", tempUser)
}

// Delete handles DELETE /temp-users/:id
func (tc *TempUserController) Delete(c echo.Context) error {
	if err := tc.tempUserService.Delete(c.Request().Context(), operator(c), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "臨時員工刪除成功", nil)
}

// Get handles GET /temp-users/:id
func (tc *TempUserController) Get(c echo.Context) error {
	tempUser, err := tc.tempUserService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", tempUser)
}

// List handles GET /temp-users
func (tc *TempUserController) List(c echo.Context) error {
	filter := logics.TempUserFilter{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	}
	result, err := tc.tempUserService.List(c.Request().Context(), filter, utils.ExtractPageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", result)
}

// Convert handles POST /temp-users/:id/convert
func (tc *TempUserController) Convert(c echo.Context) error {
	created, err := tc.tempUserService.Convert(c.Request().Context(), operator(c), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "已轉為正式員工", created)
}
