package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ysphere-server/internal/logics"
	"ysphere-server/internal/models"
	"ysphere-server/internal/utils"
)

// FormController 表單路由
type FormController struct {
	formService *logics.FormService
}

func NewFormController(formService *logics.FormService) *FormController {
	return &FormController{formService: formService}
}

// Create handles POST /forms
func (fc *FormController) Create(c echo.Context) error {
	var input models.Form
	if err := c.Bind(&input); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	form, err := fc.formService.Create(c.Request().Context(), operator(c), &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "表單建立成功", form)
}

// Update handles PUT /forms/:id
func (fc *FormController) Update(c echo.Context) error {
	var input models.Form
	if err := c.Bind(&input); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	form, err := fc.formService.Update(c.Request().Context(), operator(c), c.Param("id"), &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "表單更新成功", form)
}

// Delete handles DELETE /forms/:id
func (fc *FormController) Delete(c echo.Context) error {
	if err := fc.formService.Delete(c.Request().Context(), operator(c), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "表單刪除成功", nil)
}

// Get handles GET /forms/:id
func (fc *FormController) Get(c echo.Context) error {
	form, err := fc.formService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", form)
}

// List handles GET /forms
func (fc *FormController) List(c echo.Context) error {
	filter := logics.FormFilter{
		Search:   c.QueryParam("search"),
		Template: c.QueryParam("template"),
	}
	result, err := fc.formService.List(c.Request().Context(), filter, utils.ExtractPageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", result)
}
