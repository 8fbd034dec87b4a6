package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ysphere-server/internal/logics"
	"ysphere-server/internal/models"
	"ysphere-server/internal/utils"
)

// FormTemplateController 表單模板路由
type FormTemplateController struct {
	templateService *logics.FormTemplateService
}

func NewFormTemplateController(templateService *logics.FormTemplateService) *FormTemplateController {
	return &FormTemplateController{templateService: templateService}
}

// Create handles POST /form-templates
func (fc *FormTemplateController) Create(c echo.Context) error {
	var input models.FormTemplate
	if err := c.Bind(&input); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	template, err := fc.templateService.Create(c.Request().Context(), operator(c), &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "模板建立成功", template)
}

// Update handles PUT /form-templates/:id
func (fc *FormTemplateController) Update(c echo.Context) error {
	var input models.FormTemplate
	if err := c.Bind(&input); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	template, err := fc.templateService.Update(c.Request().Context(), operator(c), c.Param("id"), &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "模板更新成功", template)
}

// Delete handles DELETE /form-templates/:id
func (fc *FormTemplateController) Delete(c echo.Context) error {
	if err := fc.templateService.Delete(c.Request().Context(), operator(c), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "模板刪除成功", nil)
}

// Get handles GET /form-templates/:id
func (fc *FormTemplateController) Get(c echo.Context) error {
	template, err := fc.templateService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", template)
}

// List handles GET /form-templates
func (fc *FormTemplateController) List(c echo.Context) error {
	filter := logics.FormTemplateFilter{
		Search:  c.QueryParam("search"),
		Type:    c.QueryParam("type"),
		Company: c.QueryParam("company"),
	}
	result, err := fc.templateService.List(c.Request().Context(), filter, utils.ExtractPageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", result)
}
