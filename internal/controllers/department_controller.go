package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ysphere-server/internal/logics"
	"ysphere-server/internal/utils"
)

// DepartmentController 部門管理路由
type DepartmentController struct {
	departmentService *logics.DepartmentService
}

func NewDepartmentController(departmentService *logics.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

type departmentRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
}

// Create handles POST /departments
func (dc *DepartmentController) Create(c echo.Context) error {
	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	department, err := dc.departmentService.Create(c.Request().Context(), operator(c), req.Name, req.Company)
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "部門建立成功", department)
}

// Update handles PUT /departments/:id
func (dc *DepartmentController) Update(c echo.Context) error {
	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	department, err := dc.departmentService.Update(c.Request().Context(), operator(c), c.Param("id"), req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "部門更新成功", department)
}

// Delete handles DELETE /departments/:id
func (dc *DepartmentController) Delete(c echo.Context) error {
	if err := dc.departmentService.Delete(c.Request().Context(), operator(c), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "部門刪除成功", nil)
}

// Get handles GET /departments/:id
func (dc *DepartmentController) Get(c echo.Context) error {
	department, err := dc.departmentService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", department)
}

// List handles GET /departments
func (dc *DepartmentController) List(c echo.Context) error {
	filter := logics.DepartmentFilter{
		Search:  c.QueryParam("search"),
		Company: c.QueryParam("company"),
	}
	result, err := dc.departmentService.List(c.Request().Context(), filter, utils.ExtractPageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", result)
}

// ByCompany handles GET /departments/by-company/:companyId
func (dc *DepartmentController) ByCompany(c echo.Context) error {
	departments, err := dc.departmentService.ByCompany(c.Request().Context(), c.Param("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", departments)
}
