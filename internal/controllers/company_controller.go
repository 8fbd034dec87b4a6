package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ysphere-server/internal/logics"
	"ysphere-server/internal/utils"
)

// CompanyController 公司管理路由
type CompanyController struct {
	companyService *logics.CompanyService
}

func NewCompanyController(companyService *logics.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

type companyRequest struct {
	Name string `json:"name"`
}

// Create handles POST /companies
func (cc *CompanyController) Create(c echo.Context) error {
	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	company, err := cc.companyService.Create(c.Request().Context(), operator(c), req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "公司建立成功", company)
}

// Update handles PUT /companies/:id
func (cc *CompanyController) Update(c echo.Context) error {
	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	company, err := cc.companyService.Update(c.Request().Context(), operator(c), c.Param("id"), req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "公司更新成功", company)
}

// Delete handles DELETE /companies/:id
func (cc *CompanyController) Delete(c echo.Context) error {
	if err := cc.companyService.Delete(c.Request().Context(), operator(c), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "公司刪除成功", nil)
}

// Get handles GET /companies/:id
func (cc *CompanyController) Get(c echo.Context) error {
	company, err := cc.companyService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", company)
}

// List handles GET /companies
func (cc *CompanyController) List(c echo.Context) error {
	result, err := cc.companyService.List(c.Request().Context(), c.QueryParam("search"), utils.ExtractPageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", result)
}

// All handles GET /companies/all
func (cc *CompanyController) All(c echo.Context) error {
	companies, err := cc.companyService.All(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", companies)
}
