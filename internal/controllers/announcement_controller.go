package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ysphere-server/internal/logics"
	"ysphere-server/internal/models"
	"ysphere-server/internal/utils"
)

// AnnouncementController 公告管理路由
type AnnouncementController struct {
	announcementService *logics.AnnouncementService
}

func NewAnnouncementController(announcementService *logics.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{announcementService: announcementService}
}

// Create handles POST /announcements
func (ac *AnnouncementController) Create(c echo.Context) error {
	var input models.Announcement
	if err := c.Bind(&input); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	announcement, err := ac.announcementService.Create(c.Request().Context(), operator(c), &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "公告建立成功", announcement)
}

// Update handles PUT /announcements/:id
func (ac *AnnouncementController) Update(c echo.Context) error {
	var input models.Announcement
	if err := c.Bind(&input); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	announcement, err := ac.announcementService.Update(c.Request().Context(), operator(c), c.Param("id"), &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "公告更新成功", announcement)
}

// Delete handles DELETE /announcements/:id
func (ac *AnnouncementController) Delete(c echo.Context) error {
	if err := ac.announcementService.Delete(c.Request().Context(), operator(c), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "公告刪除成功", nil)
}

// Get handles GET /announcements/:id
func (ac *AnnouncementController) Get(c echo.Context) error {
	announcement, err := ac.announcementService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", announcement)
}

// List handles GET /announcements
func (ac *AnnouncementController) List(c echo.Context) error {
	filter := logics.AnnouncementFilter{
		Search:         c.QueryParam("search"),
		Type:           c.QueryParam("type"),
		Department:     c.QueryParam("department"),
		IncludeExpired: c.QueryParam("includeExpired") == "true",
	}
	result, err := ac.announcementService.List(c.Request().Context(), filter, utils.ExtractPageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", result)
}
