package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ysphere-server/internal/logics"
	"ysphere-server/internal/models"
	"ysphere-server/internal/utils"
)

// ServiceTicketController IT 服務請求路由
type ServiceTicketController struct {
	ticketService *logics.ServiceTicketService
}

func NewServiceTicketController(ticketService *logics.ServiceTicketService) *ServiceTicketController {
	return &ServiceTicketController{ticketService: ticketService}
}

// Create handles POST /service-tickets
func (sc *ServiceTicketController) Create(c echo.Context) error {
	var input models.ServiceTicket
	if err := c.Bind(&input); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	ticket, err := sc.ticketService.Create(c.Request().Context(), operator(c), &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "服務請求建立成功", ticket)
}

// Update handles PATCH /service-tickets/:id
// 一般員工只能改自己單子的內容，狀態與指派只有資訊人員和管理員能動。
func (sc *ServiceTicketController) Update(c echo.Context) error {
	var input logics.TicketUpdate
	if err := c.Bind(&input); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}

	user := operator(c)
	if user.Role != models.RoleIT && user.Role != models.RoleAdmin {
		ticket, err := sc.ticketService.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return respondError(c, err)
		}
		if ticket.RequesterID != user.ID {
			return utils.Fail(c, http.StatusForbidden, "沒有權限執行此操作")
		}
		if input.Status != "" || input.AssigneeID != nil || input.Solution != "" {
			return utils.Fail(c, http.StatusForbidden, "沒有權限變更處理狀態")
		}
	}

	ticket, err := sc.ticketService.Update(c.Request().Context(), user, c.Param("id"), input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "服務請求更新成功", ticket)
}

// Delete handles DELETE /service-tickets/:id
func (sc *ServiceTicketController) Delete(c echo.Context) error {
	if err := sc.ticketService.Delete(c.Request().Context(), operator(c), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "服務請求刪除成功", nil)
}

// Get handles GET /service-tickets/:id
func (sc *ServiceTicketController) Get(c echo.Context) error {
	ticket, err := sc.ticketService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	user := operator(c)
	if user.Role != models.RoleIT && user.Role != models.RoleAdmin && ticket.RequesterID != user.ID {
		return utils.Fail(c, http.StatusForbidden, "沒有權限執行此操作")
	}
	return utils.OK(c, "查詢成功", ticket)
}

// List handles GET /service-tickets
// 一般員工只看得到自己建立的單子。
func (sc *ServiceTicketController) List(c echo.Context) error {
	filter := logics.TicketFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Priority: c.QueryParam("priority"),
		Status:   c.QueryParam("status"),
	}
	user := operator(c)
	if user.Role != models.RoleIT && user.Role != models.RoleAdmin {
		id := user.ID
		filter.Requester = &id
	}
	result, err := sc.ticketService.List(c.Request().Context(), filter, utils.ExtractPageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", result)
}
