package httpEngine

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ysphere-server/internal/controllers"
	"ysphere-server/internal/logics"
	"ysphere-server/internal/middlewares"
	"ysphere-server/internal/models"
	"ysphere-server/internal/utils"
)

// RegisterRoutes 註冊所有路由與權限設定
func RegisterRoutes(e *echo.Echo) {
	// 健康檢查
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "YSphere Server")
	})

	// 共用服務
	auditService := logics.NewAuditService()
	sequenceService := logics.NewSequenceService()
	emailService := utils.NewEmailService()

	userService := logics.NewUserService(auditService, sequenceService, emailService)
	companyService := logics.NewCompanyService(auditService, sequenceService)
	departmentService := logics.NewDepartmentService(auditService, sequenceService)
	tempUserService := logics.NewTempUserService(auditService, sequenceService)
	announcementService := logics.NewAnnouncementService(auditService)
	ticketService := logics.NewServiceTicketService(auditService, sequenceService)
	templateService := logics.NewFormTemplateService(auditService)
	formService := logics.NewFormService(auditService, sequenceService)

	userController := controllers.NewUserController(userService)
	companyController := controllers.NewCompanyController(companyService)
	departmentController := controllers.NewDepartmentController(departmentService)
	tempUserController := controllers.NewTempUserController(tempUserService)
	announcementController := controllers.NewAnnouncementController(announcementService)
	ticketController := controllers.NewServiceTicketController(ticketService)
	templateController := controllers.NewFormTemplateController(templateService)
	formController := controllers.NewFormController(formService)
	auditLogController := controllers.NewAuditLogController(auditService)

	authed := middlewares.Auth(userService)
	adminOnly := middlewares.RequireRoles(models.RoleAdmin)
	adminOrHR := middlewares.RequireRoles(models.RoleAdmin, models.RoleHR)
	adminOrIT := middlewares.RequireRoles(models.RoleAdmin, models.RoleIT)

	// 帳號相關
	users := e.Group("/users")
	users.POST("/login", userController.Login)
	users.POST("/forgot-password", userController.ForgotPassword)
	users.POST("/reset-password", userController.ResetPassword)
	users.DELETE("/logout", userController.Logout, authed)
	users.GET("/profile", userController.Profile, authed)
	users.PATCH("/password", userController.ChangePassword, authed)
	users.GET("/suggestions", userController.Suggestions, authed)

	// 員工管理（人資與管理員）
	users.POST("", userController.Create, authed, adminOrHR)
	users.GET("", userController.List, authed, adminOrHR)
	users.GET("/stats", userController.Stats, authed, adminOrHR)
	users.GET("/:id", userController.Get, authed, adminOrHR)
	users.PUT("/:id", userController.Update, authed, adminOrHR)
	users.DELETE("/:id", userController.Delete, authed, adminOnly)

	// 公司
	companies := e.Group("/companies", authed)
	companies.GET("/all", companyController.All)
	companies.GET("", companyController.List)
	companies.GET("/:id", companyController.Get)
	companies.POST("", companyController.Create, adminOnly)
	companies.PUT("/:id", companyController.Update, adminOnly)
	companies.DELETE("/:id", companyController.Delete, adminOnly)

	// 部門
	departments := e.Group("/departments", authed)
	departments.GET("/by-company/:companyId", departmentController.ByCompany)
	departments.GET("", departmentController.List)
	departments.GET("/:id", departmentController.Get)
	departments.POST("", departmentController.Create, adminOrHR)
	departments.PUT("/:id", departmentController.Update, adminOrHR)
	departments.DELETE("/:id", departmentController.Delete, adminOnly)

	// 臨時員工（入職前流程）
	tempUsers := e.Group("/temp-users", authed, adminOrHR)
	tempUsers.POST("", tempUserController.Create)
	tempUsers.GET("", tempUserController.List)
	tempUsers.GET("/:id", tempUserController.Get)
	tempUsers.PUT("/:id", tempUserController.Update)
	tempUsers.DELETE("/:id", tempUserController.Delete)
	tempUsers.POST("/:id/convert", tempUserController.Convert)

	// 公告
	announcements := e.Group("/announcements", authed)
	announcements.GET("", announcementController.List)
	announcements.GET("/:id", announcementController.Get)
	announcements.POST("", announcementController.Create, adminOrHR)
	announcements.PUT("/:id", announcementController.Update, adminOrHR)
	announcements.DELETE("/:id", announcementController.Delete, adminOrHR)

	// IT 服務請求
	tickets := e.Group("/service-tickets", authed)
	tickets.POST("", ticketController.Create)
	tickets.GET("", ticketController.List)
	tickets.GET("/:id", ticketController.Get)
	tickets.PATCH("/:id", ticketController.Update)
	tickets.DELETE("/:id", ticketController.Delete, adminOrIT)

	// 表單模板與表單
	templates := e.Group("/form-templates", authed)
	templates.GET("", templateController.List)
	templates.GET("/:id", templateController.Get)
	templates.POST("", templateController.Create, adminOnly)
	templates.PUT("/:id", templateController.Update, adminOnly)
	templates.DELETE("/:id", templateController.Delete, adminOnly)

	forms := e.Group("/forms", authed)
	forms.POST("", formController.Create)
	forms.GET("", formController.List)
	forms.GET("/:id", formController.Get)
	forms.PUT("/:id", formController.Update)
	forms.DELETE("/:id", formController.Delete, adminOnly)

	// 異動紀錄（唯讀）
	auditLogs := e.Group("/audit-logs", authed, adminOnly)
	auditLogs.GET("", auditLogController.List)
}
