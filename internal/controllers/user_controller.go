package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ysphere-server/internal/logics"
	"ysphere-server/internal/middlewares"
	"ysphere-server/internal/models"
	"ysphere-server/internal/utils"
)

// UserController 員工管理與帳號相關的路由
type UserController struct {
	userService *logics.UserService
}

func NewUserController(userService *logics.UserService) *UserController {
	return &UserController{userService: userService}
}

// Create handles POST /users
func (uc *UserController) Create(c echo.Context) error {
	var input models.User
	if err := c.Bind(&input); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	created, err := uc.userService.Create(c.Request().Context(), operator(c), &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "員工建立成功", created)
}

// Update handles PUT /users/:id
func (uc *UserController) Update(c echo.Context) error {
	var input models.User
	if err := c.Bind(&input); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	user, err := uc.userService.Update(c.Request().Context(), operator(c), c.Param("id"), &input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "員工資料更新成功", user)
}

// Delete handles DELETE /users/:id
func (uc *UserController) Delete(c echo.Context) error {
	if err := uc.userService.Delete(c.Request().Context(), operator(c), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "員工刪除成功", nil)
}

// Get handles GET /users/:id
func (uc *UserController) Get(c echo.Context) error {
	detail, err := uc.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", detail)
}

// List handles GET /users
func (uc *UserController) List(c echo.Context) error {
	filter := logics.UserFilter{
		Search:           c.QueryParam("search"),
		Company:          c.QueryParam("company"),
		Department:       c.QueryParam("department"),
		EmploymentStatus: c.QueryParam("employmentStatus"),
	}
	if roleStr := c.QueryParam("role"); roleStr != "" {
		role, err := strconv.Atoi(roleStr)
		if err != nil {
			return utils.Fail(c, http.StatusBadRequest, "身分別格式錯誤")
		}
		filter.Role = &role
	}
	result, err := uc.userService.List(c.Request().Context(), filter, utils.ExtractPageQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", result)
}

// Suggestions handles GET /users/suggestions
func (uc *UserController) Suggestions(c echo.Context) error {
	suggestions, err := uc.userService.Suggestions(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", suggestions)
}

// Stats handles GET /users/stats
func (uc *UserController) Stats(c echo.Context) error {
	stats, err := uc.userService.EmployeeStats(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "查詢成功", stats)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /users/login
func (uc *UserController) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	result, _, err := uc.userService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "登入成功", result)
}

// Logout handles DELETE /users/logout
func (uc *UserController) Logout(c echo.Context) error {
	token, _ := c.Get(middlewares.TokenKey).(string)
	if err := uc.userService.Logout(c.Request().Context(), operator(c), token); err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "登出成功", nil)
}

// Profile handles GET /users/profile
func (uc *UserController) Profile(c echo.Context) error {
	detail := uc.userService.Profile(c.Request().Context(), operator(c))
	return utils.OK(c, "查詢成功", detail)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword handles PATCH /users/password
func (uc *UserController) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	err := uc.userService.ChangePassword(c.Request().Context(), operator(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "密碼更新成功，請重新登入", nil)
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword handles POST /users/forgot-password
func (uc *UserController) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	if err := uc.userService.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "重設密碼信已寄出", nil)
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword handles POST /users/reset-password
func (uc *UserController) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.Fail(c, http.StatusBadRequest, "請求格式錯誤")
	}
	if err := uc.userService.ResetPassword(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return respondError(c, err)
	}
	return utils.OK(c, "密碼重設成功，請重新登入", nil)
}
