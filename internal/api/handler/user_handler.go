package handler

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/api/middleware"
	"foodgram-go/internal/api/response"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService         *service.UserService
	subscriptionService *service.SubscriptionService
}

func NewUserHandler(userService *service.UserService, subscriptionService *service.SubscriptionService) *UserHandler {
	return &UserHandler{userService: userService, subscriptionService: subscriptionService}
}

// Register 用户注册
// @Summary 用户注册
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body dto.UserCreateRequest true "注册信息"
// @Success 201 {object} response.Response{data=dto.UserInfo} "注册成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效/用户已存在"
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.userService.Register(&req)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.Created(c, "注册成功", info)
}

// ListUsers 用户列表
// @Summary 用户列表
// @Tags 用户
// @Produce json
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} response.Response{data=dto.PaginatedData{items=[]dto.UserInfo}} "获取成功"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, limit := parsePagination(c)

	data, err := h.userService.List(middleware.ViewerID(c), page, limit)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "获取成功", data)
}

// GetMe 获取当前用户信息
// @Summary 获取当前用户信息
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.UserInfo} "获取成功"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	viewerID := middleware.ViewerID(c)

	info, err := h.userService.Get(viewerID, viewerID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "获取成功", info)
}

// GetUser 获取指定用户信息
// @Summary 获取指定用户信息
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=dto.UserInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := parseIDParam(c)
	if err != nil {
		response.NotFound(c, service.ErrUserNotFound.Error())
		return
	}

	info, err := h.userService.Get(middleware.ViewerID(c), userID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "获取成功", info)
}

// SetPassword 修改密码
// @Summary 修改密码
// @Tags 用户
// @Accept json
// @Security BearerAuth
// @Param request body dto.SetPasswordRequest true "密码信息"
// @Success 204 "修改成功"
// @Failure 400 {object} response.ErrorResponse "当前密码错误"
// @Router /users/set_password [post]
func (h *UserHandler) SetPassword(c *gin.Context) {
	var req dto.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "请求参数无效: "+err.Error())
		return
	}

	if err := h.userService.SetPassword(middleware.ViewerID(c), &req); err != nil {
		handleUserError(c, err)
		return
	}

	response.NoContent(c)
}

// Subscribe 订阅作者
// @Summary 订阅作者
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param id path int true "作者ID"
// @Param recipes_limit query int false "返回的作者菜谱数量上限"
// @Success 201 {object} response.Response{data=dto.SubscriptionInfo} "订阅成功"
// @Failure 400 {object} response.ErrorResponse "不能订阅自己/已订阅"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id}/subscribe [post]
func (h *UserHandler) Subscribe(c *gin.Context) {
	authorID, err := parseIDParam(c)
	if err != nil {
		response.NotFound(c, service.ErrUserNotFound.Error())
		return
	}

	info, err := h.subscriptionService.Subscribe(middleware.ViewerID(c), authorID, parseRecipesLimit(c))
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.Created(c, "订阅成功", info)
}

// Unsubscribe 取消订阅
// @Summary 取消订阅
// @Tags 订阅
// @Security BearerAuth
// @Param id path int true "作者ID"
// @Success 204 "取消成功"
// @Failure 400 {object} response.ErrorResponse "尚未订阅"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id}/subscribe [delete]
func (h *UserHandler) Unsubscribe(c *gin.Context) {
	authorID, err := parseIDParam(c)
	if err != nil {
		response.NotFound(c, service.ErrUserNotFound.Error())
		return
	}

	if err := h.subscriptionService.Unsubscribe(middleware.ViewerID(c), authorID); err != nil {
		handleUserError(c, err)
		return
	}

	response.NoContent(c)
}

// ListSubscriptions 我的订阅
// @Summary 我的订阅
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Param recipes_limit query int false "每位作者返回的菜谱数量上限"
// @Success 200 {object} response.Response{data=dto.PaginatedData{items=[]dto.SubscriptionInfo}} "获取成功"
// @Router /users/subscriptions [get]
func (h *UserHandler) ListSubscriptions(c *gin.Context) {
	page, limit := parsePagination(c)

	data, err := h.subscriptionService.List(middleware.ViewerID(c), page, limit, parseRecipesLimit(c))
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "获取成功", data)
}

func handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidUsername),
		errors.Is(err, service.ErrWrongPassword):
		response.ValidationError(c, err.Error())
	case errors.Is(err, service.ErrUsernameExists),
		errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrCannotSubscribeSelf),
		errors.Is(err, service.ErrAlreadySubscribed),
		errors.Is(err, service.ErrNotSubscribed):
		response.Conflict(c, err.Error())
	default:
		logger.Error("User operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
