package handler

import (
	"errors"
	"strconv"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/api/middleware"
	"foodgram-go/internal/api/response"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RecipeHandler struct {
	recipeService   *service.RecipeService
	favoriteService *service.MembershipService
	cartService     *service.MembershipService
	shoppingList    *service.CartService
	searchService   *service.SearchService
}

func NewRecipeHandler(
	recipeService *service.RecipeService,
	favoriteService *service.MembershipService,
	cartService *service.MembershipService,
	shoppingList *service.CartService,
	searchService *service.SearchService,
) *RecipeHandler {
	return &RecipeHandler{
		recipeService:   recipeService,
		favoriteService: favoriteService,
		cartService:     cartService,
		shoppingList:    shoppingList,
		searchService:   searchService,
	}
}

// ListRecipes 菜谱列表
// @Summary 菜谱列表
// @Description 支持按标签 slug（可重复，任一匹配）、作者、收藏与购物车筛选；匿名用户的收藏/购物车筛选不生效
// @Tags 菜谱
// @Produce json
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Param tags query []string false "标签 slug" collectionFormat(multi)
// @Param author query int false "作者ID"
// @Param is_favorited query int false "仅收藏（1/0）"
// @Param is_in_shopping_cart query int false "仅购物车（1/0）"
// @Success 200 {object} response.Response{data=dto.PaginatedData{items=[]dto.RecipeInfo}} "获取成功"
// @Failure 400 {object} response.ErrorResponse "筛选参数无效"
// @Router /recipes [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	page, limit := parsePagination(c)

	query := &dto.RecipeListQuery{
		Tags:             c.QueryArray("tags"),
		IsFavorited:      parseBoolQuery(c, "is_favorited"),
		IsInShoppingCart: parseBoolQuery(c, "is_in_shopping_cart"),
	}
	if raw := c.Query("author"); raw != "" {
		authorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.ValidationError(c, "author 必须是用户ID")
			return
		}
		query.Author = &authorID
	}

	data, err := h.recipeService.List(middleware.ViewerID(c), query, page, limit)
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.OK(c, "获取成功", data)
}

// CreateRecipe 创建菜谱
// @Summary 创建菜谱
// @Description 在一个事务内写入菜谱、标签与食材；image 为 base64 data URI
// @Tags 菜谱
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecipeCreateRequest true "菜谱信息"
// @Success 201 {object} response.Response{data=dto.RecipeInfo} "创建成功"
// @Failure 400 {object} response.ErrorResponse "参数校验失败"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Failure 404 {object} response.ErrorResponse "标签或食材不存在"
// @Router /recipes [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req dto.RecipeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.recipeService.Create(c.Request.Context(), middleware.ViewerID(c), &req)
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.Created(c, "创建成功", info)
}

// GetRecipe 菜谱详情
// @Summary 菜谱详情
// @Tags 菜谱
// @Produce json
// @Param id path int true "菜谱ID"
// @Success 200 {object} response.Response{data=dto.RecipeInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "菜谱不存在"
// @Router /recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	info, err := h.recipeService.Get(middleware.ViewerID(c), recipeID)
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.OK(c, "获取成功", info)
}

// UpdateRecipe 更新菜谱
// @Summary 更新菜谱
// @Description PUT 与 PATCH 均为部分更新；ingredients / tags 出现时整体替换
// @Tags 菜谱
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "菜谱ID"
// @Param request body dto.RecipeUpdateRequest true "更新内容"
// @Success 200 {object} response.Response{data=dto.RecipeInfo} "更新成功"
// @Failure 400 {object} response.ErrorResponse "参数校验失败"
// @Failure 403 {object} response.ErrorResponse "非作者"
// @Failure 404 {object} response.ErrorResponse "菜谱不存在"
// @Router /recipes/{id} [patch]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	var req dto.RecipeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "请求参数无效: "+err.Error())
		return
	}

	info, err := h.recipeService.Update(c.Request.Context(), middleware.ViewerID(c), recipeID, &req)
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.OK(c, "更新成功", info)
}

// DeleteRecipe 删除菜谱
// @Summary 删除菜谱
// @Tags 菜谱
// @Security BearerAuth
// @Param id path int true "菜谱ID"
// @Success 204 "删除成功"
// @Failure 403 {object} response.ErrorResponse "非作者"
// @Failure 404 {object} response.ErrorResponse "菜谱不存在"
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), middleware.ViewerID(c), recipeID); err != nil {
		handleRecipeError(c, err)
		return
	}

	response.NoContent(c)
}

// AddFavorite 收藏菜谱
// @Summary 收藏菜谱
// @Tags 收藏
// @Produce json
// @Security BearerAuth
// @Param id path int true "菜谱ID"
// @Success 201 {object} response.Response{data=dto.RecipeBrief} "收藏成功"
// @Failure 400 {object} response.ErrorResponse "已收藏"
// @Failure 404 {object} response.ErrorResponse "菜谱不存在"
// @Router /recipes/{id}/favorite [post]
func (h *RecipeHandler) AddFavorite(c *gin.Context) {
	h.addMembership(c, h.favoriteService, "收藏成功")
}

// RemoveFavorite 取消收藏
// @Summary 取消收藏
// @Tags 收藏
// @Security BearerAuth
// @Param id path int true "菜谱ID"
// @Success 204 "取消成功"
// @Failure 400 {object} response.ErrorResponse "未收藏"
// @Failure 404 {object} response.ErrorResponse "菜谱不存在"
// @Router /recipes/{id}/favorite [delete]
func (h *RecipeHandler) RemoveFavorite(c *gin.Context) {
	h.removeMembership(c, h.favoriteService)
}

// AddToCart 加入购物车
// @Summary 加入购物车
// @Tags 购物车
// @Produce json
// @Security BearerAuth
// @Param id path int true "菜谱ID"
// @Success 201 {object} response.Response{data=dto.RecipeBrief} "加入成功"
// @Failure 400 {object} response.ErrorResponse "已在购物车中"
// @Failure 404 {object} response.ErrorResponse "菜谱不存在"
// @Router /recipes/{id}/shopping_cart [post]
func (h *RecipeHandler) AddToCart(c *gin.Context) {
	h.addMembership(c, h.cartService, "加入成功")
}

// RemoveFromCart 移出购物车
// @Summary 移出购物车
// @Tags 购物车
// @Security BearerAuth
// @Param id path int true "菜谱ID"
// @Success 204 "移出成功"
// @Failure 400 {object} response.ErrorResponse "不在购物车中"
// @Failure 404 {object} response.ErrorResponse "菜谱不存在"
// @Router /recipes/{id}/shopping_cart [delete]
func (h *RecipeHandler) RemoveFromCart(c *gin.Context) {
	h.removeMembership(c, h.cartService)
}

// DownloadShoppingCart 下载购物清单
// @Summary 下载购物清单
// @Description 汇总购物车中全部菜谱的食材，纯文本附件，每行 "<名称> <单位> - <总量>"
// @Tags 购物车
// @Produce plain
// @Security BearerAuth
// @Success 200 {string} string "购物清单"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /recipes/download_shopping_cart [get]
func (h *RecipeHandler) DownloadShoppingCart(c *gin.Context) {
	content, err := h.shoppingList.ShoppingList(middleware.ViewerID(c))
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.Attachment(c, service.ShoppingListFilename, content)
}

// SearchRecipes 搜索菜谱
// @Summary 搜索菜谱
// @Description 全文检索名称、描述与食材；检索服务不可用时按名称模糊匹配
// @Tags 菜谱
// @Produce json
// @Param q query string true "关键词"
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} response.Response{data=dto.PaginatedData{items=[]dto.RecipeInfo}} "获取成功"
// @Failure 400 {object} response.ErrorResponse "关键词为空"
// @Router /recipes/search [get]
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	page, limit := parsePagination(c)

	data, err := h.searchService.Search(c.Request.Context(), middleware.ViewerID(c), c.Query("q"), page, limit)
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.OK(c, "获取成功", data)
}

func (h *RecipeHandler) addMembership(c *gin.Context, svc *service.MembershipService, message string) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	brief, err := svc.Add(middleware.ViewerID(c), recipeID)
	if err != nil {
		handleRecipeError(c, err)
		return
	}

	response.Created(c, message, brief)
}

func (h *RecipeHandler) removeMembership(c *gin.Context, svc *service.MembershipService) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	if err := svc.Remove(middleware.ViewerID(c), recipeID); err != nil {
		handleRecipeError(c, err)
		return
	}

	response.NoContent(c)
}

func recipeIDParam(c *gin.Context) (int64, bool) {
	recipeID, err := parseIDParam(c)
	if err != nil {
		response.NotFound(c, service.ErrRecipeNotFound.Error())
		return 0, false
	}
	return recipeID, true
}

func handleRecipeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound),
		errors.Is(err, service.ErrTagNotFound),
		errors.Is(err, service.ErrIngredientNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrRecipeNoPermission):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrIngredientsRequired),
		errors.Is(err, service.ErrIngredientsNotUnique),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrTagsRequired),
		errors.Is(err, service.ErrTagsNotUnique),
		errors.Is(err, service.ErrInvalidCookingTime),
		errors.Is(err, service.ErrInvalidImage),
		errors.Is(err, service.ErrSearchQueryRequired):
		response.ValidationError(c, err.Error())
	case errors.Is(err, service.ErrRecipeExists),
		errors.Is(err, service.ErrAlreadyFavorited),
		errors.Is(err, service.ErrNotFavorited),
		errors.Is(err, service.ErrAlreadyInCart),
		errors.Is(err, service.ErrNotInCart):
		response.Conflict(c, err.Error())
	default:
		logger.Error("Recipe operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
