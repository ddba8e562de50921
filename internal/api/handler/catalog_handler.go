package handler

import (
	"errors"

	"foodgram-go/internal/api/response"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler 标签与食材（只读）
type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListTags 标签列表
// @Summary 标签列表
// @Tags 标签
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.TagInfo} "获取成功"
// @Router /tags [get]
func (h *CatalogHandler) ListTags(c *gin.Context) {
	tags, err := h.catalogService.ListTags()
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, "获取成功", tags)
}

// GetTag 标签详情
// @Summary 标签详情
// @Tags 标签
// @Produce json
// @Param id path int true "标签ID"
// @Success 200 {object} response.Response{data=dto.TagInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "标签不存在"
// @Router /tags/{id} [get]
func (h *CatalogHandler) GetTag(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.NotFound(c, service.ErrTagNotFound.Error())
		return
	}

	tag, err := h.catalogService.GetTag(id)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, "获取成功", tag)
}

// ListIngredients 食材列表
// @Summary 食材列表
// @Description name 参数按前缀匹配（不区分大小写），结果不分页
// @Tags 食材
// @Produce json
// @Param name query string false "名称前缀"
// @Success 200 {object} response.Response{data=[]dto.IngredientInfo} "获取成功"
// @Router /ingredients [get]
func (h *CatalogHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.catalogService.ListIngredients(c.Query("name"))
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, "获取成功", ingredients)
}

// GetIngredient 食材详情
// @Summary 食材详情
// @Tags 食材
// @Produce json
// @Param id path int true "食材ID"
// @Success 200 {object} response.Response{data=dto.IngredientInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "食材不存在"
// @Router /ingredients/{id} [get]
func (h *CatalogHandler) GetIngredient(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.NotFound(c, service.ErrIngredientNotFound.Error())
		return
	}

	ingredient, err := h.catalogService.GetIngredient(id)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, "获取成功", ingredient)
}

func handleCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTagNotFound),
		errors.Is(err, service.ErrIngredientNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Catalog query failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
