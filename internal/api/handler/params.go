package handler

import (
	"strconv"
	"strings"

	"foodgram-go/internal/service"

	"github.com/gin-gonic/gin"
)

var (
	defaultPageSize = 6
	maxPageSize     = 100
)

// ConfigurePagination 设置默认每页条数与上限
func ConfigurePagination(pageSize, maxSize int) {
	if pageSize > 0 {
		defaultPageSize = pageSize
	}
	if maxSize > 0 {
		maxPageSize = maxSize
	}
}

// parsePagination 读取 page 与 limit，非法值回落到默认
func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

// parseRecipesLimit 非数字或负数时忽略，返回不截断
func parseRecipesLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("recipes_limit"))
	if err != nil || limit < 0 {
		return service.NoRecipesLimit
	}
	return limit
}

func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// parseBoolQuery 接受 1/true/yes（不区分大小写）
func parseBoolQuery(c *gin.Context, key string) bool {
	switch strings.ToLower(c.Query(key)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
