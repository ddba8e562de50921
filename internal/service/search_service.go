package service

import (
	"context"
	"strings"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/metrics"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/logger"

	"go.uber.org/zap"
)

// RecipeSearcher 全文检索后端，返回按相关度排序的菜谱 ID
type RecipeSearcher interface {
	SearchIDs(ctx context.Context, q string, from, size int) ([]int64, int64, error)
}

type SearchService struct {
	recipes    *RecipeService
	recipeRepo *repository.RecipeRepository
	searcher   RecipeSearcher
}

// NewSearchService searcher 为 nil 时直接使用数据库名称匹配
func NewSearchService(recipes *RecipeService, recipeRepo *repository.RecipeRepository, searcher RecipeSearcher) *SearchService {
	return &SearchService{recipes: recipes, recipeRepo: recipeRepo, searcher: searcher}
}

// Search 搜索菜谱；检索后端不可用时回退到数据库名称模糊匹配
func (s *SearchService) Search(ctx context.Context, viewerID int64, q string, page, pageSize int) (*dto.PaginatedData, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, ErrSearchQueryRequired
	}

	if s.searcher != nil {
		data, err := s.searchIndex(ctx, viewerID, q, page, pageSize)
		if err == nil {
			return data, nil
		}
		metrics.SearchFallbacks.Inc()
		logger.Warn("Recipe search backend failed, falling back to database",
			zap.String("q", q),
			zap.Error(err),
		)
	}

	return s.recipes.listFiltered(viewerID, repository.RecipeFilter{NameLike: q}, page, pageSize)
}

func (s *SearchService) searchIndex(ctx context.Context, viewerID int64, q string, page, pageSize int) (*dto.PaginatedData, error) {
	ids, total, err := s.searcher.SearchIDs(ctx, q, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipeRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	// 保持检索结果的相关度顺序，跳过索引中已删除的菜谱
	byID := make(map[int64]model.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}
	ordered := make([]model.Recipe, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
		}
	}

	items, err := s.recipes.represent(viewerID, ordered)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedData(items, total, page, pageSize), nil
}
