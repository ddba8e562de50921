package service

import (
	"context"
	"errors"
	"fmt"

	infraKafka "foodgram-go/internal/infra/kafka"
	"foodgram-go/internal/metrics"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecipeIndexer 搜索索引写入端
type RecipeIndexer interface {
	Sync(ctx context.Context, recipe *model.Recipe) error
	Delete(ctx context.Context, recipeID int64) error
	BulkSync(ctx context.Context, recipes []model.Recipe) (success, failed int, err error)
}

// IndexSyncService 根据菜谱事件维护搜索索引
type IndexSyncService struct {
	recipeRepo *repository.RecipeRepository
	indexer    RecipeIndexer
}

func NewIndexSyncService(recipeRepo *repository.RecipeRepository, indexer RecipeIndexer) *IndexSyncService {
	return &IndexSyncService{recipeRepo: recipeRepo, indexer: indexer}
}

// HandleEvent 处理单条菜谱事件；已删除的菜谱收到创建/更新事件时从索引移除
func (s *IndexSyncService) HandleEvent(ctx context.Context, event *infraKafka.RecipeEvent) error {
	err := s.apply(ctx, event)
	metrics.IndexSyncEvents.WithLabelValues(event.Type, metrics.Result(err)).Inc()
	return err
}

func (s *IndexSyncService) apply(ctx context.Context, event *infraKafka.RecipeEvent) error {
	switch event.Type {
	case infraKafka.RecipeCreated, infraKafka.RecipeUpdated:
		recipe, err := s.recipeRepo.GetByID(event.RecipeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return s.indexer.Delete(ctx, event.RecipeID)
			}
			return err
		}
		return s.indexer.Sync(ctx, recipe)
	case infraKafka.RecipeDeleted:
		return s.indexer.Delete(ctx, event.RecipeID)
	default:
		logger.Warn("Unknown recipe event type", zap.String("type", event.Type))
		return nil
	}
}

// Reindex 全量重建索引
func (s *IndexSyncService) Reindex(ctx context.Context) error {
	recipes, err := s.recipeRepo.ListAll()
	if err != nil {
		return fmt.Errorf("load recipes: %w", err)
	}

	success, failed, err := s.indexer.BulkSync(ctx, recipes)
	if err != nil {
		return err
	}
	logger.Info("Recipe reindex completed", zap.Int("success", success), zap.Int("failed", failed))
	return nil
}
