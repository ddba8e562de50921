package service

import (
	"context"
	"errors"
	"fmt"

	"foodgram-go/internal/api/dto"
	infraKafka "foodgram-go/internal/infra/kafka"
	"foodgram-go/internal/metrics"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"
	"foodgram-go/pkg/logger"
	"foodgram-go/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ImageStorage 菜谱图片存储
type ImageStorage interface {
	Save(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
	Remove(ctx context.Context, imageURL string) error
}

// RecipeEventPublisher 菜谱变更事件发布
type RecipeEventPublisher interface {
	PublishRecipeEvent(ctx context.Context, event *infraKafka.RecipeEvent) error
}

type RecipeService struct {
	recipeRepo     *repository.RecipeRepository
	tagRepo        *repository.TagRepository
	ingredientRepo *repository.IngredientRepository
	favoriteRepo   *repository.MembershipRepository
	cartRepo       *repository.MembershipRepository
	subRepo        *repository.SubscriptionRepository
	images         ImageStorage
	events         RecipeEventPublisher
}

// NewRecipeService events 为 nil 时不发布变更事件
func NewRecipeService(
	recipeRepo *repository.RecipeRepository,
	tagRepo *repository.TagRepository,
	ingredientRepo *repository.IngredientRepository,
	favoriteRepo *repository.MembershipRepository,
	cartRepo *repository.MembershipRepository,
	subRepo *repository.SubscriptionRepository,
	images ImageStorage,
	events RecipeEventPublisher,
) *RecipeService {
	return &RecipeService{
		recipeRepo:     recipeRepo,
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
		favoriteRepo:   favoriteRepo,
		cartRepo:       cartRepo,
		subRepo:        subRepo,
		images:         images,
		events:         events,
	}
}

// Create 创建菜谱：校验、上传图片，并在一个事务内写入菜谱、标签与食材
func (s *RecipeService) Create(ctx context.Context, authorID int64, req *dto.RecipeCreateRequest) (*dto.RecipeInfo, error) {
	if req.CookingTime < model.MinCookingTime {
		return nil, ErrInvalidCookingTime
	}
	if err := s.checkTags(req.Tags); err != nil {
		return nil, err
	}
	items, err := s.checkIngredients(req.Ingredients)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.uploadImage(ctx, req.Image)
	if err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       imageURL,
		CookingTime: req.CookingTime,
	}
	if err := s.recipeRepo.Create(recipe, req.Tags, items); err != nil {
		s.removeImage(ctx, imageURL)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRecipeExists
		}
		return nil, err
	}

	s.publish(ctx, infraKafka.RecipeCreated, recipe)

	return s.Get(authorID, recipe.ID)
}

// Update 部分更新菜谱，仅作者可操作；ingredients / tags 出现时整体替换
func (s *RecipeService) Update(ctx context.Context, viewerID, recipeID int64, req *dto.RecipeUpdateRequest) (*dto.RecipeInfo, error) {
	recipe, err := s.getOwned(viewerID, recipeID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Text != nil {
		updates["text"] = *req.Text
	}
	if req.CookingTime != nil {
		if *req.CookingTime < model.MinCookingTime {
			return nil, ErrInvalidCookingTime
		}
		updates["cooking_time"] = *req.CookingTime
	}

	var tagIDs []int64
	if req.Tags != nil {
		if err := s.checkTags(*req.Tags); err != nil {
			return nil, err
		}
		tagIDs = append(make([]int64, 0, len(*req.Tags)), *req.Tags...)
	}

	var items []model.RecipeIngredient
	if req.Ingredients != nil {
		if items, err = s.checkIngredients(*req.Ingredients); err != nil {
			return nil, err
		}
	}

	var newImage string
	if req.Image != nil {
		if newImage, err = s.uploadImage(ctx, *req.Image); err != nil {
			return nil, err
		}
		updates["image"] = newImage
	}

	if err := s.recipeRepo.Update(recipeID, updates, tagIDs, items); err != nil {
		s.removeImage(ctx, newImage)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRecipeExists
		}
		return nil, err
	}

	if newImage != "" {
		s.removeImage(ctx, recipe.Image)
	}
	s.publish(ctx, infraKafka.RecipeUpdated, recipe)

	return s.Get(viewerID, recipeID)
}

// Delete 删除菜谱，仅作者可操作
func (s *RecipeService) Delete(ctx context.Context, viewerID, recipeID int64) error {
	recipe, err := s.getOwned(viewerID, recipeID)
	if err != nil {
		return err
	}

	if err := s.recipeRepo.Delete(recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	s.removeImage(ctx, recipe.Image)
	s.publish(ctx, infraKafka.RecipeDeleted, recipe)
	return nil
}

// Get 获取菜谱详情
func (s *RecipeService) Get(viewerID, recipeID int64) (*dto.RecipeInfo, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	infos, err := s.represent(viewerID, []model.Recipe{*recipe})
	if err != nil {
		return nil, err
	}
	return &infos[0], nil
}

// List 菜谱列表；匿名用户的 is_favorited / is_in_shopping_cart 筛选不生效
func (s *RecipeService) List(viewerID int64, query *dto.RecipeListQuery, page, pageSize int) (*dto.PaginatedData, error) {
	filter := repository.RecipeFilter{
		TagSlugs: query.Tags,
		AuthorID: query.Author,
	}
	if viewerID != 0 {
		if query.IsFavorited {
			filter.FavoritedBy = &viewerID
		}
		if query.IsInShoppingCart {
			filter.InCartOf = &viewerID
		}
	}
	return s.listFiltered(viewerID, filter, page, pageSize)
}

func (s *RecipeService) listFiltered(viewerID int64, filter repository.RecipeFilter, page, pageSize int) (*dto.PaginatedData, error) {
	recipes, total, err := s.recipeRepo.List(filter, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	items, err := s.represent(viewerID, recipes)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedData(items, total, page, pageSize), nil
}

func (s *RecipeService) getOwned(viewerID, recipeID int64) (*model.Recipe, error) {
	recipe, err := s.recipeRepo.GetBrief(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.AuthorID != viewerID {
		return nil, ErrRecipeNoPermission
	}
	return recipe, nil
}

// checkTags 标签非空、不重复且全部存在
func (s *RecipeService) checkTags(tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return ErrTagsRequired
	}

	seen := make(map[int64]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		if _, ok := seen[id]; ok {
			return ErrTagsNotUnique
		}
		seen[id] = struct{}{}
	}

	count, err := s.tagRepo.CountByIDs(tagIDs)
	if err != nil {
		return err
	}
	if count != int64(len(tagIDs)) {
		return ErrTagNotFound
	}
	return nil
}

// checkIngredients 食材非空、不重复、数量合法且全部存在
func (s *RecipeService) checkIngredients(inputs []dto.RecipeIngredientInput) ([]model.RecipeIngredient, error) {
	if len(inputs) == 0 {
		return nil, ErrIngredientsRequired
	}

	seen := make(map[int64]struct{}, len(inputs))
	ids := make([]int64, 0, len(inputs))
	items := make([]model.RecipeIngredient, 0, len(inputs))
	for _, in := range inputs {
		if _, ok := seen[in.ID]; ok {
			return nil, ErrIngredientsNotUnique
		}
		if in.Amount < model.MinAmount || in.Amount > model.MaxAmount {
			return nil, ErrInvalidAmount
		}
		seen[in.ID] = struct{}{}
		ids = append(ids, in.ID)
		items = append(items, model.RecipeIngredient{IngredientID: in.ID, Amount: in.Amount})
	}

	count, err := s.ingredientRepo.CountByIDs(ids)
	if err != nil {
		return nil, err
	}
	if count != int64(len(ids)) {
		return nil, ErrIngredientNotFound
	}
	return items, nil
}

func (s *RecipeService) uploadImage(ctx context.Context, raw string) (string, error) {
	img, err := utils.DecodeImageDataURI(raw)
	if err != nil {
		return "", ErrInvalidImage
	}

	objectName := fmt.Sprintf("%s.%s", uuid.NewString(), img.Extension)
	url, err := s.images.Save(ctx, objectName, img.Data, img.ContentType)
	if err != nil {
		logger.Error("Failed to upload recipe image", zap.String("object", objectName), zap.Error(err))
		return "", fmt.Errorf("upload recipe image: %w", err)
	}
	return url, nil
}

func (s *RecipeService) removeImage(ctx context.Context, imageURL string) {
	if imageURL == "" {
		return
	}
	if err := s.images.Remove(ctx, imageURL); err != nil {
		logger.Warn("Failed to remove recipe image", zap.String("image", imageURL), zap.Error(err))
	}
}

// publish 事件发布失败不影响主流程，搜索索引可通过 -reindex 重建
func (s *RecipeService) publish(ctx context.Context, eventType string, recipe *model.Recipe) {
	if s.events == nil {
		return
	}
	event := &infraKafka.RecipeEvent{Type: eventType, RecipeID: recipe.ID, AuthorID: recipe.AuthorID}
	err := s.events.PublishRecipeEvent(ctx, event)
	metrics.RecipeEventsPublished.WithLabelValues(eventType, metrics.Result(err)).Inc()
	if err != nil {
		logger.Warn("Failed to publish recipe event",
			zap.String("type", eventType),
			zap.Int64("recipe_id", recipe.ID),
			zap.Error(err),
		)
	}
}

// represent 组装菜谱展示，收藏、购物车与订阅状态相对 viewerID 批量计算
func (s *RecipeService) represent(viewerID int64, recipes []model.Recipe) ([]dto.RecipeInfo, error) {
	recipeIDs := make([]int64, 0, len(recipes))
	authorIDs := make([]int64, 0, len(recipes))
	for _, r := range recipes {
		recipeIDs = append(recipeIDs, r.ID)
		authorIDs = append(authorIDs, r.AuthorID)
	}

	favorited, err := s.favoriteRepo.BatchCheck(viewerID, recipeIDs)
	if err != nil {
		return nil, err
	}
	inCart, err := s.cartRepo.BatchCheck(viewerID, recipeIDs)
	if err != nil {
		return nil, err
	}
	subscribed, err := s.subRepo.BatchCheck(viewerID, authorIDs)
	if err != nil {
		return nil, err
	}

	items := make([]dto.RecipeInfo, 0, len(recipes))
	for i := range recipes {
		r := &recipes[i]

		tags := make([]dto.TagInfo, 0, len(r.Tags))
		for j := range r.Tags {
			tags = append(tags, toTagInfo(&r.Tags[j]))
		}

		ingredients := make([]dto.RecipeIngredientInfo, 0, len(r.Ingredients))
		for _, ri := range r.Ingredients {
			ingredients = append(ingredients, dto.RecipeIngredientInfo{
				ID:              ri.IngredientID,
				Name:            ri.Ingredient.Name,
				MeasurementUnit: ri.Ingredient.MeasurementUnit,
				Amount:          ri.Amount,
			})
		}

		items = append(items, dto.RecipeInfo{
			ID:               r.ID,
			Tags:             tags,
			Author:           toUserInfo(&r.Author, subscribed[r.AuthorID]),
			Ingredients:      ingredients,
			IsFavorited:      favorited[r.ID],
			IsInShoppingCart: inCart[r.ID],
			Name:             r.Name,
			Image:            r.Image,
			Text:             r.Text,
			CookingTime:      r.CookingTime,
			PubDate:          r.PubDate,
		})
	}
	return items, nil
}

func toRecipeBrief(r *model.Recipe) dto.RecipeBrief {
	return dto.RecipeBrief{ID: r.ID, Name: r.Name, Image: r.Image, CookingTime: r.CookingTime}
}
