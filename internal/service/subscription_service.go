package service

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"

	"gorm.io/gorm"
)

// NoRecipesLimit 订阅信息中不截断作者菜谱
const NoRecipesLimit = -1

type SubscriptionService struct {
	userRepo   *repository.UserRepository
	recipeRepo *repository.RecipeRepository
	subRepo    *repository.SubscriptionRepository
}

func NewSubscriptionService(userRepo *repository.UserRepository, recipeRepo *repository.RecipeRepository, subRepo *repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{userRepo: userRepo, recipeRepo: recipeRepo, subRepo: subRepo}
}

// Subscribe 订阅作者，recipesLimit < 0 表示返回全部菜谱
func (s *SubscriptionService) Subscribe(userID, authorID int64, recipesLimit int) (*dto.SubscriptionInfo, error) {
	author, err := s.userRepo.GetByID(authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if userID == authorID {
		return nil, ErrCannotSubscribeSelf
	}

	exists, err := s.subRepo.Exists(userID, authorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadySubscribed
	}

	if _, err := s.subRepo.Create(userID, authorID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}

	counts, err := s.recipeRepo.CountByAuthors([]int64{authorID})
	if err != nil {
		return nil, err
	}
	return s.buildSubscriptionInfo(author, recipesLimit, counts[authorID])
}

// Unsubscribe 取消订阅
func (s *SubscriptionService) Unsubscribe(userID, authorID int64) error {
	if _, err := s.userRepo.GetByID(authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	deleted, err := s.subRepo.Delete(userID, authorID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotSubscribed
	}
	return nil
}

// List 当前用户的订阅列表（分页，最近订阅在前）
func (s *SubscriptionService) List(userID int64, page, pageSize, recipesLimit int) (*dto.PaginatedData, error) {
	authorIDs, total, err := s.subRepo.ListAuthorIDs(userID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.GetByIDs(authorIDs)
	if err != nil {
		return nil, err
	}
	userMap := make(map[int64]*model.User, len(users))
	for i := range users {
		userMap[users[i].ID] = &users[i]
	}

	counts, err := s.recipeRepo.CountByAuthors(authorIDs)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SubscriptionInfo, 0, len(authorIDs))
	for _, id := range authorIDs {
		author, ok := userMap[id]
		if !ok {
			continue
		}
		info, err := s.buildSubscriptionInfo(author, recipesLimit, counts[id])
		if err != nil {
			return nil, err
		}
		items = append(items, *info)
	}
	return dto.NewPaginatedData(items, total, page, pageSize), nil
}

func (s *SubscriptionService) buildSubscriptionInfo(author *model.User, recipesLimit int, recipesCount int64) (*dto.SubscriptionInfo, error) {
	recipes, err := s.recipeRepo.ListByAuthor(author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}

	briefs := make([]dto.RecipeBrief, 0, len(recipes))
	for i := range recipes {
		briefs = append(briefs, toRecipeBrief(&recipes[i]))
	}

	return &dto.SubscriptionInfo{
		UserInfo:     toUserInfo(author, true),
		Recipes:      briefs,
		RecipesCount: recipesCount,
	}, nil
}
