package service

import (
	"errors"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/repository"

	"gorm.io/gorm"
)

// MembershipService 收藏与购物车共用的添加 / 移除协议
type MembershipService struct {
	recipeRepo *repository.RecipeRepository
	memberRepo *repository.MembershipRepository
	errExists  error
	errMissing error
}

func NewFavoriteService(recipeRepo *repository.RecipeRepository, favoriteRepo *repository.MembershipRepository) *MembershipService {
	return &MembershipService{
		recipeRepo: recipeRepo,
		memberRepo: favoriteRepo,
		errExists:  ErrAlreadyFavorited,
		errMissing: ErrNotFavorited,
	}
}

func NewShoppingCartService(recipeRepo *repository.RecipeRepository, cartRepo *repository.MembershipRepository) *MembershipService {
	return &MembershipService{
		recipeRepo: recipeRepo,
		memberRepo: cartRepo,
		errExists:  ErrAlreadyInCart,
		errMissing: ErrNotInCart,
	}
}

// Add 添加成员关系，已存在时返回冲突错误（含并发写入触发的唯一约束冲突）
func (s *MembershipService) Add(userID, recipeID int64) (*dto.RecipeBrief, error) {
	recipe, err := s.recipeRepo.GetBrief(recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	exists, err := s.memberRepo.Exists(userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, s.errExists
	}

	if err := s.memberRepo.Create(userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.errExists
		}
		return nil, err
	}

	brief := toRecipeBrief(recipe)
	return &brief, nil
}

// Remove 移除成员关系，不存在时返回冲突错误
func (s *MembershipService) Remove(userID, recipeID int64) error {
	exists, err := s.recipeRepo.Exists(recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRecipeNotFound
	}

	deleted, err := s.memberRepo.Delete(userID, recipeID)
	if err != nil {
		return err
	}
	if !deleted {
		return s.errMissing
	}
	return nil
}

// Contains 查询成员关系是否存在
func (s *MembershipService) Contains(userID, recipeID int64) (bool, error) {
	return s.memberRepo.Exists(userID, recipeID)
}
