package repository

import (
	"foodgram-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipRepository 用户-菜谱成员关系（收藏 / 购物清单）的通用仓储
type MembershipRepository struct {
	db     *gorm.DB
	newRow func(userID, recipeID int64) interface{}
}

func NewFavoriteRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{
		db: db,
		newRow: func(userID, recipeID int64) interface{} {
			return &model.Favorite{UserID: userID, RecipeID: recipeID}
		},
	}
}

func NewShoppingCartRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{
		db: db,
		newRow: func(userID, recipeID int64) interface{} {
			return &model.ShoppingCart{UserID: userID, RecipeID: recipeID}
		},
	}
}

// Create 创建成员关系，重复时返回 gorm.ErrDuplicatedKey
func (r *MembershipRepository) Create(userID, recipeID int64) error {
	return r.db.Omit(clause.Associations).Create(r.newRow(userID, recipeID)).Error
}

// Delete 删除成员关系，返回是否确实删除了记录
func (r *MembershipRepository) Delete(userID, recipeID int64) (bool, error) {
	result := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(r.newRow(0, 0))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists 检查成员关系是否存在
func (r *MembershipRepository) Exists(userID, recipeID int64) (bool, error) {
	var count int64
	err := r.db.Model(r.newRow(0, 0)).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

// BatchCheck 批量查询用户与多个菜谱的成员关系
func (r *MembershipRepository) BatchCheck(userID int64, recipeIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(recipeIDs))
	if len(recipeIDs) == 0 || userID == 0 {
		return result, nil
	}

	var memberIDs []int64
	err := r.db.Model(r.newRow(0, 0)).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &memberIDs).Error
	if err != nil {
		return nil, err
	}

	for _, id := range memberIDs {
		result[id] = true
	}
	return result, nil
}
