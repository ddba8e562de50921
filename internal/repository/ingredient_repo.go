package repository

import (
	"strings"

	"foodgram-go/internal/model"

	"gorm.io/gorm"
)

type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// List 获取食材列表，namePrefix 非空时按名称前缀（不区分大小写）过滤
func (r *IngredientRepository) List(namePrefix string) ([]model.Ingredient, error) {
	query := r.db.Model(&model.Ingredient{})
	if namePrefix != "" {
		query = query.Where("LOWER(name) LIKE ? ESCAPE '\\'", escapeLike(strings.ToLower(namePrefix))+"%")
	}

	var ingredients []model.Ingredient
	err := query.Order("name").Order("id").Find(&ingredients).Error
	return ingredients, err
}

// GetByID 根据 ID 获取食材
func (r *IngredientRepository) GetByID(id int64) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	if err := r.db.First(&ingredient, id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// CountByIDs 统计给定 ID 中实际存在的食材数
func (r *IngredientRepository) CountByIDs(ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&model.Ingredient{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

// Create 创建食材
func (r *IngredientRepository) Create(ingredient *model.Ingredient) error {
	return r.db.Create(ingredient).Error
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
