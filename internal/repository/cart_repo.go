package repository

import (
	"foodgram-go/internal/model"

	"gorm.io/gorm"
)

// CartLine 购物清单中按 (名称, 单位) 汇总后的一行
type CartLine struct {
	Name            string
	MeasurementUnit string
	Total           int64
}

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// AggregateIngredients 汇总用户购物清单中所有菜谱的食材数量，按总量降序
func (r *CartRepository) AggregateIngredients(userID int64) ([]CartLine, error) {
	var lines []CartLine
	err := r.db.Model(&model.RecipeIngredient{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("total DESC").Order("ingredients.name").
		Scan(&lines).Error
	return lines, err
}
