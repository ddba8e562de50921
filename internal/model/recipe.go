package model

import "time"

const (
	MinCookingTime = 1
	MinAmount      = 1
	MaxAmount      = 1000
)

// Recipe 菜谱模型，(name, author_id) 唯一
type Recipe struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:菜谱ID" json:"id"`
	AuthorID    int64     `gorm:"not null;uniqueIndex:uq_recipe_name_author;index:idx_recipes_author_id;comment:作者ID" json:"author_id"`
	Name        string    `gorm:"size:200;not null;uniqueIndex:uq_recipe_name_author;comment:菜谱名称" json:"name"`
	Text        string    `gorm:"type:text;not null;comment:菜谱描述" json:"text"`
	Image       string    `gorm:"size:500;not null;default:'';comment:图片地址" json:"image"`
	CookingTime int       `gorm:"not null;default:1;check:chk_recipes_cooking_time,cooking_time >= 1;comment:烹饪时间（分钟）" json:"cooking_time"`
	PubDate     time.Time `gorm:"autoCreateTime;index:idx_recipes_pub_date;comment:发布时间" json:"pub_date"`

	// 关联关系
	Author      User               `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Tags        []Tag              `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// RecipeTag 菜谱与标签的关联表
type RecipeTag struct {
	RecipeID int64 `gorm:"primaryKey;comment:菜谱ID"`
	TagID    int64 `gorm:"primaryKey;index:idx_recipe_tags_tag_id;comment:标签ID"`
}

func (RecipeTag) TableName() string {
	return "recipe_tags"
}

// RecipeIngredient 菜谱中的食材及数量，(recipe_id, ingredient_id) 唯一
type RecipeIngredient struct {
	ID           int64 `gorm:"primaryKey;autoIncrement;comment:记录ID" json:"id"`
	RecipeID     int64 `gorm:"not null;uniqueIndex:uq_recipe_ingredient;comment:菜谱ID" json:"recipe_id"`
	IngredientID int64 `gorm:"not null;uniqueIndex:uq_recipe_ingredient;index:idx_recipe_ingredients_ingredient_id;comment:食材ID" json:"ingredient_id"`
	Amount       int   `gorm:"not null;default:0;check:chk_recipe_ingredients_amount,amount >= 0 AND amount <= 1000;comment:数量" json:"amount"`

	Ingredient Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"ingredient,omitempty"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
