package dto

import "time"

// RecipeIngredientInput 菜谱中的一条食材
type RecipeIngredientInput struct {
	ID     int64 `json:"id" binding:"required"`
	Amount int   `json:"amount"`
}

// RecipeCreateRequest 创建菜谱请求，image 为 base64 data URI
type RecipeCreateRequest struct {
	Ingredients []RecipeIngredientInput `json:"ingredients" binding:"dive"`
	Tags        []int64                 `json:"tags"`
	Image       string                  `json:"image" binding:"required"`
	Name        string                  `json:"name" binding:"required,max=200"`
	Text        string                  `json:"text" binding:"required"`
	CookingTime int                     `json:"cooking_time"`
}

// RecipeUpdateRequest 更新菜谱请求，未出现的字段保持不变
type RecipeUpdateRequest struct {
	Ingredients *[]RecipeIngredientInput `json:"ingredients" binding:"omitempty,dive"`
	Tags        *[]int64                 `json:"tags"`
	Image       *string                  `json:"image" binding:"omitempty,min=1"`
	Name        *string                  `json:"name" binding:"omitempty,min=1,max=200"`
	Text        *string                  `json:"text" binding:"omitempty,min=1"`
	CookingTime *int                     `json:"cooking_time"`
}

// RecipeListQuery 菜谱列表筛选参数
type RecipeListQuery struct {
	Tags             []string
	Author           *int64
	IsFavorited      bool
	IsInShoppingCart bool
}

// RecipeIngredientInfo 菜谱食材展示
type RecipeIngredientInfo struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeInfo 菜谱完整展示
type RecipeInfo struct {
	ID               int64                  `json:"id"`
	Tags             []TagInfo              `json:"tags"`
	Author           UserInfo               `json:"author"`
	Ingredients      []RecipeIngredientInfo `json:"ingredients"`
	IsFavorited      bool                   `json:"is_favorited"`
	IsInShoppingCart bool                   `json:"is_in_shopping_cart"`
	Name             string                 `json:"name"`
	Image            string                 `json:"image"`
	Text             string                 `json:"text"`
	CookingTime      int                    `json:"cooking_time"`
	PubDate          time.Time              `json:"pub_date"`
}

// RecipeBrief 菜谱摘要（收藏、购物车、订阅中使用）
type RecipeBrief struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}
