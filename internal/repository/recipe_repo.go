package repository

import (
	"strings"

	"foodgram-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeFilter 菜谱列表筛选条件，nil / 空值表示不过滤
type RecipeFilter struct {
	TagSlugs    []string
	AuthorID    *int64
	FavoritedBy *int64
	InCartOf    *int64
	NameLike    string
}

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func withRecipeRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name") }).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("recipe_ingredients.id") }).
		Preload("Ingredients.Ingredient")
}

// GetByID 根据 ID 获取菜谱（含作者、标签、食材）
func (r *RecipeRepository) GetByID(id int64) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.Scopes(withRecipeRelations).First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetByIDs 批量获取菜谱（含关联），顺序不保证
func (r *RecipeRepository) GetByIDs(ids []int64) ([]model.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var recipes []model.Recipe
	err := r.db.Scopes(withRecipeRelations).Where("id IN ?", ids).Find(&recipes).Error
	return recipes, err
}

// Exists 检查菜谱是否存在
func (r *RecipeRepository) Exists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Recipe{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetBrief 获取菜谱基础字段（不加载关联）
func (r *RecipeRepository) GetBrief(id int64) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Create 在同一事务中创建菜谱、标签关联与食材记录
func (r *RecipeRepository) Create(recipe *model.Recipe, tagIDs []int64, items []model.RecipeIngredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}
		if err := replaceRecipeTags(tx, recipe.ID, tagIDs); err != nil {
			return err
		}
		return replaceRecipeIngredients(tx, recipe.ID, items)
	})
}

// Update 在同一事务中更新菜谱字段；tagIDs / items 为 nil 时保持原值，否则整体替换
func (r *RecipeRepository) Update(id int64, updates map[string]interface{}, tagIDs []int64, items []model.RecipeIngredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&model.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		if tagIDs != nil {
			if err := replaceRecipeTags(tx, id, tagIDs); err != nil {
				return err
			}
		}
		if items != nil {
			if err := replaceRecipeIngredients(tx, id, items); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete 删除菜谱及其全部关联记录
func (r *RecipeRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		dependents := []interface{}{
			&model.RecipeTag{},
			&model.RecipeIngredient{},
			&model.Favorite{},
			&model.ShoppingCart{},
		}
		for _, m := range dependents {
			if err := tx.Where("recipe_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&model.Recipe{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func replaceRecipeTags(tx *gorm.DB, recipeID int64, tagIDs []int64) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]model.RecipeTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		rows = append(rows, model.RecipeTag{RecipeID: recipeID, TagID: id})
	}
	return tx.Create(&rows).Error
}

func replaceRecipeIngredients(tx *gorm.DB, recipeID int64, items []model.RecipeIngredient) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeIngredient{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	rows := make([]model.RecipeIngredient, 0, len(items))
	for _, item := range items {
		rows = append(rows, model.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: item.IngredientID,
			Amount:       item.Amount,
		})
	}
	return tx.Omit(clause.Associations).CreateInBatches(&rows, 100).Error
}

func (r *RecipeRepository) filterScope(filter RecipeFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(filter.TagSlugs) > 0 {
			sub := r.db.Table("recipe_tags").
				Select("recipe_tags.recipe_id").
				Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
				Where("tags.slug IN ?", filter.TagSlugs)
			db = db.Where("recipes.id IN (?)", sub)
		}
		if filter.AuthorID != nil {
			db = db.Where("recipes.author_id = ?", *filter.AuthorID)
		}
		if filter.FavoritedBy != nil {
			sub := r.db.Model(&model.Favorite{}).Select("recipe_id").Where("user_id = ?", *filter.FavoritedBy)
			db = db.Where("recipes.id IN (?)", sub)
		}
		if filter.InCartOf != nil {
			sub := r.db.Model(&model.ShoppingCart{}).Select("recipe_id").Where("user_id = ?", *filter.InCartOf)
			db = db.Where("recipes.id IN (?)", sub)
		}
		if q := strings.TrimSpace(filter.NameLike); q != "" {
			db = db.Where("LOWER(recipes.name) LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(q))+"%")
		}
		return db
	}
}

// List 菜谱列表（筛选、分页，按发布时间倒序）
func (r *RecipeRepository) List(filter RecipeFilter, skip, limit int) ([]model.Recipe, int64, error) {
	scope := r.filterScope(filter)

	var total int64
	if err := r.db.Model(&model.Recipe{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []model.Recipe
	err := r.db.Model(&model.Recipe{}).
		Scopes(scope, withRecipeRelations).
		Order("recipes.pub_date DESC").Order("recipes.id DESC").
		Offset(skip).Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// ListAll 获取全部菜谱（含关联，用于搜索索引重建）
func (r *RecipeRepository) ListAll() ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := r.db.Scopes(withRecipeRelations).Order("id").Find(&recipes).Error
	return recipes, err
}

// ListByAuthor 获取作者的菜谱基础信息；limit < 0 表示不限制
func (r *RecipeRepository) ListByAuthor(authorID int64, limit int) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := r.db.Where("author_id = ?", authorID).
		Order("pub_date DESC").Order("id DESC").
		Limit(limit).
		Find(&recipes).Error
	return recipes, err
}

// CountByAuthors 批量统计作者的菜谱数
func (r *RecipeRepository) CountByAuthors(authorIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(authorIDs))
	if len(authorIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		AuthorID int64
		Total    int64
	}
	err := r.db.Model(&model.Recipe{}).
		Select("author_id, COUNT(*) AS total").
		Where("author_id IN ?", authorIDs).
		Group("author_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.AuthorID] = row.Total
	}
	return result, nil
}
