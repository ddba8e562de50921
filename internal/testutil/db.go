// Package testutil 测试用的内存数据库、数据构造与基础设施替身
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"foodgram-go/internal/infra/database"
	"foodgram-go/internal/model"
	"foodgram-go/pkg/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultPassword 由 CreateUser 创建的用户的明文密码
const DefaultPassword = "password123"

// TinyPNG 1x1 PNG 的 data URI
const TinyPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// NewTestDB 每个测试独立的 SQLite 内存库，使用生产迁移建表
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)

	cfg := database.GormConfig()
	cfg.Logger = gormlogger.Default.LogMode(gormlogger.Silent)

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 共享内存库在单连接下才能保证事务内外看到同一份数据
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// CreateUser 创建用户，邮箱为 <username>@example.com，密码为 DefaultPassword
func CreateUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()

	hash, err := utils.HashPassword(DefaultPassword)
	require.NoError(t, err)

	user := &model.User{
		Username:  username,
		Email:     username + "@example.com",
		Password:  hash,
		FirstName: strings.ToUpper(username[:1]) + username[1:],
		LastName:  "Tester",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateTag(t *testing.T, db *gorm.DB, name, slug string) *model.Tag {
	t.Helper()
	tag := &model.Tag{Name: name, Slug: slug, Color: model.DefaultTagColor}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func CreateIngredient(t *testing.T, db *gorm.DB, name, unit string) *model.Ingredient {
	t.Helper()
	ingredient := &model.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}

// Amount 构造菜谱时的一条食材
type Amount struct {
	IngredientID int64
	Amount       int
}

// CreateRecipe 直接写库创建菜谱及其标签、食材
func CreateRecipe(t *testing.T, db *gorm.DB, authorID int64, name string, tagIDs []int64, amounts ...Amount) *model.Recipe {
	t.Helper()

	recipe := &model.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Text:        name + " text",
		Image:       "http://images.test/recipe-images/" + name + ".png",
		CookingTime: 10,
	}
	require.NoError(t, db.Omit("Author", "Tags", "Ingredients").Create(recipe).Error)

	for _, tagID := range tagIDs {
		require.NoError(t, db.Create(&model.RecipeTag{RecipeID: recipe.ID, TagID: tagID}).Error)
	}
	for _, a := range amounts {
		row := &model.RecipeIngredient{RecipeID: recipe.ID, IngredientID: a.IngredientID, Amount: a.Amount}
		require.NoError(t, db.Omit("Ingredient").Create(row).Error)
	}
	return recipe
}

// AddFavorite 直接写库添加收藏
func AddFavorite(t *testing.T, db *gorm.DB, userID, recipeID int64) {
	t.Helper()
	require.NoError(t, db.Omit("User", "Recipe").Create(&model.Favorite{UserID: userID, RecipeID: recipeID}).Error)
}

// AddToCart 直接写库加入购物车
func AddToCart(t *testing.T, db *gorm.DB, userID, recipeID int64) {
	t.Helper()
	require.NoError(t, db.Omit("User", "Recipe").Create(&model.ShoppingCart{UserID: userID, RecipeID: recipeID}).Error)
}
