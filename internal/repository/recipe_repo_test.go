package repository_test

import (
	"testing"

	"foodgram-go/internal/model"
	"foodgram-go/internal/repository"
	"foodgram-go/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func recipeNames(recipes []model.Recipe) []string {
	names := make([]string, 0, len(recipes))
	for _, r := range recipes {
		names = append(names, r.Name)
	}
	return names
}

func TestRecipeCreateAndGetLoadsRelations(t *testing.T) {
	db := testutil.NewTestDB(t)
	author := testutil.CreateUser(t, db, "alice")
	breakfast := testutil.CreateTag(t, db, "Breakfast", "breakfast")
	lunch := testutil.CreateTag(t, db, "Lunch", "lunch")
	flour := testutil.CreateIngredient(t, db, "flour", "g")
	milk := testutil.CreateIngredient(t, db, "milk", "ml")

	repo := repository.NewRecipeRepository(db)
	recipe := &model.Recipe{AuthorID: author.ID, Name: "pancakes", Text: "mix and fry", CookingTime: 15}
	err := repo.Create(recipe, []int64{lunch.ID, breakfast.ID}, []model.RecipeIngredient{
		{IngredientID: flour.ID, Amount: 200},
		{IngredientID: milk.ID, Amount: 300},
	})
	require.NoError(t, err)

	got, err := repo.GetByID(recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Author.Username)
	require.Len(t, got.Tags, 2)
	assert.Equal(t, "Breakfast", got.Tags[0].Name)
	require.Len(t, got.Ingredients, 2)
	assert.Equal(t, "flour", got.Ingredients[0].Ingredient.Name)
	assert.Equal(t, 300, got.Ingredients[1].Amount)
	assert.False(t, got.PubDate.IsZero())
}

func TestRecipeCreateRollsBackOnFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	author := testutil.CreateUser(t, db, "alice")
	flour := testutil.CreateIngredient(t, db, "flour", "g")

	repo := repository.NewRecipeRepository(db)
	recipe := &model.Recipe{AuthorID: author.ID, Name: "broken", Text: "x", CookingTime: 5}
	// 同一食材两次违反 (recipe_id, ingredient_id) 唯一约束
	err := repo.Create(recipe, nil, []model.RecipeIngredient{
		{IngredientID: flour.ID, Amount: 1},
		{IngredientID: flour.ID, Amount: 2},
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Recipe{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&model.RecipeIngredient{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecipeUpdateReplacesOnlyPresentSets(t *testing.T) {
	db := testutil.NewTestDB(t)
	author := testutil.CreateUser(t, db, "alice")
	tagA := testutil.CreateTag(t, db, "A", "a")
	tagB := testutil.CreateTag(t, db, "B", "b")
	flour := testutil.CreateIngredient(t, db, "flour", "g")
	eggs := testutil.CreateIngredient(t, db, "eggs", "pcs")
	recipe := testutil.CreateRecipe(t, db, author.ID, "bread", []int64{tagA.ID}, testutil.Amount{IngredientID: flour.ID, Amount: 100})

	repo := repository.NewRecipeRepository(db)

	require.NoError(t, repo.Update(recipe.ID, map[string]interface{}{"name": "better bread"}, nil, nil))
	got, err := repo.GetByID(recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "better bread", got.Name)
	require.Len(t, got.Tags, 1)
	require.Len(t, got.Ingredients, 1)

	require.NoError(t, repo.Update(recipe.ID, nil, []int64{tagB.ID}, []model.RecipeIngredient{
		{IngredientID: eggs.ID, Amount: 3},
	}))
	got, err = repo.GetByID(recipe.ID)
	require.NoError(t, err)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, tagB.ID, got.Tags[0].ID)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, eggs.ID, got.Ingredients[0].IngredientID)
	assert.Equal(t, 3, got.Ingredients[0].Amount)
}

func TestRecipeDeleteRemovesDependents(t *testing.T) {
	db := testutil.NewTestDB(t)
	author := testutil.CreateUser(t, db, "alice")
	reader := testutil.CreateUser(t, db, "bob")
	tag := testutil.CreateTag(t, db, "A", "a")
	flour := testutil.CreateIngredient(t, db, "flour", "g")
	recipe := testutil.CreateRecipe(t, db, author.ID, "bread", []int64{tag.ID}, testutil.Amount{IngredientID: flour.ID, Amount: 100})
	testutil.AddFavorite(t, db, reader.ID, recipe.ID)
	testutil.AddToCart(t, db, reader.ID, recipe.ID)

	repo := repository.NewRecipeRepository(db)
	require.NoError(t, repo.Delete(recipe.ID))

	for _, m := range []interface{}{&model.Recipe{}, &model.RecipeTag{}, &model.RecipeIngredient{}, &model.Favorite{}, &model.ShoppingCart{}} {
		var count int64
		require.NoError(t, db.Model(m).Count(&count).Error)
		assert.Zero(t, count)
	}

	assert.ErrorIs(t, repo.Delete(recipe.ID), gorm.ErrRecordNotFound)
}

func TestRecipeListFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	breakfast := testutil.CreateTag(t, db, "Breakfast", "breakfast")
	dinner := testutil.CreateTag(t, db, "Dinner", "dinner")

	omelette := testutil.CreateRecipe(t, db, alice.ID, "omelette", []int64{breakfast.ID, dinner.ID})
	steak := testutil.CreateRecipe(t, db, bob.ID, "steak", []int64{dinner.ID})
	testutil.CreateRecipe(t, db, bob.ID, "porridge", []int64{breakfast.ID})
	testutil.CreateRecipe(t, db, alice.ID, "water", nil)

	testutil.AddFavorite(t, db, alice.ID, steak.ID)
	testutil.AddToCart(t, db, bob.ID, omelette.ID)

	repo := repository.NewRecipeRepository(db)

	all, total, err := repo.List(repository.RecipeFilter{}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Equal(t, []string{"water", "porridge", "steak", "omelette"}, recipeNames(all))

	// 任一标签匹配即可，且不重复
	byTags, total, err := repo.List(repository.RecipeFilter{TagSlugs: []string{"breakfast", "dinner"}}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []string{"porridge", "steak", "omelette"}, recipeNames(byTags))

	unknown, total, err := repo.List(repository.RecipeFilter{TagSlugs: []string{"nope"}}, 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, unknown)

	byAuthor, _, err := repo.List(repository.RecipeFilter{AuthorID: &bob.ID}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"porridge", "steak"}, recipeNames(byAuthor))

	favorited, _, err := repo.List(repository.RecipeFilter{FavoritedBy: &alice.ID}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"steak"}, recipeNames(favorited))

	inCart, _, err := repo.List(repository.RecipeFilter{InCartOf: &bob.ID}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"omelette"}, recipeNames(inCart))

	combined, _, err := repo.List(repository.RecipeFilter{TagSlugs: []string{"dinner"}, AuthorID: &alice.ID}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"omelette"}, recipeNames(combined))

	byName, _, err := repo.List(repository.RecipeFilter{NameLike: "RIDG"}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"porridge"}, recipeNames(byName))

	page2, total, err := repo.List(repository.RecipeFilter{}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Equal(t, []string{"steak", "omelette"}, recipeNames(page2))
}

func TestRecipeListByAuthorAndCounts(t *testing.T) {
	db := testutil.NewTestDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	testutil.CreateRecipe(t, db, alice.ID, "one", nil)
	testutil.CreateRecipe(t, db, alice.ID, "two", nil)
	testutil.CreateRecipe(t, db, alice.ID, "three", nil)

	repo := repository.NewRecipeRepository(db)

	limited, err := repo.ListByAuthor(alice.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"three", "two"}, recipeNames(limited))

	all, err := repo.ListByAuthor(alice.ID, -1)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	counts, err := repo.CountByAuthors([]int64{alice.ID, bob.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[alice.ID])
	assert.Zero(t, counts[bob.ID])
}

func TestRecipeUniqueNamePerAuthor(t *testing.T) {
	db := testutil.NewTestDB(t)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	repo := repository.NewRecipeRepository(db)

	require.NoError(t, repo.Create(&model.Recipe{AuthorID: alice.ID, Name: "soup", Text: "x", CookingTime: 1}, nil, nil))
	require.NoError(t, repo.Create(&model.Recipe{AuthorID: bob.ID, Name: "soup", Text: "x", CookingTime: 1}, nil, nil))

	err := repo.Create(&model.Recipe{AuthorID: alice.ID, Name: "soup", Text: "y", CookingTime: 1}, nil, nil)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
