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

func ingredientNames(items []model.Ingredient) []string {
	names := make([]string, 0, len(items))
	for _, i := range items {
		names = append(names, i.Name)
	}
	return names
}

func TestIngredientListPrefixMatch(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateIngredient(t, db, "Sugar", "g")
	testutil.CreateIngredient(t, db, "salt", "g")
	testutil.CreateIngredient(t, db, "sugar syrup", "ml")
	testutil.CreateIngredient(t, db, "brown sugar", "g")
	testutil.CreateIngredient(t, db, "100%_juice", "ml")

	repo := repository.NewIngredientRepository(db)

	all, err := repo.List("")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	sugar, err := repo.List("SUG")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sugar", "sugar syrup"}, ingredientNames(sugar))

	// LIKE 通配符按字面量匹配
	literal, err := repo.List("100%_")
	require.NoError(t, err)
	assert.Equal(t, []string{"100%_juice"}, ingredientNames(literal))

	none, err := repo.List("%")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestIngredientNameUnitUnique(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewIngredientRepository(db)

	require.NoError(t, repo.Create(&model.Ingredient{Name: "milk", MeasurementUnit: "ml"}))
	require.NoError(t, repo.Create(&model.Ingredient{Name: "milk", MeasurementUnit: "cup"}))
	assert.ErrorIs(t, repo.Create(&model.Ingredient{Name: "milk", MeasurementUnit: "ml"}), gorm.ErrDuplicatedKey)
}

func TestTagRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	lunch := testutil.CreateTag(t, db, "Lunch", "lunch")
	breakfast := testutil.CreateTag(t, db, "Breakfast", "breakfast")

	repo := repository.NewTagRepository(db)

	tags, err := repo.List()
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "Breakfast", tags[0].Name)
	assert.Equal(t, model.DefaultTagColor, tags[0].Color)

	count, err := repo.CountByIDs([]int64{lunch.ID, breakfast.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, err = repo.GetByID(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
