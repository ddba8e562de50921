package service_test

import (
	"testing"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/service"
	"foodgram-go/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribe(t *testing.T) {
	f := newFixture(t)
	alice := testutil.CreateUser(t, f.db, "alice")
	bob := testutil.CreateUser(t, f.db, "bob")
	testutil.CreateRecipe(t, f.db, bob.ID, "one", nil)
	testutil.CreateRecipe(t, f.db, bob.ID, "two", nil)
	testutil.CreateRecipe(t, f.db, bob.ID, "three", nil)

	info, err := f.subscriptions.Subscribe(alice.ID, bob.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, info.ID)
	assert.True(t, info.IsSubscribed)
	assert.Equal(t, int64(3), info.RecipesCount)
	require.Len(t, info.Recipes, 2)
	assert.Equal(t, "three", info.Recipes[0].Name)

	_, err = f.subscriptions.Subscribe(alice.ID, bob.ID, service.NoRecipesLimit)
	assert.ErrorIs(t, err, service.ErrAlreadySubscribed)

	_, err = f.subscriptions.Subscribe(alice.ID, alice.ID, service.NoRecipesLimit)
	assert.ErrorIs(t, err, service.ErrCannotSubscribeSelf)

	_, err = f.subscriptions.Subscribe(alice.ID, 9999, service.NoRecipesLimit)
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	user, err := f.users.Get(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, user.IsSubscribed)

	require.NoError(t, f.subscriptions.Unsubscribe(alice.ID, bob.ID))
	assert.ErrorIs(t, f.subscriptions.Unsubscribe(alice.ID, bob.ID), service.ErrNotSubscribed)
	assert.ErrorIs(t, f.subscriptions.Unsubscribe(alice.ID, 9999), service.ErrUserNotFound)
}

func TestListSubscriptions(t *testing.T) {
	f := newFixture(t)
	alice := testutil.CreateUser(t, f.db, "alice")
	bob := testutil.CreateUser(t, f.db, "bob")
	carol := testutil.CreateUser(t, f.db, "carol")
	testutil.CreateRecipe(t, f.db, bob.ID, "one", nil)
	testutil.CreateRecipe(t, f.db, bob.ID, "two", nil)

	_, err := f.subscriptions.Subscribe(alice.ID, bob.ID, service.NoRecipesLimit)
	require.NoError(t, err)
	_, err = f.subscriptions.Subscribe(alice.ID, carol.ID, service.NoRecipesLimit)
	require.NoError(t, err)

	data, err := f.subscriptions.List(alice.ID, 1, 10, service.NoRecipesLimit)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Meta.Total)

	items := data.Items.([]dto.SubscriptionInfo)
	require.Len(t, items, 2)
	byUsername := map[string]dto.SubscriptionInfo{}
	for _, item := range items {
		byUsername[item.Username] = item
	}
	assert.Len(t, byUsername["bob"].Recipes, 2)
	assert.Equal(t, int64(2), byUsername["bob"].RecipesCount)
	assert.Empty(t, byUsername["carol"].Recipes)

	limited, err := f.subscriptions.List(alice.ID, 1, 10, 0)
	require.NoError(t, err)
	for _, item := range limited.Items.([]dto.SubscriptionInfo) {
		assert.Empty(t, item.Recipes)
	}

	none, err := f.subscriptions.List(bob.ID, 1, 10, service.NoRecipesLimit)
	require.NoError(t, err)
	assert.Zero(t, none.Meta.Total)
	assert.Empty(t, none.Items)
}
