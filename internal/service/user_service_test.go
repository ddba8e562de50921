package service_test

import (
	"context"
	"testing"

	"foodgram-go/internal/api/dto"
	"foodgram-go/internal/service"
	"foodgram-go/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerRequest(username string) *dto.UserCreateRequest {
	return &dto.UserCreateRequest{
		Email:     username + "@example.com",
		Username:  username,
		FirstName: "First",
		LastName:  "Last",
		Password:  "s3cret-pass",
	}
}

func TestRegister(t *testing.T) {
	f := newFixture(t)

	info, err := f.users.Register(registerRequest("alice"))
	require.NoError(t, err)
	assert.NotZero(t, info.ID)
	assert.Equal(t, "alice", info.Username)
	assert.False(t, info.IsSubscribed)

	_, err = f.users.Register(registerRequest("alice"))
	assert.ErrorIs(t, err, service.ErrEmailExists)

	sameName := registerRequest("alice")
	sameName.Email = "other@example.com"
	_, err = f.users.Register(sameName)
	assert.ErrorIs(t, err, service.ErrUsernameExists)

	for _, bad := range []string{"me", "ME", "has space", "semi;colon"} {
		req := registerRequest("x")
		req.Username = bad
		_, err = f.users.Register(req)
		assert.ErrorIs(t, err, service.ErrInvalidUsername, bad)
	}
}

func TestListUsers(t *testing.T) {
	f := newFixture(t)
	alice := testutil.CreateUser(t, f.db, "alice")
	bob := testutil.CreateUser(t, f.db, "bob")
	testutil.CreateUser(t, f.db, "carol")

	_, err := f.subscriptions.Subscribe(alice.ID, bob.ID, service.NoRecipesLimit)
	require.NoError(t, err)

	data, err := f.users.List(alice.ID, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), data.Meta.Total)
	assert.Equal(t, int64(2), data.Meta.TotalPages)

	items := data.Items.([]dto.UserInfo)
	require.Len(t, items, 2)
	for _, u := range items {
		assert.Equal(t, u.ID == bob.ID, u.IsSubscribed, u.Username)
	}

	_, err = f.users.Get(0, 9999)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestSetPassword(t *testing.T) {
	f := newFixture(t)
	alice := testutil.CreateUser(t, f.db, "alice")

	err := f.users.SetPassword(alice.ID, &dto.SetPasswordRequest{CurrentPassword: "wrong", NewPassword: "newpassword"})
	assert.ErrorIs(t, err, service.ErrWrongPassword)

	require.NoError(t, f.users.SetPassword(alice.ID, &dto.SetPasswordRequest{
		CurrentPassword: testutil.DefaultPassword,
		NewPassword:     "newpassword",
	}))

	_, err = f.auth.Login(&dto.LoginRequest{Email: alice.Email, Password: testutil.DefaultPassword})
	assert.ErrorIs(t, err, service.ErrInvalidCredential)

	_, err = f.auth.Login(&dto.LoginRequest{Email: alice.Email, Password: "newpassword"})
	assert.NoError(t, err)
}

func TestLoginLogout(t *testing.T) {
	f := newFixture(t)
	alice := testutil.CreateUser(t, f.db, "alice")
	ctx := context.Background()

	_, err := f.auth.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: testutil.DefaultPassword})
	assert.ErrorIs(t, err, service.ErrInvalidCredential)

	token, err := f.auth.Login(&dto.LoginRequest{Email: alice.Email, Password: testutil.DefaultPassword})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, 3600, token.ExpiresIn)

	claims, err := f.tokens.Parse(token.AuthToken)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, claims.UserID)

	require.NoError(t, f.auth.Logout(ctx, token.AuthToken))
	revoked, err := f.blacklist.IsRevoked(ctx, token.AuthToken)
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.ErrorIs(t, f.auth.Logout(ctx, "garbage"), service.ErrInvalidCredential)
}
