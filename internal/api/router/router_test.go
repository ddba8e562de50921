package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodgram-go/internal/api/handler"
	"foodgram-go/internal/api/router"
	"foodgram-go/internal/repository"
	"foodgram-go/internal/service"
	"foodgram-go/internal/testutil"
	"foodgram-go/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	t      *testing.T
	db     *gorm.DB
	engine *gin.Engine
	images *testutil.FakeImageStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	images := testutil.NewFakeImageStore()
	blacklist := testutil.NewFakeBlacklist()
	tokens := utils.NewTokenManager("router-secret", time.Hour, "foodgram-test")

	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	cartRepo := repository.NewShoppingCartRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)

	recipeService := service.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, favoriteRepo, cartRepo, subRepo, images, &testutil.FakePublisher{})

	h := &router.Handlers{
		Auth: handler.NewAuthHandler(service.NewAuthService(userRepo, tokens, blacklist)),
		User: handler.NewUserHandler(
			service.NewUserService(userRepo, subRepo),
			service.NewSubscriptionService(userRepo, recipeRepo, subRepo),
		),
		Catalog: handler.NewCatalogHandler(service.NewCatalogService(tagRepo, ingredientRepo)),
		Recipe: handler.NewRecipeHandler(
			recipeService,
			service.NewFavoriteService(recipeRepo, favoriteRepo),
			service.NewShoppingCartService(recipeRepo, cartRepo),
			service.NewCartService(repository.NewCartRepository(db)),
			service.NewSearchService(recipeService, recipeRepo, nil),
		),
	}

	engine := router.New(router.Options{
		Name:    "foodgram-test",
		Version: "test",
		Tokens:  tokens,
		Revoked: blacklist,
	}, h)

	return &testServer{t: t, db: db, engine: engine, images: images}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/auth/token/login", "", gin.H{"email": email, "password": password})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			AuthToken string `json:"auth_token"`
		} `json:"data"`
	}
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(s.t, resp.Data.AuthToken)
	return resp.Data.AuthToken
}

type errorBody struct {
	Error struct {
		Code int    `json:"code"`
		Type string `json:"type"`
	} `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

type recipeItem struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	IsFavorited      bool   `json:"is_favorited"`
	IsInShoppingCart bool   `json:"is_in_shopping_cart"`
}

func decodeRecipePage(t *testing.T, w *httptest.ResponseRecorder) ([]recipeItem, int64) {
	t.Helper()
	var resp struct {
		Data struct {
			Items []recipeItem `json:"items"`
			Meta  struct {
				Total int64 `json:"total"`
			} `json:"meta"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp.Data.Items, resp.Data.Meta.Total
}

func TestRegisterLoginAndMe(t *testing.T) {
	s := newTestServer(t)

	register := gin.H{
		"email":      "alice@example.com",
		"username":   "alice",
		"first_name": "Alice",
		"last_name":  "Liddell",
		"password":   "wonderland",
	}
	w := s.do(http.MethodPost, "/api/users", "", register)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/users", "", register)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Conflict", decodeError(t, w).Error.Type)

	w = s.do(http.MethodPost, "/api/users", "", gin.H{"email": "bad"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ValidationError", decodeError(t, w).Error.Type)

	w = s.do(http.MethodPost, "/api/auth/token/login", "", gin.H{"email": "alice@example.com", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := s.login("alice@example.com", "wonderland")

	w = s.do(http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)

	w = s.do(http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", decodeError(t, w).Error.Type)

	w = s.do(http.MethodPost, "/api/auth/token/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, "/api/users/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInvalidTokenOnOptionalRoute(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/recipes", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/recipes", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecipeLifecycle(t *testing.T) {
	s := newTestServer(t)
	alice := testutil.CreateUser(t, s.db, "alice")
	bob := testutil.CreateUser(t, s.db, "bob")
	tag := testutil.CreateTag(t, s.db, "Breakfast", "breakfast")
	flour := testutil.CreateIngredient(t, s.db, "flour", "g")
	eggs := testutil.CreateIngredient(t, s.db, "eggs", "pcs")

	aliceToken := s.login(alice.Email, testutil.DefaultPassword)
	bobToken := s.login(bob.Email, testutil.DefaultPassword)

	payload := gin.H{
		"ingredients":  []gin.H{{"id": flour.ID, "amount": 250}, {"id": eggs.ID, "amount": 2}},
		"tags":         []int64{tag.ID},
		"image":        testutil.TinyPNG,
		"name":         "pancakes",
		"text":         "mix and fry",
		"cooking_time": 20,
	}

	w := s.do(http.MethodPost, "/api/recipes", "", payload)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/recipes", aliceToken, payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Data struct {
			ID    int64  `json:"id"`
			Image string `json:"image"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	recipePath := fmt.Sprintf("/api/recipes/%d", created.Data.ID)
	assert.Equal(t, 1, s.images.Count())

	w = s.do(http.MethodPost, "/api/recipes", aliceToken, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, s.images.Removed, 1)

	bad := gin.H{
		"ingredients":  []gin.H{{"id": 9999, "amount": 1}},
		"tags":         []int64{tag.ID},
		"image":        testutil.TinyPNG,
		"name":         "ghost",
		"text":         "x",
		"cooking_time": 1,
	}
	w = s.do(http.MethodPost, "/api/recipes", aliceToken, bad)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, recipePath, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"pancakes"`)

	w = s.do(http.MethodPatch, recipePath, bobToken, gin.H{"name": "mine now"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPatch, recipePath, aliceToken, gin.H{"cooking_time": 25})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"cooking_time":25`)
	assert.Contains(t, w.Body.String(), `"name":"pancakes"`)

	// 收藏与购物车
	w = s.do(http.MethodPost, recipePath+"/favorite", bobToken, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	w = s.do(http.MethodPost, recipePath+"/favorite", bobToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Conflict", decodeError(t, w).Error.Type)

	w = s.do(http.MethodPost, recipePath+"/shopping_cart", bobToken, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = s.do(http.MethodGet, "/api/recipes?is_favorited=1", bobToken, nil)
	items, total := decodeRecipePage(t, w)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsFavorited)
	assert.True(t, items[0].IsInShoppingCart)

	// 匿名用户的筛选不生效
	testutil.CreateRecipe(t, s.db, bob.ID, "toast", nil)
	w = s.do(http.MethodGet, "/api/recipes?is_favorited=1", "", nil)
	items, total = decodeRecipePage(t, w)
	assert.Equal(t, int64(2), total)
	for _, item := range items {
		assert.False(t, item.IsFavorited)
	}

	w = s.do(http.MethodGet, "/api/recipes?tags=breakfast", "", nil)
	items, _ = decodeRecipePage(t, w)
	require.Len(t, items, 1)
	assert.Equal(t, "pancakes", items[0].Name)

	w = s.do(http.MethodGet, "/api/recipes?author=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/recipes/search?q=pan", "", nil)
	items, _ = decodeRecipePage(t, w)
	require.Len(t, items, 1)
	assert.Equal(t, created.Data.ID, items[0].ID)

	w = s.do(http.MethodGet, "/api/recipes/download_shopping_cart", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename="+service.ShoppingListFilename, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "flour g - 250\neggs pcs - 2", w.Body.String())

	w = s.do(http.MethodDelete, recipePath+"/shopping_cart", bobToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = s.do(http.MethodDelete, recipePath+"/shopping_cart", bobToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodDelete, recipePath, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = s.do(http.MethodDelete, recipePath, aliceToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, s.images.Removed, created.Data.Image)

	w = s.do(http.MethodGet, recipePath, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NotFound", decodeError(t, w).Error.Type)
}

func TestSubscriptionsEndpoints(t *testing.T) {
	s := newTestServer(t)
	alice := testutil.CreateUser(t, s.db, "alice")
	bob := testutil.CreateUser(t, s.db, "bob")
	testutil.CreateRecipe(t, s.db, bob.ID, "one", nil)
	testutil.CreateRecipe(t, s.db, bob.ID, "two", nil)
	token := s.login(alice.Email, testutil.DefaultPassword)

	subscribePath := fmt.Sprintf("/api/users/%d/subscribe", bob.ID)

	w := s.do(http.MethodPost, subscribePath+"?recipes_limit=1", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var info struct {
		Data struct {
			IsSubscribed bool              `json:"is_subscribed"`
			Recipes      []json.RawMessage `json:"recipes"`
			RecipesCount int64             `json:"recipes_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.True(t, info.Data.IsSubscribed)
	assert.Len(t, info.Data.Recipes, 1)
	assert.Equal(t, int64(2), info.Data.RecipesCount)

	w = s.do(http.MethodPost, subscribePath, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, fmt.Sprintf("/api/users/%d/subscribe", alice.ID), token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/users/9999/subscribe", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/users/subscriptions?recipes_limit=abc", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"bob"`)
	assert.Contains(t, w.Body.String(), `"name":"one"`)
	assert.Contains(t, w.Body.String(), `"name":"two"`)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/users/%d", bob.ID), token, nil)
	assert.Contains(t, w.Body.String(), `"is_subscribed":true`)

	w = s.do(http.MethodDelete, subscribePath, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = s.do(http.MethodDelete, subscribePath, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogAndRouting(t *testing.T) {
	s := newTestServer(t)
	tag := testutil.CreateTag(t, s.db, "Dinner", "dinner")
	testutil.CreateIngredient(t, s.db, "Salt", "g")
	testutil.CreateIngredient(t, s.db, "sugar", "g")

	w := s.do(http.MethodGet, "/api/tags", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"dinner"`)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/tags/%d", tag.ID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/tags/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/ingredients?name=SA", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Salt"`)
	assert.NotContains(t, w.Body.String(), `"name":"sugar"`)

	w = s.do(http.MethodPost, "/api/tags", "", gin.H{"name": "x"})
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "MethodNotAllowed", decodeError(t, w).Error.Type)

	w = s.do(http.MethodGet, "/api/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `foodgram_http_requests_total{method="GET",route="/api/tags",status="200"}`)
}
