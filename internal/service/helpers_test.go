package service_test

import (
	"testing"
	"time"

	"foodgram-go/internal/repository"
	"foodgram-go/internal/service"
	"foodgram-go/internal/testutil"
	"foodgram-go/pkg/utils"

	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	images    *testutil.FakeImageStore
	events    *testutil.FakePublisher
	blacklist *testutil.FakeBlacklist
	tokens    *utils.TokenManager

	recipeRepo *repository.RecipeRepository

	recipes       *service.RecipeService
	favorites     *service.MembershipService
	carts         *service.MembershipService
	shopping      *service.CartService
	subscriptions *service.SubscriptionService
	users         *service.UserService
	auth          *service.AuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	f := &fixture{
		db:        db,
		images:    testutil.NewFakeImageStore(),
		events:    &testutil.FakePublisher{},
		blacklist: testutil.NewFakeBlacklist(),
		tokens:    utils.NewTokenManager("test-secret", time.Hour, "foodgram-test"),
	}

	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	cartRepo := repository.NewShoppingCartRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	f.recipeRepo = repository.NewRecipeRepository(db)

	f.recipes = service.NewRecipeService(f.recipeRepo, tagRepo, ingredientRepo, favoriteRepo, cartRepo, subRepo, f.images, f.events)
	f.favorites = service.NewFavoriteService(f.recipeRepo, favoriteRepo)
	f.carts = service.NewShoppingCartService(f.recipeRepo, cartRepo)
	f.shopping = service.NewCartService(repository.NewCartRepository(db))
	f.subscriptions = service.NewSubscriptionService(userRepo, f.recipeRepo, subRepo)
	f.users = service.NewUserService(userRepo, subRepo)
	f.auth = service.NewAuthService(userRepo, f.tokens, f.blacklist)
	return f
}
