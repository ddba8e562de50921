package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodgram-go/internal/api/handler"
	"foodgram-go/internal/api/middleware"
	"foodgram-go/internal/api/router"
	"foodgram-go/internal/config"
	"foodgram-go/internal/infra/database"
	infraES "foodgram-go/internal/infra/elasticsearch"
	infraKafka "foodgram-go/internal/infra/kafka"
	infraMinio "foodgram-go/internal/infra/minio"
	infraRedis "foodgram-go/internal/infra/redis"
	"foodgram-go/internal/repository"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"
	"foodgram-go/pkg/utils"

	_ "foodgram-go/api/openapi"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Foodgram API
// @version 1.0
// @description 菜谱分享平台 API 服务
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库并迁移
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(database.Get()); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Redis 仅用于令牌注销
	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close()
	blacklist := infraRedis.NewTokenBlacklist(infraRedis.Client)

	images, err := infraMinio.NewImageStore(&cfg.MinIO)
	if err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	producer := infraKafka.NewProducer(&cfg.Kafka)
	defer producer.Close()

	// Elasticsearch 可选，失败则搜索降级到数据库
	var searcher service.RecipeSearcher
	if es, err := infraES.Connect(&cfg.Elasticsearch); err != nil {
		logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
	} else {
		searcher = infraES.NewRecipeIndex(es, cfg.Elasticsearch.RecipesIndex())
	}

	// 初始化依赖（Repository -> Service -> Handler）
	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	cartRepo := repository.NewShoppingCartRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)

	tokens := utils.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpireDuration(), cfg.App.Name)

	authService := service.NewAuthService(userRepo, tokens, blacklist)
	userService := service.NewUserService(userRepo, subRepo)
	subscriptionService := service.NewSubscriptionService(userRepo, recipeRepo, subRepo)
	catalogService := service.NewCatalogService(tagRepo, ingredientRepo)
	recipeService := service.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, favoriteRepo, cartRepo, subRepo, images, producer)
	searchService := service.NewSearchService(recipeService, recipeRepo, searcher)

	handler.ConfigurePagination(cfg.Pagination.PageSize, cfg.Pagination.MaxPageSize)

	gin.SetMode(cfg.App.Mode)
	r := router.New(router.Options{
		Name:         cfg.App.Name,
		Version:      cfg.App.Version,
		AllowOrigins: cfg.App.AllowOrigins,
		Tokens:       tokens,
		Revoked:      blacklist,
	}, &router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		User:    handler.NewUserHandler(userService, subscriptionService),
		Catalog: handler.NewCatalogHandler(catalogService),
		Recipe: handler.NewRecipeHandler(
			recipeService,
			service.NewFavoriteService(recipeRepo, favoriteRepo),
			service.NewShoppingCartService(recipeRepo, cartRepo),
			service.NewCartService(repository.NewCartRepository(db)),
			searchService,
		),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logger.Info("Server listening",
			zap.String("name", cfg.App.Name),
			zap.String("version", cfg.App.Version),
			zap.String("mode", cfg.App.Mode),
			zap.String("addr", addr),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}

// 编译期检查：基础设施实现满足服务依赖
var (
	_ service.ImageStorage         = (*infraMinio.ImageStore)(nil)
	_ service.RecipeEventPublisher = (*infraKafka.Producer)(nil)
	_ service.TokenBlacklist       = (*infraRedis.TokenBlacklist)(nil)
	_ service.RecipeSearcher       = (*infraES.RecipeIndex)(nil)
	_ middleware.RevocationChecker = (*infraRedis.TokenBlacklist)(nil)
)
