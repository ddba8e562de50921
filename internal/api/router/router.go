package router

import (
	"net/http"
	"time"

	"foodgram-go/internal/api/handler"
	"foodgram-go/internal/api/middleware"
	"foodgram-go/internal/api/response"
	"foodgram-go/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers 全部业务 Handler
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Catalog *handler.CatalogHandler
	Recipe  *handler.RecipeHandler
}

// Options 路由构建参数
type Options struct {
	Name         string
	Version      string
	AllowOrigins []string
	Tokens       *utils.TokenManager
	// Revoked 为 nil 时不检查令牌注销状态
	Revoked middleware.RevocationChecker
}

// New 创建 Gin 引擎并注册基础中间件、运维端点与业务路由
func New(opts Options, h *Handlers) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(cors.New(corsConfig(opts.AllowOrigins)))

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "资源不存在")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c, "不支持的请求方法: "+c.Request.Method)
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"service":   opts.Name,
			"version":   opts.Version,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	Setup(r, h,
		middleware.AuthRequired(opts.Tokens, opts.Revoked),
		middleware.AuthOptional(opts.Tokens, opts.Revoked),
	)
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.ExposeHeaders = []string{"Content-Disposition"}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}

// Setup 注册所有业务路由
func Setup(r *gin.Engine, h *Handlers, authRequired, authOptional gin.HandlerFunc) {
	api := r.Group("/api")

	// --- 认证模块 ---
	auth := api.Group("/auth/token")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", authRequired, h.Auth.Logout)
	}

	// --- 用户与订阅 ---
	users := api.Group("/users")
	{
		users.POST("", h.User.Register)
		users.GET("", authOptional, h.User.ListUsers)
		users.GET("/:id", authOptional, h.User.GetUser)

		usersAuth := users.Group("", authRequired)
		{
			usersAuth.GET("/me", h.User.GetMe)
			usersAuth.POST("/set_password", h.User.SetPassword)
			usersAuth.GET("/subscriptions", h.User.ListSubscriptions)
			usersAuth.POST("/:id/subscribe", h.User.Subscribe)
			usersAuth.DELETE("/:id/subscribe", h.User.Unsubscribe)
		}
	}

	// --- 标签与食材（只读） ---
	api.GET("/tags", h.Catalog.ListTags)
	api.GET("/tags/:id", h.Catalog.GetTag)
	api.GET("/ingredients", h.Catalog.ListIngredients)
	api.GET("/ingredients/:id", h.Catalog.GetIngredient)

	// --- 菜谱 ---
	recipes := api.Group("/recipes")
	{
		recipes.GET("", authOptional, h.Recipe.ListRecipes)
		recipes.GET("/search", authOptional, h.Recipe.SearchRecipes)
		recipes.GET("/:id", authOptional, h.Recipe.GetRecipe)

		recipesAuth := recipes.Group("", authRequired)
		{
			recipesAuth.POST("", h.Recipe.CreateRecipe)
			recipesAuth.GET("/download_shopping_cart", h.Recipe.DownloadShoppingCart)
			recipesAuth.PUT("/:id", h.Recipe.UpdateRecipe)
			recipesAuth.PATCH("/:id", h.Recipe.UpdateRecipe)
			recipesAuth.DELETE("/:id", h.Recipe.DeleteRecipe)

			recipesAuth.POST("/:id/favorite", h.Recipe.AddFavorite)
			recipesAuth.DELETE("/:id/favorite", h.Recipe.RemoveFavorite)
			recipesAuth.POST("/:id/shopping_cart", h.Recipe.AddToCart)
			recipesAuth.DELETE("/:id/shopping_cart", h.Recipe.RemoveFromCart)
		}
	}
}
