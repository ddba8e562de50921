package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodgram-go/internal/config"
	"foodgram-go/internal/infra/database"
	infraES "foodgram-go/internal/infra/elasticsearch"
	infraKafka "foodgram-go/internal/infra/kafka"
	"foodgram-go/internal/repository"
	"foodgram-go/internal/service"
	"foodgram-go/pkg/logger"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const consumerGroup = "foodgram-search-sync"

// worker 消费菜谱事件，维护 Elasticsearch 菜谱索引
func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	reindex := flag.Bool("reindex", false, "启动时全量重建菜谱索引")
	metricsAddr := flag.String("metrics-addr", ":9102", "Prometheus 指标监听地址，为空则不启动")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	es, err := infraES.Connect(&cfg.Elasticsearch)
	if err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}

	index := infraES.NewRecipeIndex(es, cfg.Elasticsearch.RecipesIndex())
	ensureCtx, ensureCancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = index.Ensure(ensureCtx)
	ensureCancel()
	if err != nil {
		logger.Fatal("Failed to ensure recipes index", zap.Error(err))
	}

	syncService := service.NewIndexSyncService(repository.NewRecipeRepository(database.Get()), index)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	if *metricsAddr != "" {
		metricsSrv := &http.Server{Addr: *metricsAddr, Handler: promhttp.Handler(), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("Metrics server failed", zap.Error(err))
			}
		}()
		defer metricsSrv.Close()
	}

	if *reindex {
		if err := syncService.Reindex(ctx); err != nil {
			logger.Error("Recipe reindex failed", zap.Error(err))
		}
	}

	logger.Info("Search sync worker started",
		zap.String("index", index.Name()),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	infraKafka.StartRecipeEventConsumer(ctx,
		cfg.Kafka.Brokers,
		cfg.Kafka.RecipeEventsTopic(),
		consumerGroup,
		syncService.HandleEvent,
	)
}
