// mockstore 启动内置 mock 店面：一个模拟电商平台商品 REST 接口的
// HTTP 服务，全部数据存在内存里。填充工具把 storefrontConfig.baseURL
// 指向它即可在没有真实店面的环境中演示 products 流程。
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Xushengqwer/content_faker/docs" // 注册 Swagger 文档
	"go.uber.org/zap"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"

	appConfig "github.com/Xushengqwer/content_faker/config"
	"github.com/Xushengqwer/content_faker/constant"
	"github.com/Xushengqwer/content_faker/controller"
	"github.com/Xushengqwer/content_faker/repo/memory"
	"github.com/Xushengqwer/content_faker/router"
)

// @title           Content Faker Mock Storefront API
// @version         1.0
// @description     内置 mock 店面，模拟电商平台的商品 REST 接口，供演示数据填充工具联调使用。

// @host      localhost:8090
// @schemes http
func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.FakerConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 TracerProvider（可选）
	if cfg.TracerConfig.Enabled {
		tracerShutdown, err := sharedTracing.InitTracerProvider(
			constant.ServiceName+"-mockstore",
			constant.ServiceVersion,
			cfg.TracerConfig,
		)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			}
		}()
		logger.Info("分布式追踪已初始化")
	}

	// 4. 组装存储、控制器与路由
	store := memory.NewStore()
	storefrontController := controller.NewStorefrontController(store, store)
	engine := router.SetupRouter(logger, storefrontController)

	port := cfg.MockStoreConfig.Port
	if port == "" {
		port = "8090"
	}
	server := &http.Server{
		Addr:    ":" + port,
		Handler: engine,
	}

	// 5. 启动服务并等待退出信号
	go func() {
		logger.Info("Mock 店面开始监听", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务异常退出", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("收到退出信号，开始优雅关停", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP 服务关停失败", zap.Error(err))
	} else {
		logger.Info("Mock 店面已退出")
	}
}
