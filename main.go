// content-faker 向内容平台填充合成演示数据。
//
// 子命令：
//
//	content   生成内容侧实体（作者、分类、标签、附件、帖子、页面）
//	products  生成商品侧实体（商品图片、商品分类、品牌、商品、评价）
//	runs      列出已记录的填充运行
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"

	appConfig "github.com/Xushengqwer/content_faker/config"
	"github.com/Xushengqwer/content_faker/constant"
	"github.com/Xushengqwer/content_faker/dependencies"
	"github.com/Xushengqwer/content_faker/fakedata"
	"github.com/Xushengqwer/content_faker/generator"
	"github.com/Xushengqwer/content_faker/mq/producer"
	"github.com/Xushengqwer/content_faker/repo"
	mysqlRepo "github.com/Xushengqwer/content_faker/repo/mysql"
	redisRepo "github.com/Xushengqwer/content_faker/repo/redis"
	"github.com/Xushengqwer/content_faker/repo/restapi"
	"github.com/Xushengqwer/content_faker/service"
	"github.com/Xushengqwer/content_faker/tasks"
)

func usage() {
	fmt.Fprintf(os.Stderr, `用法: content-faker <子命令> [选项]

子命令:
  content   生成内容侧演示数据（作者、分类、标签、附件、帖子、页面）
  products  生成商品侧演示数据（商品图片、商品分类、品牌、商品、评价）
  runs      列出已记录的填充运行

查看子命令选项: content-faker <子命令> -h
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "content":
		runContent(os.Args[2:])
	case "products":
		runProducts(os.Args[2:])
	case "runs":
		runRuns(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "未知子命令 %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

// appContext 子命令共享的基础设施集合。
type appContext struct {
	cfg     *appConfig.FakerConfig
	logger  *sharedCore.ZapLogger
	cleanup []func()
}

// close 按注册的逆序执行清理。
func (a *appContext) close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
}

// bootstrap 加载配置并初始化 Logger 与可选的 TracerProvider。
func bootstrap(configFile string) *appContext {
	var cfg appConfig.FakerConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}

	app := &appContext{cfg: &cfg, logger: logger}
	app.cleanup = append(app.cleanup, func() {
		_ = logger.Logger().Sync()
	})

	if cfg.TracerConfig.Enabled {
		tracerShutdown, err := sharedTracing.InitTracerProvider(
			constant.ServiceName,
			constant.ServiceVersion,
			cfg.TracerConfig,
		)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		app.cleanup = append(app.cleanup, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			}
		})
		logger.Info("分布式追踪已初始化")
	}
	return app
}

// newSource 组装随机源。命令行种子优先于配置文件。
func newSource(app *appContext, seedFlag int64) *fakedata.Source {
	seed := seedFlag
	if seed == 0 {
		seed = app.cfg.GenerateConfig.Seed
	}
	if seed != 0 {
		app.logger.Info("使用固定随机种子，本次运行可复现", zap.Int64("seed", seed))
	}
	return fakedata.New(seed)
}

// newSeeder 组装填充服务：Redis 运行记录与 Kafka 事件都是可选能力，
// 初始化失败只降级，不阻断填充。
func newSeeder(app *appContext) *service.SeederService {
	var records *redisRepo.SeedRecordRepo
	if rdb, err := dependencies.InitRedis(&app.cfg.RedisConfig, app.logger); err != nil {
		app.logger.Warn("Redis 不可用，本次运行不记录 ID 池", zap.Error(err))
	} else {
		records = redisRepo.NewSeedRecordRepo(rdb, app.logger)
		app.cleanup = append(app.cleanup, func() { _ = rdb.Close() })
	}

	var kafkaProducer *producer.KafkaProducer
	if len(app.cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(app.cfg.KafkaConfig, app.logger)
		app.cleanup = append(app.cleanup, func() { _ = kafkaProducer.Close() })
	} else {
		app.logger.Info("未配置 Kafka broker，跳过事件通知")
	}

	observer := generator.NewConsoleObserver(app.logger)
	return service.NewSeederService(app.logger, observer, records, kafkaProducer)
}

// newContentStore 组装 MySQL 内容存储。COS 未配置时媒体旁路存储降级，
// 附件批次会逐项失败并以警告形式呈现。
func newContentStore(app *appContext) repo.ContentStore {
	db, err := dependencies.InitMySQL(app.cfg, app.logger)
	if err != nil {
		app.logger.Fatal("初始化 MySQL 失败", zap.Error(err))
	}

	cosClient, cosErr := dependencies.InitCOS(&app.cfg.COSConfig, app.logger)
	if cosErr != nil {
		app.logger.Warn("COS 不可用，附件生成将逐项失败", zap.Error(cosErr))
		cosClient = nil
	}
	return mysqlRepo.NewContentStore(db, cosClient, app.logger)
}

func runContent(args []string) {
	fs := flag.NewFlagSet("content", flag.ExitOnError)
	configFile := fs.String("config", "config/config.development.yaml", "配置文件路径")
	seed := fs.Int64("seed", 0, "随机种子，0 表示随机（优先于配置文件）")
	variant := fs.String("type", "core", "内容变体 (core|aioseo)")
	authors := fs.Int("authors", constant.DefaultAuthors, "作者数量")
	categories := fs.Int("categories", constant.DefaultCategories, "分类数量")
	tags := fs.Int("tags", constant.DefaultTags, "标签数量")
	attachments := fs.Int("attachments", constant.DefaultAttachments, "附件数量")
	keyword := fs.String("keyword", constant.DefaultContentKeyword, "附件图片关键词")
	posts := fs.Int("posts", constant.DefaultPosts, "帖子数量")
	pages := fs.Int("pages", constant.DefaultPages, "页面数量")
	_ = fs.Parse(args)

	app := bootstrap(*configFile)
	defer app.close()

	source := newSource(app, *seed)
	store := newContentStore(app)
	imageSource := dependencies.InitImageSource(&app.cfg.ImageSourceConfig, app.logger)
	seeder := newSeeder(app)

	opts := service.ContentOptions{
		Authors:     *authors,
		Categories:  *categories,
		Tags:        *tags,
		Attachments: *attachments,
		Posts:       *posts,
		Pages:       *pages,
		Keyword:     *keyword,
		ImageWidth:  constant.DefaultAttachmentWidth,
		ImageHeight: constant.DefaultAttachmentHeight,
	}

	// 单轮填充。变体校验在任何批次开始前完成。
	seedOnce := func(ctx context.Context) error {
		runID := uuid.NewString()
		gen, err := generator.NewContentGenerator(*variant, generator.VariantDeps{
			Source:            source,
			Store:             store,
			ImageSource:       imageSource,
			RunID:             runID,
			CustomFieldPrefix: app.cfg.GenerateConfig.CustomFieldPrefix,
		})
		if err != nil {
			return err
		}
		seeder.SeedContent(ctx, runID, gen, opts)
		return nil
	}

	if err := seedOnce(context.Background()); err != nil {
		app.logger.Fatal("内容填充无法启动", zap.Error(err))
	}

	// 配置了刷新计划时常驻进程，按计划重复填充
	if schedule := app.cfg.GenerateConfig.RefreshCron; schedule != "" {
		task := tasks.NewRefreshSeedTask(schedule, seedOnce, app.logger)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		app.logger.Info("收到退出信号", zap.String("signal", sig.String()))
		<-task.Stop().Done()
	}
}

func runProducts(args []string) {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	configFile := fs.String("config", "config/config.development.yaml", "配置文件路径")
	seed := fs.Int64("seed", 0, "随机种子，0 表示随机（优先于配置文件）")
	attachments := fs.Int("attachments", constant.DefaultAttachments, "商品图片数量")
	keyword := fs.String("keyword", constant.DefaultProductKeyword, "商品图片关键词")
	categories := fs.Int("categories", constant.DefaultProductCategories, "商品分类数量")
	brands := fs.Int("brands", constant.DefaultBrands, "品牌数量")
	products := fs.Int("products", constant.DefaultProducts, "商品数量")
	minReviews := fs.Int("min-reviews", constant.DefaultMinReviews, "每个商品的评价数下限")
	maxReviews := fs.Int("max-reviews", constant.DefaultMaxReviews, "每个商品的评价数上限")
	_ = fs.Parse(args)

	app := bootstrap(*configFile)
	defer app.close()

	if *minReviews > *maxReviews {
		app.logger.Fatal("评价数选项无效",
			zap.Int("min-reviews", *minReviews), zap.Int("max-reviews", *maxReviews))
	}

	source := newSource(app, *seed)
	store := newContentStore(app)
	imageSource := dependencies.InitImageSource(&app.cfg.ImageSourceConfig, app.logger)

	storefrontClient, err := restapi.NewClient(&app.cfg.StorefrontConfig, app.logger)
	if err != nil {
		app.logger.Fatal("初始化店面客户端失败", zap.Error(err))
	}

	seeder := newSeeder(app)
	runID := uuid.NewString()

	// 商品图片仍走内容侧附件通道，商品实体走店面 REST 接口
	contentGen := generator.NewCoreGenerator(source, store, imageSource, runID)
	storeGen := generator.NewStorefrontGenerator(source, storefrontClient)

	_, err = seeder.SeedProducts(context.Background(), runID, contentGen, storeGen, service.ProductOptions{
		Attachments: *attachments,
		Keyword:     *keyword,
		ImageWidth:  constant.DefaultAttachmentWidth,
		ImageHeight: constant.DefaultAttachmentHeight,
		Categories:  *categories,
		Brands:      *brands,
		Products:    *products,
		MinReviews:  *minReviews,
		MaxReviews:  *maxReviews,
	})
	if err != nil {
		app.logger.Fatal("商品填充失败", zap.Error(err))
	}
}

func runRuns(args []string) {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	configFile := fs.String("config", "config/config.development.yaml", "配置文件路径")
	_ = fs.Parse(args)

	app := bootstrap(*configFile)
	defer app.close()

	rdb, err := dependencies.InitRedis(&app.cfg.RedisConfig, app.logger)
	if err != nil {
		app.logger.Fatal("Redis 不可用，无法查询运行记录", zap.Error(err))
	}
	defer rdb.Close()

	records := redisRepo.NewSeedRecordRepo(rdb, app.logger)
	runs, err := records.ListRuns(context.Background())
	if err != nil {
		app.logger.Fatal("查询运行记录失败", zap.Error(err))
	}

	if len(runs) == 0 {
		fmt.Println("暂无运行记录")
		return
	}
	for _, runID := range runs {
		fmt.Println(runID)
	}
}
