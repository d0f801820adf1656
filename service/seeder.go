// Package service 按依赖顺序编排各实体批次，并负责运行记录与事件通知。
package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_faker/constant"
	"github.com/Xushengqwer/content_faker/generator"
	"github.com/Xushengqwer/content_faker/mq/producer"
	redisRepo "github.com/Xushengqwer/content_faker/repo/redis"
)

// ContentOptions 一次内容填充的数量与素材选项。
type ContentOptions struct {
	Authors     int
	Categories  int
	Tags        int
	Attachments int
	Posts       int
	Pages       int
	Keyword     string // 附件图片的搜索关键词
	ImageWidth  int
	ImageHeight int
}

// ContentResult 内容填充各实体创建成功的 ID 池。
type ContentResult struct {
	RunID         string
	AuthorIDs     []uint64
	CategoryIDs   []uint64
	TagIDs        []uint64
	AttachmentIDs []uint64
	PostIDs       []uint64
	PageIDs       []uint64
}

// ProductOptions 一次商品填充的数量与素材选项。
type ProductOptions struct {
	Attachments int
	Keyword     string
	ImageWidth  int
	ImageHeight int
	Categories  int
	Brands      int
	Products    int
	MinReviews  int // 每个商品的评价数下限
	MaxReviews  int // 每个商品的评价数上限
}

// ProductResult 商品填充各实体创建成功的 ID 池。
type ProductResult struct {
	RunID         string
	AttachmentIDs []uint64
	CategoryIDs   []uint64
	BrandIDs      []uint64
	ProductIDs    []uint64
	ReviewIDs     []uint64
}

// SeederService 执行填充运行：按依赖顺序跑批次，把每个批次的结果
// 写入运行记录并发出事件。记录仓库与生产者都允许为 nil，此时对应
// 能力静默降级，填充本身不受影响。
type SeederService struct {
	logger   *core.ZapLogger
	observer generator.BatchObserver
	records  *redisRepo.SeedRecordRepo
	producer *producer.KafkaProducer
}

// NewSeederService 创建填充服务。records 与 kafkaProducer 可为 nil。
func NewSeederService(
	logger *core.ZapLogger,
	observer generator.BatchObserver,
	records *redisRepo.SeedRecordRepo,
	kafkaProducer *producer.KafkaProducer,
) *SeederService {
	return &SeederService{
		logger:   logger,
		observer: observer,
		records:  records,
		producer: kafkaProducer,
	}
}

// finishBatch 批次收尾：记录 ID 池并发出批次完成事件。
// 两者都是辅助能力，失败只记警告。
func (s *SeederService) finishBatch(ctx context.Context, runID, entity string, ids []uint64) {
	if s.records != nil {
		if err := s.records.RecordIDs(ctx, runID, entity, ids); err != nil {
			s.logger.Warn("记录批次 ID 池失败", zap.String("entity", entity), zap.Error(err))
		}
	}
	if s.producer != nil && len(ids) > 0 {
		if err := s.producer.SendSeedBatchCompletedEvent(ctx, runID, entity, ids); err != nil {
			s.logger.Warn("发送批次完成事件失败", zap.String("entity", entity), zap.Error(err))
		}
	}
}

// finishRun 运行收尾：发出汇总事件。
func (s *SeederService) finishRun(ctx context.Context, runID string, counts map[string]int) {
	if s.producer == nil {
		return
	}
	if err := s.producer.SendSeedRunCompletedEvent(ctx, runID, counts); err != nil {
		s.logger.Warn("发送运行完成事件失败", zap.String("runID", runID), zap.Error(err))
	}
}

// SeedContent 执行一次内容填充。
// 批次顺序固定：附件 → 分类 → 标签 → 作者 → 帖子 → 页面，
// 后置批次引用前置批次创建成功的 ID 池。
func (s *SeederService) SeedContent(ctx context.Context, runID string, gen *generator.CoreGenerator, opts ContentOptions) *ContentResult {
	result := &ContentResult{RunID: runID}
	s.logger.Info("开始内容填充", zap.String("runID", runID),
		zap.Int("authors", opts.Authors), zap.Int("posts", opts.Posts), zap.Int("pages", opts.Pages))

	result.AttachmentIDs = generator.RunBatch(ctx, "附件", opts.Attachments, s.observer,
		func(ctx context.Context, index int, _ []uint64) (uint64, error) {
			return gen.GenerateAttachment(ctx, opts.ImageWidth, opts.ImageHeight, opts.Keyword, index)
		})
	s.finishBatch(ctx, runID, "attachments", result.AttachmentIDs)

	// 分类可形成层级，父级池就是本批次此前创建的分类
	result.CategoryIDs = generator.RunBatch(ctx, "分类", opts.Categories, s.observer,
		func(ctx context.Context, _ int, created []uint64) (uint64, error) {
			return gen.GenerateTerm(ctx, constant.TaxonomyCategory, created)
		})
	s.finishBatch(ctx, runID, "categories", result.CategoryIDs)

	// 标签无层级
	result.TagIDs = generator.RunBatch(ctx, "标签", opts.Tags, s.observer,
		func(ctx context.Context, _ int, _ []uint64) (uint64, error) {
			return gen.GenerateTerm(ctx, constant.TaxonomyTag, nil)
		})
	s.finishBatch(ctx, runID, "tags", result.TagIDs)

	result.AuthorIDs = generator.RunBatch(ctx, "作者", opts.Authors, s.observer,
		func(ctx context.Context, _ int, _ []uint64) (uint64, error) {
			return gen.GenerateUser(ctx, constant.DefaultUserRole)
		})
	s.finishBatch(ctx, runID, "authors", result.AuthorIDs)

	result.PostIDs = generator.RunBatch(ctx, "帖子", opts.Posts, s.observer,
		func(ctx context.Context, _ int, _ []uint64) (uint64, error) {
			return gen.GeneratePost(ctx, constant.PostTypePost, generator.PostPools{
				Authors:     result.AuthorIDs,
				Attachments: result.AttachmentIDs,
				Categories:  result.CategoryIDs,
				Tags:        result.TagIDs,
			})
		})
	s.finishBatch(ctx, runID, "posts", result.PostIDs)

	// 页面可形成层级，父级池是本批次此前创建的页面
	result.PageIDs = generator.RunBatch(ctx, "页面", opts.Pages, s.observer,
		func(ctx context.Context, _ int, created []uint64) (uint64, error) {
			return gen.GeneratePost(ctx, constant.PostTypePage, generator.PostPools{
				Authors:     result.AuthorIDs,
				Attachments: result.AttachmentIDs,
				Parents:     created,
				Categories:  result.CategoryIDs,
				Tags:        result.TagIDs,
			})
		})
	s.finishBatch(ctx, runID, "pages", result.PageIDs)

	s.finishRun(ctx, runID, map[string]int{
		"attachments": len(result.AttachmentIDs),
		"categories":  len(result.CategoryIDs),
		"tags":        len(result.TagIDs),
		"authors":     len(result.AuthorIDs),
		"posts":       len(result.PostIDs),
		"pages":       len(result.PageIDs),
	})
	s.logger.Info("内容填充完成", zap.String("runID", runID),
		zap.Int("posts", len(result.PostIDs)), zap.Int("pages", len(result.PageIDs)))
	return result
}

// SeedProducts 执行一次商品填充。
// 批次顺序固定：附件 → 商品分类 → 品牌 → 商品 → 评价。
// 每个商品的评价数在 [minReviews, maxReviews] 内独立抽取。
func (s *SeederService) SeedProducts(
	ctx context.Context,
	runID string,
	contentGen *generator.CoreGenerator,
	storeGen *generator.StorefrontGenerator,
	opts ProductOptions,
) (*ProductResult, error) {
	if opts.MinReviews > opts.MaxReviews {
		return nil, fmt.Errorf("评价数下限 %d 大于上限 %d", opts.MinReviews, opts.MaxReviews)
	}

	result := &ProductResult{RunID: runID}
	s.logger.Info("开始商品填充", zap.String("runID", runID),
		zap.Int("products", opts.Products), zap.Int("categories", opts.Categories))

	result.AttachmentIDs = generator.RunBatch(ctx, "商品图片", opts.Attachments, s.observer,
		func(ctx context.Context, index int, _ []uint64) (uint64, error) {
			return contentGen.GenerateAttachment(ctx, opts.ImageWidth, opts.ImageHeight, opts.Keyword, index)
		})
	s.finishBatch(ctx, runID, "attachments", result.AttachmentIDs)

	result.CategoryIDs = generator.RunBatch(ctx, "商品分类", opts.Categories, s.observer,
		func(ctx context.Context, _ int, _ []uint64) (uint64, error) {
			return storeGen.GenerateCategory(ctx, result.AttachmentIDs)
		})
	s.finishBatch(ctx, runID, "product_categories", result.CategoryIDs)

	result.BrandIDs = generator.RunBatch(ctx, "品牌", opts.Brands, s.observer,
		func(ctx context.Context, _ int, _ []uint64) (uint64, error) {
			return storeGen.GenerateBrand(ctx, result.AttachmentIDs)
		})
	s.finishBatch(ctx, runID, "brands", result.BrandIDs)

	result.ProductIDs = generator.RunBatch(ctx, "商品", opts.Products, s.observer,
		func(ctx context.Context, _ int, _ []uint64) (uint64, error) {
			return storeGen.GenerateProduct(ctx, generator.ProductPools{
				Images:     result.AttachmentIDs,
				Categories: result.CategoryIDs,
				Brands:     result.BrandIDs,
			})
		})
	s.finishBatch(ctx, runID, "products", result.ProductIDs)

	// 先为每个商品抽定评价数，再把全部评价摊平成一个批次执行
	reviewProducts := make([]uint64, 0, len(result.ProductIDs)*opts.MaxReviews)
	for _, productID := range result.ProductIDs {
		count := storeGen.ReviewCount(opts.MinReviews, opts.MaxReviews)
		for i := 0; i < count; i++ {
			reviewProducts = append(reviewProducts, productID)
		}
	}
	result.ReviewIDs = generator.RunBatch(ctx, "评价", len(reviewProducts), s.observer,
		func(ctx context.Context, index int, _ []uint64) (uint64, error) {
			return storeGen.GenerateReview(ctx, reviewProducts[index])
		})
	s.finishBatch(ctx, runID, "reviews", result.ReviewIDs)

	s.finishRun(ctx, runID, map[string]int{
		"attachments":        len(result.AttachmentIDs),
		"product_categories": len(result.CategoryIDs),
		"brands":             len(result.BrandIDs),
		"products":           len(result.ProductIDs),
		"reviews":            len(result.ReviewIDs),
	})
	s.logger.Info("商品填充完成", zap.String("runID", runID),
		zap.Int("products", len(result.ProductIDs)), zap.Int("reviews", len(result.ReviewIDs)))
	return result, nil
}
