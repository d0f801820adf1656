package generator

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Xushengqwer/content_faker/fakedata"
	"github.com/Xushengqwer/content_faker/models/dto"
	"github.com/Xushengqwer/content_faker/myErrors"
	"github.com/Xushengqwer/content_faker/repo"
)

// ProductPools 生成一个商品时可引用的上游 ID 池。
type ProductPools struct {
	Images     []uint64 // 内容侧附件 ID，店面按 ID 关联媒体
	Categories []uint64
	Brands     []uint64
}

// StorefrontGenerator 通过店面 REST 接口生成商品侧实体：
// 商品分类、品牌、商品与评价。
type StorefrontGenerator struct {
	source *fakedata.Source
	store  repo.StorefrontStore
}

// NewStorefrontGenerator 创建商品生成器。
func NewStorefrontGenerator(source *fakedata.Source, store repo.StorefrontStore) *StorefrontGenerator {
	return &StorefrontGenerator{source: source, store: store}
}

// GenerateCategory 创建一个商品分类。图片池非空时随机关联一张分类图。
func (g *StorefrontGenerator) GenerateCategory(ctx context.Context, imagePool []uint64) (uint64, error) {
	name, err := g.source.Unique("product.category", g.source.Phrase)
	if err != nil {
		return 0, err
	}

	req := &dto.ProductCategoryCreateRequest{
		Name:        name,
		Description: g.source.Sentence(8),
	}
	if imageID, ok := g.source.Element(imagePool); ok {
		req.Image = &dto.ImageRef{ID: imageID}
	}
	return g.store.CreateProductCategory(ctx, req)
}

// GenerateBrand 创建一个品牌。
func (g *StorefrontGenerator) GenerateBrand(ctx context.Context, imagePool []uint64) (uint64, error) {
	name, err := g.source.Unique("product.brand", g.source.Phrase)
	if err != nil {
		return 0, err
	}

	req := &dto.BrandCreateRequest{
		Name:        name,
		Description: g.source.Sentence(8),
	}
	if imageID, ok := g.source.Element(imagePool); ok {
		req.Image = &dto.ImageRef{ID: imageID}
	}
	return g.store.CreateBrand(ctx, req)
}

// imageRefs 把 ID 列表包装成图片引用。
func imageRefs(ids []uint64) []dto.ImageRef {
	refs := make([]dto.ImageRef, len(ids))
	for i, id := range ids {
		refs[i] = dto.ImageRef{ID: id}
	}
	return refs
}

// termRefs 把 ID 列表包装成词条引用。
func termRefs(ids []uint64) []dto.TermRef {
	refs := make([]dto.TermRef, len(ids))
	for i, id := range ids {
		refs[i] = dto.TermRef{ID: id}
	}
	return refs
}

// GenerateProduct 创建一个简单商品：
//   - 名称唯一，状态 publish，类型 Simple
//   - 10% 概率标记为精选
//   - SKU 为 6 位数字，价格 10~100
//   - 图片 1~3 张、分类 1~2 个、品牌 0~2 个，对应池为空则省略
func (g *StorefrontGenerator) GenerateProduct(ctx context.Context, pools ProductPools) (uint64, error) {
	name, err := g.source.Unique("product.name", g.source.Phrase)
	if err != nil {
		return 0, err
	}

	req := &dto.ProductCreateRequest{
		Name:         name,
		Description:  g.source.Paragraph(),
		Status:       "publish",
		Type:         "Simple",
		Featured:     g.source.BoolWeighted(10),
		SKU:          g.source.Numerify("######"),
		RegularPrice: strconv.FormatFloat(g.source.PriceBetween(10, 100), 'f', 2, 64),
		Images:       imageRefs(g.source.Elements(pools.Images, g.source.NumberBetween(1, 3))),
		Categories:   termRefs(g.source.Elements(pools.Categories, g.source.NumberBetween(1, 2))),
		Brands:       termRefs(g.source.Elements(pools.Brands, g.source.NumberBetween(0, 2))),
	}
	return g.store.CreateProduct(ctx, req)
}

// ReviewCount 在 [min, max] 内为一个商品抽取评价数。
func (g *StorefrontGenerator) ReviewCount(min, max int) int {
	return g.source.NumberBetween(min, max)
}

// GenerateReview 为指定商品创建一条评价，评分 0~5。
// 评价对商品的引用不可省略，productID 为 0 视为上游池为空。
func (g *StorefrontGenerator) GenerateReview(ctx context.Context, productID uint64) (uint64, error) {
	if productID == 0 {
		return 0, fmt.Errorf("评价必须关联商品: %w", myErrors.ErrEmptyPool)
	}

	req := &dto.ReviewCreateRequest{
		ProductID:     productID,
		Review:        g.source.Paragraph(),
		Reviewer:      g.source.FullName(),
		ReviewerEmail: g.source.Email(),
		Rating:        g.source.NumberBetween(0, 5),
		Verified:      g.source.Bool(),
	}
	return g.store.CreateReview(ctx, req)
}
