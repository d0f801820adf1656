package generator

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"testing"

	"github.com/Xushengqwer/content_faker/fakedata"
	"github.com/Xushengqwer/content_faker/myErrors"
	"github.com/Xushengqwer/content_faker/repo/memory"
)

func TestGenerateCategoryAndBrand(t *testing.T) {
	store := memory.NewStore()
	gen := NewStorefrontGenerator(fakedata.New(2), store)
	ctx := context.Background()
	imagePool := []uint64{11, 12, 13}

	catID, err := gen.GenerateCategory(ctx, imagePool)
	if err != nil {
		t.Fatal(err)
	}
	if catID == 0 {
		t.Fatal("分类 ID 不应为 0")
	}

	brandID, err := gen.GenerateBrand(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	if brandID == 0 {
		t.Fatal("品牌 ID 不应为 0")
	}
}

func TestGenerateProductShape(t *testing.T) {
	store := memory.NewStore()
	gen := NewStorefrontGenerator(fakedata.New(4), store)
	ctx := context.Background()

	pools := ProductPools{
		Images:     []uint64{1, 2, 3, 4},
		Categories: []uint64{10, 11, 12},
		Brands:     []uint64{20, 21},
	}
	skuPattern := regexp.MustCompile(`^\d{6}$`)
	names := make(map[string]struct{})
	featured := 0

	for i := 0; i < 40; i++ {
		id, err := gen.GenerateProduct(ctx, pools)
		if err != nil {
			t.Fatal(err)
		}
		product, ok := store.Product(id)
		if !ok {
			t.Fatalf("商品 %d 未入库", id)
		}

		if _, dup := names[product.Name]; dup {
			t.Fatalf("商品名重复: %q", product.Name)
		}
		names[product.Name] = struct{}{}

		if product.Status != "publish" || product.Type != "Simple" {
			t.Fatalf("状态/类型错误: %s/%s", product.Status, product.Type)
		}
		if !skuPattern.MatchString(product.SKU) {
			t.Fatalf("SKU 应为 6 位数字，得到 %q", product.SKU)
		}
		price, err := strconv.ParseFloat(product.RegularPrice, 64)
		if err != nil || price < 10 || price > 100 {
			t.Fatalf("价格 %q 非法", product.RegularPrice)
		}
		if n := len(product.Images); n < 1 || n > 3 {
			t.Fatalf("图片数 %d 超出 [1,3]", n)
		}
		if n := len(product.Categories); n < 1 || n > 2 {
			t.Fatalf("分类数 %d 超出 [1,2]", n)
		}
		if n := len(product.Brands); n > 2 {
			t.Fatalf("品牌数 %d 超出上限 2", n)
		}
		if product.Featured {
			featured++
		}
	}
	// 10% 概率，40 个样本全 true 基本不可能
	if featured == 40 {
		t.Fatal("精选比例异常")
	}
}

func TestGenerateProductEmptyPoolsOmitRefs(t *testing.T) {
	store := memory.NewStore()
	gen := NewStorefrontGenerator(fakedata.New(6), store)

	id, err := gen.GenerateProduct(context.Background(), ProductPools{})
	if err != nil {
		t.Fatal(err)
	}
	product, _ := store.Product(id)
	if len(product.Images) != 0 || len(product.Categories) != 0 || len(product.Brands) != 0 {
		t.Fatal("上游池为空时所有引用都应省略")
	}
}

func TestGenerateReview(t *testing.T) {
	store := memory.NewStore()
	gen := NewStorefrontGenerator(fakedata.New(3), store)
	ctx := context.Background()

	productID, err := gen.GenerateProduct(ctx, ProductPools{})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 20; i++ {
		id, err := gen.GenerateReview(ctx, productID)
		if err != nil {
			t.Fatal(err)
		}
		review, ok := store.Review(id)
		if !ok {
			t.Fatalf("评价 %d 未入库", id)
		}
		if review.ProductID != productID {
			t.Fatalf("评价关联商品错误: %d", review.ProductID)
		}
		if review.Rating < 0 || review.Rating > 5 {
			t.Fatalf("评分 %d 超出 [0,5]", review.Rating)
		}
		if review.Review == "" || review.Reviewer == "" || review.ReviewerEmail == "" {
			t.Fatal("评价内容/署名/邮箱不应为空")
		}
	}
}

func TestGenerateReviewRequiresProduct(t *testing.T) {
	gen := NewStorefrontGenerator(fakedata.New(1), memory.NewStore())
	_, err := gen.GenerateReview(context.Background(), 0)
	if !errors.Is(err, myErrors.ErrEmptyPool) {
		t.Fatalf("期望 ErrEmptyPool，得到 %v", err)
	}
}

func TestReviewCountBounds(t *testing.T) {
	gen := NewStorefrontGenerator(fakedata.New(1), memory.NewStore())

	for i := 0; i < 50; i++ {
		if n := gen.ReviewCount(3, 10); n < 3 || n > 10 {
			t.Fatalf("评价数 %d 超出 [3,10]", n)
		}
	}
	// 上下限相等时恒定
	if n := gen.ReviewCount(7, 7); n != 7 {
		t.Fatalf("上下限相等时应返回 7，得到 %d", n)
	}
}
