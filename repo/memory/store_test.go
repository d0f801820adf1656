package memory

import (
	"context"
	"testing"

	"github.com/Xushengqwer/content_faker/models/dto"
)

func TestStoreMediaAssignsURL(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	id, err := store.StoreMedia(ctx, &dto.MediaUpload{
		FileName: "demo0.jpg", ContentType: "image/jpeg", Data: []byte{1, 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	url, err := store.AttachmentURL(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if url == "" {
		t.Fatal("附件 URL 不应为空")
	}
	if _, err := store.AttachmentURL(ctx, 999); err == nil {
		t.Fatal("查询不存在的附件应报错")
	}
}

func TestPostMetaAndCustomFieldKeys(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	postID, err := store.CreatePost(ctx, &dto.PostFields{Type: "post", Title: "t"})
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"demo_a", "demo_b", "other"} {
		if err := store.AddPostMeta(ctx, postID, key, "v"); err != nil {
			t.Fatal(err)
		}
	}
	// 同键多值
	if err := store.AddPostMeta(ctx, postID, "demo_a", "v2"); err != nil {
		t.Fatal(err)
	}

	keys, err := store.PostCustomFieldKeys(ctx, postID, "demo_")
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 {
		t.Fatalf("前缀过滤后应剩 2 个键，得到 %v", keys)
	}

	post, _ := store.Post(postID)
	if len(post.Meta["demo_a"]) != 2 {
		t.Fatalf("同键应累积多值: %v", post.Meta["demo_a"])
	}
}

func TestCreateSEOMetaRejectsDuplicate(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	postID, _ := store.CreatePost(ctx, &dto.PostFields{Type: "post"})
	if err := store.CreateSEOMeta(ctx, &dto.SEOMetaFields{PostID: postID}); err != nil {
		t.Fatal(err)
	}
	if err := store.CreateSEOMeta(ctx, &dto.SEOMetaFields{PostID: postID}); err == nil {
		t.Fatal("重复写入应报错")
	}
}

func TestCreateReviewRequiresExistingProduct(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if _, err := store.CreateReview(ctx, &dto.ReviewCreateRequest{ProductID: 42}); err == nil {
		t.Fatal("商品不存在时应报错")
	}
	productID, err := store.CreateProduct(ctx, &dto.ProductCreateRequest{Name: "戒指"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.CreateReview(ctx, &dto.ReviewCreateRequest{ProductID: productID}); err != nil {
		t.Fatalf("评价创建失败: %v", err)
	}
}

func TestCreateValidationAndStats(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if _, err := store.CreateProduct(ctx, &dto.ProductCreateRequest{}); err == nil {
		t.Fatal("缺少名称的商品应被拒绝")
	}
	if _, err := store.CreateBrand(ctx, &dto.BrandCreateRequest{}); err == nil {
		t.Fatal("缺少名称的品牌应被拒绝")
	}

	if _, err := store.CreateUser(ctx, &dto.UserFields{Login: "demo"}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.CreateTerm(ctx, "category", &dto.TermFields{Name: "分类"}); err != nil {
		t.Fatal(err)
	}

	stats := store.Stats()
	if stats.Users != 1 || stats.Terms != 1 || stats.Products != 0 {
		t.Fatalf("统计错误: %+v", stats)
	}
}
