// Package repo 定义填充工具依赖的外部存储接口。
// 生成器只面向这些接口编程；具体适配器（MySQL、内存、REST 客户端）
// 在各自的子包中实现，宿主平台的调用签名绝不泄漏到生成器层。
package repo

import (
	"context"

	"github.com/Xushengqwer/content_faker/models/dto"
)

// ContentStore 核心内容的持久化接口（作者、词条、媒体、帖子及其元数据）。
// 所有创建操作返回新记录的标识符；存储方拒绝时返回 error，
// 由批次执行器降级为逐项警告。
type ContentStore interface {
	// CreateUser 创建作者账号。
	CreateUser(ctx context.Context, fields *dto.UserFields) (uint64, error)

	// CreateTerm 在指定 taxonomy 下创建词条。
	CreateTerm(ctx context.Context, taxonomy string, fields *dto.TermFields) (uint64, error)

	// StoreMedia 旁路存储一个已下载的媒体文件，返回附件 ID。
	StoreMedia(ctx context.Context, media *dto.MediaUpload) (uint64, error)

	// AttachmentURL 返回附件的公开访问 URL，内容块组装时使用。
	AttachmentURL(ctx context.Context, attachmentID uint64) (string, error)

	// CreatePost 创建帖子 / 页面（含分类、标签关联）。
	CreatePost(ctx context.Context, fields *dto.PostFields) (uint64, error)

	// SetFeaturedMedia 为帖子设置特色图。
	SetFeaturedMedia(ctx context.Context, postID, attachmentID uint64) error

	// AddPostMeta 追加一条帖子元数据。
	AddPostMeta(ctx context.Context, postID uint64, key, value string) error

	// SetTermMeta 写入一条词条元数据。
	SetTermMeta(ctx context.Context, termID uint64, key, value string) error

	// PostCustomFieldKeys 返回帖子上以 prefix 开头的自定义字段键，
	// SEO 变体用它派生额外的替换变量 token。
	PostCustomFieldKeys(ctx context.Context, postID uint64, prefix string) ([]string, error)

	// CreateSEOMeta 写入帖子的 SEO 元数据记录（每帖一行）。
	CreateSEOMeta(ctx context.Context, meta *dto.SEOMetaFields) error
}

// StorefrontStore 店面实体的 REST 风格创建接口。
type StorefrontStore interface {
	CreateProductCategory(ctx context.Context, req *dto.ProductCategoryCreateRequest) (uint64, error)
	CreateBrand(ctx context.Context, req *dto.BrandCreateRequest) (uint64, error)
	CreateProduct(ctx context.Context, req *dto.ProductCreateRequest) (uint64, error)
	CreateReview(ctx context.Context, req *dto.ReviewCreateRequest) (uint64, error)
}
