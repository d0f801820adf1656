package entities

import (
	"time"

	"github.com/Xushengqwer/go-common/models/entities"
)

// Post 帖子 / 页面实体
// - 表名: posts
// - 帖子与页面共用一张表，按 Type 区分（"post" / "page"）
type Post struct {
	entities.BaseModel

	Type string `gorm:"type:varchar(20);not null;default:post;index"`

	// 作者 ID，引用本次运行创建的 users 记录；作者池为空时为 0（省略引用）
	AuthorID uint64 `gorm:"not null;default:0;index"`

	Title string `gorm:"type:varchar(255);not null"`

	// 内容块序列，段落块与图片块按固定分隔符拼接
	Content string `gorm:"type:longtext;not null"`

	Status string `gorm:"type:varchar(20);not null;default:publish"`

	// 发布时间与修改时间；约束 ModifiedAt >= PublishedAt 由生成器保证
	PublishedAt time.Time `gorm:"not null"`
	ModifiedAt  time.Time `gorm:"not null"`

	// 父页面 ID，仅页面使用，0 表示顶层
	ParentID uint64 `gorm:"not null;default:0"`

	// 特色图附件 ID，0 表示未设置
	FeaturedMediaID uint64 `gorm:"not null;default:0"`
}

// PostTerm 帖子与词条的关联
// - 表名: post_terms
type PostTerm struct {
	entities.BaseModel

	PostID uint64 `gorm:"not null;index:idx_post_term,unique"`
	TermID uint64 `gorm:"not null;index:idx_post_term,unique"`
}

// PostMeta 帖子元数据
// - 表名: post_metas
// - 承载运行标记、SEO 变体镜像出的 _aioseo_* 键以及自定义字段
type PostMeta struct {
	entities.BaseModel

	PostID    uint64 `gorm:"not null;index"`
	MetaKey   string `gorm:"type:varchar(255);not null;index"`
	MetaValue string `gorm:"type:text"`
}
