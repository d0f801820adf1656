package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Term taxonomy 词条实体（分类 / 标签 / 品牌共用一张表，按 Taxonomy 区分）
// - 表名: terms
type Term struct {
	entities.BaseModel

	// 所属 taxonomy，例如 "category"、"post_tag"
	Taxonomy string `gorm:"type:varchar(32);not null;index"`

	// 词条名，同 taxonomy 下单次运行内唯一
	Name string `gorm:"type:varchar(200);not null;index"`

	Description string `gorm:"type:text"`

	// 父词条 ID，0 表示顶层。父级只会引用同批次中先创建的词条。
	ParentID uint64 `gorm:"not null;default:0;index"`
}

// TermMeta 词条元数据
// - 表名: term_metas
// - 填充工具用它给合成词条打运行标记，便于清理工具识别
type TermMeta struct {
	entities.BaseModel

	TermID    uint64 `gorm:"not null;index"`
	MetaKey   string `gorm:"type:varchar(255);not null;index"`
	MetaValue string `gorm:"type:text"`
}
