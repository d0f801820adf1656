package entities

import "github.com/Xushengqwer/go-common/models/entities"

// SEOMeta 每篇帖子一行的 SEO 元数据记录（SEO 变体写入）
// - 表名: seo_metas
// - 六个文本字段存放替换变量 token 的拼接结果，由宿主 SEO 插件渲染时解析
type SEOMeta struct {
	entities.BaseModel

	PostID uint64 `gorm:"not null;uniqueIndex"`

	Title              string `gorm:"type:varchar(255)"`
	Description        string `gorm:"type:text"`
	OgTitle            string `gorm:"type:varchar(255)"`
	OgDescription      string `gorm:"type:text"`
	TwitterTitle       string `gorm:"type:varchar(255)"`
	TwitterDescription string `gorm:"type:text"`

	// 以下字段为宿主插件表结构的固定默认值
	OgObjectType          string `gorm:"type:varchar(32);default:default"`
	OgImageType           string `gorm:"type:varchar(32);default:default"`
	TwitterCard           string `gorm:"type:varchar(32);default:default"`
	TwitterImageType      string `gorm:"type:varchar(32);default:default"`
	TwitterUseOg          bool   `gorm:"default:false"`
	SchemaType            string `gorm:"type:varchar(32);default:default"`
	PillarContent         bool   `gorm:"default:false"`
	RobotsDefault         bool   `gorm:"default:true"`
	RobotsMaxSnippet      int    `gorm:"default:-1"`
	RobotsMaxVideoPreview int    `gorm:"default:-1"`
	RobotsMaxImagePreview string `gorm:"type:varchar(16);default:large"`
	Priority              string `gorm:"type:varchar(16);default:default"`
	Frequency             string `gorm:"type:varchar(16);default:default"`
}
