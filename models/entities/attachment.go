package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Attachment 媒体附件实体
// - 表名: attachments
// - 文件本体上传到 COS，这里只存访问 URL 与对象键
type Attachment struct {
	entities.BaseModel

	FileName    string `gorm:"type:varchar(255);not null"`
	ContentType string `gorm:"type:varchar(50)"`

	// 公开访问 URL，内容块中的图片标签直接引用
	URL string `gorm:"type:varchar(1023);not null"`

	// COS 中的 ObjectKey
	ObjectKey string `gorm:"type:varchar(255);not null;index"`

	// 下载时使用的搜索关键词与尺寸，便于追溯图片来源
	Keyword string `gorm:"type:varchar(100)"`
	Width   int    `gorm:"default:0"`
	Height  int    `gorm:"default:0"`

	FileSize int64 `gorm:"default:0"`
}
