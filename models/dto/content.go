package dto

import "time"

// UserFields 创建作者账号的字段记录。
type UserFields struct {
	Login        string    `json:"login"`    // 登录名，单次运行内唯一
	Password     string    `json:"password"` // 明文密码，存储适配器负责散列
	URL          string    `json:"url"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Bio          string    `json:"bio"`
	RegisteredAt time.Time `json:"registeredAt"`
	Role         string    `json:"role"`
}

// TermFields 创建分类 / 标签等 taxonomy 词条的字段记录。
type TermFields struct {
	Name        string `json:"name"` // 单次运行内同 taxonomy 下唯一
	Description string `json:"description"`
	// ParentID 可选的父词条。0 表示无父级（上游池为空或未抽中时省略）。
	ParentID uint64 `json:"parentId"`
}

// MediaUpload 旁路存储一个已下载的媒体文件。
type MediaUpload struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"-"`
	Keyword     string `json:"keyword"` // 下载时使用的搜索关键词
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// PostFields 创建帖子 / 页面的字段记录。
type PostFields struct {
	Type        string    `json:"type"` // "post" 或 "page"
	AuthorID    uint64    `json:"authorId"`
	Title       string    `json:"title"`
	Content     string    `json:"content"` // 已组装好的内容块序列
	Status      string    `json:"status"`
	PublishedAt time.Time `json:"publishedAt"`
	// ModifiedAt 不早于 PublishedAt。
	ModifiedAt time.Time `json:"modifiedAt"`
	// ParentID 仅页面使用，0 表示无父级。
	ParentID    uint64   `json:"parentId"`
	CategoryIDs []uint64 `json:"categoryIds"` // 1~2 个
	TagIDs      []uint64 `json:"tagIds"`      // 0~4 个
}

// SEOMetaFields SEO 变体为每篇帖子追加的固定形状元数据记录。
// 六个文本字段均由替换变量 token 拼接而成，由宿主 SEO 插件在渲染时解析。
type SEOMetaFields struct {
	PostID             uint64 `json:"postId"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	OgTitle            string `json:"ogTitle"`
	OgDescription      string `json:"ogDescription"`
	TwitterTitle       string `json:"twitterTitle"`
	TwitterDescription string `json:"twitterDescription"`

	// 以下为宿主插件表结构要求的默认值字段。
	OgObjectType          string `json:"ogObjectType"`  // "default"
	OgImageType           string `json:"ogImageType"`   // "default"
	TwitterCard           string `json:"twitterCard"`   // "default"
	TwitterImageType      string `json:"twitterImageType"`
	TwitterUseOg          bool   `json:"twitterUseOg"`
	SchemaType            string `json:"schemaType"` // "default"
	PillarContent         bool   `json:"pillarContent"`
	RobotsDefault         bool   `json:"robotsDefault"` // true
	RobotsMaxSnippet      int    `json:"robotsMaxSnippet"`      // -1
	RobotsMaxVideoPreview int    `json:"robotsMaxVideoPreview"` // -1
	RobotsMaxImagePreview string `json:"robotsMaxImagePreview"` // "large"
	Priority              string `json:"priority"`              // "default"
	Frequency             string `json:"frequency"`             // "default"
}
