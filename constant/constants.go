package constant

const (
	// ServiceName 在日志、追踪和事件中标识本工具。
	ServiceName = "content-faker"
	// ServiceVersion 当前版本号。
	ServiceVersion = "1.0.0"
)

const (
	// COSObjectKeyPrefixDemoMedia 是示例媒体文件在 COS 中的对象键前缀。
	COSObjectKeyPrefixDemoMedia = "demo/media/"

	// SeedRunMetaKey 是写入每条生成记录（term meta / post meta）的标记键，
	// 值为本次运行的 runID，便于后续识别并清理合成数据。
	SeedRunMetaKey = "_demo_seed_run"
)

// 内容词条所属的 taxonomy 名称。
const (
	TaxonomyCategory = "category"
	TaxonomyTag      = "post_tag"
)

// 帖子类型。
const (
	PostTypePost = "post"
	PostTypePage = "page"
)

const (
	// SeedRunSetKey 记录所有运行过的 runID 的 Redis Set。
	SeedRunSetKey = "faker:runs"
	// SeedRunKeyPrefix 每次运行生成的 ID 池按实体记录在
	// "faker:run:{runID}:{entity}" 的 List 中，保留创建顺序。
	SeedRunKeyPrefix = "faker:run:"
)

// DefaultUserRole 生成用户的默认角色。
const DefaultUserRole = "author"

// 各子命令的默认生成数量。
const (
	DefaultAuthors           = 10
	DefaultCategories        = 10
	DefaultTags              = 25
	DefaultAttachments       = 10
	DefaultPosts             = 100
	DefaultPages             = 5
	DefaultContentKeyword    = "wordpress"
	DefaultProductKeyword    = "jewelry"
	DefaultProductCategories = 25
	DefaultBrands            = 10
	DefaultProducts          = 300
	DefaultMinReviews        = 3
	DefaultMaxReviews        = 10

	// DefaultAttachmentWidth / Height 下载示例图片的尺寸。
	DefaultAttachmentWidth  = 640
	DefaultAttachmentHeight = 480
)
