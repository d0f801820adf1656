package dto

// 店面 REST 创建接口的请求 / 响应形状。字段名与 WooCommerce 风格的
// JSON 载荷保持一致，因此 restapi 客户端既能对接真实店面，也能对接
// 内置的 mock 店面服务。

// ImageRef 引用媒体库中的一个附件。
type ImageRef struct {
	ID uint64 `json:"id"`
}

// TermRef 引用一个已创建的词条（商品分类 / 品牌）。
type TermRef struct {
	ID uint64 `json:"id"`
}

// ProductCategoryCreateRequest 创建商品分类。
type ProductCategoryCreateRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Image       *ImageRef `json:"image,omitempty"`
}

// BrandCreateRequest 创建品牌。
type BrandCreateRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Image       *ImageRef `json:"image,omitempty"`
}

// ProductCreateRequest 创建商品。
type ProductCreateRequest struct {
	Name         string     `json:"name" binding:"required"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	Type         string     `json:"type"`
	Featured     bool       `json:"featured"`
	SKU          string     `json:"sku"`
	RegularPrice string     `json:"regular_price"`
	Images       []ImageRef `json:"images"`     // 1~3 个
	Categories   []TermRef  `json:"categories"` // 1~2 个
	Brands       []TermRef  `json:"brands"`     // 0~2 个
}

// ReviewCreateRequest 创建商品评价。
type ReviewCreateRequest struct {
	ProductID     uint64 `json:"product_id" binding:"required"`
	Review        string `json:"review" binding:"required"`
	Reviewer      string `json:"reviewer"`
	ReviewerEmail string `json:"reviewer_email"`
	Rating        int    `json:"rating"` // 0~5
	Verified      bool   `json:"verified"`
}

// CreatedResource 创建成功时返回的资源表示，只关心标识符。
type CreatedResource struct {
	ID uint64 `json:"id"`
}

// RESTError 创建失败时返回的错误体。
type RESTError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
