package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_faker/models/dto"
	"github.com/Xushengqwer/content_faker/repo"
	"github.com/Xushengqwer/content_faker/repo/memory"
)

// StorefrontController 是内置 mock 店面的 HTTP 层。
// 响应体刻意保持店面 REST 接口的原始形状（裸 JSON 对象 / {code,message}
// 错误体），这样填充工具的 REST 客户端无需区分真实店面与 mock。
type StorefrontController struct {
	store repo.StorefrontStore
	stats *memory.Store // 可为 nil；非 nil 时暴露 /stats 查询端点
}

// NewStorefrontController 构造 mock 店面控制器。
// store 与 stats 通常是同一个 memory.Store 实例。
func NewStorefrontController(store repo.StorefrontStore, stats *memory.Store) *StorefrontController {
	return &StorefrontController{store: store, stats: stats}
}

// RegisterRoutes 在给定分组下注册店面路由。
func (ctrl *StorefrontController) RegisterRoutes(group *gin.RouterGroup) {
	products := group.Group("/products")
	{
		products.POST("", ctrl.CreateProduct)
		products.POST("/categories", ctrl.CreateProductCategory)
		products.POST("/brands", ctrl.CreateBrand)
		products.POST("/reviews", ctrl.CreateReview)
	}
	group.GET("/stats", ctrl.Stats)
}

// respondCreationError 按店面接口的错误形状返回 400。
func respondCreationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.RESTError{
		Code:    "rest_invalid_param",
		Message: err.Error(),
	})
}

// CreateProduct 创建商品
// @Summary      创建商品
// @Description  接收店面格式的商品创建请求并返回新资源 ID。
// @Tags         products (商品)
// @Accept       json
// @Produce      json
// @Param        request body dto.ProductCreateRequest true "商品创建请求体"
// @Success      201 {object} dto.CreatedResource "创建成功"
// @Failure      400 {object} dto.RESTError "请求体无效"
// @Router       /products [post]
func (ctrl *StorefrontController) CreateProduct(c *gin.Context) {
	var req dto.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondCreationError(c, err)
		return
	}

	id, err := ctrl.store.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		respondCreationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResource{ID: id})
}

// CreateProductCategory 创建商品分类
// @Summary      创建商品分类
// @Tags         products (商品)
// @Accept       json
// @Produce      json
// @Param        request body dto.ProductCategoryCreateRequest true "商品分类创建请求体"
// @Success      201 {object} dto.CreatedResource "创建成功"
// @Failure      400 {object} dto.RESTError "请求体无效"
// @Router       /products/categories [post]
func (ctrl *StorefrontController) CreateProductCategory(c *gin.Context) {
	var req dto.ProductCategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondCreationError(c, err)
		return
	}

	id, err := ctrl.store.CreateProductCategory(c.Request.Context(), &req)
	if err != nil {
		respondCreationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResource{ID: id})
}

// CreateBrand 创建品牌
// @Summary      创建品牌
// @Tags         products (商品)
// @Accept       json
// @Produce      json
// @Param        request body dto.BrandCreateRequest true "品牌创建请求体"
// @Success      201 {object} dto.CreatedResource "创建成功"
// @Failure      400 {object} dto.RESTError "请求体无效"
// @Router       /products/brands [post]
func (ctrl *StorefrontController) CreateBrand(c *gin.Context) {
	var req dto.BrandCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondCreationError(c, err)
		return
	}

	id, err := ctrl.store.CreateBrand(c.Request.Context(), &req)
	if err != nil {
		respondCreationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResource{ID: id})
}

// CreateReview 创建商品评价
// @Summary      创建商品评价
// @Tags         products (商品)
// @Accept       json
// @Produce      json
// @Param        request body dto.ReviewCreateRequest true "评价创建请求体"
// @Success      201 {object} dto.CreatedResource "创建成功"
// @Failure      400 {object} dto.RESTError "请求体无效（含 product_id 缺失或不存在）"
// @Router       /products/reviews [post]
func (ctrl *StorefrontController) CreateReview(c *gin.Context) {
	var req dto.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondCreationError(c, err)
		return
	}

	id, err := ctrl.store.CreateReview(c.Request.Context(), &req)
	if err != nil {
		respondCreationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResource{ID: id})
}

// Stats 查询当前记录数
// @Summary      查询 mock 店面当前各类记录数
// @Tags         stats (状态)
// @Produce      json
// @Success      200 {object} memory.Counts "记录数快照"
// @Router       /stats [get]
func (ctrl *StorefrontController) Stats(c *gin.Context) {
	if ctrl.stats == nil {
		c.JSON(http.StatusNotFound, dto.RESTError{Code: "rest_no_route", Message: "统计端点未启用"})
		return
	}
	c.JSON(http.StatusOK, ctrl.stats.Stats())
}
