// Package restapi 实现 repo.StorefrontStore 的 HTTP 客户端版本，
// 对接电商店面的 REST 接口（/products 及其子资源）。
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/content_faker/config"
	"github.com/Xushengqwer/content_faker/models/dto"
	"github.com/Xushengqwer/content_faker/myErrors"
	"github.com/Xushengqwer/content_faker/repo"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	key        string
	secret     string
	logger     *core.ZapLogger
}

// NewClient 构造店面 REST 客户端。认证走 Basic Auth（consumer key/secret）。
func NewClient(cfg *appConfig.StorefrontConfig, logger *core.ZapLogger) (repo.StorefrontStore, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("店面接口地址 (storefrontConfig.baseURL) 未配置")
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &client{
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		key:     cfg.Key,
		secret:  cfg.Secret,
		logger:  logger,
	}, nil
}

// postJSON 发送创建请求并解析返回的资源 ID。
// 非 2xx 时尝试解析店面的错误体，包装成资源级创建错误返回。
func (c *client) postJSON(ctx context.Context, resource, path string, payload interface{}) (uint64, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, myErrors.NewCreationError(resource, fmt.Errorf("序列化请求体失败: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, myErrors.NewCreationError(resource, fmt.Errorf("构造请求失败: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.key, c.secret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("店面接口请求失败",
			zap.String("resource", resource), zap.String("path", path), zap.Error(err))
		return 0, myErrors.NewCreationError(resource, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, myErrors.NewCreationError(resource, fmt.Errorf("读取响应体失败: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var restErr dto.RESTError
		if jsonErr := json.Unmarshal(respBody, &restErr); jsonErr == nil && restErr.Message != "" {
			return 0, myErrors.NewCreationError(resource,
				fmt.Errorf("店面返回 %d: %s (%s)", resp.StatusCode, restErr.Message, restErr.Code))
		}
		return 0, myErrors.NewCreationError(resource,
			fmt.Errorf("店面返回非预期状态码 %d", resp.StatusCode))
	}

	var created dto.CreatedResource
	if err := json.Unmarshal(respBody, &created); err != nil {
		return 0, myErrors.NewCreationError(resource, fmt.Errorf("解析响应体失败: %w", err))
	}
	if created.ID == 0 {
		return 0, myErrors.NewCreationError(resource, fmt.Errorf("店面响应缺少资源 ID"))
	}
	return created.ID, nil
}

func (c *client) CreateProductCategory(ctx context.Context, req *dto.ProductCategoryCreateRequest) (uint64, error) {
	return c.postJSON(ctx, "商品分类", "/products/categories", req)
}

func (c *client) CreateBrand(ctx context.Context, req *dto.BrandCreateRequest) (uint64, error) {
	return c.postJSON(ctx, "品牌", "/products/brands", req)
}

func (c *client) CreateProduct(ctx context.Context, req *dto.ProductCreateRequest) (uint64, error) {
	return c.postJSON(ctx, "商品", "/products", req)
}

func (c *client) CreateReview(ctx context.Context, req *dto.ReviewCreateRequest) (uint64, error) {
	return c.postJSON(ctx, "商品评价", "/products/reviews", req)
}
