package dependencies

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/content_faker/config"
)

// ImageSourceClient 按关键词从外部图片服务下载图片。
// 这是整个工具唯一的外网抓取点，失败率远高于数据库写入，
// 因此它的错误同样只会变成附件批次里的逐项警告。
type ImageSourceClient interface {
	// FetchImage 下载一张 width x height、主题为 keyword 的图片，
	// 返回图片二进制与 Content-Type。
	FetchImage(ctx context.Context, width, height int, keyword string) ([]byte, string, error)
}

type imageSourceClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *core.ZapLogger
}

// InitImageSource 创建图片源客户端。出站请求经 otelhttp 包装，
// 启用追踪时下载耗时会出现在 trace 中。
func InitImageSource(cfg *appConfig.ImageSourceConfig, logger *core.ZapLogger) ImageSourceClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://loremflickr.com"
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &imageSourceClient{
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

func (c *imageSourceClient) FetchImage(ctx context.Context, width, height int, keyword string) ([]byte, string, error) {
	reqURL := fmt.Sprintf("%s/%d/%d/%s", c.baseURL, width, height, keyword)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("构造图片下载请求失败: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("图片下载请求失败", zap.String("url", reqURL), zap.Error(err))
		return nil, "", fmt.Errorf("下载图片 %s 失败: %w", reqURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("图片源返回非200状态码: %d (%s)", resp.StatusCode, reqURL)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("读取图片响应体失败: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return data, contentType, nil
}
