package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"menu-image-resolver/internal/core/catalog"
	"menu-image-resolver/internal/core/menuimage"
	"menu-image-resolver/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client 圖片解析服務的 HTTP 客戶端
type Client struct {
	client *resty.Client
}

// New 創建客戶端
func New(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")+"/api/v1").
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "menuimg")

	return &Client{client: client}
}

// APIError 服務端回傳的錯誤
type APIError struct {
	Status   int
	Response common.ErrorResponse
}

func (e *APIError) Error() string {
	if e.Response.Details != "" {
		return fmt.Sprintf("%s (%d): %s: %s", e.Response.Code, e.Status, e.Response.Message, e.Response.Details)
	}
	return fmt.Sprintf("%s (%d): %s", e.Response.Code, e.Status, e.Response.Message)
}

// Resolve 解析單一菜品，無圖片時回傳 nil
func (c *Client) Resolve(ctx context.Context, req menuimage.ResolveRequest) (*menuimage.ImageResult, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", common.GenerateUUID()).
		SetBody(req).
		Post("/images/resolve")
	if err != nil {
		return nil, fmt.Errorf("failed to send resolve request: %w", err)
	}

	var result menuimage.ResolveResponse
	if err := decode(resp, &result); err != nil {
		return nil, err
	}

	common.LogDebug("Resolve response",
		zap.String("dish_name", req.Item.Name),
		zap.Bool("has_image", result.Image != nil),
	)
	return result.Image, nil
}

// ResolveMenu 解析整份菜單
func (c *Client) ResolveMenu(ctx context.Context, req menuimage.BatchResolveRequest) ([]*menuimage.ImageResult, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", common.GenerateUUID()).
		SetBody(req).
		Post("/images/resolve/batch")
	if err != nil {
		return nil, fmt.Errorf("failed to send batch resolve request: %w", err)
	}

	var result menuimage.BatchResolveResponse
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	return result.Images, nil
}

// Search 搜尋指定圖庫
func (c *Client) Search(ctx context.Context, style, query string) ([]catalog.Entry, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		Get("/catalogs/" + url.PathEscape(style) + "/search")
	if err != nil {
		return nil, fmt.Errorf("failed to send search request: %w", err)
	}

	var result struct {
		Entries []catalog.Entry `json:"entries"`
	}
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	return result.Entries, nil
}

// Stats 取得解析結果統計
func (c *Client) Stats(ctx context.Context) (map[string]int64, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/stats")
	if err != nil {
		return nil, fmt.Errorf("failed to send stats request: %w", err)
	}

	var result struct {
		Outcomes map[string]int64 `json:"outcomes"`
	}
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	return result.Outcomes, nil
}

func decode(resp *resty.Response, v interface{}) error {
	if resp.StatusCode() != http.StatusOK {
		apiErr := &APIError{Status: resp.StatusCode()}
		if err := json.Unmarshal(resp.Body(), &apiErr.Response); err != nil || apiErr.Response.Code == "" {
			apiErr.Response = common.ErrorResponse{
				Code:    common.ErrCodeInternalError,
				Message: strings.TrimSpace(resp.String()),
			}
		}
		return apiErr
	}

	if err := common.ParseJSONBytes(resp.Body(), v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
