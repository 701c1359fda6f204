package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tokenservice/internal/types"
)

// apiClient 调用 tokenservice 的 HTTP 接口
type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(baseURL string, timeout time.Duration) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *apiClient) GetBalance(ctx context.Context, address string) (*types.BalanceResp, error) {
	var resp types.BalanceResp
	err := c.get(ctx, "/get_balance/", url.Values{"address": {address}}, &resp)
	return &resp, err
}

func (c *apiClient) GetBalanceBatch(ctx context.Context, addresses []string) (*types.BalanceBatchResp, error) {
	var resp types.BalanceBatchResp
	err := c.post(ctx, "/get_balance_batch/", types.BalanceBatchReq{Addresses: addresses}, &resp)
	return &resp, err
}

func (c *apiClient) GetTop(ctx context.Context, n int) (*types.TopResp, error) {
	var resp types.TopResp
	err := c.get(ctx, "/get_top/", topQuery(n), &resp)
	return &resp, err
}

func (c *apiClient) GetTopWithTransactions(ctx context.Context, n int) (*types.TopWithTransactionsResp, error) {
	var resp types.TopWithTransactionsResp
	err := c.get(ctx, "/get_top_with_transactions/", topQuery(n), &resp)
	return &resp, err
}

func (c *apiClient) GetTokenInfo(ctx context.Context, address string) (*types.TokenInfoResp, error) {
	var resp types.TokenInfoResp
	err := c.get(ctx, "/get_token_info/", url.Values{"address": {address}}, &resp)
	return &resp, err
}

// n <= 0 时不带 N，使用服务端默认值
func topQuery(n int) url.Values {
	if n <= 0 {
		return nil
	}
	return url.Values{"N": {fmt.Sprint(n)}}
}

func (c *apiClient) get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("无法创建请求: %w", err)
	}
	return c.do(req, out)
}

func (c *apiClient) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("无法打包 JSON 数据: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("无法创建请求: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *apiClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("发送请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取响应体失败: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr types.ErrorResp
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return errors.New(apiErr.Error)
		}
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("解析响应失败: %w", err)
	}
	return nil
}
