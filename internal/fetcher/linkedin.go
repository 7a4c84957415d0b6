package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// LinkedIn对自动化请求返回的非标准状态码
const statusLinkedInBlocked = 999

// ErrBlocked LinkedIn拒绝了请求 (HTTP 999)
var ErrBlocked = errors.New("linkedin blocked the request (status 999)")

// DefaultUserAgent 默认User-Agent
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// DefaultAcceptLanguage 默认Accept-Language
const DefaultAcceptLanguage = "fr-FR,fr;q=0.9,en;q=0.8"

// LinkedInClient 公开LinkedIn主页HTML获取客户端（不登录，不重试）
type LinkedInClient struct {
	userAgent      string
	acceptLanguage string
	httpClient     *http.Client
}

// NewLinkedInClient 创建LinkedIn客户端
func NewLinkedInClient(userAgent, acceptLanguage string, timeout time.Duration) *LinkedInClient {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if acceptLanguage == "" {
		acceptLanguage = DefaultAcceptLanguage
	}
	return &LinkedInClient{
		userAgent:      userAgent,
		acceptLanguage: acceptLanguage,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchProfilePage 获取公开主页HTML
func (c *LinkedInClient) FetchProfilePage(ctx context.Context, profileURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", c.acceptLanguage)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch profile page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == statusLinkedInBlocked {
		return "", ErrBlocked
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("linkedin returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	return string(body), nil
}
