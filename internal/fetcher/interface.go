package fetcher

import "context"

// PageFetcher 获取网页HTML (公开LinkedIn主页)
type PageFetcher interface {
	FetchProfilePage(ctx context.Context, profileURL string) (string, error)
}

// TableReader 读取导出的CSV表
type TableReader interface {
	ReadFile(path string) (*Table, error)
}

var (
	_ PageFetcher = (*LinkedInClient)(nil)
	_ TableReader = (*CSVReader)(nil)
)
