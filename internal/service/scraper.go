package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"linkedin-portfolio-go/internal/cache"
	"linkedin-portfolio-go/internal/fetcher"
	"linkedin-portfolio-go/internal/model"
	"linkedin-portfolio-go/internal/utils"
)

// ScrapeCacheSource 抓取缓存的数据源标识
const ScrapeCacheSource = "linkedin_public"

// ErrNotLinkedInURL URL不属于linkedin.com
var ErrNotLinkedInURL = errors.New("not a linkedin.com URL")

// ScraperService 公开主页抓取服务。LinkedIn大部分内容由JS渲染，结果通常不完整
type ScraperService struct {
	fetcher  fetcher.PageFetcher
	parser   *fetcher.ProfileParser
	cache    cache.Cache
	cacheTTL time.Duration
	locale   model.Locale
	logger   *zap.Logger
}

// NewScraperService 创建抓取服务，c为nil时不使用缓存
func NewScraperService(f fetcher.PageFetcher, c cache.Cache, cacheTTL time.Duration, locale model.Locale, logger *zap.Logger) *ScraperService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScraperService{
		fetcher:  f,
		parser:   fetcher.NewProfileParser(),
		cache:    c,
		cacheTTL: cacheTTL,
		locale:   locale,
		logger:   logger,
	}
}

// Scrape 抓取并解析公开主页
func (s *ScraperService) Scrape(ctx context.Context, profileURL string) (*model.ScrapedDocument, error) {
	if !utils.IsLinkedInURL(profileURL) {
		return nil, fmt.Errorf("%w: %s", ErrNotLinkedInURL, profileURL)
	}

	if doc := s.fromCache(ctx, profileURL); doc != nil {
		return doc, nil
	}

	s.logger.Info("Fetching public profile", zap.String("url", profileURL))
	html, err := s.fetcher.FetchProfilePage(ctx, profileURL)
	if err != nil {
		return nil, err
	}

	parsed, err := s.parser.Parse(html)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile page: %w", err)
	}

	doc := &model.ScrapedDocument{
		Profile: model.ScrapedProfile{
			Name:     orDefault(parsed.Name, s.locale.NameNotFound),
			Title:    orDefault(parsed.Title, s.locale.TitleNotFound),
			Location: orDefault(parsed.Location, s.locale.LocationNotFound),
			LinkedIn: profileURL,
			About:    parsed.About,
		},
	}

	s.toCache(ctx, profileURL, doc)
	return doc, nil
}

// fromCache 缓存读取失败只记录日志
func (s *ScraperService) fromCache(ctx context.Context, profileURL string) *model.ScrapedDocument {
	if s.cache == nil {
		return nil
	}

	cached, err := s.cache.Get(ctx, cacheKey(profileURL))
	if err != nil {
		s.logger.Warn("Cache read failed", zap.String("url", profileURL), zap.Error(err))
		return nil
	}
	if cached == nil {
		s.logger.Debug("Cache MISS", zap.String("url", profileURL))
		return nil
	}

	var doc model.ScrapedDocument
	if err := json.Unmarshal(cached.Data, &doc); err != nil {
		s.logger.Warn("Cached entry is corrupt", zap.String("url", profileURL), zap.Error(err))
		return nil
	}
	s.logger.Info("Cache HIT", zap.String("url", profileURL), zap.Time("created_at", cached.CreatedAt))
	return &doc
}

func (s *ScraperService) toCache(ctx context.Context, profileURL string, doc *model.ScrapedDocument) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(doc)
	if err != nil {
		s.logger.Warn("Failed to encode cache entry", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, cacheKey(profileURL), data, s.cacheTTL); err != nil {
		s.logger.Warn("Cache write failed", zap.String("url", profileURL), zap.Error(err))
	}
}

// cacheKey 同一主页的不同URL写法（查询参数、末尾斜杠）共用一个缓存条目
func cacheKey(profileURL string) string {
	if id := utils.ExtractLinkedInID(profileURL); id != "" {
		return "in/" + strings.ToLower(id)
	}
	return profileURL
}

func orDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
