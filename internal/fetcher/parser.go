package fetcher

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LinkedIn经常修改页面结构，每个字段按顺序尝试多个选择器
var (
	nameSelectors = []string{
		"h1.top-card-layout__title",
		"h1.text-heading-xlarge",
		".pv-text-details__left-panel h1",
	}
	titleSelectors = []string{
		"div.top-card-layout__headline",
		".text-body-medium",
		".pv-text-details__left-panel .text-body-medium",
	}
	locationSelectors = []string{
		"span.top-card__subline-item",
		".pv-text-details__left-panel .text-body-small",
	}
	aboutSelectors = []string{
		".core-section-container__content .break-words",
		".pv-about__summary-text",
	}
)

// ParsedPublicProfile 从公开主页解析出的字段，未找到的字段为空字符串
type ParsedPublicProfile struct {
	Name     string
	Title    string
	Location string
	About    string
}

// ProfileParser 公开LinkedIn主页HTML解析器
type ProfileParser struct{}

// NewProfileParser 创建解析器
func NewProfileParser() *ProfileParser {
	return &ProfileParser{}
}

// Parse 解析公开主页HTML
func (p *ProfileParser) Parse(html string) (*ParsedPublicProfile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	return &ParsedPublicProfile{
		Name:  firstText(doc, nameSelectors, nil),
		Title: firstText(doc, titleSelectors, nil),
		// 地点位置有时会显示关注者数量
		Location: firstText(doc, locationSelectors, func(text string) bool {
			return !strings.Contains(text, "followers")
		}),
		About: firstText(doc, aboutSelectors, nil),
	}, nil
}

// firstText 返回第一个命中选择器的非空文本，accept为nil时接受任意非空文本
func firstText(doc *goquery.Document, selectors []string, accept func(string) bool) string {
	for _, selector := range selectors {
		text := strings.TrimSpace(doc.Find(selector).First().Text())
		if text == "" {
			continue
		}
		if accept != nil && !accept(text) {
			continue
		}
		return text
	}
	return ""
}
