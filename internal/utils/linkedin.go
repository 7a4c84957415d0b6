package utils

import (
	"net/url"
	"strings"
)

// LinkedInProfileBaseURL LinkedIn个人主页基础URL
const LinkedInProfileBaseURL = "https://www.linkedin.com/in/"

// LastPathSegment 返回按 "/" 分割后的最后一段（可能为空，如末尾带斜杠）
func LastPathSegment(s string) string {
	if idx := strings.LastIndex(s, "/"); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

// LinkedInProfileURL 由导出的 Public Profile URL 生成主页链接
// 值为空时得到不带后缀的基础URL，与导出脚本的历史行为一致
func LinkedInProfileURL(publicProfileURL string) string {
	return LinkedInProfileBaseURL + LastPathSegment(publicProfileURL)
}

// ExtractLinkedInID 从URL中提取LinkedIn ID
func ExtractLinkedInID(linkedinURL string) string {
	if !strings.Contains(linkedinURL, "linkedin.com/in/") {
		return ""
	}
	parts := strings.Split(linkedinURL, "linkedin.com/in/")
	if len(parts) < 2 {
		return ""
	}
	return strings.Split(strings.Split(parts[1], "?")[0], "/")[0]
}

// IsLinkedInURL 判断URL的host是否属于linkedin.com
func IsLinkedInURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(u.Host), "linkedin.com")
}
