package utils

import (
	"strconv"
	"strings"
)

// DateMode 日期格式化模式
type DateMode int

const (
	// DateFull 有月份时输出 "<月份名> <年>"
	DateFull DateMode = iota
	// DateYearOnly 只输出年份
	DateYearOnly
)

// FormatLinkedInDate 格式化LinkedIn导出的日期 (YYYY[-MM[-DD]])
// months 下标1-12为月份名，下标0为空。无法解析的输入原样返回，空输入返回空字符串。
func FormatLinkedInDate(date string, mode DateMode, months [13]string) string {
	if date == "" {
		return ""
	}

	parts := strings.Split(date, "-")
	year := parts[0]
	if mode == DateYearOnly {
		return year
	}

	if len(parts) < 2 {
		return year
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 0 || month > 12 {
		return date
	}
	return months[month] + " " + year
}
