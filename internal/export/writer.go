package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format 输出格式
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat 解析格式名（大小写不敏感，"yml"视为yaml）
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want json or yaml)", name)
	}
}

// Encode 序列化文档：JSON使用两空格缩进，非ASCII和HTML字符原样输出
func Encode(w io.Writer, v interface{}, format Format) error {
	switch format {
	case FormatJSON, "":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return err
		}
		_, err := w.Write(unescapeLineSeparators(buf.Bytes()))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// encoding/json 即使关闭HTML转义也会输出 \u2028 / \u2029，这里还原为原字符
var lineSeparatorEscapes = map[string][]byte{
	`u2028`: []byte("\u2028"),
	`u2029`: []byte("\u2029"),
}

// unescapeLineSeparators 只替换真正的转义序列，跳过 "\\u2028" 这种转义后的反斜杠
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if i+6 <= len(data) {
			if r, ok := lineSeparatorEscapes[string(data[i+1:i+6])]; ok {
				out = append(out, r...)
				i += 5
				continue
			}
		}
		// 其他转义序列原样保留（两个字节一起复制）
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}

// WriteFile 序列化并覆盖写入文件
func WriteFile(path string, v interface{}, format Format) error {
	var buf bytes.Buffer
	if err := Encode(&buf, v, format); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadFile 读取之前导出的文档
func ReadFile(path string, v interface{}, format Format) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch format {
	case FormatJSON, "":
		err = json.Unmarshal(data, v)
	case FormatYAML:
		err = yaml.Unmarshal(data, v)
	default:
		err = fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
