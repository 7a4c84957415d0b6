package fetcher

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNoDecoder 编码列表全部失败
var ErrNoDecoder = errors.New("no encoding could decode the file")

// Encoding 一种候选文本编码
type Encoding struct {
	Name string
	// Strict 为true时要求输入本身是合法UTF-8
	Strict  bool
	Decoder encoding.Encoding
}

// DefaultEncodings 先尝试UTF-8，再回退到latin-1
var DefaultEncodings = []Encoding{
	{Name: "utf-8", Strict: true, Decoder: unicode.UTF8BOM},
	{Name: "latin-1", Decoder: charmap.ISO8859_1},
}

// Row 一行CSV数据，按表头列名索引
type Row map[string]string

// Field 取列值：列不存在或为空返回默认值，否则返回去除首尾空白后的文本
func (r Row) Field(name, defaultValue string) string {
	value, ok := r[name]
	if !ok || value == "" {
		return defaultValue
	}
	return strings.TrimSpace(value)
}

// Table 解析后的CSV表
type Table struct {
	Header   []string
	Rows     []Row
	Encoding string // 实际使用的编码
}

// CSVReader LinkedIn导出CSV读取器
type CSVReader struct {
	encodings []Encoding
}

// NewCSVReader 创建读取器，encodings为空时使用DefaultEncodings
func NewCSVReader(encodings ...Encoding) *CSVReader {
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}
	return &CSVReader{encodings: encodings}
}

// ReadFile 读取并解析CSV文件
func (r *CSVReader) ReadFile(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, name, err := r.decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	table, err := parseCSV(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	table.Encoding = name
	return table, nil
}

// decode 按顺序尝试编码，返回第一个成功的结果
func (r *CSVReader) decode(raw []byte) (string, string, error) {
	for _, enc := range r.encodings {
		if enc.Strict && !utf8.Valid(raw) {
			continue
		}
		decoded, _, err := transform.Bytes(enc.Decoder.NewDecoder(), raw)
		if err != nil {
			continue
		}
		return string(decoded), enc.Name, nil
	}
	return "", "", ErrNoDecoder
}

func parseCSV(text string) (*Table, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return &Table{Rows: []Row{}}, nil
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	table := &Table{Header: header, Rows: []Row{}}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
