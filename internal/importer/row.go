// internal/importer/row.go - 行解析与规范化
package importer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TagList 兼容两种外部格式：逗号分隔的字符串或字符串数组
type TagList []string

func (t *TagList) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if strings.HasPrefix(trimmed, "\"") {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = SplitTags(s)
		return nil
	}

	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return err
	}
	*t = NormalizeTags(arr)
	return nil
}

// RawRow 是一条未经校验的外部记录（Excel 行或 JSON 对象），
// Row 为 1 起始的行号，只用于报错
type RawRow struct {
	Row             int     `json:"-"`
	Name            string  `json:"name"`
	URL             string  `json:"url"`
	Description     string  `json:"description"`
	CategoryName    string  `json:"categoryName"`
	SubcategoryName string  `json:"subcategoryName"`
	Tags            TagList `json:"tags"`
	Icon            string  `json:"icon"`
}

// CandidateRow 是校验通过、字段规范化之后的候选记录
type CandidateRow struct {
	Name            string
	URL             string
	Description     string
	CategoryName    string
	SubcategoryName string
	Tags            []string
	Icon            string
}

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ParseRow 校验一条原始记录。校验按 名称 → 链接 → 分类 的顺序进行，
// 首个失败即返回，该行不产生任何实体。
func ParseRow(row RawRow) (*CandidateRow, *RowError) {
	name := strings.TrimSpace(row.Name)
	if name == "" {
		return nil, &RowError{Row: row.Row, Message: fmt.Sprintf("第 %d 行：链接名称不能为空", row.Row)}
	}

	url := strings.TrimSpace(row.URL)
	if url == "" {
		return nil, &RowError{Row: row.Row, Message: fmt.Sprintf("第 %d 行：链接地址不能为空", row.Row)}
	}

	category := strings.TrimSpace(row.CategoryName)
	if category == "" {
		return nil, &RowError{Row: row.Row, Message: fmt.Sprintf("第 %d 行：分类不能为空", row.Row)}
	}

	return &CandidateRow{
		Name:            name,
		URL:             NormalizeURL(url),
		Description:     strings.TrimSpace(row.Description),
		CategoryName:    category,
		SubcategoryName: strings.TrimSpace(row.SubcategoryName),
		Tags:            NormalizeTags(row.Tags),
		Icon:            strings.TrimSpace(row.Icon),
	}, nil
}

// NormalizeURL 缺少协议前缀时补全 https://
func NormalizeURL(raw string) string {
	url := strings.TrimSpace(raw)
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}
	return url
}

// SplitTags 把逗号分隔的标签串拆成去空、去重后的列表
func SplitTags(raw string) []string {
	return NormalizeTags(strings.Split(raw, ","))
}

// NormalizeTags 去掉首尾空白、空项和重复项，保留首次出现的顺序
func NormalizeTags(raw []string) []string {
	tags := []string{}
	seen := make(map[string]bool)
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
