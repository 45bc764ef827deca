// internal/importer/excel.go - Excel 读写
package importer

import (
	"bytes"
	"fmt"
	"strings"

	"links-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	linksSheet        = "链接"
	instructionsSheet = "使用说明"
)

// 导出与模板使用的列顺序
var exportHeaders = []string{"名称", "链接", "描述", "分类", "子分类", "标签", "图标"}

// 表头文本 → 语义字段。表头是展示文案，这里集中做映射，
// 解析和对账逻辑只认 RawRow 的字段
var headerFields = map[string]string{
	"名称":          "name",
	"链接名称":        "name",
	"name":        "name",
	"链接":          "url",
	"链接地址":        "url",
	"url":         "url",
	"描述":          "description",
	"description": "description",
	"分类":          "category",
	"category":    "category",
	"子分类":         "subcategory",
	"subcategory": "subcategory",
	"标签":          "tags",
	"tags":        "tags",
	"图标":          "icon",
	"icon":        "icon",
}

// ReadWorkbook 读取 xlsx 的第一个工作表并逐行转成 RawRow。
// 文件无法解析时整体失败，不产生任何部分结果。
func ReadWorkbook(data []byte) ([]RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("无法解析 Excel 文件: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel 文件中没有工作表")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("读取工作表失败: %w", err)
	}
	if len(rows) == 0 {
		return []RawRow{}, nil
	}

	// 首行是表头，映射到语义字段；认不出的列忽略
	fields := make(map[int]string)
	for col, header := range rows[0] {
		if field, ok := headerFields[strings.ToLower(strings.TrimSpace(header))]; ok {
			fields[col] = field
		}
	}

	rawRows := make([]RawRow, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		// 行号从表头的下一行开始计，与表格里看到的一致
		raw := RawRow{Row: i + 2}
		empty := true
		for col, cell := range cells {
			if strings.TrimSpace(cell) != "" {
				empty = false
			}
			switch fields[col] {
			case "name":
				raw.Name = cell
			case "url":
				raw.URL = cell
			case "description":
				raw.Description = cell
			case "category":
				raw.CategoryName = cell
			case "subcategory":
				raw.SubcategoryName = cell
			case "tags":
				raw.Tags = TagList(SplitTags(cell))
			case "icon":
				raw.Icon = cell
			}
		}
		if empty {
			continue
		}
		rawRows = append(rawRows, raw)
	}

	return rawRows, nil
}

// BuildWorkbook 把当前快照导出为两个工作表：数据 + 静态使用说明。
// 不做任何校验，内存里是什么就导出什么。
func BuildWorkbook(data *models.AppData) ([]byte, error) {
	categoryNames := make(map[string]string, len(data.Categories))
	for _, c := range data.Categories {
		categoryNames[c.ID] = c.Name
	}
	subcategoryNames := make(map[string]string, len(data.Subcategories))
	for _, s := range data.Subcategories {
		subcategoryNames[s.ID] = s.Name
	}

	rows := make([][]interface{}, 0, len(data.Links))
	for _, link := range data.Links {
		subName := ""
		if link.SubcategoryID != nil {
			subName = subcategoryNames[*link.SubcategoryID]
		}
		icon := ""
		if link.Icon != nil {
			icon = *link.Icon
		}
		rows = append(rows, []interface{}{
			link.Name, link.URL, link.Description,
			categoryNames[link.CategoryID], subName,
			strings.Join(link.Tags, ","), icon,
		})
	}

	return writeWorkbook(rows)
}

// BuildTemplate 生成带示例数据的导入模板
func BuildTemplate() ([]byte, error) {
	rows := [][]interface{}{
		{"Figma", "https://figma.com", "最流行的协作设计工具", "设计", "UI/UX",
			"设计,UI,协作", "https://cdn-icons-png.flaticon.com/128/5968/5968705.png"},
		{"GitHub", "https://github.com", "源代码托管平台", "编程", "Web",
			"git,代码,协作", "https://cdn-icons-png.flaticon.com/128/733/733609.png"},
		{"Canva", "https://canva.com", "简单易用的设计工具", "设计", "平面",
			"设计,模板,易用", "https://cdn-icons-png.flaticon.com/128/5968/5968705.png"},
		{"YouTube", "https://youtube.com", "视频分享平台", "营销", "社交媒体",
			"视频,营销,学习", "https://cdn-icons-png.flaticon.com/128/1384/1384060.png"},
	}
	return writeWorkbook(rows)
}

func writeWorkbook(rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", linksSheet); err != nil {
		return nil, err
	}

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(linksSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(linksSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	widths := []float64{15, 30, 40, 15, 20, 30, 50}
	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(linksSheet, name, name, width); err != nil {
			return nil, err
		}
	}

	if err := writeInstructions(f); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeInstructions(f *excelize.File) error {
	lines := []string{
		"导入模板使用说明",
		"",
		"1. 在「链接」工作表中按列填写数据",
		"2. 名称：链接名称（必填）",
		"3. 链接：网址，可省略 https:// 前缀（必填）",
		"4. 描述：链接的简要描述（可选）",
		"5. 分类：主分类名称（必填）",
		"6. 子分类：子分类名称（可选）",
		"7. 标签：用逗号分隔的关键词（可选）",
		"8. 图标：图标图片地址（可选）",
		"",
		"注意事项：",
		"- 分类不存在时会自动创建",
		"- 子分类不存在时会自动创建",
		"- 重复的链接不会被导入",
		"- 重复的分类不会被重复创建",
	}

	if _, err := f.NewSheet(instructionsSheet); err != nil {
		return err
	}
	for i, line := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(instructionsSheet, cell, line); err != nil {
			return err
		}
	}
	return f.SetColWidth(instructionsSheet, "A", "A", 80)
}
