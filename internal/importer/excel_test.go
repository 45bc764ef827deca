package importer

import (
	"testing"
	"time"

	"links-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRoundTrip(t *testing.T) {
	data, err := BuildTemplate()
	require.NoError(t, err)

	rows, err := ReadWorkbook(data)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "Figma", rows[0].Name)
	assert.Equal(t, "https://figma.com", rows[0].URL)
	assert.Equal(t, "设计", rows[0].CategoryName)
	assert.Equal(t, "UI/UX", rows[0].SubcategoryName)
	assert.Equal(t, TagList{"设计", "UI", "协作"}, rows[0].Tags)

	// 行号从表头下一行开始
	assert.Equal(t, 2, rows[0].Row)
	assert.Equal(t, 5, rows[3].Row)
}

func TestBuildWorkbookExportsLinks(t *testing.T) {
	now := time.Now()
	sub := "s1"
	icon := "https://example.com/icon.png"
	appData := &models.AppData{
		Categories:    []models.Category{{ID: "c1", Name: "设计", CreatedAt: now}},
		Subcategories: []models.Subcategory{{ID: "s1", Name: "UI", CategoryID: "c1", CreatedAt: now}},
		Links: []models.Link{
			{
				ID: "l1", Name: "Figma", URL: "https://figma.com", Description: "设计工具",
				CategoryID: "c1", SubcategoryID: &sub, Tags: []string{"ui", "design"},
				Icon: &icon, CreatedAt: now, UpdatedAt: now,
			},
			{
				ID: "l2", Name: "Plain", URL: "https://plain.dev",
				CategoryID: "", Tags: []string{}, CreatedAt: now, UpdatedAt: now,
			},
		},
	}

	data, err := BuildWorkbook(appData)
	require.NoError(t, err)

	rows, err := ReadWorkbook(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Figma", rows[0].Name)
	assert.Equal(t, "https://figma.com", rows[0].URL)
	assert.Equal(t, "设计", rows[0].CategoryName)
	assert.Equal(t, "UI", rows[0].SubcategoryName)
	assert.Equal(t, TagList{"ui", "design"}, rows[0].Tags)
	assert.Equal(t, icon, rows[0].Icon)

	assert.Equal(t, "Plain", rows[1].Name)
	assert.Equal(t, "", rows[1].CategoryName)
	assert.Equal(t, "", rows[1].SubcategoryName)
}

func TestReadWorkbookRejectsGarbage(t *testing.T) {
	_, err := ReadWorkbook([]byte("这不是一个 xlsx 文件"))
	assert.Error(t, err)
}

func TestReadWorkbookSkipsEmptyRowsAndUnknownHeaders(t *testing.T) {
	data, err := BuildTemplate()
	require.NoError(t, err)

	rows, err := ReadWorkbook(data)
	require.NoError(t, err)
	for _, row := range rows {
		assert.NotEmpty(t, row.Name)
	}
}

func TestHeaderAliases(t *testing.T) {
	// 英文表头同样能映射到语义字段
	assert.Equal(t, "name", headerFields["name"])
	assert.Equal(t, "url", headerFields["url"])
	assert.Equal(t, "category", headerFields["category"])
	assert.Equal(t, "name", headerFields["链接名称"])
	assert.Equal(t, "url", headerFields["链接地址"])
}
