package services

import (
	"fmt"
	"testing"

	"links-backend/internal/importer"
	"links-backend/internal/models"
	"links-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore 测试用的内存存储
type memStore struct {
	data *models.AppData
}

func (m *memStore) Load() (*models.AppData, error) {
	if m.data == nil {
		return &models.AppData{
			Links:         []models.Link{},
			Categories:    []models.Category{},
			Subcategories: []models.Subcategory{},
			Groups:        []models.Group{},
			ClickRecords:  []models.ClickRecord{},
		}, nil
	}
	return m.data, nil
}

func (m *memStore) Save(data *models.AppData) error {
	m.data = data
	return nil
}

func newTestContainer(t *testing.T) *store.Container {
	t.Helper()
	container, err := store.NewContainer(&memStore{})
	require.NoError(t, err)
	return container
}

func TestImportRowsEndToEnd(t *testing.T) {
	container := newTestContainer(t)
	category, err := container.AddCategory("设计")
	require.NoError(t, err)
	_, err = container.AddSubcategory("UI", category.ID)
	require.NoError(t, err)
	container.AddLink(models.Link{Name: "Figma", URL: "https://figma.com", CategoryID: category.ID})

	service := NewImportService(container, 10)
	summary := service.ImportRows([]importer.RawRow{
		{Name: "Sketch", URL: "sketch.com", CategoryName: "设计", SubcategoryName: "UI"},
		{Name: "GitHub", URL: "github.com", CategoryName: "编程", SubcategoryName: "后端"},
		{Name: "Figma 重复", URL: "figma.com", CategoryName: "设计"},
		{Name: "", URL: "x.com", CategoryName: "设计"},
	})

	assert.Equal(t, 2, summary.AddedLinks)
	assert.Equal(t, 1, summary.AddedCategories)
	assert.Equal(t, 1, summary.AddedSubcategories)
	assert.Equal(t, 1, summary.SkippedDuplicates)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "链接名称不能为空")
	assert.True(t, summary.Persisted)

	snapshot := container.Snapshot()
	assert.Len(t, snapshot.Links, 3)
	assert.Len(t, snapshot.Categories, 2)
	assert.Len(t, snapshot.Subcategories, 2)
}

func TestImportRowsIdempotent(t *testing.T) {
	container := newTestContainer(t)
	service := NewImportService(container, 10)
	rows := []importer.RawRow{
		{Name: "GitHub", URL: "https://github.com", CategoryName: "编程", SubcategoryName: "后端"},
	}

	first := service.ImportRows(rows)
	assert.Equal(t, 1, first.AddedLinks)

	second := service.ImportRows(rows)
	assert.Zero(t, second.AddedLinks)
	assert.Zero(t, second.AddedCategories)
	assert.Zero(t, second.AddedSubcategories)
	assert.Equal(t, 1, second.SkippedDuplicates)
}

func TestImportErrorSampling(t *testing.T) {
	container := newTestContainer(t)
	service := NewImportService(container, 2)

	rows := make([]importer.RawRow, 5)
	for i := range rows {
		rows[i] = importer.RawRow{URL: fmt.Sprintf("https://site%d.com", i), CategoryName: "设计"}
	}

	summary := service.ImportRows(rows)

	require.Len(t, summary.Errors, 3)
	assert.Equal(t, "……另有 3 条错误", summary.Errors[2])
}

func TestImportExcelRejectsUnreadableFile(t *testing.T) {
	container := newTestContainer(t)
	service := NewImportService(container, 10)

	summary, err := service.ImportExcel([]byte("not an xlsx"))

	assert.Error(t, err)
	assert.Nil(t, summary)
	assert.Empty(t, container.Snapshot().Links)
}

func TestImportExcelTemplateRoundTrip(t *testing.T) {
	container := newTestContainer(t)
	service := NewImportService(container, 10)

	template, err := service.ExportTemplate()
	require.NoError(t, err)

	summary, err := service.ImportExcel(template)
	require.NoError(t, err)
	assert.Equal(t, summary.AddedLinks, len(container.Snapshot().Links))
	assert.Positive(t, summary.AddedLinks)
	assert.Empty(t, summary.Errors)
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	container := newTestContainer(t)
	category, err := container.AddCategory("设计")
	require.NoError(t, err)
	link := container.AddLink(models.Link{Name: "Figma", URL: "https://figma.com", CategoryID: category.ID, Tags: []string{"ui"}})
	container.AddGroup("常用", []string{link.ID})

	service := NewImportService(container, 10)
	backup, err := service.ExportBackup()
	require.NoError(t, err)

	// 恢复到一个空容器里，内容应与原来一致
	other := newTestContainer(t)
	restored, persisted, err := NewImportService(other, 10).Restore(backup)
	require.NoError(t, err)
	assert.True(t, persisted)

	require.Len(t, restored.Links, 1)
	assert.Equal(t, link.ID, restored.Links[0].ID)
	assert.Equal(t, []string{"ui"}, restored.Links[0].Tags)

	snapshot := other.Snapshot()
	require.Len(t, snapshot.Categories, 1)
	assert.Equal(t, "设计", snapshot.Categories[0].Name)
	require.Len(t, snapshot.Groups, 1)
	assert.Equal(t, []string{link.ID}, snapshot.Groups[0].LinkIDs)
}

func TestRestoreRejectsInvalidBackup(t *testing.T) {
	container := newTestContainer(t)
	container.AddLink(models.Link{Name: "Figma", URL: "https://figma.com"})

	service := NewImportService(container, 10)
	_, _, err := service.Restore([]byte(`{"foo": 1}`))

	assert.Error(t, err)
	// 失败的恢复不应动现有数据
	assert.Len(t, container.Snapshot().Links, 1)
}
