package store

import (
	"fmt"
	"testing"
	"time"

	"links-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore 只存内存，可按需模拟保存失败
type memStore struct {
	data     *models.AppData
	saves    int
	failSave bool
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
	if m.failSave {
		return fmt.Errorf("save failed")
	}
	m.saves++
	m.data = data
	return nil
}

func newTestContainer(t *testing.T) (*Container, *memStore) {
	t.Helper()
	ms := &memStore{}
	container, err := NewContainer(ms)
	require.NoError(t, err)
	return container, ms
}

func TestAddLinkAssignsIdentity(t *testing.T) {
	container, ms := newTestContainer(t)

	link := container.AddLink(models.Link{Name: "Figma", URL: "https://figma.com"})

	assert.NotEmpty(t, link.ID)
	assert.Zero(t, link.Clicks)
	assert.False(t, link.CreatedAt.IsZero())
	assert.NotNil(t, link.Tags)
	assert.Equal(t, 1, ms.saves)

	snapshot := container.Snapshot()
	require.Len(t, snapshot.Links, 1)
	assert.Equal(t, link.ID, snapshot.Links[0].ID)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	container, _ := newTestContainer(t)
	container.AddLink(models.Link{Name: "Figma", URL: "https://figma.com", Tags: []string{"ui"}})

	snapshot := container.Snapshot()
	snapshot.Links[0].Tags[0] = "changed"
	snapshot.Links[0].Name = "changed"

	fresh := container.Snapshot()
	assert.Equal(t, "Figma", fresh.Links[0].Name)
	assert.Equal(t, []string{"ui"}, fresh.Links[0].Tags)
}

func TestDeleteLinkRemovesFromGroups(t *testing.T) {
	container, _ := newTestContainer(t)
	link := container.AddLink(models.Link{Name: "Figma", URL: "https://figma.com"})
	other := container.AddLink(models.Link{Name: "Canva", URL: "https://canva.com"})
	container.AddGroup("设计工具", []string{link.ID, other.ID})

	require.NoError(t, container.DeleteLink(link.ID))

	snapshot := container.Snapshot()
	require.Len(t, snapshot.Groups, 1)
	assert.Equal(t, []string{other.ID}, snapshot.Groups[0].LinkIDs)
}

func TestDeleteCategoryCascades(t *testing.T) {
	container, _ := newTestContainer(t)
	category, err := container.AddCategory("设计")
	require.NoError(t, err)
	sub, err := container.AddSubcategory("UI", category.ID)
	require.NoError(t, err)
	container.AddLink(models.Link{Name: "Figma", URL: "https://figma.com", CategoryID: category.ID, SubcategoryID: &sub.ID})

	require.NoError(t, container.DeleteCategory(category.ID))

	snapshot := container.Snapshot()
	assert.Empty(t, snapshot.Categories)
	assert.Empty(t, snapshot.Subcategories)
	require.Len(t, snapshot.Links, 1)
	assert.Equal(t, "", snapshot.Links[0].CategoryID)
	assert.Nil(t, snapshot.Links[0].SubcategoryID)
}

func TestDeleteSubcategoryClearsLinkField(t *testing.T) {
	container, _ := newTestContainer(t)
	category, err := container.AddCategory("设计")
	require.NoError(t, err)
	sub, err := container.AddSubcategory("UI", category.ID)
	require.NoError(t, err)
	container.AddLink(models.Link{Name: "Figma", URL: "https://figma.com", CategoryID: category.ID, SubcategoryID: &sub.ID})

	require.NoError(t, container.DeleteSubcategory(sub.ID))

	snapshot := container.Snapshot()
	require.Len(t, snapshot.Links, 1)
	assert.Equal(t, category.ID, snapshot.Links[0].CategoryID)
	assert.Nil(t, snapshot.Links[0].SubcategoryID)
}

func TestDuplicateNamesRejected(t *testing.T) {
	container, _ := newTestContainer(t)
	category, err := container.AddCategory("设计")
	require.NoError(t, err)

	_, err = container.AddCategory("设计")
	assert.Error(t, err)

	_, err = container.AddSubcategory("UI", category.ID)
	require.NoError(t, err)
	_, err = container.AddSubcategory("UI", category.ID)
	assert.Error(t, err)

	// 同名子分类可以挂在不同分类下
	other, err := container.AddCategory("文档")
	require.NoError(t, err)
	_, err = container.AddSubcategory("UI", other.ID)
	assert.NoError(t, err)
}

func TestRecordClick(t *testing.T) {
	container, _ := newTestContainer(t)
	link := container.AddLink(models.Link{Name: "Figma", URL: "https://figma.com"})

	record := container.RecordClick(link.ID)
	require.NotNil(t, record)
	assert.Equal(t, link.ID, record.LinkID)

	snapshot := container.Snapshot()
	assert.Equal(t, 1, snapshot.Links[0].Clicks)
	require.Len(t, snapshot.ClickRecords, 1)
}

func TestRecordClickUnknownLinkIsNoop(t *testing.T) {
	container, _ := newTestContainer(t)

	record := container.RecordClick("missing")

	assert.Nil(t, record)
	snapshot := container.Snapshot()
	assert.Empty(t, snapshot.ClickRecords)
}

func TestApplyImportAppendsOnly(t *testing.T) {
	container, _ := newTestContainer(t)
	existing, err := container.AddCategory("已有")
	require.NoError(t, err)

	now := time.Now()
	persisted := container.ApplyImport(
		[]models.Category{{ID: "c2", Name: "新分类", CreatedAt: now}},
		[]models.Subcategory{{ID: "s1", Name: "UI", CategoryID: "c2", CreatedAt: now}},
		[]models.Link{{ID: "l1", Name: "Figma", URL: "https://figma.com", CategoryID: "c2", CreatedAt: now, UpdatedAt: now}},
	)

	assert.True(t, persisted)
	snapshot := container.Snapshot()
	require.Len(t, snapshot.Categories, 2)
	assert.Equal(t, existing.ID, snapshot.Categories[0].ID)
	assert.Equal(t, "c2", snapshot.Categories[1].ID)
	assert.Len(t, snapshot.Subcategories, 1)
	assert.Len(t, snapshot.Links, 1)
}

func TestApplyImportReportsPersistenceFailure(t *testing.T) {
	container, ms := newTestContainer(t)
	ms.failSave = true

	persisted := container.ApplyImport(nil, nil, []models.Link{{ID: "l1", Name: "Figma", URL: "https://figma.com"}})

	// 落盘失败不影响内存状态
	assert.False(t, persisted)
	assert.Len(t, container.Snapshot().Links, 1)
}

func TestReplaceSwapsSnapshot(t *testing.T) {
	container, _ := newTestContainer(t)
	container.AddLink(models.Link{Name: "Old", URL: "https://old.dev"})

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	replacement := &models.AppData{
		Links:         []models.Link{{ID: "l9", Name: "New", URL: "https://new.dev", Tags: []string{}, CreatedAt: now, UpdatedAt: now}},
		Categories:    []models.Category{},
		Subcategories: []models.Subcategory{},
		Groups:        []models.Group{},
		ClickRecords:  []models.ClickRecord{},
	}

	assert.True(t, container.Replace(replacement))

	snapshot := container.Snapshot()
	require.Len(t, snapshot.Links, 1)
	assert.Equal(t, "l9", snapshot.Links[0].ID)
}
