package services

import (
	"testing"

	"links-backend/internal/models"
	"links-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLinkService(t *testing.T) (*LinkService, *store.Container, *models.Category, *models.Subcategory) {
	t.Helper()
	container := newTestContainer(t)
	category, err := container.AddCategory("设计")
	require.NoError(t, err)
	sub, err := container.AddSubcategory("UI", category.ID)
	require.NoError(t, err)
	return NewLinkService(container), container, category, sub
}

func TestCreateLinkNormalizesInput(t *testing.T) {
	service, _, category, sub := seedLinkService(t)

	link, err := service.CreateLink(&models.LinkCreateRequest{
		Name:          "  Figma  ",
		URL:           "figma.com",
		CategoryID:    category.ID,
		SubcategoryID: &sub.ID,
		Tags:          []string{" ui ", "ui", "", "设计"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Figma", link.Name)
	assert.Equal(t, "https://figma.com", link.URL)
	assert.Equal(t, []string{"ui", "设计"}, link.Tags)
	assert.NotEmpty(t, link.ID)
}

func TestCreateLinkValidatesParents(t *testing.T) {
	service, container, category, sub := seedLinkService(t)
	other, err := container.AddCategory("编程")
	require.NoError(t, err)

	_, err = service.CreateLink(&models.LinkCreateRequest{Name: "X", URL: "https://x.com", CategoryID: "missing"})
	assert.EqualError(t, err, "分类不存在")

	// 子分类必须属于所选分类
	_, err = service.CreateLink(&models.LinkCreateRequest{Name: "X", URL: "https://x.com", CategoryID: other.ID, SubcategoryID: &sub.ID})
	assert.EqualError(t, err, "子分类不属于所选分类")

	missing := "missing"
	_, err = service.CreateLink(&models.LinkCreateRequest{Name: "X", URL: "https://x.com", CategoryID: category.ID, SubcategoryID: &missing})
	assert.EqualError(t, err, "子分类不存在")

	// 未分类链接合法
	_, err = service.CreateLink(&models.LinkCreateRequest{Name: "X", URL: "https://x.com"})
	assert.NoError(t, err)
}

func TestUpdateLinkPreservesClicks(t *testing.T) {
	service, container, category, _ := seedLinkService(t)
	created, err := service.CreateLink(&models.LinkCreateRequest{Name: "Figma", URL: "https://figma.com", CategoryID: category.ID})
	require.NoError(t, err)
	container.RecordClick(created.ID)

	updated, err := service.UpdateLink(created.ID, &models.LinkUpdateRequest{
		Name:       "Figma 设计",
		URL:        "https://figma.com",
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "Figma 设计", updated.Name)
	assert.Equal(t, 1, updated.Clicks)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestGetLinksFiltersAndPaginates(t *testing.T) {
	service, container, category, sub := seedLinkService(t)
	other, err := container.AddCategory("编程")
	require.NoError(t, err)

	names := []string{"Figma", "Sketch", "Canva"}
	for _, name := range names {
		_, err := service.CreateLink(&models.LinkCreateRequest{
			Name: name, URL: "https://" + name + ".com", CategoryID: category.ID, SubcategoryID: &sub.ID, Tags: []string{"设计"},
		})
		require.NoError(t, err)
	}
	_, err = service.CreateLink(&models.LinkCreateRequest{Name: "GitHub", URL: "https://github.com", CategoryID: other.ID, Tags: []string{"编程"}})
	require.NoError(t, err)

	links, pagination, err := service.GetLinks(&models.LinkListRequest{Page: 1, Limit: 2, CategoryID: category.ID, Sort: "name", Order: "asc"})
	require.NoError(t, err)
	assert.Equal(t, 3, pagination.Total)
	assert.Equal(t, 2, pagination.Pages)
	require.Len(t, links, 2)
	assert.Equal(t, "Canva", links[0].Name)
	assert.Equal(t, "Figma", links[1].Name)

	links, pagination, err = service.GetLinks(&models.LinkListRequest{Page: 2, Limit: 2, CategoryID: category.ID, Sort: "name", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "Sketch", links[0].Name)
	assert.Equal(t, 2, pagination.Page)

	// 标签过滤
	links, _, err = service.GetLinks(&models.LinkListRequest{Page: 1, Limit: 20, Tag: "编程"})
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "GitHub", links[0].Name)

	// 搜索对名称、描述、地址做不区分大小写的包含匹配
	links, _, err = service.GetLinks(&models.LinkListRequest{Page: 1, Limit: 20, Search: "github"})
	require.NoError(t, err)
	require.Len(t, links, 1)

	// 越界页码返回空列表而不是错误
	links, _, err = service.GetLinks(&models.LinkListRequest{Page: 9, Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestGetLinksSortByClicks(t *testing.T) {
	service, container, _, _ := seedLinkService(t)
	a, err := service.CreateLink(&models.LinkCreateRequest{Name: "A", URL: "https://a.com"})
	require.NoError(t, err)
	_, err = service.CreateLink(&models.LinkCreateRequest{Name: "B", URL: "https://b.com"})
	require.NoError(t, err)
	container.RecordClick(a.ID)
	container.RecordClick(a.ID)

	links, _, err := service.GetLinks(&models.LinkListRequest{Page: 1, Limit: 20, Sort: "clicks", Order: "desc"})
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "A", links[0].Name)
	assert.Equal(t, 2, links[0].Clicks)
}

func TestRecordClickThroughService(t *testing.T) {
	service, container, _, _ := seedLinkService(t)
	link, err := service.CreateLink(&models.LinkCreateRequest{Name: "A", URL: "https://a.com"})
	require.NoError(t, err)

	record := service.RecordClick(link.ID)
	require.NotNil(t, record)

	// 未知链接静默忽略
	assert.Nil(t, service.RecordClick("missing"))
	assert.Len(t, container.Snapshot().ClickRecords, 1)
}
