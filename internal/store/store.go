package store

import (
	"time"

	"links-backend/internal/models"

	"github.com/google/uuid"
)

// StorageKey 对应前端时代的 localStorage 键名，Postgres 后端沿用它作为行键
const StorageKey = "linksManagerData"

// Store 是快照持久化后端：整存整取，不做增量
type Store interface {
	Load() (*models.AppData, error)
	Save(data *models.AppData) error
}

func NewID() string {
	return uuid.NewString()
}

// DefaultSeed 首次启动时的示例数据
func DefaultSeed() *models.AppData {
	now := time.Now()

	categories := []models.Category{
		{ID: "1", Name: "设计", CreatedAt: now},
		{ID: "2", Name: "编程", CreatedAt: now},
		{ID: "3", Name: "营销", CreatedAt: now},
	}

	subcategories := []models.Subcategory{
		{ID: "1", Name: "UI/UX", CategoryID: "1", CreatedAt: now},
		{ID: "2", Name: "平面", CategoryID: "1", CreatedAt: now},
		{ID: "3", Name: "Web", CategoryID: "2", CreatedAt: now},
		{ID: "4", Name: "移动端", CategoryID: "2", CreatedAt: now},
		{ID: "5", Name: "社交媒体", CategoryID: "3", CreatedAt: now},
		{ID: "6", Name: "SEO", CategoryID: "3", CreatedAt: now},
	}

	sub1, sub2, sub3 := "1", "2", "3"
	links := []models.Link{
		{
			ID: "1", Name: "Figma", URL: "https://figma.com",
			Description: "最流行的协作设计工具", CategoryID: "1", SubcategoryID: &sub1,
			Tags: []string{"设计", "UI", "协作"}, Clicks: 25, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "2", Name: "GitHub", URL: "https://github.com",
			Description: "源代码托管平台", CategoryID: "2", SubcategoryID: &sub3,
			Tags: []string{"git", "代码", "协作"}, Clicks: 18, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "3", Name: "Canva", URL: "https://canva.com",
			Description: "简单易用的设计工具", CategoryID: "1", SubcategoryID: &sub2,
			Tags: []string{"设计", "模板", "易用"}, Clicks: 32, CreatedAt: now, UpdatedAt: now,
		},
	}

	groups := []models.Group{
		{ID: "1", Name: "设计工具", LinkIDs: []string{"1", "3"}, CreatedAt: now},
		{ID: "2", Name: "编程基础", LinkIDs: []string{"2"}, CreatedAt: now},
	}

	return &models.AppData{
		Links:         links,
		Categories:    categories,
		Subcategories: subcategories,
		Groups:        groups,
		ClickRecords:  []models.ClickRecord{},
	}
}
