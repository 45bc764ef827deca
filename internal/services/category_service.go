package services

import (
	"links-backend/internal/models"
	"links-backend/internal/store"
)

type CategoryService struct {
	container *store.Container
}

func NewCategoryService(container *store.Container) *CategoryService {
	return &CategoryService{container: container}
}

// GetCategories 返回全部分类及其链接数量
func (s *CategoryService) GetCategories() []models.Category {
	snapshot := s.container.Snapshot()

	counts := make(map[string]int)
	for _, link := range snapshot.Links {
		counts[link.CategoryID]++
	}

	categories := make([]models.Category, 0, len(snapshot.Categories))
	for _, category := range snapshot.Categories {
		category.LinkCount = counts[category.ID]
		categories = append(categories, category)
	}
	return categories
}

func (s *CategoryService) CreateCategory(req *models.CategoryCreateRequest) (*models.Category, error) {
	return s.container.AddCategory(req.Name)
}

func (s *CategoryService) UpdateCategory(id string, req *models.CategoryCreateRequest) (*models.Category, error) {
	return s.container.UpdateCategory(id, req.Name)
}

// DeleteCategory 级联删除：子分类一并删除，链接退回未分类
func (s *CategoryService) DeleteCategory(id string) error {
	return s.container.DeleteCategory(id)
}

// GetSubcategories 返回某个分类下的子分类及其链接数量
func (s *CategoryService) GetSubcategories(categoryID string) []models.Subcategory {
	snapshot := s.container.Snapshot()

	counts := make(map[string]int)
	for _, link := range snapshot.Links {
		if link.SubcategoryID != nil {
			counts[*link.SubcategoryID]++
		}
	}

	subcategories := []models.Subcategory{}
	for _, sub := range snapshot.Subcategories {
		if sub.CategoryID != categoryID {
			continue
		}
		sub.LinkCount = counts[sub.ID]
		subcategories = append(subcategories, sub)
	}
	return subcategories
}

func (s *CategoryService) CreateSubcategory(categoryID string, req *models.SubcategoryCreateRequest) (*models.Subcategory, error) {
	return s.container.AddSubcategory(req.Name, categoryID)
}

func (s *CategoryService) UpdateSubcategory(id string, req *models.SubcategoryCreateRequest) (*models.Subcategory, error) {
	return s.container.UpdateSubcategory(id, req.Name)
}

func (s *CategoryService) DeleteSubcategory(id string) error {
	return s.container.DeleteSubcategory(id)
}
