package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"links-backend/internal/importer"
	"links-backend/internal/models"
	"links-backend/internal/store"
)

type LinkService struct {
	container *store.Container
}

func NewLinkService(container *store.Container) *LinkService {
	return &LinkService{container: container}
}

func (s *LinkService) GetLinks(req *models.LinkListRequest) ([]models.Link, *models.Pagination, error) {
	snapshot := s.container.Snapshot()

	links := make([]models.Link, 0, len(snapshot.Links))
	for _, link := range snapshot.Links {
		if req.CategoryID != "" && link.CategoryID != req.CategoryID {
			continue
		}
		if req.SubcategoryID != "" {
			if link.SubcategoryID == nil || *link.SubcategoryID != req.SubcategoryID {
				continue
			}
		}
		if req.Tag != "" && !hasTag(link.Tags, req.Tag) {
			continue
		}
		if req.Search != "" && !matchesSearch(link, req.Search) {
			continue
		}
		links = append(links, link)
	}

	sortLinks(links, req.Sort, req.Order)

	total := len(links)
	pages := int(math.Ceil(float64(total) / float64(req.Limit)))

	offset := (req.Page - 1) * req.Limit
	if offset > total {
		offset = total
	}
	end := offset + req.Limit
	if end > total {
		end = total
	}
	links = links[offset:end]

	pagination := &models.Pagination{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
		Pages: pages,
	}

	return links, pagination, nil
}

func (s *LinkService) GetLinkByID(id string) (*models.Link, error) {
	snapshot := s.container.Snapshot()
	for _, link := range snapshot.Links {
		if link.ID == id {
			return &link, nil
		}
	}
	return nil, fmt.Errorf("链接不存在")
}

func (s *LinkService) CreateLink(req *models.LinkCreateRequest) (*models.Link, error) {
	link := models.Link{
		Name:          strings.TrimSpace(req.Name),
		URL:           importer.NormalizeURL(req.URL),
		Description:   strings.TrimSpace(req.Description),
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Tags:          importer.NormalizeTags(req.Tags),
		Icon:          req.Icon,
	}

	if err := s.checkParents(link.CategoryID, link.SubcategoryID); err != nil {
		return nil, err
	}

	created := s.container.AddLink(link)
	return &created, nil
}

func (s *LinkService) UpdateLink(id string, req *models.LinkUpdateRequest) (*models.Link, error) {
	if err := s.checkParents(req.CategoryID, req.SubcategoryID); err != nil {
		return nil, err
	}

	link := models.Link{
		ID:            id,
		Name:          strings.TrimSpace(req.Name),
		URL:           importer.NormalizeURL(req.URL),
		Description:   strings.TrimSpace(req.Description),
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Tags:          importer.NormalizeTags(req.Tags),
		Icon:          req.Icon,
	}
	return s.container.UpdateLink(link)
}

func (s *LinkService) DeleteLink(id string) error {
	return s.container.DeleteLink(id)
}

// RecordClick 记录一次点击。链接不存在时静默忽略
func (s *LinkService) RecordClick(linkID string) *models.ClickRecord {
	return s.container.RecordClick(linkID)
}

// checkParents 校验外键：分类可以为空（未分类），
// 子分类必须归属所选分类
func (s *LinkService) checkParents(categoryID string, subcategoryID *string) error {
	snapshot := s.container.Snapshot()

	if categoryID != "" {
		found := false
		for _, c := range snapshot.Categories {
			if c.ID == categoryID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("分类不存在")
		}
	}

	if subcategoryID != nil && *subcategoryID != "" {
		for _, sub := range snapshot.Subcategories {
			if sub.ID == *subcategoryID {
				if sub.CategoryID != categoryID {
					return fmt.Errorf("子分类不属于所选分类")
				}
				return nil
			}
		}
		return fmt.Errorf("子分类不存在")
	}

	return nil
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}

func matchesSearch(link models.Link, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(link.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(link.Description), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(link.URL), needle)
}

func sortLinks(links []models.Link, field, order string) {
	asc := order == "asc"
	sort.SliceStable(links, func(i, j int) bool {
		var less bool
		switch field {
		case "name":
			less = links[i].Name < links[j].Name
		case "clicks":
			less = links[i].Clicks < links[j].Clicks
		case "updated_at":
			less = links[i].UpdatedAt.Before(links[j].UpdatedAt)
		default:
			less = links[i].CreatedAt.Before(links[j].CreatedAt)
		}
		if asc {
			return less
		}
		return !less
	})
}
