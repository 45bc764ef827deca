package services

import (
	"links-backend/internal/models"
	"links-backend/internal/store"
)

type GroupService struct {
	container *store.Container
}

func NewGroupService(container *store.Container) *GroupService {
	return &GroupService{container: container}
}

// GetGroups 返回全部分组。成员里指向已删除链接的 ID
// 在这里被过滤掉，存储中保留原样
func (s *GroupService) GetGroups() []models.Group {
	snapshot := s.container.Snapshot()

	linksByID := make(map[string]models.Link, len(snapshot.Links))
	for _, link := range snapshot.Links {
		linksByID[link.ID] = link
	}

	groups := make([]models.Group, 0, len(snapshot.Groups))
	for _, group := range snapshot.Groups {
		links := []models.Link{}
		ids := []string{}
		for _, id := range group.LinkIDs {
			if link, ok := linksByID[id]; ok {
				links = append(links, link)
				ids = append(ids, id)
			}
		}
		group.LinkIDs = ids
		group.Links = links
		groups = append(groups, group)
	}
	return groups
}

func (s *GroupService) CreateGroup(req *models.GroupCreateRequest) *models.Group {
	return s.container.AddGroup(req.Name, req.LinkIDs)
}

func (s *GroupService) UpdateGroup(id string, req *models.GroupUpdateRequest) (*models.Group, error) {
	return s.container.UpdateGroup(id, req.Name, req.LinkIDs)
}

func (s *GroupService) DeleteGroup(id string) error {
	return s.container.DeleteGroup(id)
}

func (s *GroupService) ToggleVisibility(id string) (*models.Group, error) {
	return s.container.ToggleGroupVisibility(id)
}
