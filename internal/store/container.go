package store

import (
	"fmt"
	"sync"
	"time"

	"links-backend/internal/models"

	"github.com/sirupsen/logrus"
)

// Container 持有内存中的完整数据快照，是唯一的写入者。
// 所有修改都在这里完成并随后落盘；落盘失败只记日志，不影响已生效的内存状态。
type Container struct {
	mu    sync.RWMutex
	data  *models.AppData
	store Store
}

func NewContainer(s Store) (*Container, error) {
	data, err := s.Load()
	if err != nil {
		return nil, err
	}
	return &Container{data: data, store: s}, nil
}

// Snapshot 返回当前数据的深拷贝，调用方可以随意读取
func (c *Container) Snapshot() models.AppData {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return *copyData(c.data)
}

// persist 尝试落盘，失败时只记日志并返回 false
func (c *Container) persist() bool {
	if err := c.store.Save(c.data); err != nil {
		logrus.WithError(err).Error("保存数据失败，内存状态仍然有效")
		return false
	}
	return true
}

func (c *Container) AddLink(link models.Link) models.Link {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	link.ID = NewID()
	link.Clicks = 0
	link.CreatedAt = now
	link.UpdatedAt = now
	if link.Tags == nil {
		link.Tags = []string{}
	}

	c.data.Links = append(c.data.Links, link)
	c.persist()
	return link
}

func (c *Container) UpdateLink(link models.Link) (*models.Link, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.data.Links {
		if c.data.Links[i].ID == link.ID {
			link.Clicks = c.data.Links[i].Clicks
			link.CreatedAt = c.data.Links[i].CreatedAt
			link.UpdatedAt = time.Now()
			if link.Tags == nil {
				link.Tags = []string{}
			}
			c.data.Links[i] = link
			c.persist()
			return &link, nil
		}
	}
	return nil, fmt.Errorf("链接不存在")
}

// DeleteLink 删除链接，并把它从所有分组的成员列表中移除
func (c *Container) DeleteLink(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i := range c.data.Links {
		if c.data.Links[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("链接不存在")
	}

	c.data.Links = append(c.data.Links[:idx], c.data.Links[idx+1:]...)

	for i := range c.data.Groups {
		kept := c.data.Groups[i].LinkIDs[:0]
		for _, lid := range c.data.Groups[i].LinkIDs {
			if lid != id {
				kept = append(kept, lid)
			}
		}
		c.data.Groups[i].LinkIDs = kept
	}

	c.persist()
	return nil
}

func (c *Container) AddCategory(name string) (*models.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.data.Categories {
		if c.data.Categories[i].Name == name {
			return nil, fmt.Errorf("分类名称已存在")
		}
	}

	category := models.Category{ID: NewID(), Name: name, CreatedAt: time.Now()}
	c.data.Categories = append(c.data.Categories, category)
	c.persist()
	return &category, nil
}

func (c *Container) UpdateCategory(id, name string) (*models.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.data.Categories {
		if c.data.Categories[i].ID != id && c.data.Categories[i].Name == name {
			return nil, fmt.Errorf("分类名称已存在")
		}
	}

	for i := range c.data.Categories {
		if c.data.Categories[i].ID == id {
			c.data.Categories[i].Name = name
			category := c.data.Categories[i]
			c.persist()
			return &category, nil
		}
	}
	return nil, fmt.Errorf("分类不存在")
}

// DeleteCategory 删除分类：其下的子分类一并删除，
// 归属它的链接退回「未分类」状态
func (c *Container) DeleteCategory(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i := range c.data.Categories {
		if c.data.Categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("分类不存在")
	}

	c.data.Categories = append(c.data.Categories[:idx], c.data.Categories[idx+1:]...)

	keptSubs := c.data.Subcategories[:0]
	for _, sub := range c.data.Subcategories {
		if sub.CategoryID != id {
			keptSubs = append(keptSubs, sub)
		}
	}
	c.data.Subcategories = keptSubs

	for i := range c.data.Links {
		if c.data.Links[i].CategoryID == id {
			c.data.Links[i].CategoryID = ""
			c.data.Links[i].SubcategoryID = nil
		}
	}

	c.persist()
	return nil
}

func (c *Container) AddSubcategory(name, categoryID string) (*models.Subcategory, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	found := false
	for i := range c.data.Categories {
		if c.data.Categories[i].ID == categoryID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("上级分类不存在")
	}

	// (categoryId, name) 唯一；同名子分类可以出现在不同分类下
	for i := range c.data.Subcategories {
		if c.data.Subcategories[i].CategoryID == categoryID && c.data.Subcategories[i].Name == name {
			return nil, fmt.Errorf("该分类下子分类名称已存在")
		}
	}

	sub := models.Subcategory{ID: NewID(), Name: name, CategoryID: categoryID, CreatedAt: time.Now()}
	c.data.Subcategories = append(c.data.Subcategories, sub)
	c.persist()
	return &sub, nil
}

func (c *Container) UpdateSubcategory(id, name string) (*models.Subcategory, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.data.Subcategories {
		if c.data.Subcategories[i].ID == id {
			for j := range c.data.Subcategories {
				if j != i && c.data.Subcategories[j].CategoryID == c.data.Subcategories[i].CategoryID &&
					c.data.Subcategories[j].Name == name {
					return nil, fmt.Errorf("该分类下子分类名称已存在")
				}
			}
			c.data.Subcategories[i].Name = name
			sub := c.data.Subcategories[i]
			c.persist()
			return &sub, nil
		}
	}
	return nil, fmt.Errorf("子分类不存在")
}

// DeleteSubcategory 删除子分类，归属它的链接清空子分类字段
func (c *Container) DeleteSubcategory(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i := range c.data.Subcategories {
		if c.data.Subcategories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("子分类不存在")
	}

	c.data.Subcategories = append(c.data.Subcategories[:idx], c.data.Subcategories[idx+1:]...)

	for i := range c.data.Links {
		if c.data.Links[i].SubcategoryID != nil && *c.data.Links[i].SubcategoryID == id {
			c.data.Links[i].SubcategoryID = nil
		}
	}

	c.persist()
	return nil
}

func (c *Container) AddGroup(name string, linkIDs []string) *models.Group {
	c.mu.Lock()
	defer c.mu.Unlock()

	if linkIDs == nil {
		linkIDs = []string{}
	}
	group := models.Group{ID: NewID(), Name: name, LinkIDs: linkIDs, CreatedAt: time.Now()}
	c.data.Groups = append(c.data.Groups, group)
	c.persist()
	return &group
}

func (c *Container) UpdateGroup(id, name string, linkIDs []string) (*models.Group, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.data.Groups {
		if c.data.Groups[i].ID == id {
			c.data.Groups[i].Name = name
			if linkIDs == nil {
				linkIDs = []string{}
			}
			c.data.Groups[i].LinkIDs = linkIDs
			group := c.data.Groups[i]
			c.persist()
			return &group, nil
		}
	}
	return nil, fmt.Errorf("分组不存在")
}

func (c *Container) DeleteGroup(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i := range c.data.Groups {
		if c.data.Groups[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("分组不存在")
	}

	c.data.Groups = append(c.data.Groups[:idx], c.data.Groups[idx+1:]...)
	c.persist()
	return nil
}

func (c *Container) ToggleGroupVisibility(id string) (*models.Group, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.data.Groups {
		if c.data.Groups[i].ID == id {
			c.data.Groups[i].Hidden = !c.data.Groups[i].Hidden
			group := c.data.Groups[i]
			c.persist()
			return &group, nil
		}
	}
	return nil, fmt.Errorf("分组不存在")
}

// RecordClick 追加一条点击记录并递增计数。
// 链接不存在时静默返回，不追加记录也不报错。
func (c *Container) RecordClick(linkID string) *models.ClickRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.data.Links {
		if c.data.Links[i].ID == linkID {
			c.data.Links[i].Clicks++
			record := models.ClickRecord{ID: NewID(), LinkID: linkID, ClickedAt: time.Now()}
			c.data.ClickRecords = append(c.data.ClickRecords, record)
			c.persist()
			return &record
		}
	}
	return nil
}

// ApplyImport 把对账结果按 分类 → 子分类 → 链接 的顺序追加进快照。
// 只追加，绝不修改已有实体。返回值表示落盘是否成功。
func (c *Container) ApplyImport(categories []models.Category, subcategories []models.Subcategory, links []models.Link) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data.Categories = append(c.data.Categories, categories...)
	c.data.Subcategories = append(c.data.Subcategories, subcategories...)
	c.data.Links = append(c.data.Links, links...)

	return c.persist()
}

// Replace 整体替换快照（JSON 备份恢复路径）
func (c *Container) Replace(data *models.AppData) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = copyData(data)
	return c.persist()
}

func copyData(src *models.AppData) *models.AppData {
	dst := &models.AppData{
		Links:         make([]models.Link, len(src.Links)),
		Categories:    make([]models.Category, len(src.Categories)),
		Subcategories: make([]models.Subcategory, len(src.Subcategories)),
		Groups:        make([]models.Group, len(src.Groups)),
		ClickRecords:  make([]models.ClickRecord, len(src.ClickRecords)),
	}

	copy(dst.Categories, src.Categories)
	copy(dst.Subcategories, src.Subcategories)
	copy(dst.ClickRecords, src.ClickRecords)

	for i, link := range src.Links {
		if link.Tags != nil {
			link.Tags = append([]string{}, link.Tags...)
		}
		if link.SubcategoryID != nil {
			v := *link.SubcategoryID
			link.SubcategoryID = &v
		}
		if link.Icon != nil {
			v := *link.Icon
			link.Icon = &v
		}
		dst.Links[i] = link
	}

	for i, group := range src.Groups {
		if group.LinkIDs != nil {
			group.LinkIDs = append([]string{}, group.LinkIDs...)
		}
		dst.Groups[i] = group
	}

	return dst
}
