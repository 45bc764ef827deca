// internal/importer/reconcile.go - 导入对账引擎
package importer

import (
	"time"

	"links-backend/internal/models"
	"links-backend/internal/store"
)

// Snapshot 是对账所需的当前状态视图，引擎只读不写
type Snapshot struct {
	Categories    []models.Category
	Subcategories []models.Subcategory
	Links         []models.Link
}

// Result 是对账产生的增量：待追加的新实体加上逐行错误。
// 重复链接不算错误，只计数。
type Result struct {
	NewCategories    []models.Category
	NewSubcategories []models.Subcategory
	NewLinks         []models.Link
	Errors           []RowError
	Duplicates       int
}

// Reconcile 把一批外部记录与当前状态对账，产出需要新建的
// 分类、子分类和链接。纯函数：不修改 existing，不触碰存储。
//
// 记录按输入顺序处理，批内同名分类/子分类由首次出现者创建，
// 后续行复用其 ID。分类名比较区分大小写；子分类以
// (所属分类, 名称) 为键，不跨分类复用。
func Reconcile(existing Snapshot, rows []RawRow) *Result {
	result := &Result{
		NewCategories:    []models.Category{},
		NewSubcategories: []models.Subcategory{},
		NewLinks:         []models.Link{},
		Errors:           []RowError{},
	}

	// 已有状态的查找表：分类名 → ID、(分类ID, 子分类名) → ID、已有链接地址
	categoryIDs := make(map[string]string, len(existing.Categories))
	for _, c := range existing.Categories {
		categoryIDs[c.Name] = c.ID
	}

	subcategoryIDs := make(map[subKey]string, len(existing.Subcategories))
	for _, s := range existing.Subcategories {
		subcategoryIDs[subKey{s.CategoryID, s.Name}] = s.ID
	}

	seenURLs := make(map[string]bool, len(existing.Links))
	for _, l := range existing.Links {
		seenURLs[l.URL] = true
	}

	now := time.Now()

	for _, raw := range rows {
		row, rowErr := ParseRow(raw)
		if rowErr != nil {
			result.Errors = append(result.Errors, *rowErr)
			continue
		}

		// 解析分类：已有或本批已建则复用，否则新建并登记，
		// 让后续行能拿到同一个 ID
		categoryID, ok := categoryIDs[row.CategoryName]
		if !ok {
			category := models.Category{ID: store.NewID(), Name: row.CategoryName, CreatedAt: now}
			result.NewCategories = append(result.NewCategories, category)
			categoryIDs[row.CategoryName] = category.ID
			categoryID = category.ID
		}

		// 解析子分类，以 (分类ID, 名称) 为键
		var subcategoryID *string
		if row.SubcategoryName != "" {
			key := subKey{categoryID, row.SubcategoryName}
			id, ok := subcategoryIDs[key]
			if !ok {
				sub := models.Subcategory{
					ID:         store.NewID(),
					Name:       row.SubcategoryName,
					CategoryID: categoryID,
					CreatedAt:  now,
				}
				result.NewSubcategories = append(result.NewSubcategories, sub)
				subcategoryIDs[key] = sub.ID
				id = sub.ID
			}
			subcategoryID = &id
		}

		// 重复链接（对已有数据或本批靠前的行）静默跳过
		if seenURLs[row.URL] {
			result.Duplicates++
			continue
		}
		seenURLs[row.URL] = true

		link := models.Link{
			ID:            store.NewID(),
			Name:          row.Name,
			URL:           row.URL,
			Description:   row.Description,
			CategoryID:    categoryID,
			SubcategoryID: subcategoryID,
			Tags:          row.Tags,
			Clicks:        0,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if row.Icon != "" {
			icon := row.Icon
			link.Icon = &icon
		}
		result.NewLinks = append(result.NewLinks, link)
	}

	return result
}

type subKey struct {
	categoryID string
	name       string
}
