// internal/importer/backup.go - JSON 备份的导出与解析
package importer

import (
	"encoding/json"
	"fmt"

	"links-backend/internal/models"
)

// ExportBackup 把快照序列化为 JSON 备份文件内容
func ExportBackup(data *models.AppData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// ParseBackup 解析 JSON 备份。恢复是整体替换，不走对账，
// 所以这里只做格式检查，不做逐条校验。
func ParseBackup(raw []byte) (*models.AppData, error) {
	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("无法解析备份文件: %w", err)
	}

	if data.Links == nil && data.Categories == nil && data.Subcategories == nil &&
		data.Groups == nil && data.ClickRecords == nil {
		return nil, fmt.Errorf("备份文件格式不正确")
	}

	if data.Links == nil {
		data.Links = []models.Link{}
	}
	if data.Categories == nil {
		data.Categories = []models.Category{}
	}
	if data.Subcategories == nil {
		data.Subcategories = []models.Subcategory{}
	}
	if data.Groups == nil {
		data.Groups = []models.Group{}
	}
	if data.ClickRecords == nil {
		data.ClickRecords = []models.ClickRecord{}
	}

	return &data, nil
}
