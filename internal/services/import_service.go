package services

import (
	"fmt"

	"links-backend/internal/importer"
	"links-backend/internal/models"
	"links-backend/internal/store"
)

type ImportService struct {
	container       *store.Container
	maxSampleErrors int
}

func NewImportService(container *store.Container, maxSampleErrors int) *ImportService {
	return &ImportService{container: container, maxSampleErrors: maxSampleErrors}
}

// ImportSummary 是一次批量导入的汇总结果。
// Errors 只保留前若干条，超出部分折叠成一条计数。
type ImportSummary struct {
	AddedLinks         int      `json:"added_links"`
	AddedCategories    int      `json:"added_categories"`
	AddedSubcategories int      `json:"added_subcategories"`
	SkippedDuplicates  int      `json:"skipped_duplicates"`
	Errors             []string `json:"errors"`
	Persisted          bool     `json:"persisted"`
}

// ImportExcel 解析上传的 xlsx 并把数据对账进当前状态。
// 文件本身无法解析时整个导入失败，不提交任何数据。
func (s *ImportService) ImportExcel(fileBytes []byte) (*ImportSummary, error) {
	rows, err := importer.ReadWorkbook(fileBytes)
	if err != nil {
		return nil, err
	}
	return s.importRows(rows), nil
}

// ImportRows 导入 JSON 形式的行数组，与 Excel 导入走同一条对账路径
func (s *ImportService) ImportRows(rows []importer.RawRow) *ImportSummary {
	for i := range rows {
		if rows[i].Row == 0 {
			rows[i].Row = i + 1
		}
	}
	return s.importRows(rows)
}

func (s *ImportService) importRows(rows []importer.RawRow) *ImportSummary {
	snapshot := s.container.Snapshot()
	result := importer.Reconcile(importer.Snapshot{
		Categories:    snapshot.Categories,
		Subcategories: snapshot.Subcategories,
		Links:         snapshot.Links,
	}, rows)

	persisted := true
	if len(result.NewCategories) > 0 || len(result.NewSubcategories) > 0 || len(result.NewLinks) > 0 {
		persisted = s.container.ApplyImport(result.NewCategories, result.NewSubcategories, result.NewLinks)
	}

	return &ImportSummary{
		AddedLinks:         len(result.NewLinks),
		AddedCategories:    len(result.NewCategories),
		AddedSubcategories: len(result.NewSubcategories),
		SkippedDuplicates:  result.Duplicates,
		Errors:             s.sampleErrors(result.Errors),
		Persisted:          persisted,
	}
}

// sampleErrors 最多保留 maxSampleErrors 条错误信息，
// 剩余的折叠为一条「另有 N 条」
func (s *ImportService) sampleErrors(errors []importer.RowError) []string {
	messages := []string{}
	for i, rowErr := range errors {
		if i >= s.maxSampleErrors {
			messages = append(messages, fmt.Sprintf("……另有 %d 条错误", len(errors)-s.maxSampleErrors))
			break
		}
		messages = append(messages, rowErr.Message)
	}
	return messages
}

func (s *ImportService) ExportExcel() ([]byte, error) {
	snapshot := s.container.Snapshot()
	return importer.BuildWorkbook(&snapshot)
}

func (s *ImportService) ExportTemplate() ([]byte, error) {
	return importer.BuildTemplate()
}

func (s *ImportService) ExportBackup() ([]byte, error) {
	snapshot := s.container.Snapshot()
	return importer.ExportBackup(&snapshot)
}

// Restore 用备份整体替换当前数据，不经过对账
func (s *ImportService) Restore(raw []byte) (*models.AppData, bool, error) {
	data, err := importer.ParseBackup(raw)
	if err != nil {
		return nil, false, err
	}
	persisted := s.container.Replace(data)
	return data, persisted, nil
}
