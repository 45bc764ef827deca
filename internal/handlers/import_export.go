// internal/handlers/import_export.go - 批量导入导出
package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"links-backend/internal/importer"
	"links-backend/internal/services"
	"links-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ImportExportHandler struct {
	importService *services.ImportService
}

func NewImportExportHandler(importService *services.ImportService) *ImportExportHandler {
	return &ImportExportHandler{importService: importService}
}

// ImportExcel 上传 xlsx 批量导入。行级错误不会中断导入，
// 文件整体无法解析时才失败
func (h *ImportExportHandler) ImportExcel(c *gin.Context) {
	fileBytes, err := readUpload(c)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.importService.ImportExcel(fileBytes)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "导入完成", summary)
}

// ImportRows 接收 JSON 数组形式的行数据，走同一条对账路径
func (h *ImportExportHandler) ImportRows(c *gin.Context) {
	var rows []importer.RawRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		utils.Error(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	summary := h.importService.ImportRows(rows)
	utils.SuccessWithMessage(c, "导入完成", summary)
}

// Restore 上传 JSON 备份并整体恢复，替换当前全部数据
func (h *ImportExportHandler) Restore(c *gin.Context) {
	fileBytes, err := readUpload(c)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	_, persisted, err := h.importService.Restore(fileBytes)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "恢复完成", gin.H{"persisted": persisted})
}

func (h *ImportExportHandler) ExportExcel(c *gin.Context) {
	data, err := h.importService.ExportExcel()
	if err != nil {
		utils.InternalError(c)
		return
	}

	filename := fmt.Sprintf("links-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, excelContentType, data)
}

func (h *ImportExportHandler) ExportTemplate(c *gin.Context) {
	data, err := h.importService.ExportTemplate()
	if err != nil {
		utils.InternalError(c)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=links-template.xlsx")
	c.Data(http.StatusOK, excelContentType, data)
}

func (h *ImportExportHandler) ExportJSON(c *gin.Context) {
	data, err := h.importService.ExportBackup()
	if err != nil {
		utils.InternalError(c)
		return
	}

	filename := fmt.Sprintf("links-backup-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/json", data)
}

func readUpload(c *gin.Context) ([]byte, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("缺少上传文件")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("读取上传文件失败")
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("读取上传文件失败")
	}
	return fileBytes, nil
}
