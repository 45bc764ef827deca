package handlers

import (
	"net/http"

	"links-backend/internal/models"
	"links-backend/internal/services"
	"links-backend/internal/utils"
	pkgvalidator "links-backend/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type LinkHandler struct {
	linkService *services.LinkService
	validator   *validator.Validate
}

func NewLinkHandler(linkService *services.LinkService) *LinkHandler {
	return &LinkHandler{
		linkService: linkService,
		// 共享实例带有 linkurl 自定义规则
		validator: pkgvalidator.GetValidator(),
	}
}

func (h *LinkHandler) GetLinks(c *gin.Context) {
	req := models.LinkListRequest{
		Page:  1,
		Limit: 20,
		Sort:  "created_at",
		Order: "desc",
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	links, pagination, err := h.linkService.GetLinks(&req)
	if err != nil {
		utils.InternalError(c)
		return
	}

	utils.Success(c, gin.H{
		"links":      links,
		"pagination": pagination,
	})
}

func (h *LinkHandler) GetLink(c *gin.Context) {
	link, err := h.linkService.GetLinkByID(c.Param("id"))
	if err != nil {
		utils.NotFound(c, err.Error())
		return
	}

	utils.Success(c, link)
}

func (h *LinkHandler) CreateLink(c *gin.Context) {
	var req models.LinkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	link, err := h.linkService.CreateLink(&req)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "创建成功", link)
}

func (h *LinkHandler) UpdateLink(c *gin.Context) {
	var req models.LinkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	link, err := h.linkService.UpdateLink(c.Param("id"), &req)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "更新成功", link)
}

func (h *LinkHandler) DeleteLink(c *gin.Context) {
	if err := h.linkService.DeleteLink(c.Param("id")); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "删除成功", nil)
}

// RecordClick 记录一次点击。链接不存在时同样返回成功，
// 点击上报不应该打断前端跳转
func (h *LinkHandler) RecordClick(c *gin.Context) {
	record := h.linkService.RecordClick(c.Param("id"))
	utils.Success(c, record)
}
