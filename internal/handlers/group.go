package handlers

import (
	"net/http"

	"links-backend/internal/models"
	"links-backend/internal/services"
	"links-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type GroupHandler struct {
	groupService *services.GroupService
	validator    *validator.Validate
}

func NewGroupHandler(groupService *services.GroupService) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
		validator:    validator.New(),
	}
}

func (h *GroupHandler) GetGroups(c *gin.Context) {
	utils.Success(c, h.groupService.GetGroups())
}

func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req models.GroupCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	group := h.groupService.CreateGroup(&req)
	utils.SuccessWithMessage(c, "创建成功", group)
}

func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	var req models.GroupUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	group, err := h.groupService.UpdateGroup(c.Param("id"), &req)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "更新成功", group)
}

func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	if err := h.groupService.DeleteGroup(c.Param("id")); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "删除成功", nil)
}

func (h *GroupHandler) ToggleVisibility(c *gin.Context) {
	group, err := h.groupService.ToggleVisibility(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessWithMessage(c, "更新成功", group)
}
