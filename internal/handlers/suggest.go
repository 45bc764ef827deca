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

type SuggestHandler struct {
	suggestService *services.SuggestService
	validator      *validator.Validate
}

func NewSuggestHandler(suggestService *services.SuggestService) *SuggestHandler {
	return &SuggestHandler{
		suggestService: suggestService,
		// 共享实例带有 linkurl 自定义规则
		validator: pkgvalidator.GetValidator(),
	}
}

func (h *SuggestHandler) Suggest(c *gin.Context) {
	var req models.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	suggestion, err := h.suggestService.Suggest(c.Request.Context(), req.URL, req.Name)
	if err != nil {
		utils.Error(c, http.StatusBadGateway, err.Error())
		return
	}

	utils.Success(c, suggestion)
}
