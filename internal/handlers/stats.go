package handlers

import (
	"links-backend/internal/services"
	"links-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	utils.Success(c, h.statsService.GetStats())
}
