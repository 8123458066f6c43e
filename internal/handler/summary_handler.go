package handler

import (
	"net/http"

	"github.com/decryptorventure/taxgo-app/internal/service"
	"github.com/decryptorventure/taxgo-app/pkg/response"
	"github.com/gin-gonic/gin"
)

type SummaryHandler struct {
	summaryService service.SummaryService
}

func NewSummaryHandler(summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

func (h *SummaryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/summary", h.GetSummary)
}

// @Summary      Get Dashboard Summary
// @Description  Income/expense totals, income distribution by tax group, annual revenue projection and license-fee status
// @Tags         Summary
// @Produce      json
// @Success      200 {object} response.Response{data=service.SummaryResponse}
// @Router       /api/summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.summaryService.GetSummary()))
}
