package handler

import (
	"net/http"

	"github.com/decryptorventure/taxgo-app/internal/service"
	"github.com/decryptorventure/taxgo-app/pkg/response"
	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	assistantService service.AssistantService
}

func NewAssistantHandler(assistantService service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

func (h *AssistantHandler) RegisterRoutes(router *gin.RouterGroup) {
	assistant := router.Group("/api/assistant")
	{
		assistant.POST("/chat", h.Chat)
		assistant.POST("/scan-invoice", h.ScanInvoice)
	}
}

// @Summary      Chat with the tax assistant
// @Description  One conversation turn. Service failures are converted to a canned reply, never an error status.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        request body service.ChatRequest true "Prior turns and the new message"
// @Success      200 {object} response.Response{data=service.ChatResponse}
// @Failure      400 {object} response.Response "Empty message"
// @Router       /api/assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req service.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.assistantService.Chat(c.Request.Context(), req)))
}

// @Summary      Extract transaction data from a receipt image
// @Description  Returns found=false when extraction is unavailable or fails; the client falls back to manual entry.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        request body service.ScanInvoiceRequest true "Base64-encoded image"
// @Success      200 {object} response.Response{data=service.ScanInvoiceResponse}
// @Failure      400 {object} response.Response "Missing image"
// @Router       /api/assistant/scan-invoice [post]
func (h *AssistantHandler) ScanInvoice(c *gin.Context) {
	var req service.ScanInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.assistantService.ScanInvoice(c.Request.Context(), req)))
}
