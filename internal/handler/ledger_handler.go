package handler

import (
	"net/http"

	"github.com/decryptorventure/taxgo-app/internal/service"
	"github.com/decryptorventure/taxgo-app/pkg/pagination"
	"github.com/decryptorventure/taxgo-app/pkg/response"
	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	ledgerService service.LedgerService
	exportService service.ExportService
}

func NewLedgerHandler(ledgerService service.LedgerService, exportService service.ExportService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService, exportService: exportService}
}

func (h *LedgerHandler) RegisterRoutes(router *gin.RouterGroup) {
	transactions := router.Group("/api/transactions")
	{
		transactions.GET("", h.ListTransactions)
		transactions.POST("", h.CreateTransaction)
		transactions.DELETE("/:id", h.DeleteTransaction)
		transactions.GET("/export", h.ExportLedger)
	}
}

// @Summary      List ledger transactions
// @Description  List ledger entries newest first, optionally filtered by a case-insensitive description search
// @Tags         Ledger
// @Produce      json
// @Param        search query string false "Description keyword"
// @Param        page   query int    false "Page number"
// @Param        limit  query int    false "Page size"
// @Success      200 {object} response.Response
// @Router       /api/transactions [get]
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	params := pagination.Parse(c)
	all := h.ledgerService.List(c.Query("search"))

	start, end := params.Window(len(all))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"transactions": all[start:end],
		"total":        len(all),
		"page":         params.Page,
		"limit":        params.Limit,
	}))
}

// @Summary      Add a ledger transaction
// @Description  Record an income or expense entry. Income carries a tax group, expense an expense category.
// @Tags         Ledger
// @Accept       json
// @Produce      json
// @Param        request body service.CreateTransactionRequest true "Transaction"
// @Success      201 {object} response.Response
// @Failure      400 {object} response.Response "Invalid payload or invariant violation"
// @Router       /api/transactions [post]
func (h *LedgerHandler) CreateTransaction(c *gin.Context) {
	var req service.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	t, err := h.ledgerService.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, t))
}

// @Summary      Delete a ledger transaction
// @Description  Remove an entry by id. Deleting an unknown id still succeeds.
// @Tags         Ledger
// @Produce      json
// @Param        id path string true "Transaction ID"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "Malformed id"
// @Router       /api/transactions/{id} [delete]
func (h *LedgerHandler) DeleteTransaction(c *gin.Context) {
	if err := h.ledgerService.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "transaction deleted"))
}

// @Summary      Export the ledger
// @Description  Download the current ledger as an XLSX workbook
// @Tags         Ledger
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200 {file} file "XLSX workbook"
// @Router       /api/transactions/export [get]
func (h *LedgerHandler) ExportLedger(c *gin.Context) {
	fileName, content, err := h.exportService.LedgerWorkbook()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
