package handler

import (
	"errors"
	"net/http"

	"github.com/decryptorventure/taxgo-app/internal/service"
	"github.com/decryptorventure/taxgo-app/internal/tax"
	"github.com/decryptorventure/taxgo-app/pkg/response"
	"github.com/gin-gonic/gin"
)

type TaxHandler struct {
	taxService service.TaxService
}

func NewTaxHandler(taxService service.TaxService) *TaxHandler {
	return &TaxHandler{taxService: taxService}
}

func (h *TaxHandler) RegisterRoutes(router *gin.RouterGroup) {
	taxGroup := router.Group("/api/tax")
	{
		taxGroup.GET("/groups", h.GetGroups)
		taxGroup.GET("/license-fee-tiers", h.GetLicenseFeeTiers)
		taxGroup.POST("/calculate", h.Calculate)
		taxGroup.POST("/filing", h.DownloadFiling)
		taxGroup.POST("/filing/email", h.EmailFiling)
	}
}

// @Summary      Get tax groups
// @Description  The presumptive-tax rate table: five business activity groups with VAT/PIT percentages
// @Tags         Tax
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/tax/groups [get]
func (h *TaxHandler) GetGroups(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.taxService.GetGroups()))
}

// @Summary      Get license fee tiers
// @Tags         Tax
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/tax/license-fee-tiers [get]
func (h *TaxHandler) GetLicenseFeeTiers(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.taxService.GetLicenseFeeTiers()))
}

// @Summary      Calculate presumptive tax
// @Description  Compute VAT, PIT and the yearly license fee for a revenue figure and annual projection
// @Tags         Tax
// @Accept       json
// @Produce      json
// @Param        request body service.CalculateTaxRequest true "Calculation input"
// @Success      200 {object} response.Response{data=service.CalculateTaxResponse}
// @Failure      400 {object} response.Response "Invalid payload or unknown tax group"
// @Router       /api/tax/calculate [post]
func (h *TaxHandler) Calculate(c *gin.Context) {
	var req service.CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	result, err := h.taxService.Calculate(req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, tax.ErrInvalidGroup) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// @Summary      Download 01/CNKD declaration
// @Description  Render the filing XML for the calculation input and the configured taxpayer profile
// @Tags         Tax
// @Accept       json
// @Produce      text/xml
// @Param        request body service.CalculateTaxRequest true "Calculation input"
// @Success      200 {file} file "XML declaration"
// @Failure      400 {object} response.Response
// @Router       /api/tax/filing [post]
func (h *TaxHandler) DownloadFiling(c *gin.Context) {
	var req service.CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	doc, err := h.taxService.BuildFiling(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+doc.FileName)
	c.Data(http.StatusOK, "text/xml; charset=utf-8", []byte(doc.Content))
}

type emailFilingRequest struct {
	service.CalculateTaxRequest
	To string `json:"to" binding:"required,email"`
}

// @Summary      Email 01/CNKD declaration
// @Description  Build the filing XML and send it as an attachment. Requires SMTP to be configured.
// @Tags         Tax
// @Accept       json
// @Produce      json
// @Param        request body handler.emailFilingRequest true "Calculation input and recipient"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response
// @Router       /api/tax/filing/email [post]
func (h *TaxHandler) EmailFiling(c *gin.Context) {
	var req emailFilingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	doc, err := h.taxService.EmailFiling(req.CalculateTaxRequest, req.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "Đã gửi tờ khai "+doc.FileName+" tới "+req.To))
}
