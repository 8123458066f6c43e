package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/decryptorventure/taxgo-app/internal/config"
	"github.com/decryptorventure/taxgo-app/internal/email"
	"github.com/decryptorventure/taxgo-app/internal/repository"
	"github.com/decryptorventure/taxgo-app/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTaxRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	sender := email.NewSender(&config.Config{}, testLogger())
	taxService := service.NewTaxService(repository.NewProfileRepository(repository.DefaultProfile()), sender)

	router := gin.New()
	NewTaxHandler(taxService).RegisterRoutes(router.Group(""))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTaxHandler_GetGroups(t *testing.T) {
	router := newTaxRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/tax/groups", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Status string                     `json:"status"`
		Data   []service.TaxGroupResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "success", res.Status)
	require.Len(t, res.Data, 5)
	assert.Equal(t, 1, res.Data[0].ID)
	assert.Equal(t, "1", res.Data[0].VATRate)
	assert.Equal(t, "0.5", res.Data[0].PITRate)
}

func TestTaxHandler_GetLicenseFeeTiers(t *testing.T) {
	router := newTaxRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/tax/license-fee-tiers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data []service.LicenseFeeTierResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Data, 4)
	assert.Equal(t, "500000000", res.Data[0].Threshold)
	assert.Equal(t, "1000000", res.Data[0].Fee)
}

func TestTaxHandler_Calculate(t *testing.T) {
	router := newTaxRouter()

	w := postJSON(t, router, "/api/tax/calculate", service.CalculateTaxRequest{
		Revenue:                 "50000000",
		TaxGroupID:              1,
		AnnualRevenueProjection: "500000000",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data service.CalculateTaxResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "500000", res.Data.VATAmount)
	assert.Equal(t, "250000", res.Data.PITAmount)
	assert.Equal(t, "750000", res.Data.TotalTax)
	assert.Equal(t, "500000", res.Data.LicenseFee)
	assert.Equal(t, "750000", res.Data.TotalLiability)
}

func TestTaxHandler_CalculateRentalExemption(t *testing.T) {
	router := newTaxRouter()

	w := postJSON(t, router, "/api/tax/calculate", service.CalculateTaxRequest{
		Revenue:                 "8000000",
		TaxGroupID:              5,
		AnnualRevenueProjection: "96000000",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data service.CalculateTaxResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "0", res.Data.TotalTax)
	assert.Equal(t, "0", res.Data.LicenseFee)
}

func TestTaxHandler_CalculateUnknownGroup(t *testing.T) {
	router := newTaxRouter()

	w := postJSON(t, router, "/api/tax/calculate", service.CalculateTaxRequest{
		Revenue:                 "50000000",
		TaxGroupID:              9,
		AnnualRevenueProjection: "500000000",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var res struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "error", res.Status)
	assert.NotEmpty(t, res.Error)
}

func TestTaxHandler_CalculateMissingFields(t *testing.T) {
	router := newTaxRouter()

	w := postJSON(t, router, "/api/tax/calculate", gin.H{"revenue": "50000000"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaxHandler_DownloadFiling(t *testing.T) {
	router := newTaxRouter()

	w := postJSON(t, router, "/api/tax/filing", service.CalculateTaxRequest{
		Revenue:                 "50000000",
		TaxGroupID:              1,
		AnnualRevenueProjection: "500000000",
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "text/xml; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ToKhai_01_CNKD_")

	body := w.Body.String()
	assert.Contains(t, body, "<MSo>01/CNKD</MSo>")
	assert.Contains(t, body, "<MaSoThue>8675943210</MaSoThue>")
	assert.Contains(t, body, "<DoanhThu>50000000</DoanhThu>")
	assert.Contains(t, body, "<ThuePhaiNop>750000</ThuePhaiNop>")
}

func TestTaxHandler_EmailFilingWithoutSMTP(t *testing.T) {
	router := newTaxRouter()

	w := postJSON(t, router, "/api/tax/filing/email", gin.H{
		"revenue":                   "50000000",
		"tax_group_id":              1,
		"annual_revenue_projection": "500000000",
		"to":                        "chu-ho@example.com",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var res struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(t, res.Error, "not configured")
}
