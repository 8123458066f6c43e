package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/decryptorventure/taxgo-app/internal/repository"
	"github.com/decryptorventure/taxgo-app/internal/service"
	"github.com/decryptorventure/taxgo-app/internal/websocket"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryHandler_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log := testLogger()
	hub := websocket.NewHub(log)
	go hub.Run()

	ledger := service.NewLedgerService(repository.NewLedgerRepository(repository.DemoTransactions()), hub, log)

	router := gin.New()
	NewSummaryHandler(service.NewSummaryService(ledger)).RegisterRoutes(router.Group(""))

	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data service.SummaryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "20000000", res.Data.TotalIncome)
	assert.Equal(t, "9200000", res.Data.TotalExpense)
	assert.False(t, res.Data.NegativeCashFlow)
	assert.Equal(t, "240000000", res.Data.AnnualProjection)
	assert.Equal(t, "300000", res.Data.LicenseFee)
	require.Len(t, res.Data.IncomeByGroup, 1)
	assert.Equal(t, "Thương mại", res.Data.IncomeByGroup[0].Name)
}
