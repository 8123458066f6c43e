package service

import (
	"io"
	"testing"

	"github.com/decryptorventure/taxgo-app/internal/model"
	"github.com/decryptorventure/taxgo-app/internal/repository"
	"github.com/decryptorventure/taxgo-app/internal/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestLedgerService(seed []model.Transaction) LedgerService {
	log := testLogger()
	hub := websocket.NewHub(log)
	go hub.Run()
	return NewLedgerService(repository.NewLedgerRepository(seed), hub, log)
}

func TestLedgerService_CreateIncome(t *testing.T) {
	svc := newTestLedgerService(nil)

	res, err := svc.Create(CreateTransactionRequest{
		Date:        "2025-05-01",
		Description: "Bán hàng tạp hóa",
		Amount:      "15000000",
		Type:        model.TypeIncome,
		TaxGroupID:  1,
		HasInvoice:  true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "2025-05-01", res.Date)
	assert.Equal(t, "15000000", res.Amount)
	assert.Equal(t, "Thương mại", res.TaxGroupName)
	assert.Empty(t, res.ExpenseCategory)
}

func TestLedgerService_CreateExpense(t *testing.T) {
	svc := newTestLedgerService(nil)

	res, err := svc.Create(CreateTransactionRequest{
		Description:     "Nhập hàng",
		Amount:          "8000000",
		Type:            model.TypeExpense,
		ExpenseCategory: model.CategorySupplies,
	})
	require.NoError(t, err)

	assert.Equal(t, model.CategorySupplies, res.ExpenseCategory)
	assert.Equal(t, "Nguyên vật liệu/Hàng hóa", res.CategoryName)
	assert.Zero(t, res.TaxGroupID)
}

func TestLedgerService_CreateRejectsInvalidInput(t *testing.T) {
	svc := newTestLedgerService(nil)

	tests := []struct {
		name string
		req  CreateTransactionRequest
	}{
		{"bad amount", CreateTransactionRequest{Description: "x", Amount: "abc", Type: model.TypeIncome, TaxGroupID: 1}},
		{"negative amount", CreateTransactionRequest{Description: "x", Amount: "-5", Type: model.TypeIncome, TaxGroupID: 1}},
		{"bad date", CreateTransactionRequest{Date: "01/05/2025", Description: "x", Amount: "5", Type: model.TypeIncome, TaxGroupID: 1}},
		{"income without group", CreateTransactionRequest{Description: "x", Amount: "5", Type: model.TypeIncome}},
		{"income unknown group", CreateTransactionRequest{Description: "x", Amount: "5", Type: model.TypeIncome, TaxGroupID: 42}},
		{"income with category", CreateTransactionRequest{Description: "x", Amount: "5", Type: model.TypeIncome, TaxGroupID: 1, ExpenseCategory: model.CategoryRent}},
		{"expense without category", CreateTransactionRequest{Description: "x", Amount: "5", Type: model.TypeExpense}},
		{"expense unknown category", CreateTransactionRequest{Description: "x", Amount: "5", Type: model.TypeExpense, ExpenseCategory: "FOOD"}},
		{"expense with group", CreateTransactionRequest{Description: "x", Amount: "5", Type: model.TypeExpense, ExpenseCategory: model.CategoryRent, TaxGroupID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.req)
			require.Error(t, err)
		})
	}

	// Nothing was stored.
	assert.Empty(t, svc.Entries())
}

func TestLedgerService_DeleteUnknownIDSucceeds(t *testing.T) {
	svc := newTestLedgerService(repository.DemoTransactions())

	require.NoError(t, svc.Delete("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.Len(t, svc.Entries(), 4)
}

func TestLedgerService_DeleteMalformedID(t *testing.T) {
	svc := newTestLedgerService(nil)
	require.Error(t, svc.Delete("not-a-uuid"))
}

func TestLedgerService_ListSearch(t *testing.T) {
	svc := newTestLedgerService(repository.DemoTransactions())

	all := svc.List("")
	require.Len(t, all, 4)

	matched := svc.List("tạp hóa")
	require.Len(t, matched, 2)
	for _, tr := range matched {
		assert.Contains(t, tr.Description, "tạp hóa")
	}
}
