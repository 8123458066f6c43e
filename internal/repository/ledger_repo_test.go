package repository

import (
	"testing"
	"time"

	"github.com/decryptorventure/taxgo-app/internal/model"
	"github.com/decryptorventure/taxgo-app/internal/tax"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(desc string, amount int64, txType string) model.Transaction {
	t := model.Transaction{
		Date:        time.Now(),
		Description: desc,
		Amount:      decimal.NewFromInt(amount),
		Type:        txType,
	}
	if txType == model.TypeIncome {
		t.TaxGroupID = tax.GroupDistribution
	} else {
		t.ExpenseCategory = model.CategorySupplies
	}
	return t
}

func TestLedgerRepository_AddPrependsAndAssignsID(t *testing.T) {
	repo := NewLedgerRepository(nil)

	first := repo.Add(entry("Bán hàng", 1_000_000, model.TypeIncome))
	second := repo.Add(entry("Nhập hàng", 500_000, model.TypeExpense))

	require.NotEqual(t, uuid.Nil, first.ID)
	require.NotEqual(t, uuid.Nil, second.ID)
	require.NotEqual(t, first.ID, second.ID)

	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest entry first")
	assert.Equal(t, first.ID, list[1].ID)
}

func TestLedgerRepository_AddAllowsDuplicates(t *testing.T) {
	repo := NewLedgerRepository(nil)
	repo.Add(entry("Tiền điện", 100_000, model.TypeExpense))
	repo.Add(entry("Tiền điện", 100_000, model.TypeExpense))

	assert.Len(t, repo.List(), 2)
}

func TestLedgerRepository_RemoveMissingIsNoop(t *testing.T) {
	repo := NewLedgerRepository(nil)
	kept := repo.Add(entry("Bán hàng", 1_000_000, model.TypeIncome))

	repo.Remove(uuid.New())

	list := repo.List()
	require.Len(t, list, 1)
	assert.Equal(t, kept.ID, list[0].ID)
}

func TestLedgerRepository_Remove(t *testing.T) {
	repo := NewLedgerRepository(nil)
	a := repo.Add(entry("a", 1, model.TypeIncome))
	b := repo.Add(entry("b", 2, model.TypeIncome))

	repo.Remove(a.ID)

	list := repo.List()
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}

func TestLedgerRepository_SearchCaseInsensitive(t *testing.T) {
	repo := NewLedgerRepository(nil)
	repo.Add(entry("Bán hàng tạp hóa", 1_000_000, model.TypeIncome))
	repo.Add(entry("Tiền điện tháng 4", 100_000, model.TypeExpense))

	assert.Len(t, repo.Search("TẠP HÓA"), 1)
	assert.Len(t, repo.Search("tiền"), 1)
	assert.Len(t, repo.Search(""), 2)
	assert.Empty(t, repo.Search("no match"))
}

func TestLedgerRepository_ListReturnsCopy(t *testing.T) {
	repo := NewLedgerRepository(DemoTransactions())

	list := repo.List()
	require.Len(t, list, 4)
	list[0].Description = "mutated"

	assert.NotEqual(t, "mutated", repo.List()[0].Description)
}
