package repository

import (
	"time"

	"github.com/decryptorventure/taxgo-app/internal/model"
	"github.com/decryptorventure/taxgo-app/internal/tax"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DemoTransactions returns the sample ledger the app starts with so a new
// user sees a populated dashboard.
func DemoTransactions() []model.Transaction {
	day := func(d string) time.Time {
		t, _ := time.Parse("2006-01-02", d)
		return t
	}

	return []model.Transaction{
		{
			ID:              uuid.New(),
			Date:            day("2025-05-10"),
			Description:     "Tiền điện tháng 4",
			Amount:          decimal.NewFromInt(1_200_000),
			Type:            model.TypeExpense,
			ExpenseCategory: model.CategoryUtilities,
			HasInvoice:      true,
		},
		{
			ID:          uuid.New(),
			Date:        day("2025-05-05"),
			Description: "Bán hàng tạp hóa",
			Amount:      decimal.NewFromInt(5_000_000),
			Type:        model.TypeIncome,
			TaxGroupID:  tax.GroupDistribution,
			HasInvoice:  false,
		},
		{
			ID:              uuid.New(),
			Date:            day("2025-05-02"),
			Description:     "Nhập hàng Vinamilk",
			Amount:          decimal.NewFromInt(8_000_000),
			Type:            model.TypeExpense,
			ExpenseCategory: model.CategorySupplies,
			HasInvoice:      true,
		},
		{
			ID:          uuid.New(),
			Date:        day("2025-05-01"),
			Description: "Bán hàng tạp hóa",
			Amount:      decimal.NewFromInt(15_000_000),
			Type:        model.TypeIncome,
			TaxGroupID:  tax.GroupDistribution,
			HasInvoice:  true,
		},
	}
}

// DefaultProfile is the taxpayer used on declarations until the user edits
// their profile.
func DefaultProfile() model.UserProfile {
	return model.UserProfile{
		Name:    "Nguyễn Văn A",
		TaxCode: "8675943210",
		Address: "",
	}
}
