package model

import (
	"time"

	"github.com/decryptorventure/taxgo-app/internal/tax"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType enum constants
const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

// ExpenseCategory enum constants
const (
	CategorySupplies  = "SUPPLIES"
	CategoryRent      = "RENT"
	CategoryUtilities = "UTILITIES"
	CategoryMarketing = "MARKETING"
	CategorySalary    = "SALARY"
	CategoryOther     = "OTHER"
)

// ExpenseCategoryNames maps each category to its Vietnamese display label.
var ExpenseCategoryNames = map[string]string{
	CategorySupplies:  "Nguyên vật liệu/Hàng hóa",
	CategoryRent:      "Thuê mặt bằng",
	CategoryUtilities: "Điện, Nước, Internet",
	CategoryMarketing: "Quảng cáo & Marketing",
	CategorySalary:    "Lương nhân viên",
	CategoryOther:     "Chi phí khác",
}

// IsExpenseCategory reports whether s is one of the six known categories.
func IsExpenseCategory(s string) bool {
	_, ok := ExpenseCategoryNames[s]
	return ok
}

// Transaction is one ledger entry. Exactly one of TaxGroupID (INCOME) or
// ExpenseCategory (EXPENSE) is meaningful, selected by Type. Entries live in
// memory for the session only and are never edited, only added and deleted.
type Transaction struct {
	ID              uuid.UUID
	Date            time.Time
	Description     string
	Amount          decimal.Decimal
	Type            string // INCOME or EXPENSE
	TaxGroupID      tax.GroupID
	ExpenseCategory string
	HasInvoice      bool
}
