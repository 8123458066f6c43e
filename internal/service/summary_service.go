package service

import (
	"github.com/decryptorventure/taxgo-app/internal/model"
	"github.com/decryptorventure/taxgo-app/internal/tax"
	"github.com/decryptorventure/taxgo-app/pkg/vnd"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

type GroupShare struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type SummaryResponse struct {
	TotalIncome      string       `json:"total_income"`
	TotalExpense     string       `json:"total_expense"`
	NegativeCashFlow bool         `json:"negative_cash_flow"`
	IncomeByGroup    []GroupShare `json:"income_by_group"`
	AnnualProjection string       `json:"annual_projection"`
	LicenseFee       string       `json:"license_fee"`
	ThresholdNotice  string       `json:"threshold_notice"`
}

// --- Interface ---

type SummaryService interface {
	GetSummary() SummaryResponse
}

type summaryService struct {
	ledger LedgerService
}

func NewSummaryService(ledger LedgerService) SummaryService {
	return &summaryService{ledger: ledger}
}

var twelve = decimal.NewFromInt(12)

// GetSummary derives the dashboard figures from the current ledger. The
// annual projection is the crude ledger-income-times-twelve estimate the
// dashboard shows; the calculator screen lets the user refine it.
func (s *summaryService) GetSummary() SummaryResponse {
	entries := s.ledger.Entries()

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	byGroup := map[string]decimal.Decimal{}
	groupOrder := []string{}

	for _, t := range entries {
		switch t.Type {
		case model.TypeIncome:
			totalIncome = totalIncome.Add(t.Amount)
			name := tax.GroupShortName(t.TaxGroupID)
			if _, seen := byGroup[name]; !seen {
				groupOrder = append(groupOrder, name)
			}
			byGroup[name] = byGroup[name].Add(t.Amount)
		case model.TypeExpense:
			totalExpense = totalExpense.Add(t.Amount)
		}
	}

	shares := make([]GroupShare, 0, len(groupOrder))
	for _, name := range groupOrder {
		shares = append(shares, GroupShare{Name: name, Amount: byGroup[name].StringFixed(0)})
	}

	projection := totalIncome.Mul(twelve)
	licenseFee := tax.LicenseFeeFor(projection)

	return SummaryResponse{
		TotalIncome:      totalIncome.StringFixed(0),
		TotalExpense:     totalExpense.StringFixed(0),
		NegativeCashFlow: totalExpense.GreaterThan(totalIncome),
		IncomeByGroup:    shares,
		AnnualProjection: projection.StringFixed(0),
		LicenseFee:       licenseFee.StringFixed(0),
		ThresholdNotice:  thresholdNotice(projection),
	}
}

func thresholdNotice(projection decimal.Decimal) string {
	if projection.GreaterThan(tax.RentalExemptionThreshold) {
		return "Dự báo doanh thu năm: " + vnd.Format(projection) +
			". Bạn thuộc đối tượng phải nộp lệ phí môn bài."
	}
	return "Dự báo doanh thu năm: " + vnd.Format(projection) +
		". Bạn đang ở dưới ngưỡng chịu thuế VAT/TNCN (nếu chỉ cho thuê tài sản)."
}
