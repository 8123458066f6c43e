package tax

import "github.com/shopspring/decimal"

// RentalExemptionThreshold is the annual revenue at or below which rental
// income is exempt from both VAT and PIT (Circular 40/2021/TT-BTC). The
// comparison is inclusive: exactly 100,000,000 VND is still exempt.
var RentalExemptionThreshold = decimal.NewFromInt(100_000_000)

var oneHundred = decimal.NewFromInt(100)

// Result is the breakdown produced by Calculate. LicenseFee is the yearly
// obligation for the given projection and is never folded into TotalTax.
type Result struct {
	Revenue        decimal.Decimal
	VATAmount      decimal.Decimal
	PITAmount      decimal.Decimal
	TotalTax       decimal.Decimal
	LicenseFee     decimal.Decimal
	TotalLiability decimal.Decimal
}

// Calculate computes the presumptive tax owed on revenue for one business
// activity group. annualProjection only drives threshold decisions (rental
// exemption, license fee tier) and is independent of revenue.
//
// Amounts are rounded to whole VND, halves away from zero.
func Calculate(revenue decimal.Decimal, groupID GroupID, annualProjection decimal.Decimal) (Result, error) {
	group, err := GroupByID(groupID)
	if err != nil {
		return Result{}, err
	}

	vat := decimal.Zero
	pit := decimal.Zero

	exempt := groupID == GroupRental && annualProjection.LessThanOrEqual(RentalExemptionThreshold)
	if !exempt {
		vat = revenue.Mul(group.VATRate).Div(oneHundred).Round(0)
		pit = revenue.Mul(group.PITRate).Div(oneHundred).Round(0)
	}

	totalTax := vat.Add(pit)

	return Result{
		Revenue:        revenue,
		VATAmount:      vat,
		PITAmount:      pit,
		TotalTax:       totalTax,
		LicenseFee:     LicenseFeeFor(annualProjection),
		TotalLiability: totalTax,
	}, nil
}
