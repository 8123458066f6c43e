package tax

import "github.com/shopspring/decimal"

// LicenseFeeTier maps an annual revenue threshold to the flat yearly license
// fee (lệ phí môn bài) owed once projected revenue exceeds that threshold.
type LicenseFeeTier struct {
	Threshold decimal.Decimal
	Fee       decimal.Decimal
}

// Ordered by descending threshold. The zero tier is the catch-all floor and
// must stay last.
var licenseFeeTiers = []LicenseFeeTier{
	{Threshold: decimal.NewFromInt(500_000_000), Fee: decimal.NewFromInt(1_000_000)},
	{Threshold: decimal.NewFromInt(300_000_000), Fee: decimal.NewFromInt(500_000)},
	{Threshold: decimal.NewFromInt(100_000_000), Fee: decimal.NewFromInt(300_000)},
	{Threshold: decimal.Zero, Fee: decimal.Zero},
}

// LicenseFeeTiers returns the tier table, highest threshold first.
func LicenseFeeTiers() []LicenseFeeTier {
	out := make([]LicenseFeeTier, len(licenseFeeTiers))
	copy(out, licenseFeeTiers)
	return out
}

// LicenseFeeFor returns the annual license fee for a projected annual
// revenue: the first tier whose threshold is strictly below the projection
// wins. A projection sitting exactly on a threshold stays in the lower tier.
func LicenseFeeFor(annualProjection decimal.Decimal) decimal.Decimal {
	for _, t := range licenseFeeTiers {
		if annualProjection.GreaterThan(t.Threshold) {
			return t.Fee
		}
	}
	return decimal.Zero
}
