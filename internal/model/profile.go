package model

// UserProfile identifies the taxpayer on generated declarations.
type UserProfile struct {
	Name    string `json:"name"`
	TaxCode string `json:"tax_code"` // MST
	Address string `json:"address"`
}
