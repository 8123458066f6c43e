package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/decryptorventure/taxgo-app/internal/email"
	"github.com/decryptorventure/taxgo-app/internal/repository"
	"github.com/decryptorventure/taxgo-app/internal/tax"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

type CalculateTaxRequest struct {
	Revenue                 string `json:"revenue" binding:"required"`                   // Decimal string, VND
	TaxGroupID              int    `json:"tax_group_id" binding:"required"`              //
	AnnualRevenueProjection string `json:"annual_revenue_projection" binding:"required"` // Decimal string, VND
}

type CalculateTaxResponse struct {
	Revenue        string `json:"revenue"`
	VATAmount      string `json:"vat_amount"`
	PITAmount      string `json:"pit_amount"`
	TotalTax       string `json:"total_tax"`
	LicenseFee     string `json:"license_fee"` // yearly, informational
	TotalLiability string `json:"total_liability"`
}

type TaxGroupResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	VATRate     string `json:"vat_rate"`
	PITRate     string `json:"pit_rate"`
	Description string `json:"description"`
	Warning     string `json:"warning,omitempty"`
}

type LicenseFeeTierResponse struct {
	Threshold string `json:"threshold"`
	Fee       string `json:"fee"`
}

type FilingDocument struct {
	FileName string
	Content  string
}

// --- Interface ---

type TaxService interface {
	GetGroups() []TaxGroupResponse
	GetLicenseFeeTiers() []LicenseFeeTierResponse
	Calculate(req CalculateTaxRequest) (CalculateTaxResponse, error)
	BuildFiling(req CalculateTaxRequest) (FilingDocument, error)
	EmailFiling(req CalculateTaxRequest, to string) (FilingDocument, error)
}

type taxService struct {
	profileRepo repository.ProfileRepository
	sender      *email.Sender
}

func NewTaxService(profileRepo repository.ProfileRepository, sender *email.Sender) TaxService {
	return &taxService{profileRepo: profileRepo, sender: sender}
}

// --- Implementation ---

func (s *taxService) GetGroups() []TaxGroupResponse {
	groups := tax.Groups()
	out := make([]TaxGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, TaxGroupResponse{
			ID:          int(g.ID),
			Name:        g.Name,
			ShortName:   g.ShortName,
			VATRate:     g.VATRate.String(),
			PITRate:     g.PITRate.String(),
			Description: g.Description,
			Warning:     g.Warning,
		})
	}
	return out
}

func (s *taxService) GetLicenseFeeTiers() []LicenseFeeTierResponse {
	tiers := tax.LicenseFeeTiers()
	out := make([]LicenseFeeTierResponse, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, LicenseFeeTierResponse{
			Threshold: t.Threshold.StringFixed(0),
			Fee:       t.Fee.StringFixed(0),
		})
	}
	return out
}

// Calculate runs the presumptive tax computation for one revenue figure.
func (s *taxService) Calculate(req CalculateTaxRequest) (CalculateTaxResponse, error) {
	result, err := s.calculate(req)
	if err != nil {
		return CalculateTaxResponse{}, err
	}

	return CalculateTaxResponse{
		Revenue:        result.Revenue.StringFixed(0),
		VATAmount:      result.VATAmount.StringFixed(0),
		PITAmount:      result.PITAmount.StringFixed(0),
		TotalTax:       result.TotalTax.StringFixed(0),
		LicenseFee:     result.LicenseFee.StringFixed(0),
		TotalLiability: result.TotalLiability.StringFixed(0),
	}, nil
}

// BuildFiling computes the tax for the request and renders the 01/CNKD
// declaration for the configured taxpayer.
func (s *taxService) BuildFiling(req CalculateTaxRequest) (FilingDocument, error) {
	result, err := s.calculate(req)
	if err != nil {
		return FilingDocument{}, err
	}

	profile := s.profileRepo.Get()
	now := time.Now()

	content, err := tax.BuildFilingDocument(result.Revenue, result.TotalTax, profile.TaxCode, profile.Name, now)
	if err != nil {
		return FilingDocument{}, err
	}

	return FilingDocument{
		FileName: tax.FilingFileName(now),
		Content:  content,
	}, nil
}

// EmailFiling builds the declaration and mails it to the given address.
func (s *taxService) EmailFiling(req CalculateTaxRequest, to string) (FilingDocument, error) {
	if !s.sender.Enabled() {
		return FilingDocument{}, errors.New("email delivery is not configured")
	}

	doc, err := s.BuildFiling(req)
	if err != nil {
		return FilingDocument{}, err
	}

	profile := s.profileRepo.Get()
	if err := s.sender.SendFilingDocument(to, profile.Name, doc.FileName, doc.Content); err != nil {
		return FilingDocument{}, err
	}
	return doc, nil
}

func (s *taxService) calculate(req CalculateTaxRequest) (tax.Result, error) {
	revenue, err := decimal.NewFromString(req.Revenue)
	if err != nil {
		return tax.Result{}, fmt.Errorf("invalid revenue: %w", err)
	}
	projection, err := decimal.NewFromString(req.AnnualRevenueProjection)
	if err != nil {
		return tax.Result{}, fmt.Errorf("invalid annual revenue projection: %w", err)
	}
	if revenue.IsNegative() || projection.IsNegative() {
		return tax.Result{}, errors.New("revenue and projection must not be negative")
	}

	return tax.Calculate(revenue, tax.GroupID(req.TaxGroupID), projection)
}
