package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/decryptorventure/taxgo-app/internal/model"
	"github.com/decryptorventure/taxgo-app/internal/repository"
	"github.com/decryptorventure/taxgo-app/internal/tax"
	"github.com/decryptorventure/taxgo-app/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// --- DTOs ---

type CreateTransactionRequest struct {
	Date            string `json:"date"`                                        // YYYY-MM-DD, defaults to today
	Description     string `json:"description" binding:"required"`              //
	Amount          string `json:"amount" binding:"required"`                   // Decimal string, VND
	Type            string `json:"type" binding:"required,oneof=INCOME EXPENSE"`    //
	TaxGroupID      int    `json:"tax_group_id"`                                // INCOME only
	ExpenseCategory string `json:"expense_category"`                            // EXPENSE only
	HasInvoice      bool   `json:"has_invoice"`
}

type TransactionResponse struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Description     string `json:"description"`
	Amount          string `json:"amount"`
	Type            string `json:"type"`
	TaxGroupID      int    `json:"tax_group_id,omitempty"`
	TaxGroupName    string `json:"tax_group_name,omitempty"`
	ExpenseCategory string `json:"expense_category,omitempty"`
	CategoryName    string `json:"category_name,omitempty"`
	HasInvoice      bool   `json:"has_invoice"`
}

// --- Interface ---

type LedgerService interface {
	Create(req CreateTransactionRequest) (TransactionResponse, error)
	Delete(id string) error
	List(search string) []TransactionResponse
	Entries() []model.Transaction
}

type ledgerService struct {
	ledgerRepo repository.LedgerRepository
	hub        *websocket.Hub
	log        *logrus.Logger
}

func NewLedgerService(ledgerRepo repository.LedgerRepository, hub *websocket.Hub, log *logrus.Logger) LedgerService {
	return &ledgerService{ledgerRepo: ledgerRepo, hub: hub, log: log}
}

// --- Implementation ---

// Create validates and inserts a new ledger entry. An INCOME entry must name
// a tax group and an EXPENSE entry an expense category; no entry ever
// carries both.
func (s *ledgerService) Create(req CreateTransactionRequest) (TransactionResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return TransactionResponse{}, fmt.Errorf("invalid amount: %w", err)
	}
	if amount.IsNegative() {
		return TransactionResponse{}, errors.New("amount must not be negative")
	}

	date := time.Now()
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return TransactionResponse{}, fmt.Errorf("invalid date, expected YYYY-MM-DD: %w", err)
		}
	}

	t := model.Transaction{
		Date:        date,
		Description: req.Description,
		Amount:      amount,
		Type:        req.Type,
		HasInvoice:  req.HasInvoice,
	}

	switch req.Type {
	case model.TypeIncome:
		group, err := tax.GroupByID(tax.GroupID(req.TaxGroupID))
		if err != nil {
			return TransactionResponse{}, err
		}
		if req.ExpenseCategory != "" {
			return TransactionResponse{}, errors.New("income entry must not carry an expense category")
		}
		t.TaxGroupID = group.ID
	case model.TypeExpense:
		if !model.IsExpenseCategory(req.ExpenseCategory) {
			return TransactionResponse{}, fmt.Errorf("unknown expense category %q", req.ExpenseCategory)
		}
		if req.TaxGroupID != 0 {
			return TransactionResponse{}, errors.New("expense entry must not carry a tax group")
		}
		t.ExpenseCategory = req.ExpenseCategory
	}

	t = s.ledgerRepo.Add(t)
	s.log.Infof("Transaction added: %s %s %s", t.Type, t.Amount.StringFixed(0), t.Description)

	res := toTransactionResponse(t)
	s.hub.Publish(websocket.EventTransactionAdded, res)
	return res, nil
}

// Delete removes an entry by id. Deleting an unknown id succeeds silently.
func (s *ledgerService) Delete(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid transaction id: %w", err)
	}

	s.ledgerRepo.Remove(parsed)
	s.log.Infof("Transaction removed: %s", id)
	s.hub.Publish(websocket.EventTransactionRemoved, map[string]string{"id": id})
	return nil
}

// List returns entries newest first, filtered by a case-insensitive
// substring match on description when search is non-empty.
func (s *ledgerService) List(search string) []TransactionResponse {
	entries := s.ledgerRepo.Search(search)
	out := make([]TransactionResponse, 0, len(entries))
	for _, t := range entries {
		out = append(out, toTransactionResponse(t))
	}
	return out
}

// Entries exposes the raw ledger for aggregation consumers.
func (s *ledgerService) Entries() []model.Transaction {
	return s.ledgerRepo.List()
}

func toTransactionResponse(t model.Transaction) TransactionResponse {
	res := TransactionResponse{
		ID:          t.ID.String(),
		Date:        t.Date.Format("2006-01-02"),
		Description: t.Description,
		Amount:      t.Amount.StringFixed(0),
		Type:        t.Type,
		HasInvoice:  t.HasInvoice,
	}
	if t.Type == model.TypeIncome {
		res.TaxGroupID = int(t.TaxGroupID)
		res.TaxGroupName = tax.GroupShortName(t.TaxGroupID)
	} else {
		res.ExpenseCategory = t.ExpenseCategory
		if name, ok := model.ExpenseCategoryNames[t.ExpenseCategory]; ok {
			res.CategoryName = name
		} else {
			res.CategoryName = model.ExpenseCategoryNames[model.CategoryOther]
		}
	}
	return res
}
