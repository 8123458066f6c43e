package repository

import (
	"strings"
	"sync"

	"github.com/decryptorventure/taxgo-app/internal/model"
	"github.com/google/uuid"
)

// LedgerRepository is the session ledger: an ordered, newest-first sequence
// of transactions. There is no persistence layer behind it; entries live for
// the process lifetime only.
type LedgerRepository interface {
	Add(t model.Transaction) model.Transaction
	Remove(id uuid.UUID)
	List() []model.Transaction
	Search(keyword string) []model.Transaction
}

type ledgerRepository struct {
	mu      sync.RWMutex
	entries []model.Transaction
}

// NewLedgerRepository creates an in-memory ledger, optionally pre-filled
// with seed entries (newest first, same order as given).
func NewLedgerRepository(seed []model.Transaction) LedgerRepository {
	entries := make([]model.Transaction, len(seed))
	copy(entries, seed)
	return &ledgerRepository{entries: entries}
}

// Add inserts at the front and assigns an id when the caller left it zero.
func (r *ledgerRepository) Add(t model.Transaction) model.Transaction {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append([]model.Transaction{t}, r.entries...)
	return t
}

// Remove deletes the entry with the given id. Removing an absent id is a
// no-op, not an error.
func (r *ledgerRepository) Remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.entries {
		if t.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

// List returns a copy of all entries, newest first.
func (r *ledgerRepository) List() []model.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Transaction, len(r.entries))
	copy(out, r.entries)
	return out
}

// Search returns entries whose description contains keyword,
// case-insensitively. An empty keyword matches everything.
func (r *ledgerRepository) Search(keyword string) []model.Transaction {
	keyword = strings.ToLower(keyword)

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Transaction, 0, len(r.entries))
	for _, t := range r.entries {
		if keyword == "" || strings.Contains(strings.ToLower(t.Description), keyword) {
			out = append(out, t)
		}
	}
	return out
}
