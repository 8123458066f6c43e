package repository

import (
	"sync"

	"github.com/decryptorventure/taxgo-app/internal/model"
)

type ProfileRepository interface {
	Get() model.UserProfile
	Update(p model.UserProfile) model.UserProfile
}

type profileRepository struct {
	mu      sync.RWMutex
	profile model.UserProfile
}

// NewProfileRepository creates an in-memory profile store with the given
// initial taxpayer record.
func NewProfileRepository(initial model.UserProfile) ProfileRepository {
	return &profileRepository{profile: initial}
}

func (r *profileRepository) Get() model.UserProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile
}

func (r *profileRepository) Update(p model.UserProfile) model.UserProfile {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = p
	return r.profile
}
