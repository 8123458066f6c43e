package service

import (
	"github.com/decryptorventure/taxgo-app/internal/model"
	"github.com/decryptorventure/taxgo-app/internal/repository"
)

// --- DTOs ---

type UpdateProfileRequest struct {
	Name    string `json:"name" binding:"required"`
	TaxCode string `json:"tax_code" binding:"required"`
	Address string `json:"address"`
}

// --- Interface ---

type ProfileService interface {
	Get() model.UserProfile
	Update(req UpdateProfileRequest) model.UserProfile
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) Get() model.UserProfile {
	return s.profileRepo.Get()
}

func (s *profileService) Update(req UpdateProfileRequest) model.UserProfile {
	return s.profileRepo.Update(model.UserProfile{
		Name:    req.Name,
		TaxCode: req.TaxCode,
		Address: req.Address,
	})
}
