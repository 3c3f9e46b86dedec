package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard/internal/apperr"
	"jobboard/internal/models"
)

// OwnershipService resolves the profile entity a principal owns. Every
// ownership-scoped workflow goes through these lookups instead of trusting
// ids from the request body.
type OwnershipService struct {
	DB *gorm.DB
}

func NewOwnershipService(db *gorm.DB) *OwnershipService {
	return &OwnershipService{DB: db}
}

func (s *OwnershipService) CompanyOf(user *models.User) (*models.Company, error) {
	var company models.Company
	err := s.DB.Where("user_id = ?", user.ID).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("company")
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *OwnershipService) SeekerProfileOf(user *models.User) (*models.SeekerProfile, error) {
	var profile models.SeekerProfile
	err := s.DB.Where("user_id = ?", user.ID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("seeker profile")
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// EnsureSeekerProfile is the get-or-create variant used only by the
// self-service profile and upload flows. Job and application workflows
// require the profile to already exist.
func (s *OwnershipService) EnsureSeekerProfile(user *models.User) (*models.SeekerProfile, error) {
	var profile models.SeekerProfile
	err := s.DB.Where(models.SeekerProfile{UserID: user.ID}).FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
