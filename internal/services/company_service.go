package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard/internal/apperr"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

// CompanyView adds the read-only extras clients want alongside a company:
// a small owner block and the posted-job count.
type CompanyView struct {
	models.Company
	UserInfo  map[string]interface{} `json:"user_info"`
	TotalJobs int64                  `json:"total_jobs"`
}

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{DB: db}
}

// Create registers a company owned by the caller. Registration normally
// does this; the endpoint covers accounts that don't have one yet. The owner
// is always the caller and a fresh company starts inactive.
func (s *CompanyService) Create(user *models.User, req *dtos.CompanyCreationRequest) (*models.Company, error) {
	var existing int64
	if err := s.DB.Model(&models.Company{}).Where("user_id = ?", user.ID).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, apperr.Validation("company", "The user already has an associated company.")
	}

	var website *string
	if req.Website != "" {
		website = &req.Website
	}
	company := models.Company{
		UserID:      user.ID,
		Title:       req.Title,
		Location:    req.Location,
		Description: req.Description,
		Website:     website,
		IsActive:    false,
	}
	if err := s.DB.Create(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *CompanyService) List() ([]CompanyView, error) {
	var companies []models.Company
	if err := s.DB.Preload("User").Order("id DESC").Find(&companies).Error; err != nil {
		return nil, err
	}
	views := make([]CompanyView, 0, len(companies))
	for i := range companies {
		v, err := s.expand(&companies[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (s *CompanyService) Get(id uint) (*CompanyView, error) {
	var company models.Company
	err := s.DB.Preload("User").First(&company, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("company")
	}
	if err != nil {
		return nil, err
	}
	return s.expand(&company)
}

// Activate flips is_active on. Only an admin may do this; nothing in the
// posting workflow can self-activate a company.
func (s *CompanyService) Activate(admin *models.User, id uint) (*models.Company, error) {
	if admin.Role != models.RoleAdmin {
		return nil, apperr.Permission("Only an admin can activate a company.")
	}
	var company models.Company
	err := s.DB.First(&company, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("company")
	}
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(&company).Update("is_active", true).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *CompanyService) expand(company *models.Company) (*CompanyView, error) {
	var totalJobs int64
	if err := s.DB.Model(&models.Job{}).Where("company_id = ?", company.ID).Count(&totalJobs).Error; err != nil {
		return nil, err
	}
	return &CompanyView{
		Company: *company,
		UserInfo: map[string]interface{}{
			"id":        company.User.ID,
			"username":  company.User.Username,
			"full_name": company.User.FullName(),
			"email":     company.User.Email,
		},
		TotalJobs: totalJobs,
	}, nil
}
