package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard/internal/apperr"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

type JobService struct {
	DB        *gorm.DB
	Ownership *OwnershipService
}

func NewJobService(db *gorm.DB, ownership *OwnershipService) *JobService {
	return &JobService{DB: db, Ownership: ownership}
}

// Create posts a job on behalf of the caller's own company. The company
// foreign key always comes from the ownership lookup; a company id in the
// request body is ignored.
func (s *JobService) Create(user *models.User, req *dtos.JobCreationRequest) (*models.Job, error) {
	company, err := s.Ownership.CompanyOf(user)
	if err != nil {
		var nf *apperr.NotFoundError
		if errors.As(err, &nf) {
			return nil, apperr.Validation("company", "The user does not have an associated company.")
		}
		return nil, err
	}

	if !company.IsActive {
		return nil, apperr.Permission("The company approval is pending at the Admin.")
	}

	job := &models.Job{
		CompanyID:   company.ID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		SalaryRange: req.SalaryRange,
		JobType:     req.JobType,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	job.Company = *company
	return job, nil
}

// List returns all jobs with their company attached.
func (s *JobService) List() ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.Preload("Company").Order("id DESC").Find(&jobs).Error
	return jobs, err
}

func (s *JobService) Get(id uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.Preload("Company").First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("job")
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}
