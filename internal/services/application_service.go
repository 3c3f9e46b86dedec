package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobboard/internal/apperr"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

// ApplicationView is the denormalized read model returned after applying:
// the job and applicant come back as full objects, not bare ids. The stored
// row stays normalized.
type ApplicationView struct {
	ID          uint                 `json:"id"`
	Job         models.Job           `json:"job"`
	Applicant   models.SeekerProfile `json:"applicant"`
	CoverLetter string               `json:"cover_letter"`
	Status      string               `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

type ApplicationService struct {
	DB        *gorm.DB
	Ownership *OwnershipService
}

func NewApplicationService(db *gorm.DB, ownership *OwnershipService) *ApplicationService {
	return &ApplicationService{DB: db, Ownership: ownership}
}

// Apply creates an application for the caller's own seeker profile. The
// applicant field always comes from the ownership lookup; an applicant id in
// the request body is ignored. Unlike the self-service profile flow there is
// no auto-provisioning here.
func (s *ApplicationService) Apply(user *models.User, req *dtos.ApplicationRequest) (*ApplicationView, error) {
	profile, err := s.Ownership.SeekerProfileOf(user)
	if err != nil {
		var nf *apperr.NotFoundError
		if errors.As(err, &nf) {
			return nil, apperr.Validation("applicant", "The user does not have an associated seeker profile.")
		}
		return nil, err
	}

	var job models.Job
	err = s.DB.Preload("Company").First(&job, req.JobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("job")
	}
	if err != nil {
		return nil, err
	}

	application := models.Application{
		JobID:       job.ID,
		ApplicantID: profile.ID,
		CoverLetter: req.CoverLetter,
		Status:      "applied",
	}
	if err := s.DB.Create(&application).Error; err != nil {
		return nil, err
	}

	return s.view(&application, &job, profile)
}

// ListFor returns applications visible to the principal: a seeker sees its
// own, a company sees applications to its own jobs, an admin sees all.
func (s *ApplicationService) ListFor(user *models.User) ([]ApplicationView, error) {
	query := s.DB.Model(&models.Application{}).Order("applications.id DESC")

	switch user.Role {
	case models.RoleJobSeeker:
		profile, err := s.Ownership.SeekerProfileOf(user)
		if err != nil {
			var nf *apperr.NotFoundError
			if errors.As(err, &nf) {
				return []ApplicationView{}, nil
			}
			return nil, err
		}
		query = query.Where("applicant_id = ?", profile.ID)

	case models.RoleCompany:
		company, err := s.Ownership.CompanyOf(user)
		if err != nil {
			var nf *apperr.NotFoundError
			if errors.As(err, &nf) {
				return []ApplicationView{}, nil
			}
			return nil, err
		}
		query = query.Joins("JOIN jobs ON jobs.id = applications.job_id").
			Where("jobs.company_id = ?", company.ID)
	}

	var applications []models.Application
	if err := query.Find(&applications).Error; err != nil {
		return nil, err
	}

	views := make([]ApplicationView, 0, len(applications))
	for i := range applications {
		v, err := s.expand(&applications[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (s *ApplicationService) expand(application *models.Application) (*ApplicationView, error) {
	var job models.Job
	if err := s.DB.Preload("Company").First(&job, application.JobID).Error; err != nil {
		return nil, err
	}
	var profile models.SeekerProfile
	if err := s.DB.First(&profile, application.ApplicantID).Error; err != nil {
		return nil, err
	}
	return s.view(application, &job, &profile)
}

func (s *ApplicationService) view(application *models.Application, job *models.Job, profile *models.SeekerProfile) (*ApplicationView, error) {
	// Attach the profile's user so the applicant block is self-contained.
	if err := s.DB.First(&profile.User, profile.UserID).Error; err != nil {
		return nil, err
	}
	return &ApplicationView{
		ID:          application.ID,
		Job:         *job,
		Applicant:   *profile,
		CoverLetter: application.CoverLetter,
		Status:      application.Status,
		CreatedAt:   application.CreatedAt,
	}, nil
}
