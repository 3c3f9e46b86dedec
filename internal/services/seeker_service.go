package services

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"jobboard/internal/apperr"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
	"jobboard/internal/storage"
)

// Upload limits for resume files.
const (
	MaxResumeSize = 10 * 1024 * 1024 // 10 MiB
)

var allowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

type SeekerService struct {
	DB        *gorm.DB
	Ownership *OwnershipService
	Files     *storage.Store
}

func NewSeekerService(db *gorm.DB, ownership *OwnershipService, files *storage.Store) *SeekerService {
	return &SeekerService{DB: db, Ownership: ownership, Files: files}
}

// MyProfile returns the caller's seeker profile, creating an empty one if it
// doesn't exist yet. This path deliberately auto-provisions; job and
// application workflows do not.
func (s *SeekerService) MyProfile(user *models.User) (*models.SeekerProfile, error) {
	profile, err := s.Ownership.EnsureSeekerProfile(user)
	if err != nil {
		return nil, err
	}
	profile.User = *user
	return profile, nil
}

// UpdateMyProfile applies a partial update to the caller's profile.
func (s *SeekerService) UpdateMyProfile(user *models.User, req *dtos.ProfileUpdateRequest) (*models.SeekerProfile, error) {
	profile, err := s.Ownership.EnsureSeekerProfile(user)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Headline != nil {
		updates["headline"] = *req.Headline
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.About != nil {
		updates["about"] = *req.About
	}
	if len(updates) > 0 {
		if err := s.DB.Model(profile).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	profile.User = *user
	return profile, nil
}

// UploadResume validates the file, stores it and records a Resume row owned
// by the caller's profile (created on the fly if missing). Checks run in
// order and nothing is written until all of them pass.
func (s *SeekerService) UploadResume(user *models.User, header *multipart.FileHeader, titleOverride string) (*models.Resume, error) {
	if header == nil {
		return nil, apperr.Validation("resume", "No resume file provided")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedResumeExtensions[ext] {
		return nil, apperr.Validation("resume", "Invalid file type. Only PDF, DOC, and DOCX files are allowed.")
	}

	if header.Size > MaxResumeSize {
		return nil, apperr.Validation("resume", "File size too large. Maximum size is 10MB.")
	}

	profile, err := s.Ownership.EnsureSeekerProfile(user)
	if err != nil {
		return nil, err
	}

	title := titleOverride
	if title == "" {
		title = strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	path, url, err := s.Files.Save(header.Filename, file)
	if err != nil {
		return nil, err
	}

	resume := models.Resume{
		SeekerID:    profile.ID,
		ResumeTitle: title,
		FilePath:    path,
		ResumeURL:   url,
	}
	if err := s.DB.Create(&resume).Error; err != nil {
		s.Files.Remove(path)
		return nil, err
	}
	return &resume, nil
}

// Resumes lists the caller's own resumes, newest first. Scoping happens in
// the query itself, so other principals' rows are invisible rather than
// forbidden.
func (s *SeekerService) Resumes(user *models.User) ([]models.Resume, error) {
	profile, err := s.Ownership.SeekerProfileOf(user)
	if err != nil {
		var nf *apperr.NotFoundError
		if errors.As(err, &nf) {
			return []models.Resume{}, nil
		}
		return nil, err
	}
	var resumes []models.Resume
	err = s.DB.Where("seeker_id = ?", profile.ID).Order("id DESC").Find(&resumes).Error
	return resumes, err
}

func (s *SeekerService) Resume(user *models.User, id uint) (*models.Resume, error) {
	profile, err := s.Ownership.SeekerProfileOf(user)
	if err != nil {
		return nil, apperr.NotFound("resume")
	}
	var resume models.Resume
	err = s.DB.Where("id = ? AND seeker_id = ?", id, profile.ID).First(&resume).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("resume")
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

func (s *SeekerService) DeleteResume(user *models.User, id uint) error {
	resume, err := s.Resume(user, id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(resume).Error; err != nil {
		return err
	}
	return s.Files.Remove(resume.FilePath)
}

// Experiences lists the caller's own experience entries, newest first.
func (s *SeekerService) Experiences(user *models.User) ([]models.Experience, error) {
	profile, err := s.Ownership.SeekerProfileOf(user)
	if err != nil {
		var nf *apperr.NotFoundError
		if errors.As(err, &nf) {
			return []models.Experience{}, nil
		}
		return nil, err
	}
	var experiences []models.Experience
	err = s.DB.Where("seeker_id = ?", profile.ID).Order("id DESC").Find(&experiences).Error
	return experiences, err
}

func (s *SeekerService) CreateExperience(user *models.User, req *dtos.ExperienceRequest) (*models.Experience, error) {
	profile, err := s.Ownership.EnsureSeekerProfile(user)
	if err != nil {
		return nil, err
	}
	experience := models.Experience{
		SeekerID:    profile.ID,
		Title:       req.Title,
		CompanyName: req.CompanyName,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}
	if err := s.DB.Create(&experience).Error; err != nil {
		return nil, err
	}
	return &experience, nil
}

func (s *SeekerService) Experience(user *models.User, id uint) (*models.Experience, error) {
	profile, err := s.Ownership.SeekerProfileOf(user)
	if err != nil {
		return nil, apperr.NotFound("experience")
	}
	var experience models.Experience
	err = s.DB.Where("id = ? AND seeker_id = ?", id, profile.ID).First(&experience).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("experience")
	}
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

func (s *SeekerService) UpdateExperience(user *models.User, id uint, req *dtos.ExperienceUpdateRequest) (*models.Experience, error) {
	experience, err := s.Experience(user, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) > 0 {
		if err := s.DB.Model(experience).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return experience, nil
}

func (s *SeekerService) DeleteExperience(user *models.User, id uint) error {
	experience, err := s.Experience(user, id)
	if err != nil {
		return err
	}
	return s.DB.Delete(experience).Error
}
