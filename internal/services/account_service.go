package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"jobboard/internal/apperr"
	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

type AccountService struct {
	DB *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{DB: db}
}

// Register creates the account and its role profile in one transaction.
// A company account gets exactly one Company row, a job seeker exactly one
// SeekerProfile row, an admin neither. If the profile insert fails the
// account insert is rolled back with it.
func (s *AccountService) Register(req *dtos.RegisterRequest) (*models.User, error) {
	if req.Role == models.RoleCompany && strings.TrimSpace(req.CompanyTitle) == "" {
		return nil, apperr.Validation("company_title", "Company title is required when registering as a company.")
	}

	// Uniqueness is caller-fixable input, not an unexpected storage failure.
	var taken int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&taken).Error; err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, apperr.Validation("username", "A user with that username already exists.")
	}
	if err := s.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&taken).Error; err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, apperr.Validation("email", "A user with that email already exists.")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		switch user.Role {
		case models.RoleCompany:
			title := strings.TrimSpace(req.CompanyTitle)
			if title == "" {
				title = user.FullName()
			}
			description := req.CompanyDescription
			if description == "" {
				description = fmt.Sprintf("Welcome to %s!", title)
			}
			var website *string
			if req.CompanyWebsite != "" {
				website = &req.CompanyWebsite
			}
			company := models.Company{
				UserID:      user.ID,
				Title:       title,
				Location:    req.CompanyLocation,
				Description: description,
				Website:     website,
				IsActive:    false, // needs admin activation before it can post jobs
			}
			return tx.Create(&company).Error

		case models.RoleJobSeeker:
			profile := models.SeekerProfile{UserID: user.ID}
			return tx.Create(&profile).Error
		}

		// Any other role gets no profile side-effect.
		return nil
	})
	if err != nil {
		// Concurrent registrations can slip past the pre-check and hit the
		// unique index instead; that is still the caller's 400, not a 500.
		if isDuplicateErr(err) {
			return nil, apperr.Validation("username", "A user with that username or email already exists.")
		}
		return nil, err
	}
	return &user, nil
}

// isDuplicateErr matches unique-constraint violations across drivers:
// gorm's translated error, postgres "duplicate key", sqlite "UNIQUE
// constraint failed".
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}

// Login verifies credentials and issues a bearer token.
func (s *AccountService) Login(req *dtos.LoginRequest) (string, *models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		return "", nil, apperr.Validation("username", "Invalid username or password.")
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return "", nil, apperr.Validation("username", "Invalid username or password.")
	}
	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}
