package models

import (
	"time"

	"gorm.io/gorm"
)

// Account roles. Role is fixed at registration; there is no role-change path.
const (
	RoleCompany   = "company"
	RoleJobSeeker = "job_seeker"
	RoleAdmin     = "admin"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	// Only the bcrypt hash is stored, and it never leaves the API.
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null" json:"role"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// One company per account; the owner never changes after registration.
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `json:"user,omitempty"`

	Title       string  `gorm:"not null" json:"title"`
	Location    string  `json:"location"`
	Description string  `gorm:"type:text" json:"description"`
	Website     *string `json:"website"`
	// Starts false. Flipped only by an admin; an inactive company cannot post jobs.
	IsActive bool `gorm:"default:false" json:"is_active"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Company -> Jobs -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Set by the posting workflow from the caller's own company, never from input.
	CompanyID uint    `gorm:"not null" json:"company_id"`
	Company   Company `json:"company"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `json:"location"`
	SalaryRange string `json:"salary_range"`
	JobType     string `json:"job_type"`
}

type SeekerProfile struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `json:"user,omitempty"`

	Headline string `json:"headline"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	About    string `gorm:"type:text" json:"about"`
}

type Resume struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"date_created"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	SeekerID uint          `gorm:"not null;index" json:"seeker_id"`
	Seeker   SeekerProfile `json:"-"`

	ResumeTitle string `gorm:"not null" json:"resume_title"`
	// Path on disk; clients only ever see the public URL.
	FilePath  string `json:"-"`
	ResumeURL string `json:"resume_url"`
}

type Experience struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	SeekerID uint          `gorm:"not null;index" json:"seeker_id"`
	Seeker   SeekerProfile `json:"-"`

	Title       string `gorm:"not null" json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `gorm:"type:text" json:"description"`
}

type Application struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	JobID uint `gorm:"not null;index" json:"job_id"`
	Job   Job  `json:"-"`

	// Always the caller's own profile, never client-supplied.
	ApplicantID uint          `gorm:"not null;index" json:"applicant_id"`
	Applicant   SeekerProfile `json:"-"`

	CoverLetter string `gorm:"type:text" json:"cover_letter"`
	Status      string `gorm:"default:'applied'" json:"status"`
}
