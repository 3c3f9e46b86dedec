package dtos

type JobCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`

	// Optional Fields
	Location    string `json:"location"`
	SalaryRange string `json:"salary_range"`
	JobType     string `json:"job_type"`

	// Ignored if supplied; the job always belongs to the caller's company.
	CompanyID uint `json:"company_id"`
}

type ApplicationRequest struct {
	JobID       uint   `json:"job" binding:"required"`
	CoverLetter string `json:"cover_letter"`

	// Ignored if supplied; the applicant is always the caller's own profile.
	ApplicantID uint `json:"applicant"`
}
