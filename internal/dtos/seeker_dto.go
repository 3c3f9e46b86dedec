package dtos

// ProfileUpdateRequest is a partial update; only non-nil fields are applied.
type ProfileUpdateRequest struct {
	Headline *string `json:"headline"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
	About    *string `json:"about"`
}

type ExperienceRequest struct {
	Title       string `json:"title" binding:"required"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// ExperienceUpdateRequest is a partial update; only non-nil fields are applied.
type ExperienceUpdateRequest struct {
	Title       *string `json:"title"`
	CompanyName *string `json:"company_name"`
	Location    *string `json:"location"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description *string `json:"description"`
}
