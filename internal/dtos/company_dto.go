package dtos

type CompanyCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Website     string `json:"website"`

	// Ignored if supplied; the company always belongs to the caller.
	UserID uint `json:"user_id"`
}
