package dtos

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"required,oneof=company job_seeker admin"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Only meaningful when role is "company"
	CompanyTitle       string `json:"company_title"`
	CompanyLocation    string `json:"company_location"`
	CompanyDescription string `json:"company_description"`
	CompanyWebsite     string `json:"company_website"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
