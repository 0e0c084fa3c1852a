package models

// Request bodies bound and validated by the handlers.

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,is-user-role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreatePlanRequest struct {
	Name          string   `json:"name" validate:"required"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	Duration      int      `json:"duration" validate:"required,gt=0"`
	LimitPerMonth int      `json:"limitPerMonth" validate:"required,gt=0"`
	Features      []string `json:"features"`
}

type UpdatePlanRequest struct {
	Name          string   `json:"name" validate:"required"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	Duration      int      `json:"duration" validate:"required,gt=0"`
	LimitPerMonth int      `json:"limitPerMonth" validate:"required,gt=0"`
	Features      []string `json:"features"`
}

type PurchaseSubscriptionRequest struct {
	PlanID string `json:"planId" validate:"required"`
}

type CreateJobRequest struct {
	Title               string   `json:"title" validate:"required"`
	Salary              string   `json:"salary" validate:"required"`
	Category            string   `json:"category"`
	Industry            string   `json:"industry"`
	Location            string   `json:"location" validate:"required"`
	Description         string   `json:"description" validate:"required,min=10"`
	Requirements        *string  `json:"requirements"`
	Benefits            []string `json:"benefits"`
	Highlights          []string `json:"highlights"`
	CareerOpportunities []string `json:"careerOpportunities"`
}

type UpdateJobRequest struct {
	Title               string   `json:"title" validate:"required"`
	Salary              string   `json:"salary" validate:"required"`
	Industry            string   `json:"industry" validate:"required"`
	Location            string   `json:"location" validate:"required"`
	Description         string   `json:"description" validate:"required,min=10"`
	Requirements        *string  `json:"requirements"`
	Benefits            []string `json:"benefits"`
	Highlights          []string `json:"highlights"`
	CareerOpportunities []string `json:"careerOpportunities"`
}

type ApplyRequest struct {
	CoverLetter string `json:"coverLetter" validate:"required,min=20"`
}

type ShortlistRequest struct {
	IsShortlisted *bool `json:"isShortlisted" validate:"required"`
}

type NameRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateProfileRequest struct {
	// Employer fields
	CompanyName    string `json:"companyName"`
	CompanyWebsite string `json:"companyWebsite"`
	CompanyAddress string `json:"companyAddress"`
	CompanyBio     string `json:"companyBio"`

	// Job seeker fields
	Skills    string `json:"skills"`
	Bio       string `json:"bio"`
	ResumeURL string `json:"resumeUrl"`
}

type UpdateEmployerRequest struct {
	CompanyName    string  `json:"companyName"`
	CompanyWebsite string  `json:"companyWebsite"`
	CompanyAddress string  `json:"companyAddress"`
	VerifiedStatus *bool   `json:"verifiedStatus"`
	UserName       *string `json:"userName"`
}

type DeleteByIDRequest struct {
	ID string `json:"id" validate:"required"`
}
