package models

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Relations
	Employer  *Employer  `gorm:"foreignKey:UserID" json:"employer,omitempty"`
	JobSeeker *JobSeeker `gorm:"foreignKey:UserID" json:"jobSeeker,omitempty"`
}

// Employer is the role profile for accounts that post jobs. Its id is the
// join key into the subscription ledger.
type Employer struct {
	BaseModel
	UserID         string `gorm:"not null;uniqueIndex" json:"userId"`
	CompanyName    string `json:"companyName"`
	CompanyWebsite string `json:"companyWebsite"`
	CompanyAddress string `json:"companyAddress"`
	CompanyBio     string `json:"companyBio"`
	VerifiedStatus bool   `gorm:"default:false" json:"verifiedStatus"`

	// Relations
	User          *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Subscriptions []Subscription `gorm:"foreignKey:EmployerID" json:"subscriptions,omitempty"`
}

type JobSeeker struct {
	BaseModel
	UserID    string `gorm:"not null;uniqueIndex" json:"userId"`
	Skills    string `json:"skills"`
	Bio       string `json:"bio"`
	ResumeURL string `json:"resumeUrl"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
