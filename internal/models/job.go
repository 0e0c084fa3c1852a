package models

import (
	"gorm.io/datatypes"
)

type Category struct {
	BaseModel
	Name string `gorm:"not null" json:"name"`
}

type Industry struct {
	BaseModel
	Name string `gorm:"not null" json:"name"`
}

type Job struct {
	BaseModel
	Title               string                       `gorm:"not null" json:"title"`
	Salary              string                       `json:"salary"`
	Location            string                       `json:"location"`
	Description         string                       `gorm:"type:text" json:"description"`
	Requirements        *string                      `gorm:"type:text" json:"requirements"`
	Benefits            datatypes.JSONSlice[string]  `json:"benefits"`
	Highlights          datatypes.JSONSlice[string]  `json:"highlights"`
	CareerOpportunities datatypes.JSONSlice[string]  `json:"careerOpportunities"`
	EmployerID          string                       `gorm:"not null;index" json:"employerId"`
	CategoryID          *string                      `gorm:"type:uuid;index" json:"categoryId"`
	IndustryID          *string                      `gorm:"type:uuid;index" json:"industryId"`

	// Relations
	Employer *Employer `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Industry *Industry `gorm:"foreignKey:IndustryID" json:"industry,omitempty"`
}

type Application struct {
	BaseModel
	JobID         string `gorm:"not null;index" json:"jobId"`
	JobSeekerID   string `gorm:"not null;index" json:"jobSeekerId"`
	CoverLetter   string `gorm:"type:text;not null" json:"coverLetter"`
	IsShortlisted bool   `gorm:"default:false" json:"isShortlisted"`

	// Relations
	Job       *Job       `gorm:"foreignKey:JobID" json:"job,omitempty"`
	JobSeeker *JobSeeker `gorm:"foreignKey:JobSeekerID" json:"jobSeeker,omitempty"`
}
