package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/megane-nerdo/skillhubnext/internal/models"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	CreateApplication(ctx context.Context, app *models.Application) error
	FindApplicationByID(ctx context.Context, id string) (*models.Application, error)
	FindApplicationByJobAndSeeker(ctx context.Context, jobID, jobSeekerID string) (*models.Application, error)
	ListApplicationsByJob(ctx context.Context, jobID string) ([]models.Application, error)
	ListApplicationsBySeeker(ctx context.Context, jobSeekerID string) ([]models.Application, error)
	UpdateApplication(ctx context.Context, app *models.Application) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) CreateApplication(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepository) FindApplicationByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Job.Employer").
		Preload("JobSeeker").
		Preload("JobSeeker.User").
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindApplicationByJobAndSeeker(ctx context.Context, jobID, jobSeekerID string) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Where("job_id = ? AND job_seeker_id = ?", jobID, jobSeekerID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) ListApplicationsByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Preload("JobSeeker").
		Preload("JobSeeker.User").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) ListApplicationsBySeeker(ctx context.Context, jobSeekerID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Job.Employer").
		Where("job_seeker_id = ?", jobSeekerID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) UpdateApplication(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Save(app).Error
}
