package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/megane-nerdo/skillhubnext/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	CreateJob(ctx context.Context, job *models.Job) error
	FindJobByID(ctx context.Context, id string) (*models.Job, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	ListJobsByEmployer(ctx context.Context, employerID string) ([]models.Job, error)
	UpdateJob(ctx context.Context, job *models.Job) error
	DeleteJob(ctx context.Context, id string) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) CreateJob(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) FindJobByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).
		Preload("Employer").
		Preload("Category").
		Preload("Industry").
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) ListJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Preload("Employer").
		Preload("Category").
		Preload("Industry").
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) ListJobsByEmployer(ctx context.Context, employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Industry").
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) UpdateJob(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *jobRepository) DeleteJob(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
