package services

import (
	"context"
	"errors"
	"time"

	"github.com/megane-nerdo/skillhubnext/internal/logger"
	"github.com/megane-nerdo/skillhubnext/internal/models"
	"github.com/megane-nerdo/skillhubnext/internal/repositories"
	"github.com/megane-nerdo/skillhubnext/pkg/apperrors"
)

type JobService interface {
	CreateJob(ctx context.Context, caller models.Caller, req *models.CreateJobRequest, now time.Time) (*models.Job, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	ListMyJobs(ctx context.Context, caller models.Caller) ([]models.Job, error)
	UpdateJob(ctx context.Context, caller models.Caller, id string, req *models.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, caller models.Caller, id string) error
}

type jobService struct {
	jobs    repositories.JobRepository
	users   repositories.UserRepository
	catalog repositories.CatalogRepository
	subs    SubscriptionService
}

func NewJobService(
	jobs repositories.JobRepository,
	users repositories.UserRepository,
	catalog repositories.CatalogRepository,
	subs SubscriptionService,
) JobService {
	return &jobService{jobs: jobs, users: users, catalog: catalog, subs: subs}
}

// CreateJob posts a new job for the calling employer. The entitlement check
// runs here on the write path, so a stale or forged client cannot post
// without an unexpired subscription.
func (s *jobService) CreateJob(ctx context.Context, caller models.Caller, req *models.CreateJobRequest, now time.Time) (*models.Job, error) {
	employer, err := s.users.FindEmployerByUserID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployerNotFound) {
			return nil, apperrors.ErrNotFound(err, "Employer profile not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to load employer", 500)
	}

	entitlement, err := s.subs.CheckEntitlement(ctx, employer.ID, now)
	if err != nil {
		return nil, err
	}
	if !entitlement.Valid {
		logger.CtxWarn(ctx, "job post refused: no active subscription", "employer_id", employer.ID)
		return nil, apperrors.ErrSubscriptionRequired
	}

	job := &models.Job{
		Title:               req.Title,
		Salary:              req.Salary,
		Location:            req.Location,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Benefits:            req.Benefits,
		Highlights:          req.Highlights,
		CareerOpportunities: req.CareerOpportunities,
		EmployerID:          employer.ID,
	}

	if req.Category != "" {
		category, err := s.findOrCreateCategory(ctx, req.Category)
		if err != nil {
			return nil, err
		}
		job.CategoryID = &category.ID
	}
	if req.Industry != "" {
		industry, err := s.findOrCreateIndustry(ctx, req.Industry)
		if err != nil {
			return nil, err
		}
		job.IndustryID = &industry.ID
	}

	if err := s.jobs.CreateJob(ctx, job); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to create job", 500)
	}

	logger.CtxInfo(ctx, "job created", "job_id", job.ID, "employer_id", employer.ID)
	return job, nil
}

func (s *jobService) GetJob(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.jobs.FindJobByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "Job not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to load job", 500)
	}
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobs.ListJobs(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to list jobs", 500)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

func (s *jobService) ListMyJobs(ctx context.Context, caller models.Caller) ([]models.Job, error) {
	employer, err := s.users.FindEmployerByUserID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployerNotFound) {
			return nil, apperrors.ErrNotFound(err, "Employer profile not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to load employer", 500)
	}

	jobs, err := s.jobs.ListJobsByEmployer(ctx, employer.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to list jobs", 500)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

func (s *jobService) UpdateJob(ctx context.Context, caller models.Caller, id string, req *models.UpdateJobRequest) (*models.Job, error) {
	job, err := s.authorizeJobOwner(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Salary = req.Salary
	job.Location = req.Location
	job.Description = req.Description
	job.Requirements = req.Requirements
	job.Benefits = req.Benefits
	job.Highlights = req.Highlights
	job.CareerOpportunities = req.CareerOpportunities

	industry, err := s.findOrCreateIndustry(ctx, req.Industry)
	if err != nil {
		return nil, err
	}
	job.IndustryID = &industry.ID

	// Save the row without dragging preloaded relations back through gorm.
	job.Employer = nil
	job.Category = nil
	job.Industry = nil
	if err := s.jobs.UpdateJob(ctx, job); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to update job", 500)
	}
	job.Industry = industry

	logger.CtxInfo(ctx, "job updated", "job_id", job.ID)
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, caller models.Caller, id string) error {
	if _, err := s.authorizeJobOwner(ctx, caller, id); err != nil {
		return err
	}

	if err := s.jobs.DeleteJob(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err, "Job not found")
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to delete job", 500)
	}

	logger.CtxInfo(ctx, "job deleted", "job_id", id)
	return nil
}

// authorizeJobOwner loads the job and verifies the caller owns it. Admins
// bypass the ownership check.
func (s *jobService) authorizeJobOwner(ctx context.Context, caller models.Caller, jobID string) (*models.Job, error) {
	job, err := s.jobs.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "Job not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to load job", 500)
	}

	if caller.Role == models.UserRoleAdmin {
		return job, nil
	}

	employer, err := s.users.FindEmployerByUserID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployerNotFound) {
			return nil, apperrors.ErrNotJobOwner
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to load employer", 500)
	}
	if job.EmployerID != employer.ID {
		return nil, apperrors.ErrNotJobOwner
	}
	return job, nil
}

func (s *jobService) findOrCreateCategory(ctx context.Context, name string) (*models.Category, error) {
	category, err := s.catalog.FindCategoryByName(ctx, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to load category", 500)
	}

	category = &models.Category{Name: name}
	if err := s.catalog.CreateCategory(ctx, category); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to create category", 500)
	}
	return category, nil
}

func (s *jobService) findOrCreateIndustry(ctx context.Context, name string) (*models.Industry, error) {
	industry, err := s.catalog.FindIndustryByName(ctx, name)
	if err == nil {
		return industry, nil
	}
	if !errors.Is(err, repositories.ErrIndustryNotFound) {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to load industry", 500)
	}

	industry = &models.Industry{Name: name}
	if err := s.catalog.CreateIndustry(ctx, industry); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to create industry", 500)
	}
	return industry, nil
}
