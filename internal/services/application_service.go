package services

import (
	"context"
	"errors"

	"github.com/megane-nerdo/skillhubnext/internal/logger"
	"github.com/megane-nerdo/skillhubnext/internal/models"
	"github.com/megane-nerdo/skillhubnext/internal/repositories"
	"github.com/megane-nerdo/skillhubnext/pkg/apperrors"
)

type ApplicationService interface {
	Apply(ctx context.Context, caller models.Caller, jobID string, req *models.ApplyRequest) (*models.Application, error)
	GetApplication(ctx context.Context, caller models.Caller, id string) (*models.Application, error)
	ListApplicationsForJob(ctx context.Context, caller models.Caller, jobID string) ([]models.Application, error)
	ListMyApplications(ctx context.Context, caller models.Caller) ([]models.Application, error)
	SetShortlist(ctx context.Context, caller models.Caller, applicationID string, shortlisted bool) (*models.Application, error)
}

type applicationService struct {
	apps  repositories.ApplicationRepository
	jobs  repositories.JobRepository
	users repositories.UserRepository
}

func NewApplicationService(
	apps repositories.ApplicationRepository,
	jobs repositories.JobRepository,
	users repositories.UserRepository,
) ApplicationService {
	return &applicationService{apps: apps, jobs: jobs, users: users}
}

// Apply submits an application for the calling job seeker. One application
// per seeker per job.
func (s *applicationService) Apply(ctx context.Context, caller models.Caller, jobID string, req *models.ApplyRequest) (*models.Application, error) {
	seeker, err := s.users.FindJobSeekerByUserID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobSeekerNotFound) {
			return nil, apperrors.ErrNotFound(err, "Job seeker profile not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "application", "Failed to load job seeker", 500)
	}

	if _, err := s.jobs.FindJobByID(ctx, jobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "Job not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "application", "Failed to load job", 500)
	}

	if _, err := s.apps.FindApplicationByJobAndSeeker(ctx, jobID, seeker.ID); err == nil {
		return nil, apperrors.ErrDuplicateApplication
	} else if !errors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "application", "Failed to check existing application", 500)
	}

	app := &models.Application{
		JobID:       jobID,
		JobSeekerID: seeker.ID,
		CoverLetter: req.CoverLetter,
	}
	if err := s.apps.CreateApplication(ctx, app); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "application", "Failed to create application", 500)
	}

	logger.CtxInfo(ctx, "application submitted", "application_id", app.ID, "job_id", jobID)
	return app, nil
}

// GetApplication returns one application. The owning seeker, the employer
// of the job, and admins may read it.
func (s *applicationService) GetApplication(ctx context.Context, caller models.Caller, id string) (*models.Application, error) {
	app, err := s.apps.FindApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "Application not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "application", "Failed to load application", 500)
	}

	if err := s.authorizeApplicationRead(ctx, caller, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *applicationService) ListApplicationsForJob(ctx context.Context, caller models.Caller, jobID string) ([]models.Application, error) {
	job, err := s.jobs.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "Job not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "application", "Failed to load job", 500)
	}

	if caller.Role != models.UserRoleAdmin {
		employer, err := s.users.FindEmployerByUserID(ctx, caller.ID)
		if err != nil || job.EmployerID != employer.ID {
			return nil, apperrors.ErrNotJobOwner
		}
	}

	apps, err := s.apps.ListApplicationsByJob(ctx, jobID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "application", "Failed to list applications", 500)
	}
	if apps == nil {
		apps = []models.Application{}
	}
	return apps, nil
}

func (s *applicationService) ListMyApplications(ctx context.Context, caller models.Caller) ([]models.Application, error) {
	seeker, err := s.users.FindJobSeekerByUserID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobSeekerNotFound) {
			return nil, apperrors.ErrNotFound(err, "Job seeker profile not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "application", "Failed to load job seeker", 500)
	}

	apps, err := s.apps.ListApplicationsBySeeker(ctx, seeker.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "application", "Failed to list applications", 500)
	}
	if apps == nil {
		apps = []models.Application{}
	}
	return apps, nil
}

// SetShortlist toggles the shortlist flag. Only the employer who owns the
// job (or an admin) may shortlist its applicants.
func (s *applicationService) SetShortlist(ctx context.Context, caller models.Caller, applicationID string, shortlisted bool) (*models.Application, error) {
	app, err := s.apps.FindApplicationByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "Application not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "application", "Failed to load application", 500)
	}

	if caller.Role != models.UserRoleAdmin {
		employer, err := s.users.FindEmployerByUserID(ctx, caller.ID)
		if err != nil || app.Job == nil || app.Job.EmployerID != employer.ID {
			return nil, apperrors.ErrNotJobOwner
		}
	}

	app.IsShortlisted = shortlisted
	if err := s.apps.UpdateApplication(ctx, app); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "application", "Failed to update application", 500)
	}

	logger.CtxInfo(ctx, "application shortlist updated",
		"application_id", app.ID,
		"is_shortlisted", shortlisted,
	)
	return app, nil
}

func (s *applicationService) authorizeApplicationRead(ctx context.Context, caller models.Caller, app *models.Application) error {
	switch caller.Role {
	case models.UserRoleAdmin:
		return nil
	case models.UserRoleJobSeeker:
		seeker, err := s.users.FindJobSeekerByUserID(ctx, caller.ID)
		if err == nil && app.JobSeekerID == seeker.ID {
			return nil
		}
	case models.UserRoleEmployer:
		employer, err := s.users.FindEmployerByUserID(ctx, caller.ID)
		if err == nil && app.Job != nil && app.Job.EmployerID == employer.ID {
			return nil
		}
	}
	return apperrors.NewForbiddenError("Unauthorized to view this application")
}
