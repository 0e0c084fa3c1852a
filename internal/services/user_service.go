package services

import (
	"context"
	"errors"

	"github.com/megane-nerdo/skillhubnext/internal/logger"
	"github.com/megane-nerdo/skillhubnext/internal/models"
	"github.com/megane-nerdo/skillhubnext/internal/repositories"
	"github.com/megane-nerdo/skillhubnext/pkg/apperrors"
)

// ProfileResponse is the role-shaped profile returned to the account owner.
type ProfileResponse struct {
	User      *models.User      `json:"user"`
	Employer  *models.Employer  `json:"employer,omitempty"`
	JobSeeker *models.JobSeeker `json:"jobSeeker,omitempty"`
}

type UserService interface {
	GetProfile(ctx context.Context, caller models.Caller) (*ProfileResponse, error)
	UpdateProfile(ctx context.Context, caller models.Caller, req *models.UpdateProfileRequest) (*ProfileResponse, error)

	ListEmployers(ctx context.Context) ([]models.Employer, error)
	GetEmployer(ctx context.Context, id string) (*models.Employer, error)
	UpdateEmployerByAdmin(ctx context.Context, id string, req *models.UpdateEmployerRequest) (*models.Employer, error)
	DeleteEmployer(ctx context.Context, id string) error

	ListJobSeekers(ctx context.Context) ([]models.JobSeeker, error)
	DeleteJobSeeker(ctx context.Context, id string) error
}

type userService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetProfile(ctx context.Context, caller models.Caller) (*ProfileResponse, error) {
	user, err := s.users.FindUserByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "User not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "user", "Failed to load user", 500)
	}

	resp := &ProfileResponse{User: user}
	switch user.Role {
	case models.UserRoleEmployer:
		employer, err := s.users.FindEmployerByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, repositories.ErrEmployerNotFound) {
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "user", "Failed to load employer profile", 500)
		}
		resp.Employer = employer
	case models.UserRoleJobSeeker:
		seeker, err := s.users.FindJobSeekerByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, repositories.ErrJobSeekerNotFound) {
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "user", "Failed to load job seeker profile", 500)
		}
		resp.JobSeeker = seeker
	}
	return resp, nil
}

// UpdateProfile applies the fields matching the caller's role and ignores
// the rest of the body.
func (s *userService) UpdateProfile(ctx context.Context, caller models.Caller, req *models.UpdateProfileRequest) (*ProfileResponse, error) {
	switch caller.Role {
	case models.UserRoleEmployer:
		employer, err := s.users.FindEmployerByUserID(ctx, caller.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrEmployerNotFound) {
				return nil, apperrors.ErrNotFound(err, "Employer profile not found")
			}
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "user", "Failed to load employer profile", 500)
		}

		if req.CompanyName != "" {
			employer.CompanyName = req.CompanyName
		}
		if req.CompanyWebsite != "" {
			employer.CompanyWebsite = req.CompanyWebsite
		}
		if req.CompanyAddress != "" {
			employer.CompanyAddress = req.CompanyAddress
		}
		if req.CompanyBio != "" {
			employer.CompanyBio = req.CompanyBio
		}
		if err := s.users.UpdateEmployer(ctx, employer); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "user", "Failed to update employer profile", 500)
		}

	case models.UserRoleJobSeeker:
		seeker, err := s.users.FindJobSeekerByUserID(ctx, caller.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrJobSeekerNotFound) {
				return nil, apperrors.ErrNotFound(err, "Job seeker profile not found")
			}
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "user", "Failed to load job seeker profile", 500)
		}

		if req.Skills != "" {
			seeker.Skills = req.Skills
		}
		if req.Bio != "" {
			seeker.Bio = req.Bio
		}
		if req.ResumeURL != "" {
			seeker.ResumeURL = req.ResumeURL
		}
		if err := s.users.UpdateJobSeeker(ctx, seeker); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "user", "Failed to update job seeker profile", 500)
		}
	}

	logger.CtxInfo(ctx, "profile updated", "user_id", caller.ID, "role", caller.Role)
	return s.GetProfile(ctx, caller)
}

func (s *userService) ListEmployers(ctx context.Context) ([]models.Employer, error) {
	employers, err := s.users.ListEmployers(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "user", "Failed to list employers", 500)
	}
	if employers == nil {
		employers = []models.Employer{}
	}
	return employers, nil
}

func (s *userService) GetEmployer(ctx context.Context, id string) (*models.Employer, error) {
	employer, err := s.users.FindEmployerByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployerNotFound) {
			return nil, apperrors.ErrNotFound(err, "Employer not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "user", "Failed to load employer", 500)
	}
	return employer, nil
}

func (s *userService) UpdateEmployerByAdmin(ctx context.Context, id string, req *models.UpdateEmployerRequest) (*models.Employer, error) {
	employer, err := s.users.FindEmployerByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployerNotFound) {
			return nil, apperrors.ErrNotFound(err, "Employer not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "user", "Failed to load employer", 500)
	}

	if req.CompanyName != "" {
		employer.CompanyName = req.CompanyName
	}
	if req.CompanyWebsite != "" {
		employer.CompanyWebsite = req.CompanyWebsite
	}
	if req.CompanyAddress != "" {
		employer.CompanyAddress = req.CompanyAddress
	}
	if req.VerifiedStatus != nil {
		employer.VerifiedStatus = *req.VerifiedStatus
	}
	if req.UserName != nil {
		if err := s.users.UpdateUserName(ctx, employer.UserID, *req.UserName); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "user", "Failed to update user name", 500)
		}
	}

	// Save the profile without dragging preloaded relations back through gorm.
	employer.User = nil
	employer.Subscriptions = nil
	if err := s.users.UpdateEmployer(ctx, employer); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "user", "Failed to update employer", 500)
	}

	logger.CtxInfo(ctx, "employer updated by admin", "employer_id", employer.ID)
	return s.users.FindEmployerByID(ctx, employer.ID)
}

func (s *userService) DeleteEmployer(ctx context.Context, id string) error {
	if err := s.users.DeleteEmployer(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEmployerNotFound) {
			return apperrors.ErrNotFound(err, "Employer not found")
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "user", "Failed to delete employer", 500)
	}
	logger.CtxInfo(ctx, "employer deleted", "employer_id", id)
	return nil
}

func (s *userService) ListJobSeekers(ctx context.Context) ([]models.JobSeeker, error) {
	seekers, err := s.users.ListJobSeekers(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "user", "Failed to list job seekers", 500)
	}
	if seekers == nil {
		seekers = []models.JobSeeker{}
	}
	return seekers, nil
}

func (s *userService) DeleteJobSeeker(ctx context.Context, id string) error {
	if err := s.users.DeleteJobSeeker(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrJobSeekerNotFound) {
			return apperrors.ErrNotFound(err, "Job seeker not found")
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "user", "Failed to delete job seeker", 500)
	}
	logger.CtxInfo(ctx, "job seeker deleted", "job_seeker_id", id)
	return nil
}
