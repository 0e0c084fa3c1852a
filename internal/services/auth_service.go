package services

import (
	"context"
	"errors"

	"github.com/megane-nerdo/skillhubnext/internal/auth"
	"github.com/megane-nerdo/skillhubnext/internal/logger"
	"github.com/megane-nerdo/skillhubnext/internal/models"
	"github.com/megane-nerdo/skillhubnext/internal/repositories"
	"github.com/megane-nerdo/skillhubnext/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, *models.User, error)
}

type authService struct {
	users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) AuthService {
	return &authService{users: users}
}

// Register creates the account and its role profile in one step, so every
// employer row exists before the first subscription purchase.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if _, err := s.users.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrAlreadyExists("auth", "Email is already registered")
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to check email", 500)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.UserRole(req.Role),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to create user", 500)
	}

	switch user.Role {
	case models.UserRoleEmployer:
		employer := &models.Employer{
			UserID:      user.ID,
			CompanyName: "Your Company",
		}
		if err := s.users.CreateEmployer(ctx, employer); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to create employer profile", 500)
		}
		user.Employer = employer
	case models.UserRoleJobSeeker:
		seeker := &models.JobSeeker{UserID: user.ID}
		if err := s.users.CreateJobSeeker(ctx, seeker); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to create job seeker profile", 500)
		}
		user.JobSeeker = seeker
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, *models.User, error) {
	user, err := s.users.FindUserByEmailWithProfiles(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "auth", "Failed to load user", 500)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return "", nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)
	return token, user, nil
}
