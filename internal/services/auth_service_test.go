package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/megane-nerdo/skillhubnext/internal/auth"
	"github.com/megane-nerdo/skillhubnext/internal/config"
	"github.com/megane-nerdo/skillhubnext/internal/models"
	"github.com/megane-nerdo/skillhubnext/internal/repositories"
	"github.com/megane-nerdo/skillhubnext/pkg/apperrors"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestRegister_EmployerGetsProfile(t *testing.T) {
	var createdUser *models.User
	var createdEmployer *models.Employer
	userRepo := &mockUserRepo{
		findUserByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, repositories.ErrUserNotFound
		},
		createUserFn: func(ctx context.Context, user *models.User) error {
			user.ID = "user-1"
			createdUser = user
			return nil
		},
		createEmployerFn: func(ctx context.Context, employer *models.Employer) error {
			createdEmployer = employer
			return nil
		},
	}
	svc := NewAuthService(userRepo)

	user, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Aisha",
		Email:    "aisha@example.com",
		Password: "supersecret",
		Role:     string(models.UserRoleEmployer),
	})
	assert.NoError(t, err)
	assert.NotNil(t, createdUser)
	assert.NotNil(t, createdEmployer)
	assert.Equal(t, "user-1", createdEmployer.UserID)
	assert.Equal(t, "Your Company", createdEmployer.CompanyName)
	assert.Equal(t, models.UserRoleEmployer, user.Role)
	assert.NotEqual(t, "supersecret", user.PasswordHash)
}

func TestRegister_JobSeekerGetsProfile(t *testing.T) {
	var createdSeeker *models.JobSeeker
	userRepo := &mockUserRepo{
		findUserByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, repositories.ErrUserNotFound
		},
		createUserFn: func(ctx context.Context, user *models.User) error {
			user.ID = "user-2"
			return nil
		},
		createJobSeekerFn: func(ctx context.Context, seeker *models.JobSeeker) error {
			createdSeeker = seeker
			return nil
		},
	}
	svc := NewAuthService(userRepo)

	user, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Bekzat",
		Email:    "bekzat@example.com",
		Password: "supersecret",
		Role:     string(models.UserRoleJobSeeker),
	})
	assert.NoError(t, err)
	assert.NotNil(t, createdSeeker)
	assert.Equal(t, "user-2", createdSeeker.UserID)
	assert.Equal(t, createdSeeker, user.JobSeeker)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := &mockUserRepo{
		findUserByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{BaseModel: models.BaseModel{ID: "existing"}}, nil
		},
	}
	svc := NewAuthService(userRepo)

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Aisha",
		Email:    "aisha@example.com",
		Password: "supersecret",
		Role:     string(models.UserRoleEmployer),
	})
	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestLogin_Success(t *testing.T) {
	setTestConfig(t)

	hash, err := auth.HashPassword("supersecret")
	assert.NoError(t, err)

	userRepo := &mockUserRepo{
		findUserByEmailFullFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{
				BaseModel:    models.BaseModel{ID: "user-1"},
				Email:        email,
				PasswordHash: hash,
				Role:         models.UserRoleEmployer,
			}, nil
		},
	}
	svc := NewAuthService(userRepo)

	token, user, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "aisha@example.com",
		Password: "supersecret",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-1", user.ID)

	claims, err := auth.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, string(models.UserRoleEmployer), claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	setTestConfig(t)

	hash, _ := auth.HashPassword("supersecret")
	userRepo := &mockUserRepo{
		findUserByEmailFullFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(userRepo)

	_, _, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "aisha@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	setTestConfig(t)

	userRepo := &mockUserRepo{
		findUserByEmailFullFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, repositories.ErrUserNotFound
		},
	}
	svc := NewAuthService(userRepo)

	_, _, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
