package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/megane-nerdo/skillhubnext/internal/models"
	"github.com/megane-nerdo/skillhubnext/internal/repositories"
	"github.com/megane-nerdo/skillhubnext/pkg/apperrors"
)

func newJobServiceForTest(jobRepo *mockJobRepo, userRepo *mockUserRepo, catalogRepo *mockCatalogRepo, activeSubs []models.Subscription) JobService {
	subRepo := &mockSubscriptionRepo{
		findActiveSubscriptionFn: fakeActiveLookup(activeSubs),
	}
	subSvc := NewSubscriptionService(subRepo, userRepo)
	return NewJobService(jobRepo, userRepo, catalogRepo, subSvc)
}

func TestCreateJob_RefusedWithoutSubscription(t *testing.T) {
	userRepo := &mockUserRepo{
		findEmployerByUserIDFn: func(ctx context.Context, userID string) (*models.Employer, error) {
			return &models.Employer{BaseModel: models.BaseModel{ID: "emp-1"}, UserID: userID}, nil
		},
	}
	jobRepo := &mockJobRepo{
		createJobFn: func(ctx context.Context, job *models.Job) error {
			t.Fatal("job must not be created without an active subscription")
			return nil
		},
	}
	svc := newJobServiceForTest(jobRepo, userRepo, &mockCatalogRepo{}, nil)

	caller := models.Caller{ID: "user-1", Role: models.UserRoleEmployer}
	req := &models.CreateJobRequest{
		Title:       "Backend Engineer",
		Salary:      "500000",
		Location:    "Almaty",
		Description: "Build and run backend services.",
	}
	_, err := svc.CreateJob(context.Background(), caller, req, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrSubscriptionRequired)
}

func TestCreateJob_RefusedWithExpiredSubscription(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	userRepo := &mockUserRepo{
		findEmployerByUserIDFn: func(ctx context.Context, userID string) (*models.Employer, error) {
			return &models.Employer{BaseModel: models.BaseModel{ID: "emp-1"}}, nil
		},
	}
	expired := []models.Subscription{{
		EmployerID: "emp-1",
		Status:     models.SubscriptionStatusActivated,
		EndDate:    now.AddDate(0, 0, -1),
		Plan:       &models.SubscriptionPlan{Name: "Gold"},
	}}
	svc := newJobServiceForTest(&mockJobRepo{}, userRepo, &mockCatalogRepo{}, expired)

	caller := models.Caller{ID: "user-1", Role: models.UserRoleEmployer}
	req := &models.CreateJobRequest{
		Title:       "Backend Engineer",
		Salary:      "500000",
		Location:    "Almaty",
		Description: "Build and run backend services.",
	}
	_, err := svc.CreateJob(context.Background(), caller, req, now)
	assert.ErrorIs(t, err, apperrors.ErrSubscriptionRequired)
}

func TestCreateJob_AllowedWithActiveSubscription(t *testing.T) {
	now := time.Now()
	userRepo := &mockUserRepo{
		findEmployerByUserIDFn: func(ctx context.Context, userID string) (*models.Employer, error) {
			return &models.Employer{BaseModel: models.BaseModel{ID: "emp-1"}}, nil
		},
	}
	active := []models.Subscription{{
		EmployerID: "emp-1",
		Status:     models.SubscriptionStatusActivated,
		EndDate:    now.AddDate(0, 0, 10),
		Plan:       &models.SubscriptionPlan{Name: "Gold", MonthlyPostLimit: 20},
	}}

	var created *models.Job
	jobRepo := &mockJobRepo{
		createJobFn: func(ctx context.Context, job *models.Job) error {
			created = job
			return nil
		},
	}
	catalogRepo := &mockCatalogRepo{
		findCategoryByNameFn: func(ctx context.Context, name string) (*models.Category, error) {
			return &models.Category{BaseModel: models.BaseModel{ID: "cat-1"}, Name: name}, nil
		},
		findIndustryByNameFn: func(ctx context.Context, name string) (*models.Industry, error) {
			return nil, repositories.ErrIndustryNotFound
		},
		createIndustryFn: func(ctx context.Context, industry *models.Industry) error {
			industry.ID = "ind-1"
			return nil
		},
	}
	svc := newJobServiceForTest(jobRepo, userRepo, catalogRepo, active)

	caller := models.Caller{ID: "user-1", Role: models.UserRoleEmployer}
	req := &models.CreateJobRequest{
		Title:       "Backend Engineer",
		Salary:      "500000",
		Category:    "Engineering",
		Industry:    "Fintech",
		Location:    "Almaty",
		Description: "Build and run backend services.",
		Benefits:    []string{"Insurance"},
	}
	job, err := svc.CreateJob(context.Background(), caller, req, now)
	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, "emp-1", job.EmployerID)
	assert.Equal(t, "cat-1", *job.CategoryID)
	assert.Equal(t, "ind-1", *job.IndustryID)
}

func TestUpdateJob_RefusedForNonOwner(t *testing.T) {
	jobRepo := &mockJobRepo{
		findJobByIDFn: func(ctx context.Context, id string) (*models.Job, error) {
			return &models.Job{BaseModel: models.BaseModel{ID: id}, EmployerID: "emp-owner"}, nil
		},
	}
	userRepo := &mockUserRepo{
		findEmployerByUserIDFn: func(ctx context.Context, userID string) (*models.Employer, error) {
			return &models.Employer{BaseModel: models.BaseModel{ID: "emp-other"}}, nil
		},
	}
	svc := newJobServiceForTest(jobRepo, userRepo, &mockCatalogRepo{}, nil)

	caller := models.Caller{ID: "user-2", Role: models.UserRoleEmployer}
	req := &models.UpdateJobRequest{
		Title:       "Updated",
		Salary:      "600000",
		Industry:    "Fintech",
		Location:    "Astana",
		Description: "Updated description text.",
	}
	_, err := svc.UpdateJob(context.Background(), caller, "job-1", req)
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)
}

func TestDeleteJob_AdminBypassesOwnership(t *testing.T) {
	deleted := false
	jobRepo := &mockJobRepo{
		findJobByIDFn: func(ctx context.Context, id string) (*models.Job, error) {
			return &models.Job{BaseModel: models.BaseModel{ID: id}, EmployerID: "emp-owner"}, nil
		},
		deleteJobFn: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}
	svc := newJobServiceForTest(jobRepo, &mockUserRepo{}, &mockCatalogRepo{}, nil)

	caller := models.Caller{ID: "admin-1", Role: models.UserRoleAdmin}
	err := svc.DeleteJob(context.Background(), caller, "job-1")
	assert.NoError(t, err)
	assert.True(t, deleted)
}

func TestGetJob_NotFound(t *testing.T) {
	jobRepo := &mockJobRepo{
		findJobByIDFn: func(ctx context.Context, id string) (*models.Job, error) {
			return nil, repositories.ErrJobNotFound
		},
	}
	svc := newJobServiceForTest(jobRepo, &mockUserRepo{}, &mockCatalogRepo{}, nil)

	_, err := svc.GetJob(context.Background(), "missing")
	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}
