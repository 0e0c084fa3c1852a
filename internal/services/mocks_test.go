package services

import (
	"context"
	"time"

	"github.com/megane-nerdo/skillhubnext/internal/models"
	"github.com/megane-nerdo/skillhubnext/internal/repositories"
)

// Function-field mocks. Unset fields fall through to the embedded interface
// and panic, which surfaces unexpected repository calls in the failing test.

type mockSubscriptionRepo struct {
	repositories.SubscriptionRepository

	createPlanFn               func(ctx context.Context, plan *models.SubscriptionPlan) error
	findPlanByIDFn             func(ctx context.Context, id string) (*models.SubscriptionPlan, error)
	findAllPlansFn             func(ctx context.Context) ([]models.SubscriptionPlan, error)
	updatePlanFn               func(ctx context.Context, plan *models.SubscriptionPlan) error
	deletePlanFn               func(ctx context.Context, id string) error
	countSubscriptionsByPlanFn func(ctx context.Context, planID string) (int64, error)
	createSubscriptionFn       func(ctx context.Context, sub *models.Subscription) error
	findActiveSubscriptionFn   func(ctx context.Context, employerID string, now time.Time) (*models.Subscription, error)
	listByEmployerFn           func(ctx context.Context, employerID string) ([]models.Subscription, error)
}

func (m *mockSubscriptionRepo) CreatePlan(ctx context.Context, plan *models.SubscriptionPlan) error {
	return m.createPlanFn(ctx, plan)
}

func (m *mockSubscriptionRepo) FindPlanByID(ctx context.Context, id string) (*models.SubscriptionPlan, error) {
	return m.findPlanByIDFn(ctx, id)
}

func (m *mockSubscriptionRepo) FindAllPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	return m.findAllPlansFn(ctx)
}

func (m *mockSubscriptionRepo) UpdatePlan(ctx context.Context, plan *models.SubscriptionPlan) error {
	return m.updatePlanFn(ctx, plan)
}

func (m *mockSubscriptionRepo) DeletePlan(ctx context.Context, id string) error {
	return m.deletePlanFn(ctx, id)
}

func (m *mockSubscriptionRepo) CountSubscriptionsByPlan(ctx context.Context, planID string) (int64, error) {
	return m.countSubscriptionsByPlanFn(ctx, planID)
}

func (m *mockSubscriptionRepo) CreateSubscription(ctx context.Context, sub *models.Subscription) error {
	return m.createSubscriptionFn(ctx, sub)
}

func (m *mockSubscriptionRepo) FindActiveSubscription(ctx context.Context, employerID string, now time.Time) (*models.Subscription, error) {
	return m.findActiveSubscriptionFn(ctx, employerID, now)
}

func (m *mockSubscriptionRepo) ListSubscriptionsByEmployer(ctx context.Context, employerID string) ([]models.Subscription, error) {
	return m.listByEmployerFn(ctx, employerID)
}

type mockUserRepo struct {
	repositories.UserRepository

	createUserFn            func(ctx context.Context, user *models.User) error
	findUserByIDFn          func(ctx context.Context, id string) (*models.User, error)
	findUserByEmailFn       func(ctx context.Context, email string) (*models.User, error)
	findUserByEmailFullFn   func(ctx context.Context, email string) (*models.User, error)
	createEmployerFn        func(ctx context.Context, employer *models.Employer) error
	findEmployerByUserIDFn  func(ctx context.Context, userID string) (*models.Employer, error)
	createJobSeekerFn       func(ctx context.Context, seeker *models.JobSeeker) error
	findJobSeekerByUserIDFn func(ctx context.Context, userID string) (*models.JobSeeker, error)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepo) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	return m.findUserByIDFn(ctx, id)
}

func (m *mockUserRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findUserByEmailFn(ctx, email)
}

func (m *mockUserRepo) FindUserByEmailWithProfiles(ctx context.Context, email string) (*models.User, error) {
	return m.findUserByEmailFullFn(ctx, email)
}

func (m *mockUserRepo) CreateEmployer(ctx context.Context, employer *models.Employer) error {
	return m.createEmployerFn(ctx, employer)
}

func (m *mockUserRepo) FindEmployerByUserID(ctx context.Context, userID string) (*models.Employer, error) {
	return m.findEmployerByUserIDFn(ctx, userID)
}

func (m *mockUserRepo) CreateJobSeeker(ctx context.Context, seeker *models.JobSeeker) error {
	return m.createJobSeekerFn(ctx, seeker)
}

func (m *mockUserRepo) FindJobSeekerByUserID(ctx context.Context, userID string) (*models.JobSeeker, error) {
	return m.findJobSeekerByUserIDFn(ctx, userID)
}

type mockJobRepo struct {
	repositories.JobRepository

	createJobFn          func(ctx context.Context, job *models.Job) error
	findJobByIDFn        func(ctx context.Context, id string) (*models.Job, error)
	listJobsFn           func(ctx context.Context) ([]models.Job, error)
	listJobsByEmployerFn func(ctx context.Context, employerID string) ([]models.Job, error)
	updateJobFn          func(ctx context.Context, job *models.Job) error
	deleteJobFn          func(ctx context.Context, id string) error
}

func (m *mockJobRepo) CreateJob(ctx context.Context, job *models.Job) error {
	return m.createJobFn(ctx, job)
}

func (m *mockJobRepo) FindJobByID(ctx context.Context, id string) (*models.Job, error) {
	return m.findJobByIDFn(ctx, id)
}

func (m *mockJobRepo) ListJobs(ctx context.Context) ([]models.Job, error) {
	return m.listJobsFn(ctx)
}

func (m *mockJobRepo) ListJobsByEmployer(ctx context.Context, employerID string) ([]models.Job, error) {
	return m.listJobsByEmployerFn(ctx, employerID)
}

func (m *mockJobRepo) UpdateJob(ctx context.Context, job *models.Job) error {
	return m.updateJobFn(ctx, job)
}

func (m *mockJobRepo) DeleteJob(ctx context.Context, id string) error {
	return m.deleteJobFn(ctx, id)
}

type mockApplicationRepo struct {
	repositories.ApplicationRepository

	createApplicationFn     func(ctx context.Context, app *models.Application) error
	findApplicationByIDFn   func(ctx context.Context, id string) (*models.Application, error)
	findByJobAndSeekerFn    func(ctx context.Context, jobID, jobSeekerID string) (*models.Application, error)
	listApplicationsByJobFn func(ctx context.Context, jobID string) ([]models.Application, error)
	listBySeekerFn          func(ctx context.Context, jobSeekerID string) ([]models.Application, error)
	updateApplicationFn     func(ctx context.Context, app *models.Application) error
}

func (m *mockApplicationRepo) CreateApplication(ctx context.Context, app *models.Application) error {
	return m.createApplicationFn(ctx, app)
}

func (m *mockApplicationRepo) FindApplicationByID(ctx context.Context, id string) (*models.Application, error) {
	return m.findApplicationByIDFn(ctx, id)
}

func (m *mockApplicationRepo) FindApplicationByJobAndSeeker(ctx context.Context, jobID, jobSeekerID string) (*models.Application, error) {
	return m.findByJobAndSeekerFn(ctx, jobID, jobSeekerID)
}

func (m *mockApplicationRepo) ListApplicationsByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	return m.listApplicationsByJobFn(ctx, jobID)
}

func (m *mockApplicationRepo) ListApplicationsBySeeker(ctx context.Context, jobSeekerID string) ([]models.Application, error) {
	return m.listBySeekerFn(ctx, jobSeekerID)
}

func (m *mockApplicationRepo) UpdateApplication(ctx context.Context, app *models.Application) error {
	return m.updateApplicationFn(ctx, app)
}

type mockCatalogRepo struct {
	repositories.CatalogRepository

	createCategoryFn     func(ctx context.Context, category *models.Category) error
	listCategoriesFn     func(ctx context.Context) ([]models.Category, error)
	findCategoryByIDFn   func(ctx context.Context, id string) (*models.Category, error)
	findCategoryByNameFn func(ctx context.Context, name string) (*models.Category, error)
	updateCategoryFn     func(ctx context.Context, category *models.Category) error
	createIndustryFn     func(ctx context.Context, industry *models.Industry) error
	listIndustriesFn     func(ctx context.Context) ([]models.Industry, error)
	findIndustryByNameFn func(ctx context.Context, name string) (*models.Industry, error)
}

func (m *mockCatalogRepo) CreateCategory(ctx context.Context, category *models.Category) error {
	return m.createCategoryFn(ctx, category)
}

func (m *mockCatalogRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	return m.listCategoriesFn(ctx)
}

func (m *mockCatalogRepo) FindCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	return m.findCategoryByIDFn(ctx, id)
}

func (m *mockCatalogRepo) FindCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	return m.findCategoryByNameFn(ctx, name)
}

func (m *mockCatalogRepo) UpdateCategory(ctx context.Context, category *models.Category) error {
	return m.updateCategoryFn(ctx, category)
}

func (m *mockCatalogRepo) CreateIndustry(ctx context.Context, industry *models.Industry) error {
	return m.createIndustryFn(ctx, industry)
}

func (m *mockCatalogRepo) ListIndustries(ctx context.Context) ([]models.Industry, error) {
	return m.listIndustriesFn(ctx)
}

func (m *mockCatalogRepo) FindIndustryByName(ctx context.Context, name string) (*models.Industry, error) {
	return m.findIndustryByNameFn(ctx, name)
}
