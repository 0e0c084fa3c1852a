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

// SubscriptionService manages the plan catalog and the append-only
// subscription ledger, and answers entitlement questions for employers.
type SubscriptionService interface {
	CreatePlan(ctx context.Context, req *models.CreatePlanRequest) (*models.SubscriptionPlan, error)
	GetPlan(ctx context.Context, id string) (*models.SubscriptionPlan, error)
	ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error)
	UpdatePlan(ctx context.Context, id string, req *models.UpdatePlanRequest) (*models.SubscriptionPlan, error)
	DeletePlan(ctx context.Context, id string) error

	Purchase(ctx context.Context, caller models.Caller, planID string, now time.Time) (*models.Subscription, error)
	CheckEntitlement(ctx context.Context, employerID string, now time.Time) (*models.EntitlementResult, error)
	CheckMyEntitlement(ctx context.Context, caller models.Caller, now time.Time) (*models.EntitlementResult, error)
	ListMySubscriptions(ctx context.Context, caller models.Caller) ([]models.Subscription, error)
}

type subscriptionService struct {
	subs  repositories.SubscriptionRepository
	users repositories.UserRepository
}

func NewSubscriptionService(subs repositories.SubscriptionRepository, users repositories.UserRepository) SubscriptionService {
	return &subscriptionService{subs: subs, users: users}
}

func (s *subscriptionService) CreatePlan(ctx context.Context, req *models.CreatePlanRequest) (*models.SubscriptionPlan, error) {
	plan := &models.SubscriptionPlan{
		Name:             req.Name,
		Price:            req.Price,
		DurationDays:     req.Duration,
		MonthlyPostLimit: req.LimitPerMonth,
		Features:         req.Features,
	}

	if err := s.subs.CreatePlan(ctx, plan); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to create plan", 500)
	}

	logger.CtxInfo(ctx, "subscription plan created", "plan_id", plan.ID, "name", plan.Name)
	return plan, nil
}

func (s *subscriptionService) GetPlan(ctx context.Context, id string) (*models.SubscriptionPlan, error) {
	plan, err := s.subs.FindPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionPlanNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to load plan", 500)
	}
	return plan, nil
}

func (s *subscriptionService) ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	plans, err := s.subs.FindAllPlans(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to list plans", 500)
	}
	if plans == nil {
		plans = []models.SubscriptionPlan{}
	}
	return plans, nil
}

func (s *subscriptionService) UpdatePlan(ctx context.Context, id string, req *models.UpdatePlanRequest) (*models.SubscriptionPlan, error) {
	plan, err := s.subs.FindPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionPlanNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to load plan", 500)
	}

	plan.Name = req.Name
	plan.Price = req.Price
	plan.DurationDays = req.Duration
	plan.MonthlyPostLimit = req.LimitPerMonth
	plan.Features = req.Features

	if err := s.subs.UpdatePlan(ctx, plan); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to update plan", 500)
	}

	logger.CtxInfo(ctx, "subscription plan updated", "plan_id", plan.ID)
	return plan, nil
}

// DeletePlan removes a plan from the catalog. Plans referenced by any
// subscription row are protected, so the ledger stays resolvable.
func (s *subscriptionService) DeletePlan(ctx context.Context, id string) error {
	if _, err := s.subs.FindPlanByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSubscriptionPlanNotFound) {
			return apperrors.ErrPlanNotFound
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to load plan", 500)
	}

	count, err := s.subs.CountSubscriptionsByPlan(ctx, id)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to check plan usage", 500)
	}
	if count > 0 {
		return apperrors.ErrPlanInUse
	}

	if err := s.subs.DeletePlan(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSubscriptionPlanNotFound) {
			return apperrors.ErrPlanNotFound
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to delete plan", 500)
	}

	logger.CtxInfo(ctx, "subscription plan deleted", "plan_id", id)
	return nil
}

// Purchase appends a new subscription for the calling employer. Existing
// subscriptions are never touched: overlapping active windows are allowed and
// the most recent end date wins at read time.
func (s *subscriptionService) Purchase(ctx context.Context, caller models.Caller, planID string, now time.Time) (*models.Subscription, error) {
	employer, err := s.users.FindEmployerByUserID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployerNotFound) {
			return nil, apperrors.ErrNotFound(err, "Employer profile not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to load employer", 500)
	}

	plan, err := s.subs.FindPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionPlanNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to load plan", 500)
	}

	sub := &models.Subscription{
		EmployerID: employer.ID,
		PlanID:     plan.ID,
		StartDate:  now,
		EndDate:    now.AddDate(0, 0, plan.DurationDays),
		Status:     models.SubscriptionStatusActivated,
	}

	if err := s.subs.CreateSubscription(ctx, sub); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to create subscription", 500)
	}
	sub.Plan = plan

	logger.CtxInfo(ctx, "subscription purchased",
		"employer_id", employer.ID,
		"plan_id", plan.ID,
		"end_date", sub.EndDate,
	)
	return sub, nil
}

// CheckEntitlement reports whether the employer may post jobs at the given
// instant. It is a pure read: expiry is derived from end dates on every call
// and no rows are mutated.
func (s *subscriptionService) CheckEntitlement(ctx context.Context, employerID string, now time.Time) (*models.EntitlementResult, error) {
	sub, err := s.subs.FindActiveSubscription(ctx, employerID, now)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return &models.EntitlementResult{
				Valid:  false,
				Reason: "No active subscription",
			}, nil
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to check subscription", 500)
	}

	expiresAt := sub.EndDate
	return &models.EntitlementResult{
		Valid:     true,
		Plan:      sub.Plan.Name,
		JobLimit:  sub.Plan.MonthlyPostLimit,
		ExpiresAt: &expiresAt,
	}, nil
}

// CheckMyEntitlement resolves the caller's employer profile and runs the
// entitlement check against it.
func (s *subscriptionService) CheckMyEntitlement(ctx context.Context, caller models.Caller, now time.Time) (*models.EntitlementResult, error) {
	employer, err := s.users.FindEmployerByUserID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployerNotFound) {
			return nil, apperrors.ErrNotFound(err, "Employer profile not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to load employer", 500)
	}
	return s.CheckEntitlement(ctx, employer.ID, now)
}

func (s *subscriptionService) ListMySubscriptions(ctx context.Context, caller models.Caller) ([]models.Subscription, error) {
	employer, err := s.users.FindEmployerByUserID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployerNotFound) {
			return nil, apperrors.ErrNotFound(err, "Employer profile not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to load employer", 500)
	}

	subs, err := s.subs.ListSubscriptionsByEmployer(ctx, employer.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "subscription", "Failed to list subscriptions", 500)
	}
	if subs == nil {
		subs = []models.Subscription{}
	}
	return subs, nil
}
