package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/megane-nerdo/skillhubnext/internal/models"
)

var (
	ErrSubscriptionPlanNotFound = errors.New("subscription plan not found")
	ErrSubscriptionNotFound     = errors.New("subscription not found")
)

type SubscriptionRepository interface {
	CreatePlan(ctx context.Context, plan *models.SubscriptionPlan) error
	FindPlanByID(ctx context.Context, id string) (*models.SubscriptionPlan, error)
	FindAllPlans(ctx context.Context) ([]models.SubscriptionPlan, error)
	UpdatePlan(ctx context.Context, plan *models.SubscriptionPlan) error
	DeletePlan(ctx context.Context, id string) error
	CountSubscriptionsByPlan(ctx context.Context, planID string) (int64, error)

	CreateSubscription(ctx context.Context, sub *models.Subscription) error
	FindActiveSubscription(ctx context.Context, employerID string, now time.Time) (*models.Subscription, error)
	ListSubscriptionsByEmployer(ctx context.Context, employerID string) ([]models.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) CreatePlan(ctx context.Context, plan *models.SubscriptionPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *subscriptionRepository) FindPlanByID(ctx context.Context, id string) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *subscriptionRepository) FindAllPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	err := r.db.WithContext(ctx).Order("price ASC").Find(&plans).Error
	return plans, err
}

func (r *subscriptionRepository) UpdatePlan(ctx context.Context, plan *models.SubscriptionPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *subscriptionRepository) DeletePlan(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.SubscriptionPlan{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriptionPlanNotFound
	}
	return nil
}

func (r *subscriptionRepository) CountSubscriptionsByPlan(ctx context.Context, planID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("plan_id = ?", planID).
		Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) CreateSubscription(ctx context.Context, sub *models.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

// FindActiveSubscription returns the unexpired activated subscription with the
// latest end date, or ErrSubscriptionNotFound when none qualifies. A
// subscription whose end date equals now is already expired.
func (r *subscriptionRepository) FindActiveSubscription(ctx context.Context, employerID string, now time.Time) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("employer_id = ? AND status = ? AND end_date > ?", employerID, models.SubscriptionStatusActivated, now).
		Order("end_date DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) ListSubscriptionsByEmployer(ctx context.Context, employerID string) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}
