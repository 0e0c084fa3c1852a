package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/megane-nerdo/skillhubnext/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmployerNotFound  = errors.New("employer not found")
	ErrJobSeekerNotFound = errors.New("job seeker not found")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByEmailWithProfiles(ctx context.Context, email string) (*models.User, error)
	UpdateUserName(ctx context.Context, id, name string) error

	CreateEmployer(ctx context.Context, employer *models.Employer) error
	FindEmployerByID(ctx context.Context, id string) (*models.Employer, error)
	FindEmployerByUserID(ctx context.Context, userID string) (*models.Employer, error)
	ListEmployers(ctx context.Context) ([]models.Employer, error)
	UpdateEmployer(ctx context.Context, employer *models.Employer) error
	DeleteEmployer(ctx context.Context, id string) error

	CreateJobSeeker(ctx context.Context, seeker *models.JobSeeker) error
	FindJobSeekerByUserID(ctx context.Context, userID string) (*models.JobSeeker, error)
	ListJobSeekers(ctx context.Context) ([]models.JobSeeker, error)
	UpdateJobSeeker(ctx context.Context, seeker *models.JobSeeker) error
	DeleteJobSeeker(ctx context.Context, id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindUserByEmailWithProfiles(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Employer").
		Preload("JobSeeker").
		First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUserName(ctx context.Context, id, name string) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("name", name).Error
}

func (r *userRepository) CreateEmployer(ctx context.Context, employer *models.Employer) error {
	return r.db.WithContext(ctx).Create(employer).Error
}

func (r *userRepository) FindEmployerByID(ctx context.Context, id string) (*models.Employer, error) {
	var employer models.Employer
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Subscriptions").
		Preload("Subscriptions.Plan").
		First(&employer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployerNotFound
		}
		return nil, err
	}
	return &employer, nil
}

func (r *userRepository) FindEmployerByUserID(ctx context.Context, userID string) (*models.Employer, error) {
	var employer models.Employer
	err := r.db.WithContext(ctx).First(&employer, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployerNotFound
		}
		return nil, err
	}
	return &employer, nil
}

func (r *userRepository) ListEmployers(ctx context.Context) ([]models.Employer, error) {
	var employers []models.Employer
	err := r.db.WithContext(ctx).Preload("User").Find(&employers).Error
	return employers, err
}

func (r *userRepository) UpdateEmployer(ctx context.Context, employer *models.Employer) error {
	return r.db.WithContext(ctx).Save(employer).Error
}

func (r *userRepository) DeleteEmployer(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Employer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmployerNotFound
	}
	return nil
}

func (r *userRepository) CreateJobSeeker(ctx context.Context, seeker *models.JobSeeker) error {
	return r.db.WithContext(ctx).Create(seeker).Error
}

func (r *userRepository) FindJobSeekerByUserID(ctx context.Context, userID string) (*models.JobSeeker, error) {
	var seeker models.JobSeeker
	err := r.db.WithContext(ctx).First(&seeker, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobSeekerNotFound
		}
		return nil, err
	}
	return &seeker, nil
}

func (r *userRepository) ListJobSeekers(ctx context.Context) ([]models.JobSeeker, error) {
	var seekers []models.JobSeeker
	err := r.db.WithContext(ctx).Preload("User").Find(&seekers).Error
	return seekers, err
}

func (r *userRepository) UpdateJobSeeker(ctx context.Context, seeker *models.JobSeeker) error {
	return r.db.WithContext(ctx).Save(seeker).Error
}

func (r *userRepository) DeleteJobSeeker(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.JobSeeker{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobSeekerNotFound
	}
	return nil
}
