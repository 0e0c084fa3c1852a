package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/megane-nerdo/skillhubnext/internal/models"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrIndustryNotFound = errors.New("industry not found")
)

// CatalogRepository serves the category and industry lookup tables.
type CatalogRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	FindCategoryByID(ctx context.Context, id string) (*models.Category, error)
	FindCategoryByName(ctx context.Context, name string) (*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error

	CreateIndustry(ctx context.Context, industry *models.Industry) error
	ListIndustries(ctx context.Context) ([]models.Industry, error)
	FindIndustryByName(ctx context.Context, name string) (*models.Industry, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Find(&categories).Error
	return categories, err
}

func (r *catalogRepository) FindCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *catalogRepository) FindCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *catalogRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *catalogRepository) CreateIndustry(ctx context.Context, industry *models.Industry) error {
	return r.db.WithContext(ctx).Create(industry).Error
}

func (r *catalogRepository) ListIndustries(ctx context.Context) ([]models.Industry, error) {
	var industries []models.Industry
	err := r.db.WithContext(ctx).Find(&industries).Error
	return industries, err
}

func (r *catalogRepository) FindIndustryByName(ctx context.Context, name string) (*models.Industry, error) {
	var industry models.Industry
	err := r.db.WithContext(ctx).First(&industry, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIndustryNotFound
		}
		return nil, err
	}
	return &industry, nil
}
