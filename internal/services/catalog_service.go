package services

import (
	"context"
	"errors"

	"github.com/megane-nerdo/skillhubnext/internal/logger"
	"github.com/megane-nerdo/skillhubnext/internal/models"
	"github.com/megane-nerdo/skillhubnext/internal/repositories"
	"github.com/megane-nerdo/skillhubnext/pkg/apperrors"
)

// CatalogService serves the category and industry lookup tables used when
// posting jobs.
type CatalogService interface {
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (*models.Category, error)

	CreateIndustry(ctx context.Context, name string) (*models.Industry, error)
	ListIndustries(ctx context.Context) ([]models.Industry, error)
}

type catalogService struct {
	catalog repositories.CatalogRepository
}

func NewCatalogService(catalog repositories.CatalogRepository) CatalogService {
	return &catalogService{catalog: catalog}
}

func (s *catalogService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	if _, err := s.catalog.FindCategoryByName(ctx, name); err == nil {
		return nil, apperrors.ErrAlreadyExists("category", "Category already exists")
	} else if !errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "category", "Failed to check category", 500)
	}

	category := &models.Category{Name: name}
	if err := s.catalog.CreateCategory(ctx, category); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "category", "Failed to create category", 500)
	}

	logger.CtxInfo(ctx, "category created", "category_id", category.ID, "name", name)
	return category, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "category", "Failed to list categories", 500)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id, name string) (*models.Category, error) {
	category, err := s.catalog.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrNotFound(err, "Category not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "category", "Failed to load category", 500)
	}

	if existing, err := s.catalog.FindCategoryByName(ctx, name); err == nil && existing.ID != category.ID {
		return nil, apperrors.ErrAlreadyExists("category", "Category already exists")
	} else if err != nil && !errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "category", "Failed to check category", 500)
	}

	category.Name = name
	if err := s.catalog.UpdateCategory(ctx, category); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "category", "Failed to update category", 500)
	}

	logger.CtxInfo(ctx, "category updated", "category_id", category.ID)
	return category, nil
}

func (s *catalogService) CreateIndustry(ctx context.Context, name string) (*models.Industry, error) {
	if _, err := s.catalog.FindIndustryByName(ctx, name); err == nil {
		return nil, apperrors.ErrAlreadyExists("industry", "Industry already exists")
	} else if !errors.Is(err, repositories.ErrIndustryNotFound) {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "industry", "Failed to check industry", 500)
	}

	industry := &models.Industry{Name: name}
	if err := s.catalog.CreateIndustry(ctx, industry); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "industry", "Failed to create industry", 500)
	}

	logger.CtxInfo(ctx, "industry created", "industry_id", industry.ID, "name", name)
	return industry, nil
}

func (s *catalogService) ListIndustries(ctx context.Context) ([]models.Industry, error) {
	industries, err := s.catalog.ListIndustries(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "industry", "Failed to list industries", 500)
	}
	if industries == nil {
		industries = []models.Industry{}
	}
	return industries, nil
}
