package services

import (
	"context"
	"errors"
	"strings"

	"vitalpoint/internal/content"
	"vitalpoint/internal/logger"
	"vitalpoint/internal/models"
	"vitalpoint/internal/repository"

	"go.uber.org/zap"
)

type TaxonomyService struct {
	repo *repository.TaxonomyRepo
}

func NewTaxonomyService(repo *repository.TaxonomyRepo) *TaxonomyService {
	return &TaxonomyService{repo: repo}
}

// CreateCategory derives the category slug from its title, the same way post
// slugs are derived.
func (s *TaxonomyService) CreateCategory(ctx context.Context, req models.SaveCategoryRequest) (*models.Category, error) {
	log := logger.WithCtx(ctx)

	title := strings.TrimSpace(req.Title)
	slug := content.Slugify(title)
	if slug == "" {
		return nil, ErrInvalidContent
	}

	c := &models.Category{
		Slug:     slug,
		Title:    title,
		Position: req.Position,
		IsActive: req.IsActive,
	}
	id, err := s.repo.CreateCategory(ctx, c)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugTaken
		}
		log.Error("failed to create category (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("category created", zap.Int("id", id), zap.String("slug", slug))
	return s.repo.GetCategoryByID(ctx, id)
}

func (s *TaxonomyService) UpdateCategory(ctx context.Context, id int, req models.SaveCategoryRequest) (*models.Category, error) {
	c, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	c.Title = strings.TrimSpace(req.Title)
	c.Slug = content.Slugify(c.Title)
	c.Position = req.Position
	c.IsActive = req.IsActive
	if c.Slug == "" {
		return nil, ErrInvalidContent
	}

	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugTaken
		}
		logger.WithCtx(ctx).Error("failed to update category (repo)", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (s *TaxonomyService) DeleteCategory(ctx context.Context, id int) error {
	logger.WithCtx(ctx).Info("deleting category", zap.Int("id", id))
	return s.repo.DeleteCategory(ctx, id)
}

func (s *TaxonomyService) ListCategories(ctx context.Context) ([]models.CategoryWithCount, error) {
	return s.repo.ListCategories(ctx)
}
