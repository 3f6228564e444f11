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

// ServiceCatalog manages the services shown on the public site. Bodies go
// through the same document pipeline as blog posts.
type ServiceCatalog struct {
	repo repository.ServiceRepo
}

func NewServiceCatalog(repo repository.ServiceRepo) *ServiceCatalog {
	return &ServiceCatalog{repo: repo}
}

func (s *ServiceCatalog) Create(ctx context.Context, req models.SaveServiceRequest) (*models.Service, error) {
	log := logger.WithCtx(ctx)
	log.Info("creating service", zap.String("title", strings.TrimSpace(req.Title)))

	svc, err := s.buildService(&models.Service{}, req)
	if err != nil {
		log.Warn("service validation failed", zap.Error(err))
		return nil, err
	}

	id, err := s.repo.Create(ctx, svc)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugTaken
		}
		log.Error("failed to create service (repo)", zap.Error(err))
		return nil, err
	}
	svc.ID = id

	log.Info("service created", zap.Int("id", id), zap.String("slug", svc.Slug))
	return svc, nil
}

func (s *ServiceCatalog) Update(ctx context.Context, id int, req models.SaveServiceRequest) (*models.Service, error) {
	log := logger.WithCtx(ctx)
	log.Info("updating service", zap.Int("id", id))

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	svc, err := s.buildService(existing, req)
	if err != nil {
		log.Warn("service validation failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.repo.Update(ctx, svc); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugTaken
		}
		log.Error("failed to update service (repo)", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return svc, nil
}

// buildService applies the document save pipeline to the request body and
// fills the entity.
func (s *ServiceCatalog) buildService(base *models.Service, req models.SaveServiceRequest) (*models.Service, error) {
	title := strings.TrimSpace(req.Title)

	doc, err := content.Parse(req.Body)
	if err != nil {
		return nil, ErrInvalidContent
	}
	if req.IsActive && content.IsEmpty(doc) {
		return nil, ErrEmptyContent
	}
	norm := content.Normalize(doc)
	body, err := norm.JSON()
	if err != nil {
		return nil, ErrInvalidContent
	}

	slug := content.Slugify(title)
	if slug == "" {
		return nil, errors.New("title must contain at least one letter or digit")
	}

	base.Title = title
	base.Slug = slug
	base.Summary = strings.TrimSpace(req.Summary)
	base.Icon = strings.TrimSpace(req.Icon)
	base.Body = body
	base.Position = req.Position
	base.IsActive = req.IsActive
	return base, nil
}

func (s *ServiceCatalog) GetAll(ctx context.Context, onlyActive bool) ([]*models.Service, error) {
	list, err := s.repo.GetAll(ctx, onlyActive)
	if err != nil {
		logger.WithCtx(ctx).Error("failed to list services (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *ServiceCatalog) GetBySlug(ctx context.Context, slug string, activeOnly bool) (*models.Service, error) {
	svc, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if activeOnly && !svc.IsActive {
		return nil, ErrNotFound
	}
	return svc, nil
}

// PublicHTML server-renders a service body for the public page, with the
// usual fallback on corrupt documents.
func (s *ServiceCatalog) PublicHTML(ctx context.Context, slug string) (string, error) {
	svc, err := s.GetBySlug(ctx, slug, true)
	if err != nil {
		return "", err
	}
	return content.RenderHTMLString(svc.Body), nil
}

func (s *ServiceCatalog) Delete(ctx context.Context, id int) error {
	log := logger.WithCtx(ctx)
	log.Info("deleting service", zap.Int("id", id))
	return s.repo.Delete(ctx, id)
}

func (s *ServiceCatalog) Search(ctx context.Context, query string, limit int) ([]*models.Service, error) {
	return s.repo.Search(ctx, query, limit)
}
