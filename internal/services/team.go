package services

import (
	"context"
	"errors"
	"strings"

	"vitalpoint/internal/logger"
	"vitalpoint/internal/models"
	"vitalpoint/internal/repository"

	"go.uber.org/zap"
)

type TeamService struct {
	repo repository.TeamRepo
}

func NewTeamService(repo repository.TeamRepo) *TeamService {
	return &TeamService{repo: repo}
}

func (s *TeamService) Create(ctx context.Context, req models.SaveTeamMemberRequest) (*models.TeamMember, error) {
	log := logger.WithCtx(ctx)
	log.Info("creating team member", zap.String("name", strings.TrimSpace(req.Name)))

	m := &models.TeamMember{
		Name:      strings.TrimSpace(req.Name),
		RoleTitle: strings.TrimSpace(req.RoleTitle),
		Bio:       strings.TrimSpace(req.Bio),
		PhotoURL:  strings.TrimSpace(req.PhotoURL),
		Position:  req.Position,
		IsActive:  req.IsActive,
	}

	id, err := s.repo.Create(ctx, m)
	if err != nil {
		log.Error("failed to create team member (repo)", zap.Error(err))
		return nil, err
	}
	m.ID = id
	return m, nil
}

func (s *TeamService) Update(ctx context.Context, id int, req models.SaveTeamMemberRequest) (*models.TeamMember, error) {
	log := logger.WithCtx(ctx)
	log.Info("updating team member", zap.Int("id", id))

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	m.Name = strings.TrimSpace(req.Name)
	m.RoleTitle = strings.TrimSpace(req.RoleTitle)
	m.Bio = strings.TrimSpace(req.Bio)
	m.PhotoURL = strings.TrimSpace(req.PhotoURL)
	m.Position = req.Position
	m.IsActive = req.IsActive

	if err := s.repo.Update(ctx, m); err != nil {
		log.Error("failed to update team member (repo)", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return m, nil
}

func (s *TeamService) GetAll(ctx context.Context, onlyActive bool) ([]*models.TeamMember, error) {
	list, err := s.repo.GetAll(ctx, onlyActive)
	if err != nil {
		logger.WithCtx(ctx).Error("failed to list team members (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *TeamService) Delete(ctx context.Context, id int) error {
	logger.WithCtx(ctx).Info("deleting team member", zap.Int("id", id))
	return s.repo.Delete(ctx, id)
}
