package services

import (
	"context"
	"errors"
	"fmt"

	"vitalpoint/internal/logger"
	"vitalpoint/internal/models"
	"vitalpoint/internal/repository"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ContactService struct {
	repo     repository.ContactRepo
	validate *validator.Validate
	notifyTo string // inbox for new-submission notifications, empty disables
}

func NewContactService(repo repository.ContactRepo, notifyTo string) *ContactService {
	return &ContactService{
		repo:     repo,
		validate: validator.New(),
		notifyTo: notifyTo,
	}
}

// Submit validates and stores a contact form submission, then queues a
// notification email. The notification is best-effort: a full queue or a
// failing SMTP server never loses the submission itself.
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest) (*models.ContactSubmission, error) {
	log := logger.WithCtx(ctx)

	if err := s.validate.Struct(req); err != nil {
		log.Warn("contact submission rejected", zap.Error(err))
		return nil, fmt.Errorf("invalid submission: %w", err)
	}

	created, err := s.repo.Create(ctx, &models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		log.Error("failed to store contact submission (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("contact submission stored", zap.Int64("id", created.ID))

	if s.notifyTo != "" {
		job := EmailJob{
			To:      []string{s.notifyTo},
			Subject: fmt.Sprintf("New contact submission from %s", created.Name),
			Body: fmt.Sprintf("From: %s <%s>\nPhone: %s\nSubject: %s\n\n%s",
				created.Name, created.Email, created.Phone, created.Subject, created.Message),
		}
		select {
		case EmailQueue <- job:
		default:
			log.Warn("email queue full, notification dropped", zap.Int64("submission_id", created.ID))
		}
	}

	return created, nil
}

func (s *ContactService) GetAll(ctx context.Context, limit, offset int, onlyUnread bool) ([]*models.ContactSubmission, int, error) {
	list, total, err := s.repo.GetAll(ctx, limit, offset, onlyUnread)
	if err != nil {
		logger.WithCtx(ctx).Error("failed to list contact submissions (repo)", zap.Error(err))
		return nil, 0, err
	}
	return list, total, nil
}

func (s *ContactService) MarkRead(ctx context.Context, id int64, read bool) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.MarkRead(ctx, id, read)
}

func (s *ContactService) Delete(ctx context.Context, id int64) error {
	logger.WithCtx(ctx).Info("deleting contact submission", zap.Int64("id", id))
	return s.repo.Delete(ctx, id)
}
