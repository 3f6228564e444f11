package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"vitalpoint/internal/models"
	"vitalpoint/internal/repository"
)

type mockContactRepo struct {
	created []*models.ContactSubmission
	nextID  int64
}

func (m *mockContactRepo) Create(_ context.Context, c *models.ContactSubmission) (*models.ContactSubmission, error) {
	m.nextID++
	cp := *c
	cp.ID = m.nextID
	cp.CreatedAt = time.Now()
	m.created = append(m.created, &cp)
	return &cp, nil
}

func (m *mockContactRepo) GetAll(_ context.Context, limit, offset int, onlyUnread bool) ([]*models.ContactSubmission, int, error) {
	return m.created, len(m.created), nil
}

func (m *mockContactRepo) GetByID(_ context.Context, id int64) (*models.ContactSubmission, error) {
	for _, c := range m.created {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockContactRepo) MarkRead(_ context.Context, id int64, read bool) error {
	for _, c := range m.created {
		if c.ID == id {
			c.IsRead = read
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockContactRepo) Delete(_ context.Context, id int64) error { return nil }

func drainEmailQueue() {
	for {
		select {
		case <-EmailQueue:
		default:
			return
		}
	}
}

func TestContactSubmit_StoresAndNotifies(t *testing.T) {
	drainEmailQueue()

	repo := &mockContactRepo{}
	svc := NewContactService(repo, "ops@example.com")

	created, err := svc.Submit(context.Background(), models.ContactRequest{
		Name:    "Jordan Reyes",
		Email:   "jordan@example.com",
		Message: "We would like a demo of the patient portal.",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("submission not assigned an id")
	}

	select {
	case job := <-EmailQueue:
		if len(job.To) != 1 || job.To[0] != "ops@example.com" {
			t.Errorf("notification recipient = %v", job.To)
		}
		if !strings.Contains(job.Subject, "Jordan Reyes") {
			t.Errorf("notification subject = %q", job.Subject)
		}
	default:
		t.Fatal("no notification enqueued")
	}
}

func TestContactSubmit_RejectsInvalidPayload(t *testing.T) {
	drainEmailQueue()

	repo := &mockContactRepo{}
	svc := NewContactService(repo, "ops@example.com")

	cases := []models.ContactRequest{
		{Name: "J", Email: "jordan@example.com", Message: "long enough message here"},
		{Name: "Jordan", Email: "not-an-email", Message: "long enough message here"},
		{Name: "Jordan", Email: "jordan@example.com", Message: "short"},
	}
	for i, req := range cases {
		if _, err := svc.Submit(context.Background(), req); err == nil {
			t.Errorf("case %d: invalid payload accepted", i)
		}
	}
	if len(repo.created) != 0 {
		t.Errorf("invalid submissions were stored: %d", len(repo.created))
	}
	select {
	case <-EmailQueue:
		t.Error("notification enqueued for invalid submission")
	default:
	}
}

func TestContactSubmit_NoNotifyInboxConfigured(t *testing.T) {
	drainEmailQueue()

	svc := NewContactService(&mockContactRepo{}, "")
	if _, err := svc.Submit(context.Background(), models.ContactRequest{
		Name:    "Jordan Reyes",
		Email:   "jordan@example.com",
		Message: "We would like a demo of the patient portal.",
	}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	select {
	case <-EmailQueue:
		t.Error("notification enqueued with no inbox configured")
	default:
	}
}
