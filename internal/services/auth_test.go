package services

import (
	"context"
	"testing"
	"time"

	"vitalpoint/internal/models"
	"vitalpoint/internal/repository"
)

type mockUserRepo struct {
	users    map[string]*models.User
	tokens   map[int]string
	lastUser *models.User
	nextID   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]*models.User{}, tokens: map[int]string{}, nextID: 1}
}

func (m *mockUserRepo) IsUsernameTaken(_ context.Context, username string) (bool, error) {
	_, exists := m.users[username]
	return exists, nil
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = m.nextID
	m.nextID++
	m.users[user.Username] = user
	m.lastUser = user
	return nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := m.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id int) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) GetAllUsersPaginated(_ context.Context, limit, offset int) ([]*models.User, int, error) {
	var out []*models.User
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, len(out), nil
}

func (m *mockUserRepo) SaveRefreshToken(_ context.Context, userID int, token string) error {
	m.tokens[userID] = token
	return nil
}

func (m *mockUserRepo) IsRefreshTokenValid(_ context.Context, userID int, token string) (bool, error) {
	return m.tokens[userID] == token, nil
}

func (m *mockUserRepo) DeleteRefreshToken(_ context.Context, userID int, token string) error {
	delete(m.tokens, userID)
	return nil
}

func newTestAuthService(repo UserRepo) *AuthService {
	return NewAuthService(repo, "test-secret", 15*time.Minute, time.Hour)
}

func TestCreateUser_HashesPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	user := &models.User{Username: "editor1", Email: "e1@example.com"}
	if err := svc.CreateUser(context.Background(), user, "hunter2secret"); err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	if repo.lastUser == nil || repo.lastUser.PasswordHash == "" {
		t.Fatal("password not hashed or user not stored")
	}
	if repo.lastUser.PasswordHash == "hunter2secret" {
		t.Fatal("password stored in plain text")
	}
	if repo.lastUser.Role != "editor" {
		t.Errorf("default role = %q, want editor", repo.lastUser.Role)
	}
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	if err := svc.CreateUser(context.Background(), &models.User{Username: "dup"}, "passw0rd!"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if err := svc.CreateUser(context.Background(), &models.User{Username: "dup"}, "passw0rd!"); err != ErrUsernameTaken {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	if err := svc.CreateUser(context.Background(), &models.User{Username: "admin", Role: "admin"}, "correct-horse"); err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	access, refresh, err := svc.Login(context.Background(), "admin", "correct-horse")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("empty token pair")
	}
	if repo.tokens[repo.lastUser.ID] != refresh {
		t.Error("refresh token not persisted")
	}

	if _, _, err := svc.Login(context.Background(), "admin", "wrong"); err != ErrBadCredentials {
		t.Errorf("wrong password err = %v, want ErrBadCredentials", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost", "whatever"); err != ErrBadCredentials {
		t.Errorf("unknown user err = %v, want ErrBadCredentials", err)
	}
}

func TestRefresh_RotatesToken(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	if err := svc.CreateUser(context.Background(), &models.User{Username: "admin", Role: "admin"}, "correct-horse"); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	_, refresh, err := svc.Login(context.Background(), "admin", "correct-horse")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	userID := repo.lastUser.ID

	// claims are second-granular, an immediate refresh would mint an
	// identical token string
	time.Sleep(1100 * time.Millisecond)

	_, newRefresh, err := svc.Refresh(context.Background(), userID, "admin", refresh)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if repo.tokens[userID] != newRefresh {
		t.Error("rotated token not persisted")
	}

	// the old token must no longer be accepted
	if _, _, err := svc.Refresh(context.Background(), userID, "admin", refresh); err != ErrBadToken {
		t.Errorf("stale token err = %v, want ErrBadToken", err)
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestAuthService(repo)

	if err := svc.CreateUser(context.Background(), &models.User{Username: "admin", Role: "admin"}, "correct-horse"); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	_, refresh, err := svc.Login(context.Background(), "admin", "correct-horse")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	userID := repo.lastUser.ID

	if err := svc.Logout(context.Background(), userID, refresh); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, _, err := svc.Refresh(context.Background(), userID, "admin", refresh); err != ErrBadToken {
		t.Errorf("revoked token err = %v, want ErrBadToken", err)
	}
}
