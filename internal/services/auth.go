package services

import (
	"context"
	"errors"
	"time"

	"vitalpoint/internal/logger"
	"vitalpoint/internal/models"
	"vitalpoint/internal/repository"
	"vitalpoint/internal/utils"

	"go.uber.org/zap"
)

type AuthService struct {
	repo       UserRepo
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

type UserRepo interface {
	IsUsernameTaken(ctx context.Context, username string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetAllUsersPaginated(ctx context.Context, limit, offset int) ([]*models.User, int, error)
	SaveRefreshToken(ctx context.Context, userID int, token string) error
	IsRefreshTokenValid(ctx context.Context, userID int, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID int, token string) error
}

func NewAuthService(repo UserRepo, jwtSecret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{repo: repo, jwtSecret: jwtSecret, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// CreateUser registers a new editorial account. Only admins reach this path,
// so the role comes from the request rather than being forced to a default.
func (s *AuthService) CreateUser(ctx context.Context, user *models.User, plainPassword string) error {
	log := logger.WithCtx(ctx)
	log.Info("creating user (service)", zap.String("username", user.Username))

	taken, err := s.repo.IsUsernameTaken(ctx, user.Username)
	if err != nil {
		log.Error("failed to check username", zap.Error(err))
		return err
	}
	if taken {
		return ErrUsernameTaken
	}

	hashed, err := utils.HashPassword(plainPassword)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return err
	}
	user.PasswordHash = hashed
	if user.Role == "" {
		user.Role = "editor"
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrUsernameTaken
		}
		log.Error("failed to create user (repo)", zap.Error(err))
		return err
	}

	log.Info("user created (service)", zap.String("username", user.Username), zap.Int("id", user.ID))
	return nil
}

// Login verifies credentials and issues an access/refresh token pair. The
// refresh token is persisted so it can be revoked on logout.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, string, error) {
	log := logger.WithCtx(ctx)
	log.Info("login attempt (service)", zap.String("username", username))

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		log.Warn("user not found (service)", zap.String("username", username))
		return "", "", ErrBadCredentials
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		log.Warn("wrong password (service)", zap.String("username", username))
		return "", "", ErrBadCredentials
	}

	accessToken, err := utils.GenerateToken(s.jwtSecret, user.ID, user.Role, s.accessTTL, "access")
	if err != nil {
		log.Error("failed to sign access token", zap.Error(err))
		return "", "", err
	}

	refreshToken, err := utils.GenerateToken(s.jwtSecret, user.ID, user.Role, s.refreshTTL, "refresh")
	if err != nil {
		log.Error("failed to sign refresh token", zap.Error(err))
		return "", "", err
	}

	if err := s.repo.SaveRefreshToken(ctx, user.ID, refreshToken); err != nil {
		log.Error("failed to save refresh token", zap.Error(err))
		return "", "", err
	}

	log.Info("login succeeded (service)", zap.String("username", username))
	return accessToken, refreshToken, nil
}

// Refresh swaps a valid refresh token for a new token pair and rotates the
// stored refresh token.
func (s *AuthService) Refresh(ctx context.Context, userID int, role, oldToken string) (string, string, error) {
	log := logger.WithCtx(ctx)

	valid, err := s.repo.IsRefreshTokenValid(ctx, userID, oldToken)
	if err != nil {
		log.Error("failed to check refresh token", zap.Error(err))
		return "", "", err
	}
	if !valid {
		log.Warn("refresh token not recognized", zap.Int("user_id", userID))
		return "", "", ErrBadToken
	}

	accessToken, err := utils.GenerateToken(s.jwtSecret, userID, role, s.accessTTL, "access")
	if err != nil {
		return "", "", err
	}
	refreshToken, err := utils.GenerateToken(s.jwtSecret, userID, role, s.refreshTTL, "refresh")
	if err != nil {
		return "", "", err
	}
	if err := s.repo.SaveRefreshToken(ctx, userID, refreshToken); err != nil {
		log.Error("failed to rotate refresh token", zap.Error(err))
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *AuthService) Logout(ctx context.Context, userID int, refreshToken string) error {
	logger.WithCtx(ctx).Info("logout (service)", zap.Int("user_id", userID))
	return s.repo.DeleteRefreshToken(ctx, userID, refreshToken)
}

func (s *AuthService) Profile(ctx context.Context, userID int) (*models.UserProfileResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &models.UserProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *AuthService) GetUsers(ctx context.Context, limit, offset int) ([]*models.User, int, error) {
	return s.repo.GetAllUsersPaginated(ctx, limit, offset)
}
