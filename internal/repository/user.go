package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"vitalpoint/internal/models"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM users WHERE username=$1)`
	var ok bool
	err := r.db.QueryRow(ctx, q, username).Scan(&ok)
	return ok, err
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	const q = `
		INSERT INTO users (username, full_name, email, password_hash, role)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, q, user.Username, user.FullName, user.Email,
		user.PasswordHash, user.Role).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	return mapError(err)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const q = `SELECT id, username, full_name, email, password_hash, role, created_at, updated_at
		FROM users WHERE username=$1`

	var u models.User
	if err := r.db.QueryRow(ctx, q, username).Scan(&u.ID, &u.Username, &u.FullName,
		&u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	const q = `SELECT id, username, full_name, email, password_hash, role, created_at, updated_at
		FROM users WHERE id=$1`

	var u models.User
	if err := r.db.QueryRow(ctx, q, id).Scan(&u.ID, &u.Username, &u.FullName,
		&u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *UserRepository) GetAllUsersPaginated(ctx context.Context, limit, offset int) ([]*models.User, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const q = `SELECT id, username, full_name, email, password_hash, role, created_at, updated_at
		FROM users ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.FullName, &u.Email,
			&u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, err
		}
		list = append(list, &u)
	}
	return list, total, rows.Err()
}

func (r *UserRepository) SaveRefreshToken(ctx context.Context, userID int, token string) error {
	const q = `
		INSERT INTO refresh_tokens (user_id, token)
		VALUES ($1,$2)
		ON CONFLICT (user_id) DO UPDATE SET token = EXCLUDED.token, created_at = NOW()
	`
	_, err := r.db.Exec(ctx, q, userID, token)
	return err
}

func (r *UserRepository) IsRefreshTokenValid(ctx context.Context, userID int, token string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE user_id=$1 AND token=$2)`
	var ok bool
	err := r.db.QueryRow(ctx, q, userID, token).Scan(&ok)
	return ok, err
}

func (r *UserRepository) DeleteRefreshToken(ctx context.Context, userID int, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id=$1 AND token=$2`, userID, token)
	return err
}
