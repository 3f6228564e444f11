package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"vitalpoint/internal/models"
)

type ServiceRepo interface {
	Create(ctx context.Context, s *models.Service) (int, error)
	GetAll(ctx context.Context, onlyActive bool) ([]*models.Service, error)
	GetByID(ctx context.Context, id int) (*models.Service, error)
	GetBySlug(ctx context.Context, slug string) (*models.Service, error)
	Update(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, query string, limit int) ([]*models.Service, error)
}

type serviceRepo struct{ db *pgxpool.Pool }

func NewServiceRepo(db *pgxpool.Pool) ServiceRepo { return &serviceRepo{db: db} }

const serviceColumns = `id, title, slug, summary, icon, body, position, is_active, created_at, updated_at`

func (r *serviceRepo) Create(ctx context.Context, s *models.Service) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		`INSERT INTO services (title, slug, summary, icon, body, position, is_active)
		 VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
		s.Title, s.Slug, s.Summary, s.Icon, s.Body, s.Position, s.IsActive,
	).Scan(&id)
	return id, mapError(err)
}

func (r *serviceRepo) GetAll(ctx context.Context, onlyActive bool) ([]*models.Service, error) {
	q := `SELECT ` + serviceColumns + ` FROM services`
	if onlyActive {
		q += ` WHERE is_active = true`
	}
	q += ` ORDER BY position, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Service
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Slug, &s.Summary, &s.Icon, &s.Body,
			&s.Position, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *serviceRepo) GetByID(ctx context.Context, id int) (*models.Service, error) {
	return r.getOne(ctx, "id=$1", id)
}

func (r *serviceRepo) GetBySlug(ctx context.Context, slug string) (*models.Service, error) {
	return r.getOne(ctx, "slug=$1", slug)
}

func (r *serviceRepo) getOne(ctx context.Context, cond string, arg interface{}) (*models.Service, error) {
	q := `SELECT ` + serviceColumns + ` FROM services WHERE ` + cond

	var s models.Service
	if err := r.db.QueryRow(ctx, q, arg).Scan(&s.ID, &s.Title, &s.Slug, &s.Summary,
		&s.Icon, &s.Body, &s.Position, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, mapError(err)
	}
	return &s, nil
}

func (r *serviceRepo) Update(ctx context.Context, s *models.Service) error {
	_, err := r.db.Exec(ctx,
		`UPDATE services
		 SET title=$1, slug=$2, summary=$3, icon=$4, body=$5, position=$6, is_active=$7, updated_at=NOW()
		 WHERE id=$8`,
		s.Title, s.Slug, s.Summary, s.Icon, s.Body, s.Position, s.IsActive, s.ID,
	)
	return mapError(err)
}

func (r *serviceRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM services WHERE id=$1`, id)
	return err
}

func (r *serviceRepo) Search(ctx context.Context, query string, limit int) ([]*models.Service, error) {
	q := `SELECT ` + serviceColumns + ` FROM services
		WHERE is_active = true
		  AND (title ILIKE '%' || $1 || '%' OR summary ILIKE '%' || $1 || '%')
		ORDER BY position
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Service
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Slug, &s.Summary, &s.Icon, &s.Body,
			&s.Position, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
