package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"vitalpoint/internal/models"
)

type TeamRepo interface {
	Create(ctx context.Context, m *models.TeamMember) (int, error)
	GetAll(ctx context.Context, onlyActive bool) ([]*models.TeamMember, error)
	GetByID(ctx context.Context, id int) (*models.TeamMember, error)
	Update(ctx context.Context, m *models.TeamMember) error
	Delete(ctx context.Context, id int) error
}

type teamRepo struct{ db *pgxpool.Pool }

func NewTeamRepo(db *pgxpool.Pool) TeamRepo { return &teamRepo{db: db} }

func (r *teamRepo) Create(ctx context.Context, m *models.TeamMember) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		`INSERT INTO team_members (name, role_title, bio, photo_url, position, is_active)
		 VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
		m.Name, m.RoleTitle, m.Bio, m.PhotoURL, m.Position, m.IsActive,
	).Scan(&id)
	return id, err
}

func (r *teamRepo) GetAll(ctx context.Context, onlyActive bool) ([]*models.TeamMember, error) {
	q := `SELECT id, name, role_title, bio, photo_url, position, is_active, created_at, updated_at
		FROM team_members`
	if onlyActive {
		q += ` WHERE is_active = true`
	}
	q += ` ORDER BY position, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.TeamMember
	for rows.Next() {
		var m models.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.RoleTitle, &m.Bio, &m.PhotoURL,
			&m.Position, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *teamRepo) GetByID(ctx context.Context, id int) (*models.TeamMember, error) {
	const q = `SELECT id, name, role_title, bio, photo_url, position, is_active, created_at, updated_at
		FROM team_members WHERE id=$1`

	var m models.TeamMember
	if err := r.db.QueryRow(ctx, q, id).Scan(&m.ID, &m.Name, &m.RoleTitle, &m.Bio,
		&m.PhotoURL, &m.Position, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, mapError(err)
	}
	return &m, nil
}

func (r *teamRepo) Update(ctx context.Context, m *models.TeamMember) error {
	_, err := r.db.Exec(ctx,
		`UPDATE team_members
		 SET name=$1, role_title=$2, bio=$3, photo_url=$4, position=$5, is_active=$6, updated_at=NOW()
		 WHERE id=$7`,
		m.Name, m.RoleTitle, m.Bio, m.PhotoURL, m.Position, m.IsActive, m.ID,
	)
	return err
}

func (r *teamRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM team_members WHERE id=$1`, id)
	return err
}
