package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"vitalpoint/internal/models"
)

type ContactRepo interface {
	Create(ctx context.Context, c *models.ContactSubmission) (*models.ContactSubmission, error)
	GetAll(ctx context.Context, limit, offset int, onlyUnread bool) ([]*models.ContactSubmission, int, error)
	GetByID(ctx context.Context, id int64) (*models.ContactSubmission, error)
	MarkRead(ctx context.Context, id int64, read bool) error
	Delete(ctx context.Context, id int64) error
}

type contactRepo struct{ db *pgxpool.Pool }

func NewContactRepo(db *pgxpool.Pool) ContactRepo { return &contactRepo{db: db} }

func (r *contactRepo) Create(ctx context.Context, c *models.ContactSubmission) (*models.ContactSubmission, error) {
	const q = `
		INSERT INTO contact_submissions (name, email, phone, subject, message)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, name, email, phone, subject, message, is_read, created_at
	`
	var out models.ContactSubmission
	err := r.db.QueryRow(ctx, q, c.Name, c.Email, c.Phone, c.Subject, c.Message).Scan(
		&out.ID, &out.Name, &out.Email, &out.Phone, &out.Subject, &out.Message,
		&out.IsRead, &out.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *contactRepo) GetAll(ctx context.Context, limit, offset int, onlyUnread bool) ([]*models.ContactSubmission, int, error) {
	q := `SELECT id, name, email, phone, subject, message, is_read, created_at
		FROM contact_submissions`
	countQ := `SELECT COUNT(*) FROM contact_submissions`
	if onlyUnread {
		q += ` WHERE is_read = false`
		countQ += ` WHERE is_read = false`
	}
	q += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	var total int
	if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []*models.ContactSubmission
	for rows.Next() {
		var c models.ContactSubmission
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject,
			&c.Message, &c.IsRead, &c.CreatedAt); err != nil {
			return nil, 0, err
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}

func (r *contactRepo) GetByID(ctx context.Context, id int64) (*models.ContactSubmission, error) {
	const q = `SELECT id, name, email, phone, subject, message, is_read, created_at
		FROM contact_submissions WHERE id=$1`

	var c models.ContactSubmission
	if err := r.db.QueryRow(ctx, q, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone,
		&c.Subject, &c.Message, &c.IsRead, &c.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *contactRepo) MarkRead(ctx context.Context, id int64, read bool) error {
	_, err := r.db.Exec(ctx, `UPDATE contact_submissions SET is_read=$2 WHERE id=$1`, id, read)
	return err
}

func (r *contactRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM contact_submissions WHERE id=$1`, id)
	return err
}
