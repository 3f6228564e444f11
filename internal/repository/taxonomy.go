package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"vitalpoint/internal/models"
)

type TaxonomyRepo struct {
	db *pgxpool.Pool
}

func NewTaxonomyRepo(db *pgxpool.Pool) *TaxonomyRepo { return &TaxonomyRepo{db: db} }

func (r *TaxonomyRepo) CreateCategory(ctx context.Context, c *models.Category) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		`INSERT INTO categories (slug, title, position, is_active) VALUES ($1,$2,$3,$4) RETURNING id`,
		c.Slug, c.Title, c.Position, c.IsActive,
	).Scan(&id)
	return id, mapError(err)
}

func (r *TaxonomyRepo) UpdateCategory(ctx context.Context, c *models.Category) error {
	_, err := r.db.Exec(ctx,
		`UPDATE categories SET slug=$1, title=$2, position=$3, is_active=$4, updated_at=NOW() WHERE id=$5`,
		c.Slug, c.Title, c.Position, c.IsActive, c.ID,
	)
	return mapError(err)
}

func (r *TaxonomyRepo) DeleteCategory(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	return err
}

func (r *TaxonomyRepo) GetCategoryByID(ctx context.Context, id int) (*models.Category, error) {
	const q = `SELECT id, slug, title, position, is_active, created_at, updated_at
		FROM categories WHERE id=$1`

	var c models.Category
	if err := r.db.QueryRow(ctx, q, id).Scan(&c.ID, &c.Slug, &c.Title, &c.Position,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

// ListCategories returns active categories with published-post counts, for
// the blog sidebar.
func (r *TaxonomyRepo) ListCategories(ctx context.Context) ([]models.CategoryWithCount, error) {
	const q = `
		SELECT c.id, c.slug, c.title, c.position, c.is_active, c.created_at, c.updated_at,
		       COUNT(p.id) FILTER (WHERE p.is_published) AS post_count
		FROM categories c
		LEFT JOIN posts p ON p.category_id = c.id
		WHERE c.is_active
		GROUP BY c.id
		ORDER BY c.position, c.id
	`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.CategoryWithCount
	for rows.Next() {
		var cc models.CategoryWithCount
		if err := rows.Scan(&cc.Category.ID, &cc.Category.Slug, &cc.Category.Title,
			&cc.Category.Position, &cc.Category.IsActive, &cc.Category.CreatedAt,
			&cc.Category.UpdatedAt, &cc.PostCount); err != nil {
			return nil, err
		}
		list = append(list, cc)
	}
	return list, rows.Err()
}
