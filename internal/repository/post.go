package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"vitalpoint/internal/models"
)

type PostRepo interface {
	Create(ctx context.Context, p *models.Post) (*models.Post, error)
	GetAll(ctx context.Context, limit, offset int, tag string, categoryID int, onlyPublished bool) ([]*models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	Update(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	UpdatePublish(ctx context.Context, id int64, publish bool) error
	Search(ctx context.Context, query string, limit int) ([]*models.Post, error)
}

type postRepo struct{ db *pgxpool.Pool }

func NewPostRepo(db *pgxpool.Pool) PostRepo { return &postRepo{db: db} }

const postColumns = `id, author_id, title, slug, content, excerpt, word_count, read_time,
	cover_image, category_id, is_published, published_at, created_at, updated_at, tags`

func (r *postRepo) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	tagsJSON, _ := json.Marshal(p.Tags)

	q := `
		INSERT INTO posts (author_id, title, slug, content, excerpt, word_count, read_time,
			cover_image, category_id, tags, is_published, published_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10::jsonb,$11, CASE WHEN $11 THEN NOW() ELSE NULL END)
		RETURNING ` + postColumns

	var out models.Post
	var tagsRaw []byte
	err := r.db.QueryRow(ctx, q,
		p.AuthorID,
		p.Title,
		p.Slug,
		p.Content,
		p.Excerpt,
		p.WordCount,
		p.ReadTime,
		p.CoverImage,
		p.CategoryID,
		tagsJSON,
		p.IsPublished,
	).Scan(
		&out.ID, &out.AuthorID, &out.Title, &out.Slug, &out.Content, &out.Excerpt,
		&out.WordCount, &out.ReadTime, &out.CoverImage, &out.CategoryID,
		&out.IsPublished, &out.PublishedAt, &out.CreatedAt, &out.UpdatedAt, &tagsRaw,
	)
	if err != nil {
		return nil, mapError(err)
	}
	_ = json.Unmarshal(tagsRaw, &out.Tags)
	return &out, nil
}

func (r *postRepo) GetAll(ctx context.Context, limit, offset int, tag string, categoryID int, onlyPublished bool) ([]*models.Post, error) {
	qBase := `SELECT ` + postColumns + ` FROM posts`

	where := []string{}
	args := []interface{}{}
	i := 1

	if onlyPublished {
		where = append(where, fmt.Sprintf("is_published = $%d", i))
		args = append(args, true)
		i++
	}
	if tag != "" {
		// tags is a jsonb array of strings: ["a","b"]
		where = append(where, fmt.Sprintf(`
			EXISTS (
				SELECT 1
				FROM jsonb_array_elements_text(tags) AS t(val)
				WHERE t.val = $%d
			)
		`, i))
		args = append(args, tag)
		i++
	}
	if categoryID > 0 {
		where = append(where, fmt.Sprintf("category_id = $%d", i))
		args = append(args, categoryID)
		i++
	}

	sql := qBase
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Post
	for rows.Next() {
		var p models.Post
		var tagsRaw []byte
		if err := rows.Scan(
			&p.ID, &p.AuthorID, &p.Title, &p.Slug, &p.Content, &p.Excerpt,
			&p.WordCount, &p.ReadTime, &p.CoverImage, &p.CategoryID,
			&p.IsPublished, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt, &tagsRaw,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal(tagsRaw, &p.Tags)
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *postRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	return r.getOne(ctx, "id=$1", id)
}

func (r *postRepo) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return r.getOne(ctx, "slug=$1", slug)
}

func (r *postRepo) getOne(ctx context.Context, cond string, arg interface{}) (*models.Post, error) {
	q := `SELECT ` + postColumns + ` FROM posts WHERE ` + cond

	var p models.Post
	var tagsRaw []byte
	if err := r.db.QueryRow(ctx, q, arg).Scan(
		&p.ID, &p.AuthorID, &p.Title, &p.Slug, &p.Content, &p.Excerpt,
		&p.WordCount, &p.ReadTime, &p.CoverImage, &p.CategoryID,
		&p.IsPublished, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt, &tagsRaw,
	); err != nil {
		return nil, mapError(err)
	}
	_ = json.Unmarshal(tagsRaw, &p.Tags)
	return &p, nil
}

func (r *postRepo) Update(ctx context.Context, p *models.Post) error {
	tagsJSON, _ := json.Marshal(p.Tags)
	const q = `
		UPDATE posts
		SET title=$1,
		    slug=$2,
		    content=$3,
		    excerpt=$4,
		    word_count=$5,
		    read_time=$6,
		    cover_image=$7,
		    category_id=$8,
		    tags=$9::jsonb,
		    is_published=$10,
		    published_at = CASE WHEN $10 THEN COALESCE(published_at, NOW()) ELSE NULL END,
		    updated_at=NOW()
		WHERE id=$11
	`
	_, err := r.db.Exec(ctx, q, p.Title, p.Slug, p.Content, p.Excerpt, p.WordCount,
		p.ReadTime, p.CoverImage, p.CategoryID, tagsJSON, p.IsPublished, p.ID)
	return mapError(err)
}

func (r *postRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id=$1", id)
	return err
}

func (r *postRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`
	var ok bool
	if err := r.db.QueryRow(ctx, q, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *postRepo) UpdatePublish(ctx context.Context, id int64, publish bool) error {
	const q = `
		UPDATE posts
		SET is_published = $2,
		    published_at = CASE WHEN $2 THEN COALESCE(published_at, NOW()) ELSE NULL END,
		    updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, q, id, publish)
	return err
}

func (r *postRepo) Search(ctx context.Context, query string, limit int) ([]*models.Post, error) {
	q := `SELECT ` + postColumns + ` FROM posts
		WHERE is_published = true
		  AND (title ILIKE '%' || $1 || '%' OR excerpt ILIKE '%' || $1 || '%')
		ORDER BY published_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Post
	for rows.Next() {
		var p models.Post
		var tagsRaw []byte
		if err := rows.Scan(
			&p.ID, &p.AuthorID, &p.Title, &p.Slug, &p.Content, &p.Excerpt,
			&p.WordCount, &p.ReadTime, &p.CoverImage, &p.CategoryID,
			&p.IsPublished, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt, &tagsRaw,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal(tagsRaw, &p.Tags)
		list = append(list, &p)
	}
	return list, rows.Err()
}
