package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"vitalpoint/internal/models"
)

type MediaRepo interface {
	Create(ctx context.Context, f *models.MediaFile) (*models.MediaFile, error)
	GetByID(ctx context.Context, id int64) (*models.MediaFile, error)
	GetAll(ctx context.Context, limit, offset int) ([]*models.MediaFile, error)
	Delete(ctx context.Context, id int64) error
}

type mediaRepo struct{ db *pgxpool.Pool }

func NewMediaRepo(db *pgxpool.Pool) MediaRepo { return &mediaRepo{db: db} }

func (r *mediaRepo) Create(ctx context.Context, f *models.MediaFile) (*models.MediaFile, error) {
	const q = `
		INSERT INTO media_files (uploader_id, object_key, filename, mime_type, size_bytes, data)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at
	`
	out := *f
	err := r.db.QueryRow(ctx, q, f.UploaderID, f.ObjectKey, f.Filename, f.MimeType,
		f.SizeBytes, f.Data).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

func (r *mediaRepo) GetByID(ctx context.Context, id int64) (*models.MediaFile, error) {
	const q = `SELECT id, uploader_id, object_key, filename, mime_type, size_bytes, data, created_at
		FROM media_files WHERE id=$1`

	var f models.MediaFile
	if err := r.db.QueryRow(ctx, q, id).Scan(&f.ID, &f.UploaderID, &f.ObjectKey,
		&f.Filename, &f.MimeType, &f.SizeBytes, &f.Data, &f.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &f, nil
}

// GetAll lists file metadata only; blobs stay in the database until a
// specific file is requested.
func (r *mediaRepo) GetAll(ctx context.Context, limit, offset int) ([]*models.MediaFile, error) {
	const q = `SELECT id, uploader_id, object_key, filename, mime_type, size_bytes, created_at
		FROM media_files ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.MediaFile
	for rows.Next() {
		var f models.MediaFile
		if err := rows.Scan(&f.ID, &f.UploaderID, &f.ObjectKey, &f.Filename,
			&f.MimeType, &f.SizeBytes, &f.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

func (r *mediaRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM media_files WHERE id=$1`, id)
	return err
}
