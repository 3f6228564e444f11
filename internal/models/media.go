package models

import "time"

// MediaFile is an uploaded image stored in the database; its public URL is
// what image nodes reference as src.
type MediaFile struct {
	ID         int64     `db:"id"          json:"id"`
	UploaderID *int64    `db:"uploader_id" json:"uploaderId,omitempty"`
	ObjectKey  string    `db:"object_key"  json:"objectKey"`
	Filename   string    `db:"filename"    json:"filename"`
	MimeType   string    `db:"mime_type"   json:"mimeType"`
	SizeBytes  int64     `db:"size_bytes"  json:"sizeBytes"`
	Data       []byte    `db:"data"        json:"-"`
	CreatedAt  time.Time `db:"created_at"  json:"createdAt"`
}
