package models

import "time"

// Service is one entry of the services catalog shown on the public site.
// Its Body shares the rich-text document pipeline with blog posts.
type Service struct {
	ID        int       `db:"id"        json:"id"`
	Title     string    `db:"title"     json:"title"`
	Slug      string    `db:"slug"      json:"slug"`
	Summary   string    `db:"summary"   json:"summary"`
	Icon      string    `db:"icon"      json:"icon"`
	Body      string    `db:"body"      json:"body"` // document tree JSON
	Position  int       `db:"position"  json:"position"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// swagger:model SaveServiceRequest
type SaveServiceRequest struct {
	Title    string `json:"title"    validate:"required,min=3,max=255"`
	Summary  string `json:"summary"  validate:"max=500"`
	Icon     string `json:"icon"     validate:"max=100"`
	Body     string `json:"body"     validate:"required"`
	Position int    `json:"position"`
	IsActive bool   `json:"isActive"`
}
