package models

import "time"

type Category struct {
	ID        int       `db:"id"         json:"id"`
	Slug      string    `db:"slug"       json:"slug"`
	Title     string    `db:"title"      json:"title"`
	Position  int       `db:"position"   json:"position"`
	IsActive  bool      `db:"is_active"  json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type CategoryWithCount struct {
	Category  Category `json:"category"`
	PostCount int      `json:"postCount"`
}

// swagger:model SaveCategoryRequest
type SaveCategoryRequest struct {
	Title    string `json:"title" validate:"required,min=2,max=255"`
	Position int    `json:"position"`
	IsActive bool   `json:"isActive"`
}
