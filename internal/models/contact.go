package models

import "time"

type ContactSubmission struct {
	ID        int64     `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Email     string    `db:"email"      json:"email"`
	Phone     string    `db:"phone"      json:"phone"`
	Subject   string    `db:"subject"    json:"subject"`
	Message   string    `db:"message"    json:"message"`
	IsRead    bool      `db:"is_read"    json:"isRead"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// swagger:model ContactRequest
type ContactRequest struct {
	Name    string `json:"name"    validate:"required,min=2,max=255"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"omitempty,max=50"`
	Subject string `json:"subject" validate:"max=255"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}
