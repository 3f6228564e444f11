package models

import "time"

type TeamMember struct {
	ID        int       `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	RoleTitle string    `db:"role_title" json:"roleTitle"`
	Bio       string    `db:"bio"        json:"bio"`
	PhotoURL  string    `db:"photo_url"  json:"photoUrl"`
	Position  int       `db:"position"   json:"position"`
	IsActive  bool      `db:"is_active"  json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// swagger:model SaveTeamMemberRequest
type SaveTeamMemberRequest struct {
	Name      string `json:"name"      validate:"required,min=2,max=255"`
	RoleTitle string `json:"roleTitle" validate:"required,max=255"`
	Bio       string `json:"bio"       validate:"max=2000"`
	PhotoURL  string `json:"photoUrl"  validate:"omitempty,max=500"`
	Position  int    `json:"position"`
	IsActive  bool   `json:"isActive"`
}
