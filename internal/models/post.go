package models

import "time"

// Post is a blog post: a serialized rich-text document plus the metadata
// derived from it on every save (word count, read time, excerpt).
type Post struct {
	ID          int64      `db:"id"           json:"id"`
	AuthorID    *int64     `db:"author_id"    json:"authorId,omitempty"`
	Title       string     `db:"title"        json:"title"`
	Slug        string     `db:"slug"         json:"slug"`
	Content     string     `db:"content"      json:"content"` // document tree JSON
	Excerpt     *string    `db:"excerpt"      json:"excerpt,omitempty"`
	WordCount   int        `db:"word_count"   json:"wordCount"`
	ReadTime    int        `db:"read_time"    json:"readTime"`
	CoverImage  *string    `db:"cover_image"  json:"coverImage,omitempty"`
	CategoryID  *int       `db:"category_id"  json:"categoryId,omitempty"`
	Tags        []string   `db:"-"            json:"tags"`
	IsPublished bool       `db:"is_published" json:"isPublished"`
	PublishedAt *time.Time `db:"published_at" json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `db:"created_at"   json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at"   json:"updatedAt"`
}

// swagger:model SavePostRequest
type SavePostRequest struct {
	Title      string   `json:"title"      validate:"required,min=3,max=255" example:"How telehealth changes primary care"`
	Content    string   `json:"content"    validate:"required"               example:"{\"type\":\"document\",\"content\":[]}"`
	CoverImage string   `json:"coverImage" validate:"omitempty,max=500"`
	CategoryID *int     `json:"categoryId,omitempty"`
	Tags       []string `json:"tags"       validate:"max=5"                  example:"telehealth,ehr"`
	Publish    bool     `json:"publish"`
}

// PostListItem is the listing-view shape: derived metadata instead of the
// full document.
type PostListItem struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	WordCount   int        `json:"wordCount"`
	ReadTime    int        `json:"readTime"`
	CoverImage  *string    `json:"coverImage,omitempty"`
	CategoryID  *int       `json:"categoryId,omitempty"`
	Tags        []string   `json:"tags"`
	IsPublished bool       `json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (p *Post) ListItem() PostListItem {
	return PostListItem{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		WordCount:   p.WordCount,
		ReadTime:    p.ReadTime,
		CoverImage:  p.CoverImage,
		CategoryID:  p.CategoryID,
		Tags:        p.Tags,
		IsPublished: p.IsPublished,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
	}
}
