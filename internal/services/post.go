package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"vitalpoint/internal/content"
	"vitalpoint/internal/logger"
	"vitalpoint/internal/models"
	"vitalpoint/internal/repository"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const excerptLength = 200

type PostService interface {
	Create(ctx context.Context, authorID *int64, req models.SavePostRequest) (*models.Post, error)
	Update(ctx context.Context, id int64, req models.SavePostRequest) (*models.Post, error)
	GetAll(ctx context.Context, limit, offset int, tag string, categoryID int, onlyPublished bool) ([]*models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Post, error)
	Delete(ctx context.Context, id int64) error
	SetPublish(ctx context.Context, id int64, publish bool) (*models.Post, error)
	PreviewHTML(raw string) string
	PublicHTML(ctx context.Context, slug string) (string, error)
	Search(ctx context.Context, query string, limit int) ([]*models.Post, error)
}

type postService struct {
	repo   repository.PostRepo
	policy *bluemonday.Policy
}

func NewPostService(repo repository.PostRepo) PostService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img", "figure", "figcaption", "u", "s", "mark")
	p.AllowAttrs("src", "alt", "title", "style").OnElements("img")
	p.AllowAttrs("class").OnElements("figure")
	p.AllowAttrs("style").OnElements("mark", "span")
	return &postService{repo: repo, policy: p}
}

// derived holds everything the save pipeline computes from a request:
// the normalized document plus the metadata recomputed on every save.
type derived struct {
	content   string
	slug      string
	wordCount int
	readTime  int
	excerpt   *string
}

// derive runs the mandatory pre-save pipeline: strict parse, emptiness
// validation, normalization, metric recomputation, slug generation.
func derive(title, rawContent string, publish bool) (*derived, error) {
	title = strings.TrimSpace(title)
	if l := utf8.RuneCountInString(title); l < 3 || l > 255 {
		return nil, errors.New("title must be between 3 and 255 characters")
	}

	doc, err := content.Parse(rawContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	if publish && content.IsEmpty(doc) {
		return nil, ErrEmptyContent
	}

	norm := content.Normalize(doc)
	normJSON, err := norm.JSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	slug := content.Slugify(title)
	if slug == "" {
		return nil, errors.New("title must contain at least one letter or digit")
	}

	var excerpt *string
	if ex := content.Excerpt(norm, excerptLength); ex != "" {
		excerpt = &ex
	}

	return &derived{
		content:   normJSON,
		slug:      slug,
		wordCount: content.WordCount(norm),
		readTime:  content.ReadingTime(norm, 0),
		excerpt:   excerpt,
	}, nil
}

func (s *postService) Create(ctx context.Context, authorID *int64, req models.SavePostRequest) (*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Info("creating post",
		zap.Any("author_id", authorID),
		zap.String("title", strings.TrimSpace(req.Title)),
		zap.Bool("publish", req.Publish),
		zap.Int("tags_count", len(req.Tags)),
	)

	if len(req.Tags) > 5 {
		err := errors.New("at most 5 tags")
		log.Warn("post validation failed: tags", zap.Int("tags_count", len(req.Tags)), zap.Error(err))
		return nil, err
	}

	d, err := derive(req.Title, req.Content, req.Publish)
	if err != nil {
		log.Warn("post validation failed", zap.Error(err))
		return nil, err
	}

	p := &models.Post{
		AuthorID:    authorID,
		Title:       strings.TrimSpace(req.Title),
		Slug:        d.slug,
		Content:     d.content,
		Excerpt:     d.excerpt,
		WordCount:   d.wordCount,
		ReadTime:    d.readTime,
		CoverImage:  strPtr(req.CoverImage),
		CategoryID:  req.CategoryID,
		Tags:        normalizeTags(req.Tags),
		IsPublished: req.Publish,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			log.Warn("slug collision", zap.String("slug", d.slug))
			return nil, ErrSlugTaken
		}
		log.Error("failed to create post (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("post created",
		zap.Int64("id", created.ID),
		zap.String("slug", created.Slug),
		zap.Int("word_count", created.WordCount),
		zap.Int("read_time", created.ReadTime),
	)
	return created, nil
}

func (s *postService) Update(ctx context.Context, id int64, req models.SavePostRequest) (*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Info("updating post", zap.Int64("id", id), zap.String("title", strings.TrimSpace(req.Title)))

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error("failed to load post for update (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	d, err := derive(req.Title, req.Content, req.Publish)
	if err != nil {
		log.Warn("post validation failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	p.Title = strings.TrimSpace(req.Title)
	p.Slug = d.slug
	p.Content = d.content
	p.Excerpt = d.excerpt
	p.WordCount = d.wordCount
	p.ReadTime = d.readTime
	p.CoverImage = strPtr(req.CoverImage)
	p.CategoryID = req.CategoryID
	p.Tags = normalizeTags(req.Tags)
	p.IsPublished = req.Publish

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugTaken
		}
		log.Error("failed to update post (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("post updated", zap.Int64("id", id), zap.Bool("published", p.IsPublished))
	return p, nil
}

func (s *postService) GetAll(ctx context.Context, limit, offset int, tag string, categoryID int, onlyPublished bool) ([]*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Debug("listing posts",
		zap.Int("limit", limit),
		zap.Int("offset", offset),
		zap.String("tag", tag),
		zap.Int("category_id", categoryID),
		zap.Bool("only_published", onlyPublished),
	)

	list, err := s.repo.GetAll(ctx, limit, offset, tag, categoryID, onlyPublished)
	if err != nil {
		log.Error("failed to list posts (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *postService) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *postService) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Post, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if publishedOnly && !p.IsPublished {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	log := logger.WithCtx(ctx)
	log.Info("deleting post", zap.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("failed to delete post (repo)", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *postService) SetPublish(ctx context.Context, id int64, publish bool) (*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Info("changing publish state", zap.Int64("id", id), zap.Bool("publish", publish))

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		log.Error("failed to check post existence (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	if publish {
		// An empty document must not go public even via the publish toggle.
		p, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if content.IsEmpty(content.ParseOrFallback(p.Content)) {
			log.Warn("refusing to publish empty post", zap.Int64("id", id))
			return nil, ErrEmptyContent
		}
	}

	if err := s.repo.UpdatePublish(ctx, id, publish); err != nil {
		log.Error("failed to update publish state (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// PreviewHTML renders a draft document the way the public page would: the
// tree is shown through a read-only editor session (the same rule table as
// the stateless renderer) and the result is sanitized before going back to
// the admin UI. A malformed draft falls back, it never errors.
func (s *postService) PreviewHTML(raw string) string {
	log := logger.WithCtx(context.Background())

	doc := content.ParseOrFallback(raw)
	view := content.NewEditor(content.EditorOptions{Content: doc, ReadOnly: true})
	defer view.Destroy()

	clean := s.policy.Sanitize(view.HTML())
	log.Debug("post preview rendered",
		zap.Int("raw_len", len(raw)),
		zap.Int("clean_len", len(clean)),
	)
	return clean
}

// PublicHTML returns the server-rendered HTML of a published post. A
// corrupt stored document renders the fallback paragraph instead of
// failing the page.
func (s *postService) PublicHTML(ctx context.Context, slug string) (string, error) {
	p, err := s.GetBySlug(ctx, slug, true)
	if err != nil {
		return "", err
	}
	return content.RenderHTMLString(p.Content), nil
}

func (s *postService) Search(ctx context.Context, query string, limit int) ([]*models.Post, error) {
	return s.repo.Search(ctx, query, limit)
}

func strPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func normalizeTags(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
