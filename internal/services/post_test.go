package services

import (
	"context"
	"strings"
	"testing"

	"vitalpoint/internal/models"
	"vitalpoint/internal/repository"
)

type mockPostRepo struct {
	posts  map[int64]*models.Post
	nextID int64
	slugs  map[string]int64
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: map[int64]*models.Post{}, slugs: map[string]int64{}, nextID: 1}
}

func (m *mockPostRepo) Create(_ context.Context, p *models.Post) (*models.Post, error) {
	if _, taken := m.slugs[p.Slug]; taken {
		return nil, repository.ErrDuplicate
	}
	cp := *p
	cp.ID = m.nextID
	m.nextID++
	m.posts[cp.ID] = &cp
	m.slugs[cp.Slug] = cp.ID
	return &cp, nil
}

func (m *mockPostRepo) GetAll(_ context.Context, limit, offset int, tag string, categoryID int, onlyPublished bool) ([]*models.Post, error) {
	var out []*models.Post
	for _, p := range m.posts {
		if onlyPublished && !p.IsPublished {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockPostRepo) GetByID(_ context.Context, id int64) (*models.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (m *mockPostRepo) GetBySlug(_ context.Context, slug string) (*models.Post, error) {
	id, ok := m.slugs[slug]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return m.posts[id], nil
}

func (m *mockPostRepo) Update(_ context.Context, p *models.Post) error {
	old, ok := m.posts[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if other, taken := m.slugs[p.Slug]; taken && other != p.ID {
		return repository.ErrDuplicate
	}
	delete(m.slugs, old.Slug)
	cp := *p
	m.posts[p.ID] = &cp
	m.slugs[p.Slug] = p.ID
	return nil
}

func (m *mockPostRepo) Delete(_ context.Context, id int64) error {
	p, ok := m.posts[id]
	if !ok {
		return repository.ErrNotFound
	}
	delete(m.slugs, p.Slug)
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.posts[id]
	return ok, nil
}

func (m *mockPostRepo) UpdatePublish(_ context.Context, id int64, publish bool) error {
	p, ok := m.posts[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.IsPublished = publish
	return nil
}

func (m *mockPostRepo) Search(_ context.Context, query string, limit int) ([]*models.Post, error) {
	var out []*models.Post
	for _, p := range m.posts {
		if strings.Contains(strings.ToLower(p.Title), strings.ToLower(query)) {
			out = append(out, p)
		}
	}
	return out, nil
}

const articleJSON = `{
	"type": "document",
	"content": [
		{"type": "heading", "attrs": {"level": 2}, "content": [{"type": "text", "text": "Remote monitoring"}]},
		{"type": "paragraph", "content": [{"type": "text", "text": "The quick brown fox jumps over the lazy dog."}]},
		{"type": "image", "attrs": {"src": "/api/media/1", "alt": "chart"}}
	]
}`

func TestCreatePost_DerivesMetadata(t *testing.T) {
	svc := NewPostService(newMockPostRepo())

	post, err := svc.Create(context.Background(), nil, models.SavePostRequest{
		Title:   "Café Management für Teams!",
		Content: articleJSON,
		Tags:    []string{"Telehealth", " telehealth ", "EHR"},
		Publish: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if post.Slug != "cafe-management-fur-teams" {
		t.Errorf("slug = %q", post.Slug)
	}
	if post.WordCount != 11 {
		t.Errorf("word count = %d, want 11", post.WordCount)
	}
	if post.ReadTime != 1 {
		t.Errorf("read time = %d, want 1", post.ReadTime)
	}
	if post.Excerpt == nil || !strings.Contains(*post.Excerpt, "Remote monitoring") {
		t.Errorf("excerpt = %v", post.Excerpt)
	}
	// tags deduplicated and lowercased
	if len(post.Tags) != 2 {
		t.Errorf("tags = %v", post.Tags)
	}
	// normalization filled in the image defaults before storage
	if !strings.Contains(post.Content, `"alignment":"center"`) {
		t.Errorf("stored content missing image alignment default: %s", post.Content)
	}
	if !strings.Contains(post.Content, `"caption":""`) {
		t.Errorf("stored content missing image caption default: %s", post.Content)
	}
}

func TestCreatePost_RejectsEmptyContentOnPublish(t *testing.T) {
	svc := NewPostService(newMockPostRepo())

	_, err := svc.Create(context.Background(), nil, models.SavePostRequest{
		Title:   "Empty draft",
		Content: `{"type":"document","content":[{"type":"paragraph"}]}`,
		Publish: true,
	})
	if err != ErrEmptyContent {
		t.Fatalf("err = %v, want ErrEmptyContent", err)
	}
}

func TestCreatePost_EmptyDraftAllowed(t *testing.T) {
	svc := NewPostService(newMockPostRepo())

	post, err := svc.Create(context.Background(), nil, models.SavePostRequest{
		Title:   "Empty draft",
		Content: `{"type":"document","content":[{"type":"paragraph"}]}`,
		Publish: false,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.IsPublished {
		t.Error("draft should not be published")
	}
	if post.WordCount != 0 {
		t.Errorf("word count = %d, want 0", post.WordCount)
	}
}

func TestCreatePost_SlugConflict(t *testing.T) {
	svc := NewPostService(newMockPostRepo())

	req := models.SavePostRequest{Title: "Same Title", Content: articleJSON}
	if _, err := svc.Create(context.Background(), nil, req); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := svc.Create(context.Background(), nil, req)
	if err != ErrSlugTaken {
		t.Fatalf("err = %v, want ErrSlugTaken", err)
	}
}

func TestCreatePost_InvalidDocument(t *testing.T) {
	svc := NewPostService(newMockPostRepo())

	_, err := svc.Create(context.Background(), nil, models.SavePostRequest{
		Title:   "Broken payload",
		Content: `{"kind":"html"}`,
	})
	if err == nil || !strings.Contains(err.Error(), ErrInvalidContent.Error()) {
		t.Fatalf("err = %v, want invalid content", err)
	}
}

func TestUpdatePost_RecomputesDerivedFields(t *testing.T) {
	repo := newMockPostRepo()
	svc := NewPostService(repo)

	post, err := svc.Create(context.Background(), nil, models.SavePostRequest{
		Title: "Original Title", Content: articleJSON,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), post.ID, models.SavePostRequest{
		Title:   "Renamed Entirely",
		Content: `{"type":"document","content":[{"type":"paragraph","content":[{"type":"text","text":"one two three"}]}]}`,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Slug != "renamed-entirely" {
		t.Errorf("slug = %q", updated.Slug)
	}
	if updated.WordCount != 3 {
		t.Errorf("word count = %d, want 3", updated.WordCount)
	}
}

func TestSetPublish_RefusesEmptyDocument(t *testing.T) {
	repo := newMockPostRepo()
	svc := NewPostService(repo)

	post, err := svc.Create(context.Background(), nil, models.SavePostRequest{
		Title:   "Empty draft",
		Content: `{"type":"document","content":[{"type":"paragraph"}]}`,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.SetPublish(context.Background(), post.ID, true); err != ErrEmptyContent {
		t.Fatalf("err = %v, want ErrEmptyContent", err)
	}
}

func TestGetBySlug_HidesDrafts(t *testing.T) {
	svc := NewPostService(newMockPostRepo())

	post, err := svc.Create(context.Background(), nil, models.SavePostRequest{
		Title: "Hidden Draft Post", Content: articleJSON,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.GetBySlug(context.Background(), post.Slug, true); err != ErrNotFound {
		t.Fatalf("public err = %v, want ErrNotFound", err)
	}
	if _, err := svc.GetBySlug(context.Background(), post.Slug, false); err != nil {
		t.Fatalf("admin err = %v", err)
	}
}

func TestPreviewHTML_FallsBackOnGarbage(t *testing.T) {
	svc := NewPostService(newMockPostRepo())

	html := svc.PreviewHTML("{not even json")
	if !strings.Contains(html, "This content could not be displayed.") {
		t.Errorf("preview of garbage = %q", html)
	}
}

func TestPreviewHTML_SanitizesScripts(t *testing.T) {
	svc := NewPostService(newMockPostRepo())

	html := svc.PreviewHTML(`{"type":"document","content":[
		{"type":"paragraph","content":[{"type":"text","text":"<script>alert(1)</script>"}]}
	]}`)
	if strings.Contains(html, "<script>") {
		t.Errorf("script tag survived sanitization: %q", html)
	}
	if !strings.Contains(html, "<p>") {
		t.Errorf("paragraph lost in sanitization: %q", html)
	}
}

func TestPublicHTML_RendersStoredDocument(t *testing.T) {
	repo := newMockPostRepo()
	svc := NewPostService(repo)

	post, err := svc.Create(context.Background(), nil, models.SavePostRequest{
		Title: "Published Piece", Content: articleJSON, Publish: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	html, err := svc.PublicHTML(context.Background(), post.Slug)
	if err != nil {
		t.Fatalf("public html failed: %v", err)
	}
	if !strings.Contains(html, "<h2>Remote monitoring</h2>") {
		t.Errorf("html = %q", html)
	}
	if !strings.Contains(html, `<figure class="image image-center">`) {
		t.Errorf("image figure missing: %q", html)
	}
}
