package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"vitalpoint/internal/logger"
	"vitalpoint/internal/models"
	"vitalpoint/internal/reqctx"
	"vitalpoint/internal/services"
	"vitalpoint/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PostHandler struct {
	svc services.PostService
}

func NewPostHandler(svc services.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// List
// @Summary      List published posts
// @Description  Listing view with derived metadata instead of full documents. Filter by tag or category.
// @Tags         posts
// @Produce      json
// @Param        page       query  int     false  "Page number"
// @Param        page_size  query  int     false  "Page size"
// @Param        tag        query  string  false  "Filter by tag"
// @Param        category   query  int     false  "Filter by category id"
// @Success      200  {array}  models.PostListItem
// @Router       /api/posts [get]
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	posts, err := h.svc.GetAll(r.Context(), limit, offset,
		r.URL.Query().Get("tag"), queryInt(r, "category", 0), true)
	if err != nil {
		logger.WithCtx(r.Context()).Error("failed to list posts", zap.Error(err))
		serviceError(w, err)
		return
	}

	items := make([]models.PostListItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, p.ListItem())
	}
	helpers.JSON(w, http.StatusOK, items)
}

// GetBySlug
// @Summary      Get a published post
// @Tags         posts
// @Produce      json
// @Param        slug  path  string  true  "Post slug"
// @Success      200  {object}  models.Post
// @Failure      404  {object}  helpers.Response
// @Router       /api/posts/{slug} [get]
func (h *PostHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.svc.GetBySlug(r.Context(), mux.Vars(r)["slug"], true)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, post)
}

// PublicHTML
// @Summary      Rendered HTML of a published post
// @Description  The stored document tree rendered server side. Broken documents render as a fallback paragraph, never as an error.
// @Tags         posts
// @Produce      html
// @Param        slug  path  string  true  "Post slug"
// @Success      200  {string}  string
// @Failure      404  {object}  helpers.Response
// @Router       /api/posts/{slug}/html [get]
func (h *PostHandler) PublicHTML(w http.ResponseWriter, r *http.Request) {
	html, err := h.svc.PublicHTML(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		serviceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

// Preview
// @Summary      Preview a document as sanitized HTML
// @Description  Renders the submitted document tree without saving anything.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body  handlers.previewRequest  true  "Document tree JSON"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  helpers.Response
// @Security     BearerAuth
// @Router       /api/admin/posts/preview [post]
func (h *PostHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("preview: bad json", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"html": h.svc.PreviewHTML(req.Content)})
}

type previewRequest struct {
	Content string `json:"content"`
}

// AdminList
// @Summary      List all posts, drafts included
// @Tags         posts
// @Produce      json
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {array}  models.PostListItem
// @Security     BearerAuth
// @Router       /api/admin/posts [get]
func (h *PostHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	posts, err := h.svc.GetAll(r.Context(), limit, offset,
		r.URL.Query().Get("tag"), queryInt(r, "category", 0), false)
	if err != nil {
		serviceError(w, err)
		return
	}

	items := make([]models.PostListItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, p.ListItem())
	}
	helpers.JSON(w, http.StatusOK, items)
}

// AdminGet
// @Summary      Get a post by id, drafts included
// @Tags         posts
// @Produce      json
// @Param        id  path  int  true  "Post id"
// @Success      200  {object}  models.Post
// @Failure      404  {object}  helpers.Response
// @Security     BearerAuth
// @Router       /api/admin/posts/{id} [get]
func (h *PostHandler) AdminGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	post, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, post)
}

// Create
// @Summary      Create a post
// @Description  Slug, word count, read time and excerpt are derived from the document on save.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body  models.SavePostRequest  true  "Post data"
// @Success      201  {object}  models.Post
// @Failure      400  {object}  helpers.Response
// @Failure      409  {object}  helpers.Response
// @Security     BearerAuth
// @Router       /api/admin/posts [post]
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SavePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("create post: bad json", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(req); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	var authorID *int64
	if uid, ok := reqctx.GetUserID(r.Context()); ok {
		v := int64(uid)
		authorID = &v
	}

	post, err := h.svc.Create(r.Context(), authorID, req)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, post)
}

// Update
// @Summary      Update a post
// @Description  Re-derives word count, read time, excerpt and slug from the new content.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "Post id"
// @Param        body  body  models.SavePostRequest  true  "Post data"
// @Success      200  {object}  models.Post
// @Failure      404  {object}  helpers.Response
// @Failure      409  {object}  helpers.Response
// @Security     BearerAuth
// @Router       /api/admin/posts/{id} [put]
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req models.SavePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(req); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, post)
}

// SetPublish
// @Summary      Publish or unpublish a post
// @Description  Publishing a post with empty content is rejected.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "Post id"
// @Param        body  body  handlers.publishRequest  true  "Publish flag"
// @Success      200  {object}  models.Post
// @Failure      400  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Security     BearerAuth
// @Router       /api/admin/posts/{id}/publish [patch]
func (h *PostHandler) SetPublish(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	post, err := h.svc.SetPublish(r.Context(), id, req.Publish)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, post)
}

type publishRequest struct {
	Publish bool `json:"publish"`
}

// Delete
// @Summary      Delete a post
// @Tags         posts
// @Param        id  path  int  true  "Post id"
// @Success      204
// @Failure      404  {object}  helpers.Response
// @Security     BearerAuth
// @Router       /api/admin/posts/{id} [delete]
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
