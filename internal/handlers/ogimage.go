package handlers

import (
	"net/http"

	"vitalpoint/internal/services"

	"github.com/gorilla/mux"
)

type OGImageHandler struct {
	posts services.PostService
	cards *services.OGImageService
}

func NewOGImageHandler(posts services.PostService, cards *services.OGImageService) *OGImageHandler {
	return &OGImageHandler{posts: posts, cards: cards}
}

// PostCard
// @Summary      Social sharing card for a published post
// @Description  A 1200x630 SVG built from the post title, excerpt and read time.
// @Tags         posts
// @Produce      image/svg+xml
// @Param        slug  path  string  true  "Post slug"
// @Success      200  {string}  string
// @Failure      404  {object}  helpers.Response
// @Router       /api/posts/{slug}/og-image [get]
func (h *OGImageHandler) PostCard(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.GetBySlug(r.Context(), mux.Vars(r)["slug"], true)
	if err != nil {
		serviceError(w, err)
		return
	}

	excerpt := ""
	if post.Excerpt != nil {
		excerpt = *post.Excerpt
	}
	svg := h.cards.Card(r.Context(), post.Title, excerpt, post.ReadTime)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(svg))
}
