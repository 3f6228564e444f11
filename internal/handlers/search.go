package handlers

import (
	"net/http"
	"strings"

	"vitalpoint/internal/logger"
	"vitalpoint/internal/models"
	"vitalpoint/internal/services"
	"vitalpoint/internal/utils/helpers"

	"go.uber.org/zap"
)

type SearchHandler struct {
	posts   services.PostService
	catalog *services.ServiceCatalog
}

func NewSearchHandler(posts services.PostService, catalog *services.ServiceCatalog) *SearchHandler {
	return &SearchHandler{posts: posts, catalog: catalog}
}

type searchResponse struct {
	Posts    []models.PostListItem `json:"posts"`
	Services []*models.Service     `json:"services"`
}

// Search
// @Summary      Search published posts and active services
// @Tags         search
// @Produce      json
// @Param        query  query  string  true   "Search query"
// @Param        limit  query  int     false  "Max results per section"
// @Success      200  {object}  handlers.searchResponse
// @Failure      400  {object}  helpers.Response
// @Router       /api/search [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		helpers.Error(w, http.StatusBadRequest, "query parameter is required")
		return
	}
	limit := queryInt(r, "limit", 10)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	posts, err := h.posts.Search(r.Context(), query, limit)
	if err != nil {
		logger.WithCtx(r.Context()).Error("post search failed", zap.Error(err))
		serviceError(w, err)
		return
	}

	svcs, err := h.catalog.Search(r.Context(), query, limit)
	if err != nil {
		logger.WithCtx(r.Context()).Error("service search failed", zap.Error(err))
		serviceError(w, err)
		return
	}

	resp := searchResponse{
		Posts:    make([]models.PostListItem, 0, len(posts)),
		Services: svcs,
	}
	for _, p := range posts {
		resp.Posts = append(resp.Posts, p.ListItem())
	}
	if resp.Services == nil {
		resp.Services = []*models.Service{}
	}
	helpers.JSON(w, http.StatusOK, resp)
}
