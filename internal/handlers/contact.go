package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"vitalpoint/internal/logger"
	"vitalpoint/internal/models"
	"vitalpoint/internal/services"
	"vitalpoint/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ContactHandler struct {
	svc *services.ContactService
}

func NewContactHandler(svc *services.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body  models.ContactRequest  true  "Submission"
// @Success      201  {object}  models.ContactSubmission
// @Failure      400  {object}  helpers.Response
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("contact: bad json", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	created, err := h.svc.Submit(r.Context(), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, created)
}

// List
// @Summary      List contact submissions
// @Tags         contact
// @Produce      json
// @Param        page       query  int   false  "Page number"
// @Param        page_size  query  int   false  "Page size"
// @Param        unread     query  bool  false  "Only unread"
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /api/admin/contact [get]
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	onlyUnread := r.URL.Query().Get("unread") == "true"

	list, total, err := h.svc.GetAll(r.Context(), limit, offset, onlyUnread)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]interface{}{
		"items": list,
		"total": total,
	})
}

// MarkRead
// @Summary      Mark a submission read or unread
// @Tags         contact
// @Accept       json
// @Param        id    path  int                    true  "Submission id"
// @Param        body  body  handlers.readRequest  true  "Read flag"
// @Success      204
// @Failure      404  {object}  helpers.Response
// @Security     BearerAuth
// @Router       /api/admin/contact/{id}/read [patch]
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req readRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.svc.MarkRead(r.Context(), id, req.Read); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type readRequest struct {
	Read bool `json:"read"`
}

// Delete
// @Summary      Delete a contact submission
// @Tags         contact
// @Param        id  path  int  true  "Submission id"
// @Success      204
// @Security     BearerAuth
// @Router       /api/admin/contact/{id} [delete]
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
