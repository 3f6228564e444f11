package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"vitalpoint/internal/models"
	"vitalpoint/internal/services"
	"vitalpoint/internal/utils/helpers"

	"github.com/gorilla/mux"
)

type ServiceHandler struct {
	svc *services.ServiceCatalog
}

func NewServiceHandler(svc *services.ServiceCatalog) *ServiceHandler {
	return &ServiceHandler{svc: svc}
}

// List
// @Summary      List active services
// @Tags         services
// @Produce      json
// @Success      200  {array}  models.Service
// @Router       /api/services [get]
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.GetAll(r.Context(), true)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// GetBySlug
// @Summary      Get an active service
// @Tags         services
// @Produce      json
// @Param        slug  path  string  true  "Service slug"
// @Success      200  {object}  models.Service
// @Failure      404  {object}  helpers.Response
// @Router       /api/services/{slug} [get]
func (h *ServiceHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	svc, err := h.svc.GetBySlug(r.Context(), mux.Vars(r)["slug"], true)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, svc)
}

// PublicHTML
// @Summary      Rendered HTML of a service body
// @Tags         services
// @Produce      html
// @Param        slug  path  string  true  "Service slug"
// @Success      200  {string}  string
// @Failure      404  {object}  helpers.Response
// @Router       /api/services/{slug}/html [get]
func (h *ServiceHandler) PublicHTML(w http.ResponseWriter, r *http.Request) {
	html, err := h.svc.PublicHTML(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		serviceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

// AdminList
// @Summary      List all services, inactive included
// @Tags         services
// @Produce      json
// @Success      200  {array}  models.Service
// @Security     BearerAuth
// @Router       /api/admin/services [get]
func (h *ServiceHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.GetAll(r.Context(), false)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// Create
// @Summary      Create a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        body  body  models.SaveServiceRequest  true  "Service data"
// @Success      201  {object}  models.Service
// @Failure      400  {object}  helpers.Response
// @Failure      409  {object}  helpers.Response
// @Security     BearerAuth
// @Router       /api/admin/services [post]
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SaveServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(req); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	svc, err := h.svc.Create(r.Context(), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, svc)
}

// Update
// @Summary      Update a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "Service id"
// @Param        body  body  models.SaveServiceRequest  true  "Service data"
// @Success      200  {object}  models.Service
// @Failure      404  {object}  helpers.Response
// @Security     BearerAuth
// @Router       /api/admin/services/{id} [put]
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req models.SaveServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(req); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	svc, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, svc)
}

// Delete
// @Summary      Delete a service
// @Tags         services
// @Param        id  path  int  true  "Service id"
// @Success      204
// @Security     BearerAuth
// @Router       /api/admin/services/{id} [delete]
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
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
