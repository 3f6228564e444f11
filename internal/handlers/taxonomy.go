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

type TaxonomyHandler struct {
	svc *services.TaxonomyService
}

func NewTaxonomyHandler(svc *services.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{svc: svc}
}

// List
// @Summary      List categories with published-post counts
// @Tags         taxonomy
// @Produce      json
// @Success      200  {array}  models.CategoryWithCount
// @Router       /api/categories [get]
func (h *TaxonomyHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListCategories(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// Create
// @Summary      Create a category
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Param        body  body  models.SaveCategoryRequest  true  "Category data"
// @Success      201  {object}  models.Category
// @Failure      400  {object}  helpers.Response
// @Failure      409  {object}  helpers.Response
// @Security     BearerAuth
// @Router       /api/admin/categories [post]
func (h *TaxonomyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SaveCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(req); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.svc.CreateCategory(r.Context(), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, category)
}

// Update
// @Summary      Update a category
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Param        id    path  int                         true  "Category id"
// @Param        body  body  models.SaveCategoryRequest  true  "Category data"
// @Success      200  {object}  models.Category
// @Failure      404  {object}  helpers.Response
// @Security     BearerAuth
// @Router       /api/admin/categories/{id} [put]
func (h *TaxonomyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req models.SaveCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(req); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.svc.UpdateCategory(r.Context(), id, req)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, category)
}

// Delete
// @Summary      Delete a category
// @Tags         taxonomy
// @Param        id  path  int  true  "Category id"
// @Success      204
// @Security     BearerAuth
// @Router       /api/admin/categories/{id} [delete]
func (h *TaxonomyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
