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

type TeamHandler struct {
	svc *services.TeamService
}

func NewTeamHandler(svc *services.TeamService) *TeamHandler {
	return &TeamHandler{svc: svc}
}

// List
// @Summary      List active team members
// @Tags         team
// @Produce      json
// @Success      200  {array}  models.TeamMember
// @Router       /api/team [get]
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.GetAll(r.Context(), true)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// AdminList
// @Summary      List all team members, inactive included
// @Tags         team
// @Produce      json
// @Success      200  {array}  models.TeamMember
// @Security     BearerAuth
// @Router       /api/admin/team [get]
func (h *TeamHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.GetAll(r.Context(), false)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// Create
// @Summary      Add a team member
// @Tags         team
// @Accept       json
// @Produce      json
// @Param        body  body  models.SaveTeamMemberRequest  true  "Member data"
// @Success      201  {object}  models.TeamMember
// @Failure      400  {object}  helpers.Response
// @Security     BearerAuth
// @Router       /api/admin/team [post]
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SaveTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(req); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.svc.Create(r.Context(), req)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, member)
}

// Update
// @Summary      Update a team member
// @Tags         team
// @Accept       json
// @Produce      json
// @Param        id    path  int                           true  "Member id"
// @Param        body  body  models.SaveTeamMemberRequest  true  "Member data"
// @Success      200  {object}  models.TeamMember
// @Failure      404  {object}  helpers.Response
// @Security     BearerAuth
// @Router       /api/admin/team/{id} [put]
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req models.SaveTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.Struct(req); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, member)
}

// Delete
// @Summary      Remove a team member
// @Tags         team
// @Param        id  path  int  true  "Member id"
// @Success      204
// @Security     BearerAuth
// @Router       /api/admin/team/{id} [delete]
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
