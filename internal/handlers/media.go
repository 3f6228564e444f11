package handlers

import (
	"io"
	"net/http"
	"strconv"

	"vitalpoint/internal/logger"
	"vitalpoint/internal/reqctx"
	"vitalpoint/internal/services"
	"vitalpoint/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type MediaHandler struct {
	svc *services.MediaService
}

func NewMediaHandler(svc *services.MediaService) *MediaHandler {
	return &MediaHandler{svc: svc}
}

// Upload
// @Summary      Upload an image
// @Description  Multipart upload, field name "file". The returned id backs the public URL used as image src in documents.
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      201  {object}  models.MediaFile
// @Failure      400  {object}  helpers.Response
// @Security     BearerAuth
// @Router       /api/admin/media [post]
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(services.MaxUploadSize); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, services.MaxUploadSize+1))
	if err != nil {
		logger.WithCtx(r.Context()).Error("failed to read upload", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "failed to read file")
		return
	}

	var uploaderID *int64
	if uid, ok := reqctx.GetUserID(r.Context()); ok {
		v := int64(uid)
		uploaderID = &v
	}

	created, err := h.svc.Upload(r.Context(), uploaderID,
		header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, created)
}

// Serve
// @Summary      Serve an uploaded image
// @Tags         media
// @Produce      octet-stream
// @Param        id  path  int  true  "File id"
// @Success      200  {file}  binary
// @Failure      404  {object}  helpers.Response
// @Router       /api/media/{id} [get]
func (h *MediaHandler) Serve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	f, err := h.svc.Get(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}

	w.Header().Set("Content-Type", f.MimeType)
	w.Header().Set("Content-Length", strconv.FormatInt(f.SizeBytes, 10))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	_, _ = w.Write(f.Data)
}

// List
// @Summary      List uploaded files
// @Tags         media
// @Produce      json
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {array}  models.MediaFile
// @Security     BearerAuth
// @Router       /api/admin/media [get]
func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	list, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// Delete
// @Summary      Delete an uploaded file
// @Tags         media
// @Param        id  path  int  true  "File id"
// @Success      204
// @Security     BearerAuth
// @Router       /api/admin/media/{id} [delete]
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
