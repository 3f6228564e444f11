package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"vitalpoint/internal/services"
	"vitalpoint/internal/utils/helpers"

	"github.com/go-playground/validator/v10"
)

// validate checks the DTO tags on request bodies. One instance for the whole
// package, it caches struct metadata internally.
var validate = validator.New()

// serviceError translates service-layer sentinels into HTTP responses.
func serviceError(w http.ResponseWriter, err error) {
	var vErrs validator.ValidationErrors
	switch {
	case errors.As(err, &vErrs):
		helpers.Error(w, http.StatusBadRequest, vErrs.Error())
	case errors.Is(err, services.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrSlugTaken):
		helpers.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrUsernameTaken):
		helpers.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrEmptyContent),
		errors.Is(err, services.ErrInvalidContent):
		helpers.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrBadCredentials),
		errors.Is(err, services.ErrBadToken):
		helpers.Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrUnsupportedMedia),
		errors.Is(err, services.ErrFileTooLarge):
		helpers.Error(w, http.StatusBadRequest, err.Error())
	default:
		helpers.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

// queryInt reads an integer query parameter with a default.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// pagination returns sanitized limit/offset from page/page_size params.
func pagination(r *http.Request) (limit, offset int) {
	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	size := queryInt(r, "page_size", 20)
	if size < 1 || size > 100 {
		size = 20
	}
	return size, (page - 1) * size
}
