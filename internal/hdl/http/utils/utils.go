package utils

import (
	"net/http"
	"strconv"

	"github.com/almousleck/glasslink/internal/config"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var validate = validator.New()

type Response struct {
	Data any `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&Response{
			Data: data,
		},
	)
}

func StatusResponse(w http.ResponseWriter, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
}

func ErrResponse(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&ErrorResponse{
			Error: err.Error(),
		},
	)
}

// ParseAndValidate decodes the JSON body into req and runs struct-tag
// validation, writing the 400 itself. Returns false when the caller should
// stop.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		ErrResponse(w, http.StatusBadRequest, err)
		return false
	}

	if err := validate.Struct(req); err != nil {
		ErrResponse(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func ParsePaginationValues(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = config.DefaultPage
	}

	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || size < 1 {
		size = config.DefaultSize
	}

	return page, size
}

func ParseFiltersByURL(r *http.Request) map[string]any {
	filters := make(map[string]any)
	for k, v := range r.URL.Query() {
		if k == "page" || k == "size" {
			continue
		}

		if len(v) > 0 {
			filters[k] = v[0]
		}
	}

	return filters
}
