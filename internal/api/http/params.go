package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"timing-rental-backend/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.BadRequest("INVALID_ID")
	}
	return id, nil
}

// pagination reads page/pageSize query parameters, accepting "limit" as an
// alias for pageSize.
func pagination(r *http.Request) (page, pageSize int) {
	page = queryInt(r, "page", defaultPage)
	pageSize = queryInt(r, "pageSize", 0)
	if pageSize == 0 {
		pageSize = queryInt(r, "limit", defaultPageSize)
	}
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func queryBool(r *http.Request, name string) *bool {
	switch r.URL.Query().Get(name) {
	case "true":
		t := true
		return &t
	case "false":
		f := false
		return &f
	default:
		return nil
	}
}

func queryInt64(r *http.Request, name string) *int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
