package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/logger"
)

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

// listMeta is the pagination envelope on every paginated listing.
type listMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

type listResponse struct {
	Data any      `json:"data"`
	Meta listMeta `json:"meta"`
}

func newListResponse(data any, total, page, pageSize int) listResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return listResponse{
		Data: data,
		Meta: listMeta{Total: total, Page: page, PageSize: pageSize, TotalPages: totalPages},
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError maps a business error to its HTTP status and serializes the
// machine-readable code. Anything that is not a domain error is a 500.
func respondError(w http.ResponseWriter, err error) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		respondJSON(w, statusForKind(derr.Kind), errorBody{
			Error: errorDetail{Code: derr.Code, Message: messageFor(derr.Code)},
		})
		return
	}

	logger.Error("unhandled error", "error", err)
	respondJSON(w, http.StatusInternalServerError, errorBody{
		Error: errorDetail{Code: "INTERNAL_ERROR", Message: "internal server error"},
	})
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindBadRequest:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(code string) string {
	// The code is the contract; the message is a convenience only.
	return code
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.BadRequest("INVALID_REQUEST_BODY")
	}
	return nil
}
