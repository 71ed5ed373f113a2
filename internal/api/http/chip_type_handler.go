package http

import (
	"net/http"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/service"
)

// Sequence uploads can hold tens of thousands of rows; cap the multipart
// form at 10 MiB.
const maxSequenceUploadBytes = 10 << 20

type chipTypeHandler struct {
	chipTypeSvc service.ChipTypeService
}

func (h *chipTypeHandler) create(w http.ResponseWriter, r *http.Request) {
	var input service.ChipTypeInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}
	chipType, err := h.chipTypeSvc.Create(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, chipType)
}

func (h *chipTypeHandler) list(w http.ResponseWriter, r *http.Request) {
	chipTypes, err := h.chipTypeSvc.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, chipTypes)
}

func (h *chipTypeHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	chipType, err := h.chipTypeSvc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, chipType)
}

func (h *chipTypeHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var input service.ChipTypeInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}
	chipType, err := h.chipTypeSvc.Update(r.Context(), id, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, chipType)
}

func (h *chipTypeHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.chipTypeSvc.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type uploadSequenceResponse struct {
	ChipType *domain.ChipType `json:"chipType"`
	Rows     int              `json:"rows"`
}

// uploadSequence accepts a multipart form with a "file" part holding the
// Chip,Code CSV.
func (h *chipTypeHandler) uploadSequence(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	if err := r.ParseMultipartForm(maxSequenceUploadBytes); err != nil {
		respondError(w, domain.BadRequest("INVALID_MULTIPART_FORM"))
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, domain.BadRequest("MISSING_FILE"))
		return
	}
	defer file.Close()

	chipType, rows, err := h.chipTypeSvc.UploadSequence(r.Context(), id, file)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, uploadSequenceResponse{ChipType: chipType, Rows: rows})
}

// sequence serves the stored sequence: the full table by default, or only
// the chips in [start, end] when both query params are present.
func (h *chipTypeHandler) sequence(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var items []domain.SequenceItem
	q := r.URL.Query()
	if q.Get("start") != "" && q.Get("end") != "" {
		start := queryInt(r, "start", 0)
		end := queryInt(r, "end", 0)
		items, err = h.chipTypeSvc.GetSequenceRange(r.Context(), id, start, end)
	} else {
		items, err = h.chipTypeSvc.GetSequence(r.Context(), id)
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}
