package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/service"
)

type productUnitHandler struct {
	unitSvc service.ProductUnitService
}

func (h *productUnitHandler) create(w http.ResponseWriter, r *http.Request) {
	var input service.ProductUnitInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}
	unit, err := h.unitSvc.Create(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, unit)
}

func (h *productUnitHandler) list(w http.ResponseWriter, r *http.Request) {
	filter := domain.ProductUnitFilter{
		Active: queryBool(r, "active"),
	}
	if v := r.URL.Query().Get("type"); v != "" {
		t := domain.ProductType(v)
		filter.Type = &t
	}
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.ProductUnitStatus(v)
		filter.Status = &s
	}

	page, pageSize := pagination(r)
	units, total, err := h.unitSvc.List(r.Context(), filter, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newListResponse(units, total, page, pageSize))
}

func (h *productUnitHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	unit, err := h.unitSvc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, unit)
}

func (h *productUnitHandler) getBySerial(w http.ResponseWriter, r *http.Request) {
	serial := mux.Vars(r)["serial"]
	unit, err := h.unitSvc.GetBySerial(r.Context(), serial)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, unit)
}

func (h *productUnitHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var input service.ProductUnitInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}
	unit, err := h.unitSvc.Update(r.Context(), id, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, unit)
}

type unitStatusRequest struct {
	Status domain.ProductUnitStatus `json:"status"`
}

func (h *productUnitHandler) setStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req unitStatusRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	unit, err := h.unitSvc.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, unit)
}

func (h *productUnitHandler) deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	unit, err := h.unitSvc.Deactivate(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, unit)
}

func (h *productUnitHandler) reactivate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	unit, err := h.unitSvc.Reactivate(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, unit)
}
