package http

import (
	"fmt"
	"net/http"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/service"
)

type rentalHandler struct {
	rentalSvc service.RentalService
}

func (h *rentalHandler) create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateRentalInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}
	rental, err := h.rentalSvc.Create(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rental)
}

func (h *rentalHandler) list(w http.ResponseWriter, r *http.Request) {
	filter := domain.RentalFilter{
		ClientID: queryInt64(r, "clientId"),
	}
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.RentalStatus(v)
		filter.Status = &s
	}

	page, pageSize := pagination(r)
	rentals, total, err := h.rentalSvc.List(r.Context(), filter, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newListResponse(rentals, total, page, pageSize))
}

func (h *rentalHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	rental, err := h.rentalSvc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *rentalHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var input service.UpdateRentalInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}
	rental, err := h.rentalSvc.Update(r.Context(), id, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *rentalHandler) returnRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	rental, err := h.rentalSvc.Return(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *rentalHandler) cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	rental, err := h.rentalSvc.Cancel(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *rentalHandler) chipSequence(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	ranges, err := h.rentalSvc.ChipSequence(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ranges)
}

func (h *rentalHandler) chipFile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	chipTypeID, err := pathID(r, "chipTypeId")
	if err != nil {
		respondError(w, err)
		return
	}
	filename, data, err := h.rentalSvc.ChipFile(r.Context(), id, chipTypeID)
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
