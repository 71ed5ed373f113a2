package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/service"
)

type deviceHandler struct {
	deviceSvc service.DeviceService
}

func (h *deviceHandler) create(w http.ResponseWriter, r *http.Request) {
	var input service.DeviceInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}
	device, err := h.deviceSvc.Create(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, device)
}

func (h *deviceHandler) list(w http.ResponseWriter, r *http.Request) {
	filter := domain.DeviceFilter{
		AvailableForRental: queryBool(r, "availableForRental"),
		OwnerID:            queryInt64(r, "ownerId"),
	}
	if v := r.URL.Query().Get("model"); v != "" {
		m := domain.DeviceModel(v)
		filter.Model = &m
	}
	if v := r.URL.Query().Get("manufactoringStatus"); v != "" {
		s := domain.ManufactoringStatus(v)
		filter.ManufactoringStatus = &s
	}
	if v := r.URL.Query().Get("operationalStatus"); v != "" {
		s := domain.OperationalStatus(v)
		filter.OperationalStatus = &s
	}

	page, pageSize := pagination(r)
	devices, total, err := h.deviceSvc.List(r.Context(), filter, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newListResponse(devices, total, page, pageSize))
}

func (h *deviceHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	device, err := h.deviceSvc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, device)
}

func (h *deviceHandler) getBySerial(lookup func(r *http.Request, serial string) (*domain.Device, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serial := mux.Vars(r)["serial"]
		device, err := lookup(r, serial)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, device)
	}
}

func (h *deviceHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var input service.DeviceInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}
	device, err := h.deviceSvc.Update(r.Context(), id, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, device)
}

type manufactoringStatusRequest struct {
	Status domain.ManufactoringStatus `json:"status"`
}

func (h *deviceHandler) setManufactoringStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req manufactoringStatusRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	device, err := h.deviceSvc.SetManufactoringStatus(r.Context(), id, req.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, device)
}

type operationalStatusRequest struct {
	Status domain.OperationalStatus `json:"status"`
}

func (h *deviceHandler) setOperationalStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req operationalStatusRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	device, err := h.deviceSvc.SetOperationalStatus(r.Context(), id, req.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, device)
}

type assignOwnerRequest struct {
	OwnerID *int64 `json:"ownerId"`
}

func (h *deviceHandler) assignOwner(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req assignOwnerRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	device, err := h.deviceSvc.AssignOwner(r.Context(), id, req.OwnerID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, device)
}

func (h *deviceHandler) retire(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	device, err := h.deviceSvc.Retire(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, device)
}
