package http

import (
	"net/http"

	"timing-rental-backend/internal/service"
)

type clientHandler struct {
	clientSvc service.ClientService
}

func (h *clientHandler) create(w http.ResponseWriter, r *http.Request) {
	var input service.ClientInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}
	client, err := h.clientSvc.Create(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, client)
}

func (h *clientHandler) list(w http.ResponseWriter, r *http.Request) {
	active := r.URL.Query().Get("active")
	clients, err := h.clientSvc.List(r.Context(), active)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, clients)
}

func (h *clientHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	client, err := h.clientSvc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

func (h *clientHandler) getBySportmaniacsCode(w http.ResponseWriter, r *http.Request) {
	code, err := pathID(r, "code")
	if err != nil {
		respondError(w, err)
		return
	}
	client, err := h.clientSvc.GetBySportmaniacsCode(r.Context(), code)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

func (h *clientHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var input service.ClientInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}
	client, err := h.clientSvc.Update(r.Context(), id, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

func (h *clientHandler) deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	client, err := h.clientSvc.Deactivate(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

func (h *clientHandler) reactivate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	client, err := h.clientSvc.Reactivate(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}
