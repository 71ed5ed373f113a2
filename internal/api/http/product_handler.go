package http

import (
	"net/http"

	"timing-rental-backend/internal/domain"
	"timing-rental-backend/internal/service"
)

type productHandler struct {
	productSvc service.ProductService
}

func (h *productHandler) create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateProductInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}
	product, err := h.productSvc.Create(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, product)
}

func (h *productHandler) list(w http.ResponseWriter, r *http.Request) {
	filter := domain.ProductFilter{
		Active: queryBool(r, "active"),
	}
	if v := r.URL.Query().Get("type"); v != "" {
		t := domain.ProductType(v)
		filter.Type = &t
	}

	page, pageSize := pagination(r)
	products, total, err := h.productSvc.List(r.Context(), filter, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newListResponse(products, total, page, pageSize))
}

func (h *productHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	product, err := h.productSvc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *productHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var input service.UpdateProductInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, err)
		return
	}
	product, err := h.productSvc.Update(r.Context(), id, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *productHandler) deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	product, err := h.productSvc.Deactivate(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *productHandler) reactivate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	product, err := h.productSvc.Reactivate(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// quantityOp adapts one ledger operation to a handler.
func (h *productHandler) quantityOp(op func(r *http.Request, id int64, qty int) (*domain.Product, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondError(w, err)
			return
		}
		var req quantityRequest
		if err := decodeBody(r, &req); err != nil {
			respondError(w, err)
			return
		}
		product, err := op(r, id, req.Quantity)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, product)
	}
}
