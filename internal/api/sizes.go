package api

import (
	"net/http"
	"strconv"

	"github.com/docetangerina/estoque/internal/catalog"
	"github.com/docetangerina/estoque/internal/model"
	"github.com/docetangerina/estoque/internal/usecase"
)

// SizesHandler handles size CRUD endpoints.
type SizesHandler struct {
	Sizes *usecase.Sizes
}

// List handles GET /api/sizes with the optional q name facet.
func (h *SizesHandler) List(w http.ResponseWriter, r *http.Request) {
	sizes, err := h.Sizes.GetAll(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list sizes")
		return
	}

	if q := r.URL.Query().Get("q"); q != "" {
		filtered := make([]model.Size, 0, len(sizes))
		for _, s := range sizes {
			if catalog.MatchName(s.Name, q) {
				filtered = append(filtered, s)
			}
		}
		sizes = filtered
	}

	if sizes == nil {
		sizes = []model.Size{}
	}
	jsonResponse(w, http.StatusOK, sizes)
}

// Create handles POST /api/sizes.
func (h *SizesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	size, err := h.Sizes.Add(r.Context(), req.Name)
	if err != nil {
		usecaseError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, size)
}

// Get handles GET /api/sizes/{id}.
func (h *SizesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid size id")
		return
	}

	size, err := h.Sizes.GetByID(r.Context(), id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get size")
		return
	}
	if size == nil {
		jsonError(w, http.StatusNotFound, "size not found")
		return
	}

	jsonResponse(w, http.StatusOK, size)
}

// Update handles PUT /api/sizes/{id}.
func (h *SizesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid size id")
		return
	}

	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	size, err := h.Sizes.Update(r.Context(), model.Size{ID: id, Name: req.Name})
	if err != nil {
		usecaseError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, size)
}

// Delete handles DELETE /api/sizes/{id}.
func (h *SizesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid size id")
		return
	}

	if err := h.Sizes.Delete(r.Context(), model.Size{ID: id}); err != nil {
		usecaseError(w, err)
		return
	}

	jsonResponse(w, http.StatusNoContent, nil)
}
