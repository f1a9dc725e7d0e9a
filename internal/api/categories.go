package api

import (
	"net/http"
	"strconv"

	"github.com/docetangerina/estoque/internal/catalog"
	"github.com/docetangerina/estoque/internal/model"
	"github.com/docetangerina/estoque/internal/usecase"
)

// CategoriesHandler handles category CRUD endpoints.
type CategoriesHandler struct {
	Categories *usecase.Categories
}

type nameRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/categories. The optional q parameter applies
// the free-text name facet.
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Categories.GetAll(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}

	if q := r.URL.Query().Get("q"); q != "" {
		filtered := make([]model.Category, 0, len(categories))
		for _, c := range categories {
			if catalog.MatchName(c.Name, q) {
				filtered = append(filtered, c)
			}
		}
		categories = filtered
	}

	if categories == nil {
		categories = []model.Category{}
	}
	jsonResponse(w, http.StatusOK, categories)
}

// Create handles POST /api/categories.
func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.Categories.Add(r.Context(), req.Name)
	if err != nil {
		usecaseError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, category)
}

// Get handles GET /api/categories/{id}.
func (h *CategoriesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	category, err := h.Categories.GetByID(r.Context(), id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get category")
		return
	}
	if category == nil {
		jsonError(w, http.StatusNotFound, "category not found")
		return
	}

	jsonResponse(w, http.StatusOK, category)
}

// Update handles PUT /api/categories/{id}.
func (h *CategoriesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.Categories.Update(r.Context(), model.Category{ID: id, Name: req.Name})
	if err != nil {
		usecaseError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, category)
}

// Delete handles DELETE /api/categories/{id}.
func (h *CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.Categories.Delete(r.Context(), model.Category{ID: id}); err != nil {
		usecaseError(w, err)
		return
	}

	jsonResponse(w, http.StatusNoContent, nil)
}
