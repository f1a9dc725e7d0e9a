package api

import (
	"net/http"
	"strconv"

	"github.com/docetangerina/estoque/internal/catalog"
	"github.com/docetangerina/estoque/internal/imaging"
	"github.com/docetangerina/estoque/internal/model"
	"github.com/docetangerina/estoque/internal/usecase"
)

// maxPhotoUpload bounds photo request bodies.
const maxPhotoUpload = 10 << 20

// ItemsHandler handles item CRUD and photo upload endpoints.
type ItemsHandler struct {
	Items     *usecase.Items
	PhotosDir string
}

type itemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Value       float64  `json:"value"`
	Quantity    int      `json:"quantity"`
	SizeID      *int64   `json:"size_id"`
	CategoryID  *int64   `json:"category_id"`
	Images      []string `json:"images"`
}

func (req itemRequest) full(id int64) model.ItemFull {
	images := make([]model.Image, len(req.Images))
	for i, path := range req.Images {
		images[i] = model.Image{Path: path}
	}
	return model.ItemFull{
		Item: model.Item{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			Value:       req.Value,
			Quantity:    req.Quantity,
			SizeID:      req.SizeID,
			CategoryID:  req.CategoryID,
		},
		Images: images,
	}
}

// facetID parses an id facet query parameter. Absent means no
// constraint; a present value must be numeric.
func facetID(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.ParseInt(value, 10, 64)
}

// List handles GET /api/items. The size, category and q query
// parameters apply the catalog facets; each is independent and
// optional.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Items.GetAll(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}

	query := r.URL.Query()
	sizeID, err := facetID(query.Get("size"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid size filter")
		return
	}
	categoryID, err := facetID(query.Get("category"))
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid category filter")
		return
	}
	search := query.Get("q")

	filtered := make([]model.ItemFull, 0, len(items))
	for _, item := range items {
		if catalog.MatchItem(item, sizeID, categoryID, search) {
			filtered = append(filtered, item)
		}
	}

	jsonResponse(w, http.StatusOK, filtered)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Negative numerics are rejected at this boundary too, so the
	// defensive check in the use case is not the only gate.
	if req.Value < 0 || req.Quantity < 0 {
		jsonError(w, http.StatusBadRequest, "value and quantity must not be negative")
		return
	}

	item, err := h.Items.Add(r.Context(), req.full(0))
	if err != nil {
		usecaseError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.Items.GetByID(r.Context(), id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /api/items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Value < 0 || req.Quantity < 0 {
		jsonError(w, http.StatusBadRequest, "value and quantity must not be negative")
		return
	}

	item, err := h.Items.Update(r.Context(), req.full(id))
	if err != nil {
		usecaseError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.Items.Delete(r.Context(), model.Item{ID: id}); err != nil {
		usecaseError(w, err)
		return
	}

	jsonResponse(w, http.StatusNoContent, nil)
}

// UploadPhoto handles POST /api/photos. The processed photo is stored
// on disk and its path returned; clients reference the path in item
// create and update payloads.
func (h *ItemsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	path, err := imaging.Save(h.PhotosDir, http.MaxBytesReader(w, r.Body, maxPhotoUpload))
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]string{"path": path})
}
