package model

// Item is a catalog entry. SizeID and CategoryID are nullable
// references; the store clears them when the referenced row is
// deleted (never cascades into the item).
type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Value       float64 `json:"value"`
	Quantity    int     `json:"quantity"`
	SizeID      *int64  `json:"size_id,omitempty"`
	CategoryID  *int64  `json:"category_id,omitempty"`
}

// Image is a photo owned by exactly one item. It stores only the path
// of the binary; rows are created alongside their item and removed
// with it.
type Image struct {
	ID     int64  `json:"id"`
	ItemID int64  `json:"item_id"`
	Path   string `json:"path"`
}

// ItemFull is an item joined with its size, category and ordered
// images. Assembled by the store in one explicit join, so readers
// never chase references themselves.
type ItemFull struct {
	Item     Item      `json:"item"`
	Size     *Size     `json:"size,omitempty"`
	Category *Category `json:"category,omitempty"`
	Images   []Image   `json:"images"`
}
