package model

// Category groups items (shirts, dresses, accessories).
// Names are unique case-insensitively after normalization; the check
// runs at use-case time, not in the store.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Size is a garment size (P, M, G, "Tamanho Único").
// Same naming rules as Category.
type Size struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
