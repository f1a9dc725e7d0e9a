package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/docetangerina/estoque/internal/usecase"
)

// Services bundles the use cases the API exposes. Handlers call only
// these; they never reach into the store.
type Services struct {
	Categories *usecase.Categories
	Sizes      *usecase.Sizes
	Items      *usecase.Items
	Users      *usecase.Users
}

// NewRouter creates the API router with all endpoints registered.
func NewRouter(svc Services, secret, photosDir string, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Users: svc.Users, Secret: secret}
	categoriesHandler := &CategoriesHandler{Categories: svc.Categories}
	sizesHandler := &SizesHandler{Sizes: svc.Sizes}
	itemsHandler := &ItemsHandler{Items: svc.Items, PhotosDir: photosDir}

	authMW := AuthMiddleware(secret)

	// Public: register and login.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Profile.
	mux.Handle("GET /api/auth/me", authMW(http.HandlerFunc(authHandler.Me)))
	mux.Handle("PUT /api/auth/me", authMW(http.HandlerFunc(authHandler.UpdateMe)))

	// Categories.
	mux.Handle("GET /api/categories", authMW(http.HandlerFunc(categoriesHandler.List)))
	mux.Handle("POST /api/categories", authMW(http.HandlerFunc(categoriesHandler.Create)))
	mux.Handle("GET /api/categories/{id}", authMW(http.HandlerFunc(categoriesHandler.Get)))
	mux.Handle("PUT /api/categories/{id}", authMW(http.HandlerFunc(categoriesHandler.Update)))
	mux.Handle("DELETE /api/categories/{id}", authMW(http.HandlerFunc(categoriesHandler.Delete)))

	// Sizes.
	mux.Handle("GET /api/sizes", authMW(http.HandlerFunc(sizesHandler.List)))
	mux.Handle("POST /api/sizes", authMW(http.HandlerFunc(sizesHandler.Create)))
	mux.Handle("GET /api/sizes/{id}", authMW(http.HandlerFunc(sizesHandler.Get)))
	mux.Handle("PUT /api/sizes/{id}", authMW(http.HandlerFunc(sizesHandler.Update)))
	mux.Handle("DELETE /api/sizes/{id}", authMW(http.HandlerFunc(sizesHandler.Delete)))

	// Items. List supports size, category and q facets.
	mux.Handle("GET /api/items", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("GET /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("PUT /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Update)))
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))

	// Photo upload: returns the stored path for use in item payloads.
	mux.Handle("POST /api/photos", authMW(http.HandlerFunc(itemsHandler.UploadPhoto)))

	return mux
}
