package routes

import (
	"vitalpoint/internal/handlers"
	"vitalpoint/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	postHandler *handlers.PostHandler,
	serviceHandler *handlers.ServiceHandler,
	teamHandler *handlers.TeamHandler,
	contactHandler *handlers.ContactHandler,
	taxonomyHandler *handlers.TaxonomyHandler,
	mediaHandler *handlers.MediaHandler,
	searchHandler *handlers.SearchHandler,
	ogImageHandler *handlers.OGImageHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)

	api := router.PathPrefix("/api").Subrouter()

	// public
	api.HandleFunc("/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/refresh", authHandler.Refresh).Methods("POST")
	api.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	api.HandleFunc("/posts", postHandler.List).Methods("GET")
	api.HandleFunc("/posts/{slug}/html", postHandler.PublicHTML).Methods("GET")
	api.HandleFunc("/posts/{slug}/og-image", ogImageHandler.PostCard).Methods("GET")
	api.HandleFunc("/posts/{slug}", postHandler.GetBySlug).Methods("GET")

	api.HandleFunc("/services", serviceHandler.List).Methods("GET")
	api.HandleFunc("/services/{slug}/html", serviceHandler.PublicHTML).Methods("GET")
	api.HandleFunc("/services/{slug}", serviceHandler.GetBySlug).Methods("GET")

	api.HandleFunc("/team", teamHandler.List).Methods("GET")
	api.HandleFunc("/categories", taxonomyHandler.List).Methods("GET")
	api.HandleFunc("/search", searchHandler.Search).Methods("GET")
	api.HandleFunc("/media/{id:[0-9]+}", mediaHandler.Serve).Methods("GET")
	api.HandleFunc("/contact", contactHandler.Submit).Methods("POST")

	// authenticated
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth(jwtSecret))

	protected.HandleFunc("/profile", authHandler.Profile).Methods("GET")

	// content management, editors and admins
	editorial := protected.PathPrefix("/admin").Subrouter()
	editorial.Use(middleware.AnyRole("admin", "editor"))

	editorial.HandleFunc("/posts/preview", postHandler.Preview).Methods("POST")
	editorial.HandleFunc("/posts", postHandler.AdminList).Methods("GET")
	editorial.HandleFunc("/posts", postHandler.Create).Methods("POST")
	editorial.HandleFunc("/posts/{id:[0-9]+}", postHandler.AdminGet).Methods("GET")
	editorial.HandleFunc("/posts/{id:[0-9]+}", postHandler.Update).Methods("PUT")
	editorial.HandleFunc("/posts/{id:[0-9]+}", postHandler.Delete).Methods("DELETE")
	editorial.HandleFunc("/posts/{id:[0-9]+}/publish", postHandler.SetPublish).Methods("PATCH", "OPTIONS")

	editorial.HandleFunc("/services", serviceHandler.AdminList).Methods("GET")
	editorial.HandleFunc("/services", serviceHandler.Create).Methods("POST")
	editorial.HandleFunc("/services/{id:[0-9]+}", serviceHandler.Update).Methods("PUT")
	editorial.HandleFunc("/services/{id:[0-9]+}", serviceHandler.Delete).Methods("DELETE")

	editorial.HandleFunc("/team", teamHandler.AdminList).Methods("GET")
	editorial.HandleFunc("/team", teamHandler.Create).Methods("POST")
	editorial.HandleFunc("/team/{id:[0-9]+}", teamHandler.Update).Methods("PUT")
	editorial.HandleFunc("/team/{id:[0-9]+}", teamHandler.Delete).Methods("DELETE")

	editorial.HandleFunc("/categories", taxonomyHandler.Create).Methods("POST")
	editorial.HandleFunc("/categories/{id:[0-9]+}", taxonomyHandler.Update).Methods("PUT")
	editorial.HandleFunc("/categories/{id:[0-9]+}", taxonomyHandler.Delete).Methods("DELETE")

	editorial.HandleFunc("/media", mediaHandler.Upload).Methods("POST")
	editorial.HandleFunc("/media", mediaHandler.List).Methods("GET")
	editorial.HandleFunc("/media/{id:[0-9]+}", mediaHandler.Delete).Methods("DELETE")

	// account and inbox management, admins only
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.OnlyRole("admin"))

	admin.HandleFunc("/contact", contactHandler.List).Methods("GET")
	admin.HandleFunc("/contact/{id:[0-9]+}/read", contactHandler.MarkRead).Methods("PATCH")
	admin.HandleFunc("/contact/{id:[0-9]+}", contactHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/users", authHandler.Users).Methods("GET")
	admin.HandleFunc("/users", authHandler.CreateUser).Methods("POST")
}
