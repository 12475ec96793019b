package routes

import (
	"net/http"
	"polblog-api/config"
	"polblog-api/controllers"
	"polblog-api/middlewares"

	"github.com/gorilla/mux"
)

// SetupRoutes sets up the application routes and middlewares.
func SetupRoutes(cfg *config.Config, blogController *controllers.BlogController) http.Handler {
	router := mux.NewRouter()

	// Apply global middlewares
	router.Use(middlewares.CorsMiddleware(&middlewares.CorsConfig{
		AllowedOrigin:    cfg.CORSOrigin,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	router.Use(middlewares.LoggingMiddleware)

	controllers.SetupRootRoute(router)
	blogController.SetupBlogRoutes(router)

	// Uploaded images are served straight off the local upload directory.
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	return router
}
