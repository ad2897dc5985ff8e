package routes

import (
	"net/http"

	"github.com/jullianMozo/BlogPostAPI/app/controllers"
	"github.com/jullianMozo/BlogPostAPI/app/middleware"
	"github.com/jullianMozo/BlogPostAPI/app/repositories"
	"github.com/jullianMozo/BlogPostAPI/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SetupRoutes wires repositories, services and controllers over the
// given Badger DB and returns the application's router.
func SetupRoutes(db *badger.DB, jwtSecret string, log *zap.Logger) *mux.Router {
	postRepo := repositories.NewBadgerPostRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)

	postService := services.NewPostService(postRepo, userRepo)
	authService := services.NewAuthService(userRepo, jwtSecret)

	return Router(postService, authService, log)
}

// Router builds the route table over already-constructed services.
// Split out so tests can inject services backed by mock repositories.
func Router(postService *services.PostService, authService *services.AuthService, log *zap.Logger) *mux.Router {
	postController := controllers.NewPostController(postService)
	authController := controllers.NewAuthController(authService)

	router := mux.NewRouter()
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recoverer(log))

	api := router.PathPrefix("/api").Subrouter()

	// Auth endpoints
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", authController.Register).Methods("POST")
	auth.HandleFunc("/login", authController.Login).Methods("POST")

	verify := middleware.Verify(authService)

	// Public post endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("/{postId}", postController.Show).Methods("GET")

	// Authenticated post endpoints
	authed := api.PathPrefix("/posts").Subrouter()
	authed.Use(verify)
	authed.HandleFunc("", postController.Create).Methods("POST")
	authed.HandleFunc("/{postId}", postController.Edit).Methods("PUT")
	authed.HandleFunc("/{postId}", postController.Delete).Methods("DELETE")
	authed.HandleFunc("/{postId}/comments", postController.AddComment).Methods("POST")

	// Admin endpoints
	admin := api.PathPrefix("/posts").Subrouter()
	admin.Use(verify, middleware.VerifyAdmin)
	admin.HandleFunc("/{postId}/comments/{commentId}", postController.DeleteComment).Methods("DELETE")

	return router
}

// StartServer starts the HTTP server on the specified address with the
// given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
