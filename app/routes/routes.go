package routes

import (
	"net/http"

	"inkpress/app/auth"
	"inkpress/app/controllers"
	"inkpress/app/middleware"
	"inkpress/app/services"
	"inkpress/app/uploads"

	"github.com/gorilla/mux"
)

// Deps carries the constructed dependencies the route table wires together.
type Deps struct {
	Gate       *auth.Gate
	Posts      *services.PostService
	Comments   *services.CommentService
	Dashboard  *services.DashboardService
	Generate   controllers.GenerateFunc
	Uploads    uploads.Store
	UploadsDir string
}

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(deps Deps) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	blogController := controllers.NewBlogController(deps.Posts, deps.Comments, deps.Generate, deps.Gate, deps.Uploads)
	adminController := controllers.NewAdminController(deps.Gate, deps.Posts, deps.Comments, deps.Dashboard)

	// Thumbnails are served straight from the uploads directory
	if deps.UploadsDir != "" {
		router.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.UploadsDir))))
	}

	// Blog endpoints
	blog := router.PathPrefix("/api/blog").Subrouter()
	blog.HandleFunc("/add", blogController.Add).Methods("POST")
	blog.HandleFunc("/all", blogController.All).Methods("GET")
	blog.HandleFunc("/delete", blogController.Delete).Methods("POST")
	blog.HandleFunc("/toggle-publish", blogController.TogglePublish).Methods("POST")
	blog.HandleFunc("/add-comment", blogController.AddComment).Methods("POST")
	blog.HandleFunc("/comments", blogController.Comments).Methods("POST")
	blog.HandleFunc("/generate", blogController.Generate).Methods("POST")
	blog.HandleFunc("/{blogId}", blogController.Get).Methods("GET")

	// Admin endpoints
	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.HandleFunc("/login", adminController.Login).Methods("POST")
	admin.HandleFunc("/blogs", adminController.Blogs).Methods("GET")
	admin.HandleFunc("/comments", adminController.Comments).Methods("GET")
	admin.HandleFunc("/dashboard", adminController.Dashboard).Methods("GET")
	admin.HandleFunc("/approve-comment", adminController.ApproveComment).Methods("POST")
	admin.HandleFunc("/delete-comment", adminController.DeleteComment).Methods("POST")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
