package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// SetupRoutes wires repositories, services and controllers over the
// provided Badger DB and returns the configured router.
func SetupRoutes(db *badger.DB) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	authorRepo := repositories.NewBadgerAuthorRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)

	authorService := services.NewAuthorService(authorRepo, postRepo)
	postService := services.NewPostService(postRepo, authorRepo)

	authorController := controllers.NewAuthorController(authorService)
	postController := controllers.NewPostController(postService)

	// Posts endpoints
	posts := router.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}", postController.Edit).Methods("PUT")
	posts.HandleFunc("/{id:[0-9]+}", postController.Delete).Methods("DELETE")

	// Authors endpoints
	authors := router.PathPrefix("/authors").Subrouter()
	authors.HandleFunc("", authorController.Index).Methods("GET")
	authors.HandleFunc("", authorController.Create).Methods("POST")
	authors.HandleFunc("/{id:[0-9]+}", authorController.Edit).Methods("PUT")
	authors.HandleFunc("/{id:[0-9]+}", authorController.Delete).Methods("DELETE")

	// Anything else is a JSON 404
	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(notFound)

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"message": "Not Found"})
}

// StartServer starts the HTTP server on the specified address and
// returns its handle for later shutdown.
func StartServer(addr string, router http.Handler, errs chan<- error) *http.Server {
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errs <- err
		}
	}()

	return srv
}

// StopServer shuts the server down gracefully, waiting up to timeout
// for in-flight requests to finish.
func StopServer(srv *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
