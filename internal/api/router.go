package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/marqueehq/marquee/internal/api/handlers"
	"github.com/marqueehq/marquee/internal/config"
	"github.com/marqueehq/marquee/internal/metrics"
	"github.com/marqueehq/marquee/internal/middleware"
	"github.com/marqueehq/marquee/internal/services"
	"github.com/marqueehq/marquee/internal/web"
)

func NewRouter(cfg config.Config, movieSvc *services.MovieService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics, middleware.RateLimit(cfg.RateLimitRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	movies := handlers.NewMoviesHandler(movieSvc)
	r.Route("/movies", func(r chi.Router) {
		r.Post("/", movies.Create)
		r.Get("/", movies.List)
		r.Get("/{id}", movies.Get)
		r.Delete("/{id}", movies.Delete)
	})
	r.Get("/genres", movies.Genres)

	// The embedded form lives at the root and talks to the routes above.
	r.Handle("/*", web.Handler())

	return r
}
