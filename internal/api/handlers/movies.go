package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/marqueehq/marquee/internal/api/httpx"
	"github.com/marqueehq/marquee/internal/metrics"
	"github.com/marqueehq/marquee/internal/models"
	"github.com/marqueehq/marquee/internal/repository"
	"github.com/marqueehq/marquee/internal/services"
	"github.com/marqueehq/marquee/internal/validate"
)

type MoviesHandler struct {
	svc *services.MovieService
}

func NewMoviesHandler(svc *services.MovieService) *MoviesHandler {
	return &MoviesHandler{svc: svc}
}

// Create accepts a movie submission. A body that is not valid JSON is a
// 400; a movie failing validation is a 422 with every violation listed;
// a valid movie is persisted and echoed back with its id as a 201.
func (h *MoviesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var m models.Movie
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		httpx.WriteErrors(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	created, err := h.svc.Create(r.Context(), m)
	if err != nil {
		var vs *validate.Violations
		if errors.As(err, &vs) {
			metrics.SubmissionsTotal.WithLabelValues("rejected").Inc()
			for _, msg := range vs.Messages {
				field, _, _ := strings.Cut(msg, " ")
				metrics.ViolationsTotal.WithLabelValues(field).Inc()
			}
			httpx.WriteJSON(w, http.StatusUnprocessableEntity, vs)
			return
		}
		httpx.WriteErrors(w, http.StatusInternalServerError, "could not save movie")
		return
	}

	metrics.SubmissionsTotal.WithLabelValues("accepted").Inc()
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *MoviesHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.List(r.Context())
	if err != nil {
		httpx.WriteErrors(w, http.StatusInternalServerError, "could not list movies")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, movies)
}

func (h *MoviesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	movie, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httpx.WriteErrors(w, http.StatusNotFound, "movie not found")
			return
		}
		httpx.WriteErrors(w, http.StatusInternalServerError, "could not load movie")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, movie)
}

func (h *MoviesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httpx.WriteErrors(w, http.StatusNotFound, "movie not found")
			return
		}
		httpx.WriteErrors(w, http.StatusInternalServerError, "could not delete movie")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Genres serves the category whitelist so the form offers exactly the
// values the server accepts.
func (h *MoviesHandler) Genres(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, models.Genres)
}
