package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marqueehq/marquee/internal/models"
	"github.com/marqueehq/marquee/internal/validate"
)

func newHandler(url string) *SubmissionHandler {
	return NewSubmissionHandler(Config{BaseURL: url})
}

func TestSubmit_Succeeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/movies", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"m-1","title":"Alien","year":1979,"posterUrl":"alien.jpg","category":"Horror"}`))
	}))
	defer srv.Close()

	h := newHandler(srv.URL)
	require.Equal(t, StateIdle, h.State())

	created, err := h.Submit(context.Background(), models.Movie{Title: "Alien"})
	require.NoError(t, err)

	assert.Equal(t, "m-1", created.ID)
	assert.Equal(t, StateSucceeded, h.State())
	assert.Empty(t, h.Violations())
}

func TestSubmit_ValidationFailureStoresViolations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors":["title must not be empty","posterUrl must not be empty"]}`))
	}))
	defer srv.Close()

	h := newHandler(srv.URL)
	_, err := h.Submit(context.Background(), models.Movie{})

	var vs *validate.Violations
	require.ErrorAs(t, err, &vs)
	assert.Equal(t, []string{"title must not be empty", "posterUrl must not be empty"}, vs.Messages)
	assert.Equal(t, StateFailed, h.State())
	assert.Equal(t, vs.Messages, h.Violations())
}

func TestSubmit_ViolationsReplacedPerAttempt(t *testing.T) {
	responses := []string{
		`{"errors":["title must not be empty"]}`,
		`{"errors":["category must be one of: Drama"]}`,
	}
	var call int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(responses[call]))
		call++
	}))
	defer srv.Close()

	h := newHandler(srv.URL)
	_, _ = h.Submit(context.Background(), models.Movie{})
	_, _ = h.Submit(context.Background(), models.Movie{})

	assert.Equal(t, []string{"category must be one of: Drama"}, h.Violations(),
		"violations are regenerated per attempt, never merged")
}

func TestSubmit_SuccessClearsEarlierViolations(t *testing.T) {
	var call int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if call == 0 {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"errors":["title must not be empty"]}`))
		} else {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"m-2","title":"Up"}`))
		}
		call++
	}))
	defer srv.Close()

	h := newHandler(srv.URL)
	_, err := h.Submit(context.Background(), models.Movie{})
	require.Error(t, err)
	require.NotEmpty(t, h.Violations())

	_, err = h.Submit(context.Background(), models.Movie{Title: "Up"})
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, h.State())
	assert.Empty(t, h.Violations())
}

func TestSubmit_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	h := newHandler(srv.URL)
	_, err := h.Submit(context.Background(), models.Movie{Title: "Alien"})

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, StateFailed, h.State())
	assert.Empty(t, h.Violations(), "a transport failure carries no violation list")
}

func TestSubmit_ServerErrorIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	h := newHandler(srv.URL)
	_, err := h.Submit(context.Background(), models.Movie{Title: "Alien"})

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusInternalServerError, te.Status)

	var vs *validate.Violations
	assert.False(t, errors.As(err, &vs), "server errors must not look like validation rejections")
}

func TestSubmit_GuardsInFlightSubmission(t *testing.T) {
	h := newHandler("http://localhost:0")
	h.state = StateSubmitting

	_, err := h.Submit(context.Background(), models.Movie{})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
}

func TestSubmit_ResubmitAfterFailure(t *testing.T) {
	var call int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call++
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors":["title must not be empty"]}`))
	}))
	defer srv.Close()

	h := newHandler(srv.URL)
	_, _ = h.Submit(context.Background(), models.Movie{})
	require.Equal(t, StateFailed, h.State())

	_, err := h.Submit(context.Background(), models.Movie{})
	require.NotErrorIs(t, err, ErrSubmissionInFlight)
	assert.Equal(t, 2, call)
}

func TestListGetDeleteGenres(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /movies", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"m-1","title":"Alien"}]`))
	})
	mux.HandleFunc("GET /movies/m-1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"m-1","title":"Alien"}`))
	})
	mux.HandleFunc("GET /movies/gone", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":["movie not found"]}`))
	})
	mux.HandleFunc("GET /genres", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`["Action","Drama"]`))
	})
	mux.HandleFunc("DELETE /movies/m-1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	h := newHandler(srv.URL)
	ctx := context.Background()

	movies, err := h.List(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Alien", movies[0].Title)

	movie, err := h.Get(ctx, "m-1")
	require.NoError(t, err)
	assert.Equal(t, "m-1", movie.ID)

	_, err = h.Get(ctx, "gone")
	assert.ErrorIs(t, err, ErrNotFound)

	genres, err := h.Genres(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Action", "Drama"}, genres)

	require.NoError(t, h.Delete(ctx, "m-1"))
}
