// Package client is the Go counterpart of the browser form: it submits
// movies to a marquee server and keeps the violation list from the last
// rejected attempt, so callers can render errors exactly as the form does.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/marqueehq/marquee/internal/models"
	"github.com/marqueehq/marquee/internal/validate"
)

type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrNotFound           = errors.New("not found")
)

// TransportError reports a failure to complete the HTTP exchange or an
// unexpected status. It is distinct from validation rejection, which is
// reported as *validate.Violations.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// SubmissionHandler owns the submission lifecycle for one form:
// Idle -> Submitting -> Succeeded or Failed, where Failed keeps the
// violation messages visible and permits resubmission. It is not safe
// for concurrent use; one handler models one user's form.
type SubmissionHandler struct {
	baseURL    string
	httpClient *http.Client

	state      State
	violations []string
}

func NewSubmissionHandler(cfg Config) *SubmissionHandler {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &SubmissionHandler{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		state:      StateIdle,
	}
}

func (h *SubmissionHandler) State() State { return h.state }

// Violations returns the messages from the last rejected submission,
// replaced wholesale on every attempt and cleared on success.
func (h *SubmissionHandler) Violations() []string { return h.violations }

// Submit posts the movie. A 201 resolves to the created movie, a 422
// resolves to *validate.Violations, anything else to *TransportError.
func (h *SubmissionHandler) Submit(ctx context.Context, m models.Movie) (models.Movie, error) {
	if h.state == StateSubmitting {
		return models.Movie{}, ErrSubmissionInFlight
	}
	h.state = StateSubmitting

	body, err := json.Marshal(m)
	if err != nil {
		return models.Movie{}, h.fail(&TransportError{Op: "submit", Err: err})
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/movies", bytes.NewReader(body))
	if err != nil {
		return models.Movie{}, h.fail(&TransportError{Op: "submit", Err: err})
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := h.httpClient.Do(req)
	if err != nil {
		return models.Movie{}, h.fail(&TransportError{Op: "submit", Err: err})
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusCreated:
		var created models.Movie
		if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
			return models.Movie{}, h.fail(&TransportError{Op: "submit", Err: err})
		}
		h.state = StateSucceeded
		h.violations = nil
		return created, nil

	case http.StatusUnprocessableEntity:
		// The violation payload only exists after parsing the body, so
		// parse before branching on anything else.
		var vs validate.Violations
		if err := json.NewDecoder(res.Body).Decode(&vs); err != nil {
			return models.Movie{}, h.fail(&TransportError{Op: "submit", Err: err})
		}
		h.state = StateFailed
		h.violations = vs.Messages
		return models.Movie{}, &vs

	default:
		return models.Movie{}, h.fail(&TransportError{Op: "submit", Status: res.StatusCode})
	}
}

// fail records a transport-level failure. The stale violation list is
// dropped rather than shown next to an unrelated error.
func (h *SubmissionHandler) fail(te *TransportError) error {
	h.state = StateFailed
	h.violations = nil
	return te
}

// List fetches the catalog, newest first.
func (h *SubmissionHandler) List(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	if err := h.getJSON(ctx, "/movies", &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (h *SubmissionHandler) Get(ctx context.Context, id string) (models.Movie, error) {
	var m models.Movie
	if err := h.getJSON(ctx, "/movies/"+id, &m); err != nil {
		return models.Movie{}, err
	}
	return m, nil
}

// Genres fetches the category whitelist the server validates against.
func (h *SubmissionHandler) Genres(ctx context.Context) ([]string, error) {
	var genres []string
	if err := h.getJSON(ctx, "/genres", &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

func (h *SubmissionHandler) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, h.baseURL+"/movies/"+id, nil)
	if err != nil {
		return &TransportError{Op: "delete", Err: err}
	}
	res, err := h.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: "delete", Err: err}
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return &TransportError{Op: "delete", Status: res.StatusCode}
	}
}

func (h *SubmissionHandler) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+path, nil)
	if err != nil {
		return &TransportError{Op: "get " + path, Err: err}
	}
	res, err := h.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: "get " + path, Err: err}
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusOK:
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return &TransportError{Op: "get " + path, Err: err}
		}
		return nil
	case res.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		_, _ = io.Copy(io.Discard, res.Body)
		return &TransportError{Op: "get " + path, Status: res.StatusCode}
	}
}
