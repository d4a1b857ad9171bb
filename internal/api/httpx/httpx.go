// Package httpx holds the JSON response helpers shared by all handlers.
// Every failure body uses the same envelope, {"errors": [...]}, so
// clients parse one shape regardless of status code.
package httpx

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Errors []string `json:"errors"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteErrors(w http.ResponseWriter, status int, msgs ...string) {
	if len(msgs) == 0 {
		msgs = []string{http.StatusText(status)}
	}
	WriteJSON(w, status, ErrorResponse{Errors: msgs})
}
