package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
)

type errorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
	RequestID string `json:"request_id,omitempty"`
}

// WriteJSONError writes the JSON error envelope used by the API routes.
func WriteJSONError(w http.ResponseWriter, r *http.Request, code int, errCode, msg string) {
	if msg == "" {
		msg = http.StatusText(code)
	}
	rid, _ := RequestID(r.Context())
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error:     errCode,
		Message:   msg,
		Status:    code,
		RequestID: rid,
	})
}

// WantsJSON reports whether the caller prefers a JSON error body.
func WantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if WantsJSON(r) {
		WriteJSONError(w, r, code, strings.ReplaceAll(strings.ToLower(http.StatusText(code)), " ", "_"), msg)
		return
	}
	http.Error(w, msg, code)
}
