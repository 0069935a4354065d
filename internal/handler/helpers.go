package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// idParam returns the {id} path segment, trimmed. Entity ids are opaque
// strings, so the only invalid value is an empty one.
func idParam(r *http.Request) string {
	return strings.TrimSpace(r.PathValue("id"))
}
