// Package httpapi holds the response helpers shared by every module's
// handlers. They started out duplicated per module and were extracted once
// a third module needed them.
package httpapi

import (
	"encoding/json"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the legacy {"error": "..."} body. The message is the
// client-facing generic string; the underlying cause belongs in the log.
func Error(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}
