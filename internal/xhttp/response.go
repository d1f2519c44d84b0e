package xhttp

import (
	"net/http"

	go_json "github.com/goccy/go-json"
)

// Error writes the plain-text status phrase for the given status code.
// Webhook responses are status phrases, never structured JSON.
func Error(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}

// WriteOK writes a plain-text 200 response.
func WriteOK(w http.ResponseWriter) {
	SetHeaderContentTypeTextPlain(w)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(http.StatusText(http.StatusOK)))
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	SetHeaderContentTypeApplicationJSON(w)
	w.WriteHeader(status)
	_ = go_json.NewEncoder(w).Encode(data)
}
