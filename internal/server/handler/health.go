package handler

import (
	"net/http"

	"github.com/tejaswadiwala/torcc/internal/version"
	"github.com/tejaswadiwala/torcc/internal/xhttp"
)

func HandleHealth(w http.ResponseWriter, _ *http.Request) {
	xhttp.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Get(),
	})
}
