package handler

import (
	"encoding/json"
	"net/http"
)

// Healthz reports liveness for deploy probes.
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"app":    "newel",
	})
}
