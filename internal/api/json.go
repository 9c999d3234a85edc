package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"pikndelgw/internal/pikndel"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeOK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": data})
}

// writeError renders the gateway error envelope. Provider failures mirror
// the provider's status and carry its raw body under pikndelData; anything
// else is a plain 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "Internal server error."
	var raw any
	var pe *pikndel.Error
	if errors.As(err, &pe) {
		status = pe.HTTPStatus()
		msg = pe.Message
		if len(pe.RawBody) > 0 {
			raw = json.RawMessage(pe.RawBody)
		}
	} else if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, map[string]any{"success": false, "error": msg, "pikndelData": raw})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": msg, "pikndelData": nil})
}
