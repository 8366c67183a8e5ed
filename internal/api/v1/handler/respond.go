package handler

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body every failure (and bare success message)
// comes back with.
type MessageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondMessage(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, MessageResponse{Message: message})
}
