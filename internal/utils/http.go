package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data and writes it with the given status code and a
// JSON content type. If marshaling fails it answers 500 and returns the
// wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.RefreshResponse{Access: token}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ErrorDetail is the error body of the inventory backend: {"detail": "..."}.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// WriteDetail writes an error body in the backend's {"detail": ...} shape.
func WriteDetail(w http.ResponseWriter, statusCode int, detail string) {
	_, _ = WriteJSON(w, ErrorDetail{Detail: detail}, statusCode)
}
