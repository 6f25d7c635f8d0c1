package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// marshalFailureBody is written instead of data when data cannot be encoded.
// It has the same shape as every other error response of the API.
const marshalFailureBody = `{"error":"Internal Server Error","message":"Internal server error"}`

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error and a JSON
// error body, and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.StatusResponse{Status: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
