package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-post-gateway/models"
)

// serverErrorBody is written when a response cannot be encoded. It is a
// constant so that no encoder error text ever reaches the client.
const serverErrorBody = `{"message":"server error"}`

// WriteJSON serializes data to JSON and writes it with statusCode and the
// "application/json" content type.
//
// If marshaling fails, it responds with 500 and the generic
// {"message":"server error"} body and returns a wrapped error.
//
// Example usage:
//
//	utils.WriteJSON(w, models.PostsResponse{Posts: posts}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(serverErrorBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteMessage writes the {"message": message} body with statusCode.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}
